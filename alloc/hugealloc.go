package alloc

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/hugealloc/internal/mmseg"
)

// HugeAllocator adapts a Tracker to the Allocator contract. It is the type
// data structures plug in as their memory backend.
type HugeAllocator struct {
	tracker *Tracker
}

var _ Allocator = (*HugeAllocator)(nil)

// New creates a huge-page allocator with the given threshold percentage
// (0-100). A threshold of 50 tries a 2MB huge page for any allocation of at
// least 1MB.
func New(thresholdPct int) *HugeAllocator {
	return &HugeAllocator{tracker: NewTracker(thresholdPct)}
}

// Allocate maps a fresh region for layout. The returned slice covers the
// whole mapping: its length is a whole-page multiple of the chosen class and
// at least layout.Size.
func (a *HugeAllocator) Allocate(layout Layout) ([]byte, error) {
	return a.tracker.Alloc(layout)
}

// AllocateZeroed is Allocate. Fresh anonymous mappings are zero-filled by
// the kernel.
func (a *HugeAllocator) AllocateZeroed(layout Layout) ([]byte, error) {
	return a.Allocate(layout)
}

// Deallocate unmaps the allocation buf was returned for. The layout is part
// of the allocator contract but unused: the base address alone identifies
// the segment.
func (a *HugeAllocator) Deallocate(buf []byte, _ Layout) error {
	return a.tracker.Free(base(buf))
}

// Grow resizes buf's allocation upward. The region may move; when it does,
// the first oldLayout.Size bytes are preserved.
func (a *HugeAllocator) Grow(buf []byte, oldLayout, newLayout Layout) ([]byte, error) {
	if newLayout.Size < oldLayout.Size {
		return nil, fmt.Errorf("%w: grow from %d to %d bytes", ErrLayout, oldLayout.Size, newLayout.Size)
	}
	return a.tracker.Realloc(base(buf), oldLayout, newLayout)
}

// GrowZeroed is Grow. Extended bytes come either from a fresh zero-filled
// mapping or from pages the kernel zero-fills when the mapping is extended
// in place.
func (a *HugeAllocator) GrowZeroed(buf []byte, oldLayout, newLayout Layout) ([]byte, error) {
	return a.Grow(buf, oldLayout, newLayout)
}

// Shrink resizes buf's allocation downward. The region may move, in
// particular when the smaller size crosses back under the huge-page
// threshold; the first newLayout.Size bytes are preserved.
func (a *HugeAllocator) Shrink(buf []byte, oldLayout, newLayout Layout) ([]byte, error) {
	if newLayout.Size > oldLayout.Size {
		return nil, fmt.Errorf("%w: shrink from %d to %d bytes", ErrLayout, oldLayout.Size, newLayout.Size)
	}
	return a.tracker.Realloc(base(buf), oldLayout, newLayout)
}

// Stats returns a point-in-time snapshot of allocator statistics.
func (a *HugeAllocator) Stats() Stats {
	return a.tracker.Stats()
}

// base returns the address an allocation is tracked under. Every empty
// buffer stands for the shared zero-size allocation: SliceData is
// unspecified for zero-capacity slices, and zero-size allocations are
// interchangeable anyway.
func base(buf []byte) uintptr {
	if len(buf) == 0 {
		return mmseg.ZeroBase()
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
}
