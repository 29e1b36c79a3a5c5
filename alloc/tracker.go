package alloc

import (
	"fmt"
	"sync"

	"github.com/joshuapare/hugealloc/internal/mmseg"
)

const mb = 1024 * 1024

// Tracker is the segment-tracking engine. It owns every live segment: a
// table from base address to segment, the page-class policy decision before
// every map and remap, the huge-to-default fallback, and the counters that
// cannot be recomputed from the table.
//
// All methods are safe for concurrent use. Two independent locks guard the
// two shared structures; neither is held across a map, unmap, or remap
// syscall.
type Tracker struct {
	thresholdPct int

	mu   sync.Mutex
	segs map[uintptr]*mmseg.Segment

	statsMu      sync.Mutex
	missedAllocs int
	missedBytes  int
	missedMB     int
	remapsFailed int
}

// NewTracker creates a tracker with the given huge-page threshold
// percentage. A threshold of 50 tries a 2MB huge page for any allocation of
// at least 1MB. Counters are monotonic for the tracker's lifetime.
func NewTracker(thresholdPct int) *Tracker {
	return &Tracker{
		thresholdPct: thresholdPct,
		segs:         make(map[uintptr]*mmseg.Segment),
	}
}

// Alloc maps a new segment for layout and returns the full mapped region.
// The returned slice is the fat pointer: its length is the page-rounded
// mapped size, so callers may use the rounding slack past layout.Size.
func (t *Tracker) Alloc(layout Layout) ([]byte, error) {
	class := mmseg.TargetClass(layout.Size, t.thresholdPct)

	seg, err := mmseg.Create(layout, class)
	if err != nil {
		if class != mmseg.Huge {
			return nil, fmt.Errorf("%w: %v", ErrNoMemory, err)
		}
		// Huge pages exhausted; retry on default pages.
		seg, err = mmseg.Create(layout, mmseg.Default)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoMemory, err)
		}
		t.recordMissed(layout.Size)
	}

	if err := t.insert(seg); err != nil {
		return nil, err
	}
	return seg.Buf(), nil
}

// Free removes the segment tracked at addr and unmaps it. Freeing the shared
// empty-segment address is a no-op.
func (t *Tracker) Free(addr uintptr) error {
	if addr == mmseg.ZeroBase() {
		return nil
	}
	seg := t.remove(addr)
	if seg == nil {
		return ErrBadAddr
	}
	seg.Destroy()
	return nil
}

// Realloc resizes the allocation at addr from oldLayout to newLayout: in
// place when the policy keeps the segment on its current page class and the
// kernel cooperates, otherwise through a fresh mapping plus a copy of
// min(old, new) bytes. The returned region may be at a new address either
// way.
//
// If the fresh mapping on the copy path cannot be obtained, the old segment
// has already been untracked and is destroyed; the caller must treat the old
// address as gone.
func (t *Tracker) Realloc(addr uintptr, oldLayout, newLayout Layout) ([]byte, error) {
	if addr == mmseg.ZeroBase() {
		// Empty segments are never tracked; nothing to copy or destroy.
		return t.Alloc(newLayout)
	}

	seg := t.remove(addr)
	if seg == nil {
		return nil, ErrBadAddr
	}

	if seg.Class() == mmseg.TargetClass(newLayout.Size, t.thresholdPct) {
		if seg.Resize(newLayout) {
			if seg.Class() == mmseg.Default && newLayout.Size > oldLayout.Size {
				// Growth that stayed on default pages is charged to the
				// missed counters by its delta. See Stats.MissedAllocs for
				// the accounting caveat.
				t.recordMissed(newLayout.Size - oldLayout.Size)
			}
			if err := t.insert(seg); err != nil {
				return nil, err
			}
			return seg.Buf(), nil
		}
		t.recordRemapFailed()
	}

	// Class transition, or the kernel refused the remap: fresh mapping with
	// full policy re-evaluation, then a bounded copy.
	buf, err := t.Alloc(newLayout)
	if err != nil {
		seg.Destroy()
		return nil, err
	}
	copy(buf, seg.Buf()[:min(oldLayout.Size, newLayout.Size)])
	seg.Destroy()
	return buf, nil
}

// insert tracks a segment under its base address. Empty segments share
// zerobase and are never tracked.
func (t *Tracker) insert(seg *mmseg.Segment) error {
	if seg.Mapped() == 0 {
		return nil
	}
	addr := seg.Base()

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.segs[addr]; ok {
		return fmt.Errorf("%w: %#x", ErrAddrReused, addr)
	}
	t.segs[addr] = seg
	return nil
}

// remove untracks and returns the segment at addr, nil if none.
func (t *Tracker) remove(addr uintptr) *mmseg.Segment {
	t.mu.Lock()
	defer t.mu.Unlock()
	seg := t.segs[addr]
	delete(t.segs, addr)
	return seg
}

// recordMissed charges bytes to the missed-huge counters, carrying whole
// megabytes separately so the byte remainder stays small for the life of the
// process.
func (t *Tracker) recordMissed(bytes int) {
	t.statsMu.Lock()
	defer t.statsMu.Unlock()
	t.missedAllocs++
	t.missedBytes += bytes
	if t.missedBytes > mb {
		n := t.missedBytes / mb
		t.missedBytes -= n * mb
		t.missedMB += n
	}
}

func (t *Tracker) recordRemapFailed() {
	t.statsMu.Lock()
	t.remapsFailed++
	t.statsMu.Unlock()
}
