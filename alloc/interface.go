package alloc

// Allocator defines the memory-backend contract consumed by data structures
// that accept a pluggable allocator.
//
// Implementations:
//   - HugeAllocator: huge-page-aware backend over a segment Tracker
//
// Buffers returned by Allocate/Grow/Shrink always cover the full mapped
// region, so their length may exceed the requested layout size; callers may
// use the extra rounding slack. The buffer's base address is the handle every
// later call is keyed by - callers must pass back the exact buffer they were
// given, not a sub-slice.
type Allocator interface {
	// Allocate maps a fresh region for layout.
	Allocate(layout Layout) ([]byte, error)

	// AllocateZeroed is Allocate with a zero-fill guarantee. Fresh anonymous
	// mappings are always zero-filled, so implementations may simply
	// delegate.
	AllocateZeroed(layout Layout) ([]byte, error)

	// Deallocate unmaps buf's allocation. Unmap failure is fatal, not an
	// error value; the error reports caller misuse such as a double free.
	Deallocate(buf []byte, layout Layout) error

	// Grow resizes buf's allocation upward (newLayout.Size >= oldLayout.Size).
	// The region may move; the first oldLayout.Size bytes are preserved.
	Grow(buf []byte, oldLayout, newLayout Layout) ([]byte, error)

	// GrowZeroed is Grow with a zero-fill guarantee for the extended bytes,
	// inherited from mapping semantics.
	GrowZeroed(buf []byte, oldLayout, newLayout Layout) ([]byte, error)

	// Shrink resizes buf's allocation downward (newLayout.Size <= oldLayout.Size).
	// The region may move; the first newLayout.Size bytes are preserved.
	Shrink(buf []byte, oldLayout, newLayout Layout) ([]byte, error)

	// Stats returns a point-in-time snapshot of allocator statistics.
	Stats() Stats
}
