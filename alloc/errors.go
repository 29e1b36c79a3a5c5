package alloc

import "errors"

var (
	// ErrNoMemory indicates that no OS mapping could be obtained, even after
	// falling back from huge to default pages.
	ErrNoMemory = errors.New("alloc: no memory mapping available")

	// ErrBadAddr indicates a deallocate or reallocate for an address that is
	// not tracked: a double free, a foreign pointer, or a corrupted address.
	ErrBadAddr = errors.New("alloc: address not tracked")

	// ErrAddrReused indicates that a new segment's base address collided
	// with a tracked one, meaning the table no longer matches the address
	// space.
	ErrAddrReused = errors.New("alloc: address already tracked")

	// ErrLayout indicates a grow to a smaller size or a shrink to a larger
	// one.
	ErrLayout = errors.New("alloc: layout size out of range")
)
