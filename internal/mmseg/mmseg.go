// Package mmseg provides the anonymous memory-mapping primitive behind the
// allocator: page classes, the huge-page sizing policy, and Segment, which
// owns exactly one OS mapping for its lifetime.
package mmseg

import (
	"os"
	"sync"
	"unsafe"
)

// HugeBytes is the size of one huge page. Only 2MB huge pages are requested;
// 1GB pages are out of scope.
const HugeBytes = 2 * 1024 * 1024

// Class is the page class backing a segment.
type Class uint8

const (
	// Default is the platform's native page size.
	Default Class = iota
	// Huge is a 2MB huge page.
	Huge
)

// defaultPageSize caches the native page size, queried once per process.
var defaultPageSize = sync.OnceValue(os.Getpagesize)

// Bytes returns the page size of the class in bytes.
func (c Class) Bytes() int {
	if c == Huge {
		return HugeBytes
	}
	return defaultPageSize()
}

func (c Class) String() string {
	if c == Huge {
		return "huge"
	}
	return "default"
}

// TargetClass returns the page class the policy prefers for an allocation of
// the given size. A threshold of 50 routes any request of at least half a
// huge page (1MB) to huge pages. Zero-size requests are not special-cased;
// they round to an empty mapping in Create regardless of class.
func TargetClass(size, thresholdPct int) Class {
	if size*100/HugeBytes >= thresholdPct {
		return Huge
	}
	return Default
}

// mappedSize rounds size up to whole pages of the class. A zero-size request
// rounds to zero: an empty segment, not a syscall.
func mappedSize(size int, c Class) int {
	if size == 0 {
		return 0
	}
	pb := c.Bytes()
	return ((size-1)/pb + 1) * pb
}

// Layout is an allocation request. Align is carried for the allocator
// contract but needs no handling here: page-granular mappings are more
// aligned than any reasonable request.
type Layout struct {
	Size  int
	Align int
}

// zerobase backs every empty segment. All zero-size allocations share its
// address, the same way the Go runtime hands out one address for all
// zero-byte allocations.
var zerobase byte

// ZeroBase is the address shared by all empty segments.
func ZeroBase() uintptr {
	return uintptr(unsafe.Pointer(&zerobase))
}

// Segment is one live anonymous mapping. data is the full mapped region,
// whose length is a whole-page multiple of the class (or 0 for an empty
// segment); layout is what the caller asked for.
type Segment struct {
	data   []byte
	layout Layout
	class  Class
}

// Base returns the segment's base address, the key it is tracked under.
func (s *Segment) Base() uintptr {
	if len(s.data) == 0 {
		return ZeroBase()
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s.data)))
}

// Buf returns the full mapped region. Callers may use the whole slice; the
// rounding slack past the requested size is usable memory.
func (s *Segment) Buf() []byte {
	if len(s.data) == 0 {
		return unsafe.Slice(&zerobase, 0)
	}
	return s.data
}

// Size returns the requested layout size.
func (s *Segment) Size() int { return s.layout.Size }

// Mapped returns the total mapped size.
func (s *Segment) Mapped() int { return len(s.data) }

// Class returns the page class backing the segment.
func (s *Segment) Class() Class { return s.class }
