//go:build linux

package mmseg

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// mapFlags returns the extra mmap flags the class needs on top of
// MAP_PRIVATE|MAP_ANONYMOUS.
func (c Class) mapFlags() int {
	if c == Huge {
		return unix.MAP_HUGETLB | unix.MAP_HUGE_2MB
	}
	return 0
}

// Create maps an anonymous private read-write segment backed by the given
// page class. Failure is recoverable: the usual cause is huge-page
// exhaustion, and the caller decides whether to fall back to default pages.
func Create(layout Layout, class Class) (*Segment, error) {
	size := mappedSize(layout.Size, class)
	if size == 0 {
		return &Segment{layout: layout, class: class}, nil
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS|class.mapFlags())
	if err != nil {
		return nil, fmt.Errorf("mmseg: mmap %d bytes (%s pages): %w", size, class, err)
	}
	return &Segment{data: data, layout: layout, class: class}, nil
}

// Resize adjusts the mapped size in place via mremap. The mapping may move;
// Base reflects the new address on success. On failure the segment is
// unchanged and the caller must fall back to allocate-copy-destroy. The page
// class never changes here.
func (s *Segment) Resize(layout Layout) bool {
	size := mappedSize(layout.Size, s.class)
	if size != len(s.data) {
		if len(s.data) == 0 || size == 0 {
			// No mapping to remap, or a remap down to nothing. Both go
			// through the caller's copy path.
			return false
		}
		data, err := unix.Mremap(s.data, size, unix.MREMAP_MAYMOVE)
		if err != nil {
			return false
		}
		s.data = data
	}
	s.layout = layout
	return true
}

// Destroy unmaps the segment. An unmap failure means the address-space
// bookkeeping no longer matches reality; there is nothing sane to continue
// with, so it panics.
func (s *Segment) Destroy() {
	if len(s.data) == 0 {
		return
	}
	if err := unix.Munmap(s.data); err != nil {
		panic(fmt.Sprintf("mmseg: munmap of %d-byte %s segment failed: %v", len(s.data), s.class, err))
	}
	s.data = nil
}
