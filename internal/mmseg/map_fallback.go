//go:build !linux

package mmseg

import (
	"errors"
	"fmt"
)

// Huge-page flags and mremap are Linux-only. Non-Linux builds can still
// construct empty segments (no syscall involved) so zero-size paths keep
// working and the rest of the module compiles.

// Create maps an anonymous segment. Only the empty segment is available on
// this platform.
func Create(layout Layout, class Class) (*Segment, error) {
	if mappedSize(layout.Size, class) == 0 {
		return &Segment{layout: layout, class: class}, nil
	}
	return nil, fmt.Errorf("mmseg: anonymous mappings: %w", errors.ErrUnsupported)
}

// Resize succeeds only when the rounded size is unchanged.
func (s *Segment) Resize(layout Layout) bool {
	if mappedSize(layout.Size, s.class) != len(s.data) {
		return false
	}
	s.layout = layout
	return true
}

// Destroy releases the segment. Nothing is ever mapped on this platform.
func (s *Segment) Destroy() {}
