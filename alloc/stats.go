package alloc

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/hugealloc/internal/mmseg"
)

// Stats is a point-in-time snapshot of allocator statistics. Per-class
// totals are recomputed from the live segment table on every query; the
// missed and failed counters are monotonic for the tracker's lifetime.
type Stats struct {
	// Alloc is the total bytes requested by callers across live segments.
	Alloc int
	// Mapped is the total bytes mapped, including page-rounding slack.
	Mapped int
	// Segments is the number of live segments.
	Segments int

	// DefaultAlloc, DefaultMapped and DefaultSegments break the totals down
	// to segments on default-size pages.
	DefaultAlloc    int
	DefaultMapped   int
	DefaultSegments int

	// HugeAlloc, HugeMapped and HugeSegments break the totals down to
	// segments on 2MB huge pages.
	HugeAlloc    int
	HugeMapped   int
	HugeSegments int

	// MissedAllocs counts allocations the policy wanted on huge pages that
	// ended up on default pages, plus in-place growth of default-page
	// segments (charged by its size delta). The byte accounting across
	// repeated grow/shrink cycles is an approximation, not an exact ledger.
	MissedAllocs int
	// MissedMB is the missed-huge volume in megabytes.
	MissedMB float64
	// RemapsFailed counts in-place resizes the kernel refused; each one
	// degraded to an allocate-copy-destroy cycle.
	RemapsFailed int
	// Efficiency is Alloc*100/Mapped, truncated, and 100 when nothing is
	// mapped.
	Efficiency int
}

// Stats scans the live table and merges the counters into a fresh snapshot.
func (t *Tracker) Stats() Stats {
	var s Stats

	t.mu.Lock()
	for _, seg := range t.segs {
		s.Alloc += seg.Size()
		s.Mapped += seg.Mapped()
		s.Segments++

		if seg.Class() == mmseg.Huge {
			s.HugeAlloc += seg.Size()
			s.HugeMapped += seg.Mapped()
			s.HugeSegments++
		} else {
			s.DefaultAlloc += seg.Size()
			s.DefaultMapped += seg.Mapped()
			s.DefaultSegments++
		}
	}
	t.mu.Unlock()

	t.statsMu.Lock()
	s.MissedAllocs = t.missedAllocs
	s.MissedMB = float64(t.missedMB) + float64(t.missedBytes)/float64(mb)
	s.RemapsFailed = t.remapsFailed
	t.statsMu.Unlock()

	if s.Mapped == 0 {
		s.Efficiency = 100
	} else {
		s.Efficiency = s.Alloc * 100 / s.Mapped
	}
	return s
}

// String renders the snapshot as a single-line report with grouped digits.
func (s Stats) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf(
		"segments=%d (default=%d huge=%d) alloc=%d (default=%d huge=%d) mapped=%d (default=%d huge=%d) missed=%d (%.2f MB) remaps_failed=%d efficiency=%d%%",
		s.Segments, s.DefaultSegments, s.HugeSegments,
		s.Alloc, s.DefaultAlloc, s.HugeAlloc,
		s.Mapped, s.DefaultMapped, s.HugeMapped,
		s.MissedAllocs, s.MissedMB, s.RemapsFailed, s.Efficiency)
}
