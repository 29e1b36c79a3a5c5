// Package alloc implements a page-granular memory allocator that backs large
// allocations with 2MB huge pages when the kernel can provide them, trading
// mapping overhead for lower page-table pressure and fewer TLB misses.
//
// # Overview
//
// Every allocation becomes exactly one anonymous OS mapping. A pure policy
// decides, per request size, whether to try a huge page: with a threshold
// percentage of 50, any request of at least half a huge page (1MB) is routed
// to huge pages first. Huge-page failures fall back to default pages and are
// counted, never surfaced.
//
// The engine is Tracker: it owns a table from base address to live segment,
// performs the map/mremap/munmap lifecycle, and aggregates statistics
// (allocated vs. mapped bytes per page class, missed huge-page
// opportunities, failed in-place resizes).
//
// # Allocator Interface
//
// HugeAllocator adapts the Tracker to the Allocator contract consumed by
// data structures with a pluggable memory backend:
//
//   - Allocate / AllocateZeroed: one fresh mapping, returned as a slice over
//     the whole page-rounded region
//   - Deallocate: unmap, fatal if the kernel refuses
//   - Grow / GrowZeroed / Shrink: in-place resize when the page class is
//     unchanged, otherwise a fresh mapping plus a bounded copy
//   - Stats: point-in-time snapshot
//
// # Usage Example
//
//	a := alloc.New(50)
//
//	buf, err := a.Allocate(alloc.Layout{Size: 4 * 1024 * 1024, Align: 8})
//	if err != nil {
//	    return err
//	}
//
//	// len(buf) is the full mapped size; the rounding slack is usable.
//	copy(buf, payload)
//
//	buf, err = a.Grow(buf, alloc.Layout{Size: 4 << 20, Align: 8}, alloc.Layout{Size: 8 << 20, Align: 8})
//	...
//	err = a.Deallocate(buf, alloc.Layout{Size: 8 << 20, Align: 8})
//
// # Huge Pages
//
// Huge pages are best-effort. MAP_HUGETLB draws from the preallocated pool
// (vm.nr_hugepages); when the pool is empty the allocator silently uses
// default pages and increments the missed counters. HugePages reports the
// pool so callers can size it against expected demand.
//
// # Thread Safety
//
// All operations are safe for concurrent use. Two independent mutexes guard
// the segment table and the counters; neither is held across a mapping
// syscall.
package alloc
