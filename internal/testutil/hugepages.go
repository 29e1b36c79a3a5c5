// Package testutil provides shared helpers for the allocator test suites.
package testutil

import (
	"testing"

	"github.com/joshuapare/hugealloc/internal/mmseg"
)

// HugeBytesFree reports how many bytes of 2MB huge pages the kernel can hand
// out right now. Zero on platforms without a pool, and zero when the pool's
// page size is not the 2MB this allocator requests.
func HugeBytesFree(tb testing.TB) int {
	tb.Helper()

	info, err := mmseg.ReadHugePageInfo()
	if err != nil || info.PageBytes != mmseg.HugeBytes {
		return 0
	}
	return info.FreeBytes()
}

// RequireHugePages skips the test unless the kernel can satisfy at least
// bytes of 2MB huge pages. Missing pool capacity is an environment gap, not
// a failure.
//
// Example:
//
//	testutil.RequireHugePages(t, 4*1024*1024)
func RequireHugePages(tb testing.TB, bytes int) {
	tb.Helper()

	if free := HugeBytesFree(tb); free < bytes {
		tb.Skipf("needs %d bytes of free 2MB huge pages, have %d (raise vm.nr_hugepages to run this test)", bytes, free)
	}
}
