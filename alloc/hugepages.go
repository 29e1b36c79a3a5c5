package alloc

import "github.com/joshuapare/hugealloc/internal/mmseg"

// HugePages reports the kernel's huge-page pool, read fresh from the OS.
// Callers can use it to size the pool (vm.nr_hugepages) against expected
// demand, or to decide whether a huge-page threshold is worth configuring at
// all. On platforms without a pool it returns an error wrapping
// errors.ErrUnsupported.
func HugePages() (HugePageInfo, error) {
	return mmseg.ReadHugePageInfo()
}
