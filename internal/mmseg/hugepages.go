package mmseg

// HugePageInfo describes the kernel's preallocated huge-page pool.
type HugePageInfo struct {
	// Free is the number of pool pages currently available.
	Free int
	// Total is the number of pages in the pool.
	Total int
	// PageBytes is the size of one pool page in bytes.
	PageBytes int
}

// FreeBytes returns the bytes available from the pool right now.
func (i HugePageInfo) FreeBytes() int { return i.Free * i.PageBytes }
