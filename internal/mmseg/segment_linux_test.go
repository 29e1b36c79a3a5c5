//go:build linux

package mmseg_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hugealloc/internal/mmseg"
	"github.com/joshuapare/hugealloc/internal/testutil"
)

const mb = 1024 * 1024

// TestSegment_CreateDefault maps a small default-page segment and checks
// rounding, zero-fill and writability of the whole region.
func TestSegment_CreateDefault(t *testing.T) {
	ps := os.Getpagesize()

	seg, err := mmseg.Create(mmseg.Layout{Size: 100, Align: 8}, mmseg.Default)
	require.NoError(t, err, "default-page mapping should always be available")
	defer seg.Destroy()

	assert.Equal(t, mmseg.Default, seg.Class())
	assert.Equal(t, 100, seg.Size(), "requested size is kept verbatim")
	assert.Equal(t, ps, seg.Mapped(), "100 bytes should round to one page")

	buf := seg.Buf()
	require.Len(t, buf, ps)
	assert.Zero(t, buf[0], "fresh mappings are zero-filled")
	assert.Zero(t, buf[ps-1])

	// The rounding slack past the requested size is usable memory.
	buf[0], buf[ps-1] = 0xAA, 0xBB
	assert.Equal(t, byte(0xAA), buf[0])
	assert.Equal(t, byte(0xBB), buf[ps-1])
}

// TestSegment_ResizeGrows remaps a one-page segment to three pages and
// checks that contents survive the (possibly moving) remap.
func TestSegment_ResizeGrows(t *testing.T) {
	ps := os.Getpagesize()

	seg, err := mmseg.Create(mmseg.Layout{Size: ps, Align: 8}, mmseg.Default)
	require.NoError(t, err)
	defer seg.Destroy()

	buf := seg.Buf()
	buf[0], buf[ps-1] = 0x42, 0x43

	require.True(t, seg.Resize(mmseg.Layout{Size: 3 * ps, Align: 8}), "mremap with MAYMOVE should succeed")
	assert.Equal(t, 3*ps, seg.Mapped())
	assert.Equal(t, 3*ps, seg.Size())

	buf = seg.Buf()
	assert.Equal(t, byte(0x42), buf[0], "contents must survive the remap")
	assert.Equal(t, byte(0x43), buf[ps-1])
}

// TestSegment_ResizeSameRoundedSize checks the trivial path: the layout
// changes but the rounded size does not, so no syscall runs and the base
// address cannot move.
func TestSegment_ResizeSameRoundedSize(t *testing.T) {
	seg, err := mmseg.Create(mmseg.Layout{Size: 10, Align: 8}, mmseg.Default)
	require.NoError(t, err)
	defer seg.Destroy()

	before := seg.Base()
	require.True(t, seg.Resize(mmseg.Layout{Size: 20, Align: 8}))
	assert.Equal(t, before, seg.Base(), "same rounded size must stay in place")
	assert.Equal(t, 20, seg.Size())
	assert.Equal(t, os.Getpagesize(), seg.Mapped())
}

// TestSegment_Empty covers the zero-size special case: no syscall, shared
// zerobase address, no-op destroy.
func TestSegment_Empty(t *testing.T) {
	seg, err := mmseg.Create(mmseg.Layout{}, mmseg.Huge)
	require.NoError(t, err)

	assert.Zero(t, seg.Mapped())
	assert.Empty(t, seg.Buf())
	assert.Equal(t, mmseg.ZeroBase(), seg.Base())

	assert.False(t, seg.Resize(mmseg.Layout{Size: 100, Align: 8}), "an empty segment has nothing to remap")
	assert.True(t, seg.Resize(mmseg.Layout{}), "empty to empty is the trivial path")

	seg.Destroy()
	seg.Destroy() // destroy of an empty segment stays a no-op
}

// TestSegment_CreateHuge maps a real 2MB huge page when the kernel pool has
// capacity.
func TestSegment_CreateHuge(t *testing.T) {
	testutil.RequireHugePages(t, 2*mb)

	seg, err := mmseg.Create(mmseg.Layout{Size: mb, Align: 8}, mmseg.Huge)
	require.NoError(t, err, "pool has capacity, the huge mapping should succeed")
	defer seg.Destroy()

	assert.Equal(t, mmseg.Huge, seg.Class())
	assert.Equal(t, 2*mb, seg.Mapped(), "1MB rounds to one 2MB huge page")

	buf := seg.Buf()
	buf[0], buf[2*mb-1] = 1, 2
	assert.Equal(t, byte(1), buf[0])
	assert.Equal(t, byte(2), buf[2*mb-1])
}
