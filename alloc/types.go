package alloc

import "github.com/joshuapare/hugealloc/internal/mmseg"

// Layout is a type alias for the request type defined in internal/mmseg.
// This alias keeps one definition shared between callers and the mapping
// layer.
type Layout = mmseg.Layout

// HugePageInfo is a type alias for the probe result defined in
// internal/mmseg.
type HugePageInfo = mmseg.HugePageInfo

// HugeBytes is the huge-page size this allocator requests (2MB).
const HugeBytes = mmseg.HugeBytes
