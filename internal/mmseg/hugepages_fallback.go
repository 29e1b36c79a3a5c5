//go:build !linux

package mmseg

import (
	"errors"
	"fmt"
)

// ReadHugePageInfo reports the huge-page pool. There is no pool to probe on
// this platform.
func ReadHugePageInfo() (HugePageInfo, error) {
	return HugePageInfo{}, fmt.Errorf("mmseg: huge-page probe: %w", errors.ErrUnsupported)
}
