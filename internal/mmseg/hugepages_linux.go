//go:build linux

package mmseg

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadHugePageInfo parses the huge-page pool counters from /proc/meminfo.
// The counters describe the preallocated pool (vm.nr_hugepages), which is
// exactly the capacity MAP_HUGETLB mappings draw from.
func ReadHugePageInfo() (HugePageInfo, error) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return HugePageInfo{}, err
	}
	defer f.Close()

	var info HugePageInfo
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		var dst *int
		switch strings.TrimSuffix(fields[0], ":") {
		case "HugePages_Free":
			dst = &info.Free
		case "HugePages_Total":
			dst = &info.Total
		case "Hugepagesize":
			dst = &info.PageBytes
		default:
			continue
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return HugePageInfo{}, fmt.Errorf("mmseg: parse /proc/meminfo %q: %w", sc.Text(), err)
		}
		*dst = n
	}
	if err := sc.Err(); err != nil {
		return HugePageInfo{}, err
	}
	info.PageBytes *= 1024 // Hugepagesize is reported in kB
	return info, nil
}
