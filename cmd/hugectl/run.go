package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hugealloc/alloc"
)

var (
	runThreshold int
	runCount     int
	runSize      int
	runGrowTo    int
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().IntVar(&runThreshold, "threshold", 50, "Huge-page threshold percentage (0-100)")
	cmd.Flags().IntVar(&runCount, "count", 4, "Number of allocations")
	cmd.Flags().IntVar(&runSize, "size", 4*1024*1024, "Bytes per allocation")
	cmd.Flags().IntVar(&runGrowTo, "grow-to", 0, "Grow each allocation to this many bytes before reporting")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run a synthetic allocation workload and report stats",
		Long: `The run command allocates a batch of equally sized regions, optionally
grows each one, and prints the allocator statistics so the huge-page
placement can be inspected against the kernel pool.

Example:
  hugectl run --count 8 --size 4194304
  hugectl run --size 524288 --grow-to 4194304 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkload()
		},
	}
}

func runWorkload() error {
	a := alloc.New(runThreshold)

	layout := alloc.Layout{Size: runSize, Align: 8}
	bufs := make([][]byte, 0, runCount)
	for i := 0; i < runCount; i++ {
		buf, err := a.Allocate(layout)
		if err != nil {
			return fmt.Errorf("allocation %d: %w", i, err)
		}
		// Touch the first byte of every page so the mapping is populated,
		// not just reserved.
		for off := 0; off < len(buf); off += 4096 {
			buf[off] = 1
		}
		printVerbose("allocated %d: %d bytes requested, %d mapped\n", i, runSize, len(buf))
		bufs = append(bufs, buf)
	}

	if runGrowTo > runSize {
		grown := alloc.Layout{Size: runGrowTo, Align: 8}
		for i, buf := range bufs {
			nb, err := a.Grow(buf, layout, grown)
			if err != nil {
				return fmt.Errorf("grow %d: %w", i, err)
			}
			printVerbose("grew %d: %d -> %d bytes (%d mapped)\n", i, runSize, runGrowTo, len(nb))
			bufs[i] = nb
		}
	}

	stats := a.Stats()
	if jsonOut {
		return printJSON(stats)
	}
	fmt.Println(stats)
	return nil
}
