package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hugealloc/alloc"
)

func init() {
	rootCmd.AddCommand(newHugepagesCmd())
}

func newHugepagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hugepages",
		Short: "Show the kernel's huge-page pool",
		Long: `The hugepages command reports the preallocated huge-page pool the
allocator draws from. An empty pool means every huge-threshold allocation
will fall back to default pages; raise vm.nr_hugepages to provision it.

Example:
  hugectl hugepages
  sudo sysctl vm.nr_hugepages=64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := alloc.HugePages()
			if err != nil {
				return fmt.Errorf("probe huge-page pool: %w", err)
			}
			if jsonOut {
				return printJSON(info)
			}
			fmt.Printf("page size: %d bytes\n", info.PageBytes)
			fmt.Printf("pool:      %d pages\n", info.Total)
			fmt.Printf("free:      %d pages (%d bytes)\n", info.Free, info.FreeBytes())
			return nil
		},
	}
}
