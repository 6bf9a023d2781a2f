package main

import (
	"github.com/joshuapare/poolkit/alloc"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	var (
		size     int
		align    int
		poolSize int
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the pool geometry derived for a payload size",
		Long: `The info command derives and prints the chunk stride, chunks per pool,
and reservation size for a payload size without allocating anything.

Example:
  poolctl info --size 16
  poolctl info --size 5000 --align 128 --pool-size 131072`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(size, align, poolSize)
		},
	}

	cmd.Flags().IntVar(&size, "size", 0, "Payload size in bytes (required)")
	cmd.Flags().IntVar(&align, "align", alloc.DefaultAlignment, "Baseline chunk alignment")
	cmd.Flags().IntVar(&poolSize, "pool-size", 64*1024, "Bytes reserved per pool")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

func runInfo(size, align, poolSize int) error {
	f, err := alloc.NewFixed(size, &alloc.Config{
		PoolSize:  poolSize,
		Alignment: align,
	})
	if err != nil {
		return err
	}
	defer f.Close()

	printInfo("Payload size:     %d bytes\n", size)
	printInfo("Chunk stride:     %d bytes\n", f.Stride())
	printInfo("Pool size:        %d bytes\n", poolSize)
	printInfo("Chunks per pool:  %d\n", f.ChunksPerPool())
	printInfo("Per-chunk waste:  %d bytes\n", f.Stride()-size)
	printInfo("Per-pool slack:   %d bytes\n", poolSize%f.Stride())
	return nil
}
