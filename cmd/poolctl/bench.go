package main

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/joshuapare/poolkit/alloc"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newBenchCmd())
}

func newBenchCmd() *cobra.Command {
	var (
		size     int
		count    int
		rounds   int
		poolSize int
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run an allocate/free churn workload and report timings",
		Long: `The bench command allocates and frees a batch of fixed-size objects for
a number of rounds, then prints allocator statistics and the wall time per
operation alongside a general-purpose allocator baseline.

Example:
  poolctl bench --size 32 --count 100000 --rounds 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(size, count, rounds, poolSize, strict)
		},
	}

	cmd.Flags().IntVar(&size, "size", 32, "Payload size in bytes")
	cmd.Flags().IntVar(&count, "count", 100000, "Objects allocated per round")
	cmd.Flags().IntVar(&rounds, "rounds", 10, "Allocate/free rounds")
	cmd.Flags().IntVar(&poolSize, "pool-size", 1<<20, "Bytes reserved per pool")
	cmd.Flags().BoolVar(&strict, "strict", false, "Validate every free against the owned pools")

	return cmd
}

func runBench(size, count, rounds, poolSize int, strict bool) error {
	f, err := alloc.NewFixed(size, &alloc.Config{
		PoolSize:  poolSize,
		Alignment: alloc.DefaultAlignment,
		Strict:    strict,
	})
	if err != nil {
		return err
	}
	defer f.Close()

	ptrs := make([]unsafe.Pointer, count)

	start := time.Now()
	for range rounds {
		for i := range ptrs {
			p, allocErr := f.Alloc()
			if allocErr != nil {
				return fmt.Errorf("alloc %d: %w", i, allocErr)
			}
			ptrs[i] = p
		}
		// Free in reverse so the next round walks the pool forward again.
		for i := len(ptrs) - 1; i >= 0; i-- {
			f.Free(ptrs[i])
		}
	}
	poolElapsed := time.Since(start)

	// Baseline: the general-purpose allocator for same-sized objects.
	bufs := make([][]byte, count)
	start = time.Now()
	for range rounds {
		for i := range bufs {
			bufs[i] = make([]byte, size)
		}
		for i := range bufs {
			bufs[i] = nil
		}
	}
	heapElapsed := time.Since(start)

	ops := rounds * count
	st := f.Stats()
	printInfo("Rounds:           %d x %d objects (%d ops)\n", rounds, count, ops)
	printInfo("Chunk stride:     %d bytes\n", f.Stride())
	printInfo("Pools acquired:   %d (%d chunks each)\n", st.PoolsAcquired, st.ChunksPerPool)
	printInfo("Bytes reserved:   %d\n", st.BytesReserved)
	printInfo("Pool alloc/free:  %v total, %.1f ns/op\n",
		poolElapsed, float64(poolElapsed.Nanoseconds())/float64(ops))
	printInfo("Heap alloc:       %v total, %.1f ns/op\n",
		heapElapsed, float64(heapElapsed.Nanoseconds())/float64(ops))
	return nil
}
