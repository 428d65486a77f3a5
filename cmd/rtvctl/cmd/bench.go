package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nullstride/rtvctl/internal/snapshot"
	"github.com/nullstride/rtvctl/rtv"
)

func init() {
	rootCmd.AddCommand(benchCmd)
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the concurrent-clone stress scenario and report timing",
	Long: `bench builds one base vector, clones it once per configured worker, and
has every clone push and pop concurrently from a separate goroutine, exercising
the guarantee that independent clones of a common ancestor may be mutated
concurrently without synchronisation.`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		workers := cfg.Bench.Workers
		batch := cfg.Bench.PushBatchSize

		base, err := rtv.New[snapshot.Item](0)
		if err != nil {
			return err
		}
		for i := 0; i < batch; i++ {
			base.Push(snapshot.Item{byte(i)})
		}

		clones := make([]*rtv.Vector[snapshot.Item], workers)
		for i := range clones {
			clones[i] = base.Clone()
		}

		start := time.Now()
		var g errgroup.Group
		for i := 0; i < workers; i++ {
			v := clones[i]
			g.Go(func() error {
				for j := 0; j < batch; j++ {
					v.Push(snapshot.Item{byte(j)})
				}
				for j := 0; j < batch/2; j++ {
					if _, err := v.Pop(); err != nil {
						return err
					}
				}
				return v.Invariants()
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Printf("%d workers, %d pushes + %d pops each: %s\n", workers, batch, batch/2, elapsed)
		return nil
	},
}
