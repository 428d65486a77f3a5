package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <name>",
	Short: "Run the structural-invariant audit against a named vector",
	Long: `validate loads a named vector and runs the full structural audit
against it, regardless of whether the rtvdebug build tag is set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		name := args[0]
		ctx := context.Background()

		cache, backend, err := openCache()
		if err != nil {
			return err
		}
		defer backend.Close()

		f, err := cache.Get(ctx, name)
		if err != nil {
			return err
		}
		if err := f.Unfreeze().Invariants(); err != nil {
			return err
		}
		fmt.Printf("%s: ok (%d elements)\n", name, f.Size())
		return nil
	},
}
