package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nullstride/rtvctl/internal/snapshot"
)

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <name> <file>",
	Short: "Write a named vector's snapshot envelope to a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		name, file := args[0], args[1]
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
		env, err := snapshot.Encode(f, nil)
		if err != nil {
			return err
		}
		if err := os.WriteFile(file, env.Marshal(), 0644); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Printf("exported %s to %s (%d elements)\n", name, file, f.Size())
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <name> <file>",
	Short: "Load a snapshot envelope from a file into a named vector",
	Args:  cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		name, file := args[0], args[1]
		ctx := context.Background()

		raw, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		env, err := snapshot.Unmarshal(raw)
		if err != nil {
			return err
		}
		f, err := snapshot.Decode(env)
		if err != nil {
			return err
		}
		if cfg.Debug.ValidateAfterEachOp {
			if err := f.Unfreeze().Invariants(); err != nil {
				return err
			}
		}

		cache, backend, err := openCache()
		if err != nil {
			return err
		}
		defer backend.Close()

		if err := cache.Put(ctx, name, f); err != nil {
			return err
		}
		fmt.Printf("imported %s from %s (%d elements)\n", name, file, f.Size())
		return nil
	},
}
