package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	storeCmd.AddCommand(storePutCmd, storeGetCmd, storeListCmd)
	rootCmd.AddCommand(storeCmd)
}

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Talk to the blob store directly, bypassing the snapshot codec",
}

var storePutCmd = &cobra.Command{
	Use:   "put <name> <file>",
	Short: "Write a file's raw bytes under a name in the blob store",
	Args:  cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		name, file := args[0], args[1]
		raw, err := os.ReadFile(file)
		if err != nil {
			return err
		}

		backend, err := openStore()
		if err != nil {
			return err
		}
		defer backend.Close()

		if err := backend.Put(context.Background(), name, raw); err != nil {
			return err
		}
		fmt.Printf("put %s (%d bytes)\n", name, len(raw))
		return nil
	},
}

var storeGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print raw bytes stored under a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		name := args[0]

		backend, err := openStore()
		if err != nil {
			return err
		}
		defer backend.Close()

		raw, err := backend.Get(context.Background(), name)
		if err != nil {
			return err
		}
		os.Stdout.Write(raw)
		return nil
	},
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every name in the blob store",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		backend, err := openStore()
		if err != nil {
			return err
		}
		defer backend.Close()

		names, err := backend.List(context.Background())
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	},
}
