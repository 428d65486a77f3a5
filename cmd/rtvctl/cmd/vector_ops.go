package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nullstride/rtvctl/internal/snapshot"
)

func init() {
	rootCmd.AddCommand(pushCmd, popCmd, getCmd, setCmd, showCmd, sizeCmd)
}

var pushCmd = &cobra.Command{
	Use:   "push <name> <value>",
	Short: "Append a value to a named vector, creating it if absent",
	Args:  cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		name, value := args[0], args[1]
		ctx := context.Background()

		cache, backend, err := openCache()
		if err != nil {
			return err
		}
		defer backend.Close()

		v, err := loadOrCreate(ctx, cache, name)
		if err != nil {
			return err
		}
		v.Push(snapshot.Item(value))
		return saveVector(ctx, cache, name, v)
	},
}

var popCmd = &cobra.Command{
	Use:   "pop <name>",
	Short: "Remove and print the last value of a named vector",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		name := args[0]
		ctx := context.Background()

		cache, backend, err := openCache()
		if err != nil {
			return err
		}
		defer backend.Close()

		v, err := loadExisting(ctx, cache, name)
		if err != nil {
			return err
		}
		popped, err := v.Pop()
		if err != nil {
			return err
		}
		if err := saveVector(ctx, cache, name, v); err != nil {
			return err
		}
		fmt.Println(popped.String())
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <name> <index>",
	Short: "Print the element at an index of a named vector",
	Args:  cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		name := args[0]
		i, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[1], err)
		}

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
		elem, err := f.Get(i)
		if err != nil {
			return err
		}
		fmt.Println(elem.String())
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <name> <index> <value>",
	Short: "Replace the element at an index of a named vector",
	Args:  cobra.ExactArgs(3),
	RunE: func(c *cobra.Command, args []string) error {
		name := args[0]
		i, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[1], err)
		}
		value := args[2]

		ctx := context.Background()
		cache, backend, err := openCache()
		if err != nil {
			return err
		}
		defer backend.Close()

		v, err := loadExisting(ctx, cache, name)
		if err != nil {
			return err
		}
		if err := v.Set(i, snapshot.Item(value)); err != nil {
			return err
		}
		return saveVector(ctx, cache, name, v)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a named vector's elements",
	Args:  cobra.ExactArgs(1),
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
		fmt.Println(f.Unfreeze().String())
		return nil
	},
}

var sizeCmd = &cobra.Command{
	Use:   "size <name>",
	Short: "Print a named vector's element count",
	Args:  cobra.ExactArgs(1),
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
		fmt.Println(f.Size())
		return nil
	},
}
