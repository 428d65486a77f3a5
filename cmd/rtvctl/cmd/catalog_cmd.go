package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/nullstride/rtvctl/internal/catalog"
	"github.com/nullstride/rtvctl/internal/catalog/postgres"
)

func init() {
	catalogCmd.PersistentFlags().String("dsn", "", "PostgreSQL connection string; defaults to the configured catalog DSN")
	catalogCmd.AddCommand(catalogAddCmd, catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Track metadata about stored vectors in a relational catalog",
}

var catalogAddCmd = &cobra.Command{
	Use:   "add <name> <element-count> <backend> <byte-size>",
	Short: "Record or update a catalog entry for a named vector",
	Args:  cobra.ExactArgs(4),
	RunE: func(c *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid element count %q: %w", args[1], err)
		}
		size, err := strconv.ParseInt(args[3], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid byte size %q: %w", args[3], err)
		}

		store, err := openCatalog(c)
		if err != nil {
			return err
		}
		defer store.Close()

		entry := catalog.Entry{
			Name:         args[0],
			ElementCount: count,
			Backend:      args[2],
			ByteSize:     size,
			UpdatedAt:    time.Now(),
		}
		if err := store.Upsert(context.Background(), entry); err != nil {
			return err
		}
		fmt.Printf("recorded %s\n", entry.Name)
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every catalog entry",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		store, err := openCatalog(c)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.List(context.Background())
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s\t%d elements\t%s\t%d bytes\t%s\n", e.Name, e.ElementCount, e.Backend, e.ByteSize, e.UpdatedAt.Format(time.RFC3339))
		}
		return nil
	},
}

func openCatalog(c *cobra.Command) (catalog.CatalogStore, error) {
	dsn, _ := c.Flags().GetString("dsn")
	if dsn == "" {
		dsn = cfg.Catalog.DSN
	}
	if dsn == "" {
		return nil, fmt.Errorf("catalog: no DSN configured (set catalog.dsn or pass --dsn)")
	}
	return postgres.Open(context.Background(), dsn)
}
