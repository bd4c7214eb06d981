// Package cmd - catalog commands
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"contractor-quote/core/types"
	"contractor-quote/db"
	"contractor-quote/internal/config"
)

var catalogCategory string

// catalogCmd manages stored catalog items
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage stored catalog items",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		items, err := store.ListItems(context.Background(), catalogCategory)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCATEGORY\tNAME\tUNIT\tMATERIAL/UNIT\tLABOR MODE")
		for _, item := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				item.ID, item.CategoryID, item.Name, item.Unit,
				item.MaterialCostPerUnit.StringFixed(2), item.LaborCostingMode)
		}
		return tw.Flush()
	},
}

var catalogAddCmd = &cobra.Command{
	Use:   "add [item.json]",
	Short: "Add or update a catalog item from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read item file: %w", err)
		}

		var item types.CatalogItem
		if err := json.Unmarshal(data, &item); err != nil {
			return fmt.Errorf("parse item file: %w", err)
		}
		if item.ID == "" {
			return fmt.Errorf("item id is required")
		}
		if item.CategoryID == "" {
			return fmt.Errorf("category_id is required")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SaveItem(context.Background(), &item); err != nil {
			return err
		}
		fmt.Printf("Saved %s (%s)\n", item.ID, item.Name)
		return nil
	},
}

var catalogRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Remove a catalog item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteItem(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

func init() {
	catalogListCmd.Flags().StringVarP(&catalogCategory, "category", "c", "", "filter by category")
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogRmCmd)
}

func openStore() (*db.Store, error) {
	conn, err := db.Open(config.Get().Storage.DatabasePath)
	if err != nil {
		return nil, err
	}
	return db.NewStore(conn), nil
}
