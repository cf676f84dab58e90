package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/chrisdamba/menucraft/internal/importer"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the menu categories with the rows of a spreadsheet or CSV",
	Args:  cobra.ExactArgs(1),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		rows, err := importer.ReadFile(args[0])
		if err != nil {
			return err
		}
		categories := importer.ToCategories(rows, a.store.NewID)
		a.store.ImportCategories(categories)

		items := 0
		for _, c := range categories {
			items += len(c.Items)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d item(s) in %d category(ies)\n", items, len(categories))
		return nil
	}),
}

var importTemplateCmd = &cobra.Command{
	Use:   "template [path]",
	Short: "Write a blank import spreadsheet with the expected headers",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := importer.TemplateFileName
		if len(args) == 1 {
			path = args[0]
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := importer.WriteTemplate(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
		return nil
	},
}

func init() {
	importCmd.AddCommand(importTemplateCmd)
	rootCmd.AddCommand(importCmd)
}
