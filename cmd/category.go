package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/chrisdamba/menucraft/internal/store"
	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage menu categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Append a category",
	Args:  cobra.ExactArgs(1),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(args[0]) == "" {
			return fmt.Errorf("category name is required")
		}
		icon, _ := cmd.Flags().GetString("icon")
		category := a.store.AddCategory(args[0], icon)
		fmt.Fprintf(cmd.OutOrStdout(), "Added category %q (%s)\n", category.Name, category.ID)
		return nil
	}),
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <category-id> <name>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		project := a.store.Project()
		idx := project.FindCategory(args[0])
		if idx < 0 {
			return fmt.Errorf("category %s: %w", args[0], store.ErrCategoryNotFound)
		}
		if strings.TrimSpace(args[1]) == "" {
			return fmt.Errorf("category name is required")
		}
		icon := project.Categories[idx].Icon
		if v := stringFlag(cmd, "icon"); v != nil {
			icon = *v
		}
		return a.store.UpdateCategory(args[0], args[1], icon)
	}),
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <category-id>",
	Short: "Delete a category and its items",
	Args:  cobra.ExactArgs(1),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		if err := a.store.DeleteCategory(args[0]); err != nil {
			return fmt.Errorf("category %s: %w", args[0], err)
		}
		return nil
	}),
}

func init() {
	categoryAddCmd.Flags().String("icon", "", "emoji shown next to the category name")
	categoryRenameCmd.Flags().String("icon", "", "replace the category icon")

	categoryCmd.AddCommand(categoryAddCmd, categoryRenameCmd, categoryDeleteCmd)
	rootCmd.AddCommand(categoryCmd)
}
