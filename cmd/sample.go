package cmd

import (
	"context"
	"fmt"

	"github.com/chrisdamba/menucraft/internal/factories"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Fill the active project with demo restaurant data",
	Args:  cobra.NoArgs,
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		categories, _ := cmd.Flags().GetInt("categories")
		items, _ := cmd.Flags().GetInt("items")
		if categories < 1 || items < 1 {
			return fmt.Errorf("--categories and --items must be positive")
		}

		sf := factories.SampleFactory{NewID: a.store.NewID}
		project := a.store.Project()
		a.store.UpdateRestaurantInfo(sf.CreateRestaurant(project.Restaurant))
		a.store.UpdateCategories(sf.CreateCategories(categories, items))

		fmt.Fprintf(cmd.OutOrStdout(), "Generated %d item(s) for %q\n", a.store.Project().ItemCount(), a.store.Project().Restaurant.Name)
		return nil
	}),
}

func init() {
	sampleCmd.Flags().Int("categories", 4, "number of categories")
	sampleCmd.Flags().Int("items", 3, "items per category")
	rootCmd.AddCommand(sampleCmd)
}
