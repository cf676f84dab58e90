package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/chrisdamba/menucraft/internal/catalog"
	"github.com/chrisdamba/menucraft/internal/forms"
	"github.com/spf13/cobra"
)

var restaurantCmd = &cobra.Command{
	Use:   "restaurant",
	Short: "Edit the restaurant details",
}

var restaurantSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update restaurant fields; only the flags given are changed",
	Args:  cobra.NoArgs,
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		logo, err := mediaFlag(cmd, "logo")
		if err != nil {
			return err
		}
		form := forms.RestaurantForm{
			Name:          stringFlag(cmd, "name"),
			Description:   stringFlag(cmd, "description"),
			Logo:          logo,
			LogoPosition:  stringFlag(cmd, "logo-position"),
			Address:       stringFlag(cmd, "address"),
			Phone:         stringFlag(cmd, "phone"),
			Website:       stringFlag(cmd, "website"),
			ShowCalories:  boolFlag(cmd, "show-calories"),
			ShowAllergens: boolFlag(cmd, "show-allergens"),
			ShowRatings:   boolFlag(cmd, "show-ratings"),
			EnableCart:    boolFlag(cmd, "enable-cart"),
		}
		if err := forms.Check(form); err != nil {
			return err
		}
		a.store.UpdateRestaurantInfo(form.ApplyTo(a.store.Project().Restaurant))
		fmt.Fprintln(cmd.OutOrStdout(), "Restaurant updated")
		return nil
	}),
}

var currencyCmd = &cobra.Command{
	Use:   "currency",
	Short: "Show or change the menu currency",
}

var currencyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported currencies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, c := range catalog.Currencies() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Flag, c.Code, c.Symbol, c.Name)
		}
		return tw.Flush()
	},
}

var currencySetCmd = &cobra.Command{
	Use:   "set <code>",
	Short: "Switch the menu currency",
	Args:  cobra.ExactArgs(1),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		if !a.store.SetCurrency(args[0]) {
			return fmt.Errorf("unknown currency %q; see `menucraft currency list`", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Currency set to", args[0])
		return nil
	}),
}

func init() {
	f := restaurantSetCmd.Flags()
	f.String("name", "", "restaurant name")
	f.String("description", "", "short description")
	f.String("logo", "", "logo image file or URL")
	f.String("logo-position", "", "top-left, top-center or top-right")
	f.String("address", "", "street address")
	f.String("phone", "", "phone number")
	f.String("website", "", "website URL")
	f.Bool("show-calories", false, "show item calories")
	f.Bool("show-allergens", false, "show item allergens")
	f.Bool("show-ratings", false, "show item ratings")
	f.Bool("enable-cart", false, "enable the cart")

	restaurantCmd.AddCommand(restaurantSetCmd)
	currencyCmd.AddCommand(currencyListCmd, currencySetCmd)
	rootCmd.AddCommand(restaurantCmd, currencyCmd)
}
