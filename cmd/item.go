package cmd

import (
	"context"
	"fmt"

	"github.com/chrisdamba/menucraft/internal/forms"
	"github.com/chrisdamba/menucraft/internal/store"
	"github.com/spf13/cobra"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage menu items",
}

var itemAddCmd = &cobra.Command{
	Use:   "add <category-id> <name>",
	Short: "Add an item to a category",
	Args:  cobra.ExactArgs(2),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		image, err := mediaFlag(cmd, "image")
		if err != nil {
			return err
		}
		video, err := mediaFlag(cmd, "video")
		if err != nil {
			return err
		}
		form := forms.ItemForm{
			Name:          args[1],
			Price:         valueOr(floatFlag(cmd, "price"), 0),
			Description:   valueOr(stringFlag(cmd, "description"), ""),
			Image:         valueOr(image, ""),
			Video:         valueOr(video, ""),
			Icon:          valueOr(stringFlag(cmd, "icon"), ""),
			Calories:      intFlag(cmd, "calories"),
			Allergens:     valueOr(stringFlag(cmd, "allergens"), ""),
			SpecialOffer:  valueOr(boolFlag(cmd, "special-offer"), false),
			OriginalPrice: floatFlag(cmd, "original-price"),
			Rating:        floatFlag(cmd, "rating"),
			ReviewCount:   intFlag(cmd, "reviews"),
		}
		if err := forms.Check(form); err != nil {
			return err
		}
		item, err := a.store.AddItem(args[0], form.ToItem(""))
		if err != nil {
			return fmt.Errorf("category %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", item.Name, item.ID)
		return nil
	}),
}

var itemUpdateCmd = &cobra.Command{
	Use:   "update <category-id> <item-id>",
	Short: "Change item fields; only the flags given are changed",
	Args:  cobra.ExactArgs(2),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		project := a.store.Project()
		idx := project.FindCategory(args[0])
		if idx < 0 {
			return fmt.Errorf("category %s: %w", args[0], store.ErrCategoryNotFound)
		}
		pos := project.Categories[idx].FindItem(args[1])
		if pos < 0 {
			return fmt.Errorf("item %s: %w", args[1], store.ErrItemNotFound)
		}

		image, err := mediaFlag(cmd, "image")
		if err != nil {
			return err
		}
		video, err := mediaFlag(cmd, "video")
		if err != nil {
			return err
		}
		patch := forms.ItemPatch{
			Name:          stringFlag(cmd, "name"),
			Description:   stringFlag(cmd, "description"),
			Price:         floatFlag(cmd, "price"),
			Image:         image,
			Video:         video,
			Icon:          stringFlag(cmd, "icon"),
			Calories:      intFlag(cmd, "calories"),
			Allergens:     stringFlag(cmd, "allergens"),
			SpecialOffer:  boolFlag(cmd, "special-offer"),
			OriginalPrice: floatFlag(cmd, "original-price"),
			Rating:        floatFlag(cmd, "rating"),
			ReviewCount:   intFlag(cmd, "reviews"),
		}
		if err := forms.Check(patch); err != nil {
			return err
		}
		return a.store.UpdateItem(args[0], patch.ApplyTo(project.Categories[idx].Items[pos]))
	}),
}

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <category-id> <item-id>",
	Short: "Remove an item",
	Args:  cobra.ExactArgs(2),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		if err := a.store.DeleteItem(args[0], args[1]); err != nil {
			return fmt.Errorf("item %s in %s: %w", args[1], args[0], err)
		}
		return nil
	}),
}

var itemMoveCmd = &cobra.Command{
	Use:   "move <from-category-id> <to-category-id> <item-id>",
	Short: "Move an item to the end of another category",
	Args:  cobra.ExactArgs(3),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		moved, err := a.store.MoveItem(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		if !moved {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to move")
		}
		return nil
	}),
}

func addItemFlags(cmd *cobra.Command, withName bool) {
	f := cmd.Flags()
	if withName {
		f.String("name", "", "item name")
	}
	f.Float64("price", 0, "price")
	f.String("description", "", "description")
	f.String("image", "", "image file or URL")
	f.String("video", "", "video file or URL")
	f.String("icon", "", "emoji icon")
	f.Int("calories", 0, "calories")
	f.String("allergens", "", "allergens, free text")
	f.Bool("special-offer", false, "mark as special offer")
	f.Float64("original-price", 0, "price before the offer")
	f.Float64("rating", 0, "rating 0..5")
	f.Int("reviews", 0, "number of reviews")
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

func init() {
	addItemFlags(itemAddCmd, false)
	addItemFlags(itemUpdateCmd, true)

	itemCmd.AddCommand(itemAddCmd, itemUpdateCmd, itemDeleteCmd, itemMoveCmd)
	rootCmd.AddCommand(itemCmd)
}
