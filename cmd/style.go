package cmd

import (
	"context"
	"fmt"

	"github.com/chrisdamba/menucraft/internal/forms"
	"github.com/chrisdamba/menucraft/internal/style"
	"github.com/spf13/cobra"
)

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Adjust colors, fonts, layout and background",
}

var styleSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update style fields; only the flags given are changed",
	Args:  cobra.NoArgs,
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		form := forms.StyleForm{
			PrimaryColor:      stringFlag(cmd, "primary-color"),
			SecondaryColor:    stringFlag(cmd, "secondary-color"),
			AccentColor:       stringFlag(cmd, "accent-color"),
			BackgroundColor:   stringFlag(cmd, "background-color"),
			TextColor:         stringFlag(cmd, "text-color"),
			FontFamily:        stringFlag(cmd, "font"),
			TitleSize:         intFlag(cmd, "title-size"),
			CategorySize:      intFlag(cmd, "category-size"),
			ItemSize:          intFlag(cmd, "item-size"),
			PriceSize:         intFlag(cmd, "price-size"),
			Layout:            stringFlag(cmd, "layout"),
			ItemsPerRow:       intFlag(cmd, "items-per-row"),
			BackgroundOpacity: intFlag(cmd, "opacity"),
			BorderRadius:      intFlag(cmd, "radius"),
			Spacing:           intFlag(cmd, "spacing"),
			ShadowIntensity:   intFlag(cmd, "shadow"),
			Animations:        boolFlag(cmd, "animations"),
			Theme:             stringFlag(cmd, "theme"),
		}
		if err := forms.Check(form); err != nil {
			return err
		}
		current := a.store.Project().Style
		a.store.UpdateStyle(form.ToPatch(current.FontSize).ApplyTo(current))

		p := style.Resolve(a.store.Project().Style)
		fmt.Fprintf(cmd.OutOrStdout(), "Style updated: %s layout, %d columns, %s shadow\n", p.Layout, p.Columns.Count, p.Shadow.Name)
		return nil
	}),
}

var styleBackgroundCmd = &cobra.Command{
	Use:   "background",
	Short: "Set or clear the background image or video",
	Long: `Set the menu background from a local file or URL. An image and a video
never coexist: setting one clears the other.`,
	Args: cobra.NoArgs,
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			a.store.ClearBackground()
			return nil
		}
		image, err := mediaFlag(cmd, "image")
		if err != nil {
			return err
		}
		video, err := mediaFlag(cmd, "video")
		if err != nil {
			return err
		}
		switch {
		case image != nil && video != nil:
			return fmt.Errorf("--image and --video are mutually exclusive")
		case image != nil:
			a.store.SetBackgroundImage(*image)
		case video != nil:
			a.store.SetBackgroundVideo(*video)
		default:
			return fmt.Errorf("one of --image, --video or --clear is required")
		}
		return nil
	}),
}

func init() {
	f := styleSetCmd.Flags()
	f.String("primary-color", "", "title color")
	f.String("secondary-color", "", "category heading color")
	f.String("accent-color", "", "price and badge color")
	f.String("background-color", "", "page background color")
	f.String("text-color", "", "body text color")
	f.String("font", "", "font family")
	f.Int("title-size", 0, "title font size")
	f.Int("category-size", 0, "category font size")
	f.Int("item-size", 0, "item font size")
	f.Int("price-size", 0, "price font size")
	f.String("layout", "", "grid, card or list")
	f.Int("items-per-row", 0, "grid columns, 1..6")
	f.Int("opacity", 0, "background media opacity, 0..100")
	f.Int("radius", 0, "border radius in px")
	f.Int("spacing", 0, "spacing in px")
	f.Int("shadow", 0, "shadow intensity, 0..10")
	f.Bool("animations", false, "enable animations")
	f.String("theme", "", "light or dark")

	b := styleBackgroundCmd.Flags()
	b.String("image", "", "background image file or URL")
	b.String("video", "", "background video file or URL")
	b.Bool("clear", false, "remove the background media")

	styleCmd.AddCommand(styleSetCmd, styleBackgroundCmd)
	rootCmd.AddCommand(styleCmd)
}
