package cmd

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/chrisdamba/menucraft/internal/catalog"
	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Browse, apply and author menu templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and custom templates",
	Args:  cobra.NoArgs,
	RunE: readOnly(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		active := a.store.Project().Template.ID
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "\tID\tNAME\tLAYOUT\tKIND")
		list := append(catalog.Templates(), a.store.CustomTemplates()...)
		for _, t := range list {
			marker, kind := "", "built-in"
			if t.ID == active {
				marker = "*"
			}
			if t.IsCustom {
				kind = "custom"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", marker, t.ID, t.Name, t.Style.Layout, kind)
		}
		return tw.Flush()
	}),
}

var templateUseCmd = &cobra.Command{
	Use:   "use <template-id>",
	Short: "Apply a template; resets opacity, radius, spacing and shadow",
	Args:  cobra.ExactArgs(1),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		t, ok := a.store.FindTemplate(args[0])
		if !ok {
			return fmt.Errorf("unknown template %q", args[0])
		}
		a.store.UpdateTemplate(t)
		fmt.Fprintf(cmd.OutOrStdout(), "Using template %q\n", t.Name)
		return nil
	}),
}

var templateSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current style as a custom template",
	Args:  cobra.ExactArgs(1),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("template name is required")
		}
		description, _ := cmd.Flags().GetString("description")
		style := a.store.Project().Style
		t := models.MenuTemplate{
			ID:          a.store.NewID(),
			Name:        name,
			Description: description,
			Preview:     catalog.PreviewPlaceholder,
			Style:       style.WithoutBackground(),
			Layout:      models.TemplateCustom,
			IsCustom:    true,
			CreatedBy:   "user",
		}
		a.store.AddCustomTemplate(t)
		fmt.Fprintf(cmd.OutOrStdout(), "Saved template %q (%s)\n", t.Name, t.ID)
		return nil
	}),
}

var templateUpdateCmd = &cobra.Command{
	Use:   "update <template-id>",
	Short: "Overwrite a custom template with the current style",
	Args:  cobra.ExactArgs(1),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		t, err := customTemplate(a, args[0])
		if err != nil {
			return err
		}
		if v := stringFlag(cmd, "name"); v != nil && strings.TrimSpace(*v) != "" {
			t.Name = strings.TrimSpace(*v)
		}
		if v := stringFlag(cmd, "description"); v != nil {
			t.Description = *v
		}
		style := a.store.Project().Style
		t.Style = style.WithoutBackground()
		a.store.UpdateCustomTemplate(t)
		return nil
	}),
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <template-id>",
	Short: "Delete a custom template",
	Args:  cobra.ExactArgs(1),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		if _, err := customTemplate(a, args[0]); err != nil {
			return err
		}
		a.store.DeleteCustomTemplate(args[0])
		return nil
	}),
}

func customTemplate(a *app, id string) (models.MenuTemplate, error) {
	for _, t := range a.store.CustomTemplates() {
		if t.ID == id {
			return t, nil
		}
	}
	if _, ok := catalog.TemplateByID(id); ok {
		return models.MenuTemplate{}, fmt.Errorf("template %q is built in and cannot be changed", id)
	}
	return models.MenuTemplate{}, fmt.Errorf("unknown custom template %q", id)
}

func init() {
	templateSaveCmd.Flags().String("description", "", "template description")
	templateUpdateCmd.Flags().String("name", "", "new template name")
	templateUpdateCmd.Flags().String("description", "", "new template description")

	templateCmd.AddCommand(templateListCmd, templateUseCmd, templateSaveCmd, templateUpdateCmd, templateDeleteCmd)
	rootCmd.AddCommand(templateCmd)
}
