package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/chrisdamba/menucraft/internal/export"
	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new empty project on the default template",
	Args:  cobra.NoArgs,
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		a.store.CreateNewProject()
		fmt.Fprintf(cmd.OutOrStdout(), "Created project %s\n", a.store.Project().ID)
		return nil
	}),
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active project",
	Args:  cobra.NoArgs,
	RunE: readOnly(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		project := a.store.Project()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(project)
		}
		printProject(cmd, project)
		return nil
	}),
}

func printProject(cmd *cobra.Command, p models.MenuProject) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Project:    %s (%s)\n", orDash(p.Name), p.ID)
	fmt.Fprintf(out, "Restaurant: %s\n", orDash(p.Restaurant.Name))
	fmt.Fprintf(out, "Currency:   %s %s\n", p.Restaurant.Currency.Code, p.Restaurant.Currency.Symbol)
	fmt.Fprintf(out, "Template:   %s\n", p.Template.ID)
	fmt.Fprintf(out, "Style:      %s, %d per row, %s theme\n", p.Style.Layout, p.Style.ItemsPerRow, orDash(p.Style.Theme))
	fmt.Fprintf(out, "Updated:    %s\n\n", p.UpdatedAt.Format("2006-01-02 15:04:05"))

	if len(p.Categories) == 0 {
		fmt.Fprintln(out, "No categories yet.")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, c := range p.Categories {
		fmt.Fprintf(tw, "%s %s\t[%s]\t\n", c.Icon, c.Name, c.ID)
		for _, item := range c.Items {
			fmt.Fprintf(tw, "    %s\t%s\t[%s]\n", item.Name, export.FormatPrice(item.Price), item.ID)
		}
	}
	tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage saved projects",
}

var projectSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the active project under a name",
	Args:  cobra.ExactArgs(1),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		saved, err := a.library().Save(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %q (%s)\n", saved.Name, saved.ID)
		return nil
	}),
}

var projectLoadCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Make a saved project the active one",
	Args:  cobra.ExactArgs(1),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		loaded, err := a.library().Load(ctx, args[0])
		if err != nil {
			return fmt.Errorf("project %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Loaded %q\n", loaded.Name)
		return nil
	}),
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved projects",
	Args:  cobra.NoArgs,
	RunE: readOnly(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		projects, err := a.library().List(ctx)
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved projects.")
			return nil
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tITEMS\tUPDATED")
		for _, p := range projects {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", p.ID, p.Name, p.ItemCount(), p.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return tw.Flush()
	}),
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved project",
	Args:  cobra.ExactArgs(1),
	RunE: readOnly(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		if err := a.library().Delete(ctx, args[0]); err != nil {
			return fmt.Errorf("project %s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted", args[0])
		return nil
	}),
}

func init() {
	showCmd.Flags().Bool("json", false, "print the project as JSON")

	projectCmd.AddCommand(projectSaveCmd, projectLoadCmd, projectListCmd, projectDeleteCmd)
	rootCmd.AddCommand(newCmd, showCmd, projectCmd)
}
