package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chrisdamba/menucraft/internal/assistant"
	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <prompt>",
	Short: "Ask the menu assistant for suggestions",
	Args:  cobra.MinimumNArgs(1),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		asst := assistant.New(assistant.NewStubProvider(a.cfg.Assistant.Delay), a.store)
		entry, err := asst.Ask(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, entry.Response)
		for _, s := range entry.Suggestions {
			fmt.Fprintf(out, "  [%s] %-8s %s: %s\n", s.ID, s.Type, s.Name, s.Description)
		}
		if len(entry.Suggestions) > 0 {
			fmt.Fprintln(out, "Apply one with `menucraft suggest apply <id>`.")
		}
		return nil
	}),
}

var suggestApplyCmd = &cobra.Command{
	Use:   "apply <suggestion-id>",
	Short: "Apply a suggestion from the assistant history",
	Args:  cobra.ExactArgs(1),
	RunE: mutating(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		s, err := a.store.ApplySuggestion(args[0])
		if err != nil {
			return fmt.Errorf("suggestion %s: %w", args[0], err)
		}
		if s.Type == models.SuggestionTemplate {
			fmt.Fprintln(cmd.OutOrStdout(), "Template suggestions are informational; pick a template with `menucraft template use`.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Applied %q\n", s.Name)
		return nil
	}),
}

var suggestHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past prompts and their suggestions",
	Args:  cobra.NoArgs,
	RunE: readOnly(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		history := a.store.Project().AIHistory
		if len(history) == 0 {
			fmt.Fprintln(out, "No prompts yet.")
			return nil
		}
		for _, h := range history {
			fmt.Fprintf(out, "%s  %q\n", h.CreatedAt.Format("2006-01-02 15:04"), h.Prompt)
			for _, s := range h.Suggestions {
				state := " "
				if s.Applied {
					state = "x"
				}
				fmt.Fprintf(out, "  [%s] %s %-8s %s\n", state, s.ID, s.Type, s.Name)
			}
		}
		return nil
	}),
}

func init() {
	suggestCmd.AddCommand(suggestApplyCmd, suggestHistoryCmd)
	rootCmd.AddCommand(suggestCmd)
}
