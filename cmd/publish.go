package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/chrisdamba/menucraft/internal/output"
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Send a snapshot of the active project to the event destination",
	Long: `Publish the active project as a menu.published event. The event goes to
Kafka when kafka.enabled is set, to event_file when configured, and to the
console otherwise.`,
	Args: cobra.NoArgs,
	RunE: readOnly(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		dst, err := output.FromConfig(a.cfg)
		if err != nil {
			return err
		}
		if dst == nil {
			dst = output.NewConsoleOutput(cmd.OutOrStdout())
		}
		defer dst.Close()

		project := a.store.Project()
		e := output.NewProjectEvent(output.EventPublished, project, time.Now()).WithSnapshot(project)
		if err := output.Send(dst, a.cfg.Kafka.Topic, e); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Published %s to %s\n", project.ID, a.cfg.Kafka.Topic)
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(publishCmd)
}
