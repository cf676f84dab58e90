package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/chrisdamba/menucraft/internal/export"
	"github.com/chrisdamba/menucraft/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live preview of the active project",
	Args:  cobra.NoArgs,
	RunE: readOnly(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(a.workspace, export.Options{
			ShowCurrencyFlag: a.cfg.Export.ShowCurrencyFlag,
			FontPath:         a.cfg.Export.FontPath,
		})
		return server.ListenAndServe(ctx, a.cfg.Server.Addr, srv.Routes())
	}),
}

func init() {
	serveCmd.Flags().String("addr", "localhost:8080", "listen address")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}
