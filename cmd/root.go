package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "menucraft",
	Short: "Builds restaurant menus from the command line",
	Long: `menucraft is a CLI tool to build restaurant menus: edit categories, items,
templates and styling, import spreadsheets, ask the menu assistant for
suggestions, and export the result as HTML, PDF, PNG or Parquet.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.menucraft.yaml)")
	rootCmd.PersistentFlags().String("workspace", ".menucraft", "directory holding the active project and saved projects")
	rootCmd.PersistentFlags().String("storage", "file", "storage driver: file or postgres")

	viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
	viper.BindPFlag("storage.driver", rootCmd.PersistentFlags().Lookup("storage"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
