package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"time"

	"github.com/chrisdamba/menucraft/internal/cloudwriter"
	"github.com/chrisdamba/menucraft/internal/export"
	"github.com/chrisdamba/menucraft/internal/models"
	"github.com/chrisdamba/menucraft/internal/output"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the menu as HTML, PDF, PNG or Parquet",
	Long: `Render the active project, or every saved project with --all. Files go to
the output directory, or to the configured cloud bucket with --bucket.`,
	Args: cobra.NoArgs,
	RunE: readOnly(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		formats, err := exportFormats(cmd)
		if err != nil {
			return err
		}

		bucket := a.cfg.Cloud.Bucket
		if v := stringFlag(cmd, "bucket"); v != nil {
			bucket = *v
		}
		outDir := a.cfg.Export.OutputDir
		if v := stringFlag(cmd, "out"); v != nil {
			outDir = *v
		}

		var factory cloudwriter.CloudWriterFactory
		prefix := ""
		if bucket != "" {
			factory, err = cloudwriter.NewFactory(a.cfg.Cloud.Provider, a.cfg.Cloud.Region)
			if err != nil {
				return err
			}
			prefix = a.cfg.Cloud.Prefix
		} else {
			factory = cloudwriter.NewLocalWriterFactory(outDir)
		}

		projects := []models.MenuProject{a.store.Project()}
		if all, _ := cmd.Flags().GetBool("all"); all {
			if projects, err = a.library().List(ctx); err != nil {
				return err
			}
			if len(projects) == 0 {
				return errors.New("no saved projects to export")
			}
		}

		events, err := output.FromConfig(a.cfg)
		if err != nil {
			return err
		}
		if events != nil {
			defer events.Close()
		}

		opts := export.Options{
			ShowCurrencyFlag: a.cfg.Export.ShowCurrencyFlag,
			FontPath:         a.cfg.Export.FontPath,
		}
		bar := progressbar.NewOptions(len(projects)*len(formats),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("exporting"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		for _, project := range projects {
			for _, format := range formats {
				location, err := exportOne(factory, bucket, prefix, project, format, opts)
				if err != nil {
					return err
				}
				bar.Add(1)
				fmt.Fprintln(cmd.OutOrStdout(), "Wrote", location)

				if events == nil {
					continue
				}
				e := output.NewProjectEvent(output.EventExported, project, time.Now())
				e.Format, e.Location = string(format), location
				if err := output.Send(events, a.cfg.Kafka.Topic, e); err != nil {
					log.Printf("failed to publish export event: %v", err)
				}
			}
		}
		return bar.Finish()
	}),
}

func exportFormats(cmd *cobra.Command) ([]export.Format, error) {
	names, _ := cmd.Flags().GetStringSlice("format")
	formats := make([]export.Format, 0, len(names))
	for _, name := range names {
		if name == "all" {
			return export.Formats(), nil
		}
		f, err := export.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

func exportOne(factory cloudwriter.CloudWriterFactory, bucket, prefix string, project models.MenuProject, format export.Format, opts export.Options) (string, error) {
	exporter, err := export.New(format, opts)
	if err != nil {
		return "", err
	}
	objectPath := path.Join(prefix, export.FileName(project, format))
	w, err := factory.NewWriter(bucket, objectPath)
	if err != nil {
		return "", err
	}
	if err := exporter.Export(w, project); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to export %s: %w", format, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", objectPath, err)
	}
	if bucket != "" {
		return fmt.Sprintf("s3://%s/%s", bucket, objectPath), nil
	}
	return objectPath, nil
}

func init() {
	f := exportCmd.Flags()
	f.StringSliceP("format", "f", []string{"html"}, "html, pdf, png, parquet or all")
	f.StringP("out", "o", "", "output directory (default from config)")
	f.String("bucket", "", "upload to this cloud bucket instead of the output directory")
	f.Bool("all", false, "export every saved project instead of the active one")

	rootCmd.AddCommand(exportCmd)
}
