package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/monsoon-labs/rainify/internal/config"
	"github.com/monsoon-labs/rainify/internal/gemini"
	"github.com/monsoon-labs/rainify/internal/models"
	"github.com/spf13/cobra"
)

func newTransformCmd() *cobra.Command {
	var output string
	var configPath string

	cmd := &cobra.Command{
		Use:   "transform <photo>",
		Short: "Transform a single photo from the terminal",
		Long: `Transforms one photo into a rainy day in Dhaka and writes the
generated image to disk. This is the same pipeline the web interface uses,
without the browser.`,
		Example: `  # Write the result next to the original
  rainify transform photo.jpg

  # Choose the output path
  rainify transform photo.jpg -o rainy.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			client, err := gemini.NewClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read photo: %w", err)
			}

			src := models.SourceImage{
				Data:      data,
				MediaType: http.DetectContentType(data),
				Filename:  args[0],
			}

			slog.Info("Transforming photo", "file", args[0], "model", cfg.Model)
			result, err := client.Transform(cmd.Context(), src)
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, result.Data, 0644); err != nil {
				return fmt.Errorf("failed to write result: %w", err)
			}

			slog.Info("Result written", "file", output, "media_type", result.MediaType, "bytes", len(result.Data))
			if result.Caption != "" {
				fmt.Println(result.Caption)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", models.DownloadFilename, "Output file for the generated image")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a rainify.yaml config file")

	return cmd
}
