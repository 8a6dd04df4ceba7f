package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recon-landing/pkg/config"
	"recon-landing/pkg/models"
	"recon-landing/pkg/views"
)

var (
	renderOutput       string
	renderStaticPrefix string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the landing page to a static HTML file",
	Long: `Renders the landing page once and writes it to --output, or to stdout when
--output is "-". The result can be hosted by any static file server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		page := pageConfig(cfg)
		page.StaticPrefix = renderStaticPrefix
		page.Year = time.Now().Year()

		body, err := views.Render(page, models.ContactFormRecord{})
		if err != nil {
			return err
		}

		if renderOutput == "-" {
			_, err := cmd.OutOrStdout().Write(body)
			return err
		}
		if err := os.WriteFile(renderOutput, body, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", renderOutput, err)
		}
		logger.Info("Rendered landing page", zap.String("output", renderOutput), zap.Int("bytes", len(body)))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "index.html", "output file, - for stdout")
	renderCmd.Flags().StringVar(&renderStaticPrefix, "static-prefix", "", "URL prefix of wasm_exec.js and app.wasm, empty to omit the client")
	rootCmd.AddCommand(renderCmd)
}

// pageConfig maps the site settings onto the page shell
func pageConfig(cfg *config.Config) views.PageConfig {
	return views.PageConfig{
		Title:       cfg.SiteTitle,
		Description: cfg.Description,
		Stylesheet:  cfg.Stylesheet,
	}
}
