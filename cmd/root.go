package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recon-landing/pkg/config"
	"recon-landing/pkg/logging"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "recon",
	Short: "Serve the ReCon concrete recycling landing page",
	Long: `recon renders the ReCon landing page (hero, innovation, services,
impact, contact and footer sections) and serves it over HTTP together with
the browser client that drives section scrolling and the contact form.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "recon.yml", "config file path")
}

// loadConfig reads and validates the configuration and builds the logger
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.Mode)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
