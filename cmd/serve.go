package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recon-landing/pkg/api"
	"recon-landing/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		page := pageConfig(cfg)
		if server.HasStatic(cfg) {
			page.StaticPrefix = server.StaticPrefix
		} else {
			logger.Warn("static dir not found, serving page without browser client",
				zap.String("static_dir", cfg.StaticDir))
		}

		handlers := api.NewHandlers(page, nil, logger)
		router := server.NewRouter(cfg, handlers, logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.Run(ctx, cfg.Addr(), router, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
