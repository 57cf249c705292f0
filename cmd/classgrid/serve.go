package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/classgrid/internal/config"
	"github.com/jackzampolin/classgrid/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the classgrid server",
	Long: `Start the classgrid HTTP server.

The server keeps the most recent schedule in memory; each upload replaces
it. Configuration changes are picked up without a restart.

The server provides:
  - GET    /health                  Basic server health check
  - GET    /status                  Config file and current schedule summary
  - POST   /api/schedule            Upload timetable and registration (multipart)
  - GET    /api/schedule            Current schedule as JSON
  - GET    /api/schedule/export     Download as ?format=table|html|pdf|xlsx|json|yaml
  - DELETE /api/schedule            Clear the current schedule
  - GET    /api/normalize?time=     Normalize one time range
  - GET    /api/settings            Effective configuration

Examples:
  classgrid serve                    # Start on the configured port (8080)
  classgrid serve --port 3000        # Start on custom port
  classgrid serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mgr, h, err := loadConfig()
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}
		cfg := mgr.Get()
		logger := newLogger(cfg)
		slog.SetDefault(logger)

		host, port := cfg.Server.Host, cfg.Server.Port
		if cmd.Flags().Changed("host") {
			host = serveHost
		}
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		mgr.OnChange(func(c *config.Config) {
			if c.Server.Host != host || c.Server.Port != port {
				logger.Warn("server address changes take effect on restart",
					"host", c.Server.Host, "port", c.Server.Port)
			}
		})
		if mgr.ConfigFile() != "" {
			mgr.WatchConfig()
			logger.Info("watching config", "file", mgr.ConfigFile())
		}

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			ConfigManager: mgr,
			Home:          h,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to (default from config)")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on (default from config)")

	rootCmd.AddCommand(serveCmd)
}
