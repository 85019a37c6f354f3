package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirenest/admin-console/internal/config"
	"github.com/hirenest/admin-console/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the mock admin API",
		Long: `Start an HTTP server that implements the admin API with in-memory demo data.

The admin signs in with MOCK_ADMIN_EMAIL / MOCK_ADMIN_PASSWORD (default
admin@hirenest.com / admin123). Without JWT_SECRET a random secret is generated and
tokens do not survive a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return fmt.Errorf("failed to load server config: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			srv, err := server.New(cfg, a.logger)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&port, "port", config.DefaultServerPort, "Port to listen on (overrides PORT)")
	return cmd
}
