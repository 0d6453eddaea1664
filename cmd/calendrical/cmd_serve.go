package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/calendrical/internal/server"
)

func (a *app) serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Port = port
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			a.log.Info("starting calendrical API",
				slog.String("env", a.cfg.Env),
				slog.Int("port", a.cfg.Port),
			)
			return server.Run(cmd.Context(), a.cfg, a.log)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override PORT")
	return cmd
}
