package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Start the HTTP API server",
		Example: `  layerit serve --port 9090`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port != "" {
				opts.cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := NewBuilder(opts.cfg).Build(ctx)
			if err != nil {
				return err
			}
			return app.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "override server.port")
	return cmd
}
