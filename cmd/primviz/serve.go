package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/primviz/api"
	"github.com/katalvlaran/primviz/session"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applyAlgorithmFlags(cmd); err != nil {
				return err
			}
			sc := a.cfg.Server
			if cmd.Flags().Changed("addr") {
				sc.Addr = addr
			}

			cfg := api.DefaultConfig(sc.Addr)
			cfg.ReadTimeout = sc.ReadTimeout
			cfg.WriteTimeout = sc.WriteTimeout
			cfg.RequestTimeout = sc.RequestTimeout
			cfg.ShutdownTimeout = sc.ShutdownTimeout
			cfg.MaxConcurrent = sc.MaxConcurrent
			cfg.MaxBodyBytes = sc.MaxBodyBytes

			sess := session.New(
				session.WithFs(a.fs),
				session.WithPipelineOptions(a.pipelineOptions()...),
				session.WithExportWidth(a.cfg.Export.Width),
				session.WithLogger(a.log),
			)
			srv := api.NewServer(cfg, api.NewHandlers(sess, cfg.MaxBodyBytes, a.log), a.log)

			return api.ListenAndServe(cmd.Context(), srv, cfg.ShutdownTimeout, a.log)
		},
	}
	a.algorithmFlags(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}
