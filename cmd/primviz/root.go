package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "primviz",
		Short: "Build minimum spanning trees and show every step",
		Long: "primviz reads a graph as \"N,a00,a01,...\" (N followed by the N*N adjacency matrix, " +
			"0 meaning no edge), builds its minimum spanning tree with Prim's algorithm and " +
			"prints the build log.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "trace, debug, info, warn, error or off")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newBuildCmd(a),
		newExportCmd(a),
		newShowCmd(a),
		newGenerateCmd(a),
		newBatchCmd(a),
		newServeCmd(a),
	)

	return rootCmd
}
