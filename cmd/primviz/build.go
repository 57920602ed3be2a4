package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/primviz/pipeline"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		showTree bool
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "build FILE",
		Short: "Compute the spanning tree and print its build log",
		Long:  "Compute the spanning tree of FILE (\"-\" reads stdin) and print the build log.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applyAlgorithmFlags(cmd); err != nil {
				return err
			}
			text, err := a.readInput(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := pipeline.Compute(cmd.Context(), text, a.pipelineOptions()...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res.Scene)
			}

			fmt.Fprint(out, a.styles.logLines(res.Log().Lines()))
			if showTree {
				tree, err := res.TextTree()
				if err != nil {
					return err
				}
				fmt.Fprintln(out)
				fmt.Fprint(out, tree)
			}

			return nil
		},
	}
	a.algorithmFlags(cmd)
	cmd.Flags().BoolVar(&showTree, "tree", false, "also print the tree rooted at the start vertex")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the renderer payload as JSON instead")

	return cmd
}
