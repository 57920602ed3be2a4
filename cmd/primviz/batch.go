package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/primviz/pipeline"
)

func newBatchCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Compute many graphs concurrently and summarize them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applyAlgorithmFlags(cmd); err != nil {
				return err
			}
			inputs := make([]pipeline.Input, 0, len(args))
			for _, path := range args {
				text, err := a.readInput(cmd, path)
				if err != nil {
					return err
				}
				inputs = append(inputs, pipeline.Input{Name: filepath.Base(path), Text: text})
			}

			outcomes, err := pipeline.ComputeAll(cmd.Context(), inputs, workers, a.pipelineOptions()...)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "GRAPH\tVERTICES\tEDGES\tTOTAL")
			var failed int
			for _, o := range outcomes {
				if o.Err != nil {
					failed++
					fmt.Fprintf(tw, "%s\t-\t-\t%s\n", o.Name, a.styles.failure(o.Err.Error()))
					continue
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", o.Name, o.Result.VertexCount, len(o.Result.Edges), o.Result.Tree.TotalWeight)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d graphs failed", failed, len(outcomes))
			}

			return nil
		},
	}
	a.algorithmFlags(cmd)
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "graphs computed in parallel")

	return cmd
}
