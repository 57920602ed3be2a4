package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/primviz/builder"
	"github.com/katalvlaran/primviz/matrix"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		seed      int64
		prob      float64
		minWeight int64
		maxWeight int64
		rows      bool
	)
	kinds := make([]string, 0, len(builder.Kinds()))
	for _, k := range builder.Kinds() {
		kinds = append(kinds, string(k))
	}

	cmd := &cobra.Command{
		Use:       "generate KIND N",
		Short:     "Print a generated graph in the input format",
		Long:      "Print a generated graph. KIND is one of: " + strings.Join(kinds, ", ") + ".",
		Args:      cobra.ExactArgs(2),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := builder.ParseKind(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("N must be an integer: %w", err)
			}
			if minWeight < 1 || maxWeight < minWeight {
				return fmt.Errorf("weights need 1 <= min <= max, got %d..%d", minWeight, maxWeight)
			}

			m, err := builder.Generate(kind, n, prob,
				builder.WithSeed(seed),
				builder.WithWeightRange(minWeight, maxWeight),
			)
			if err != nil {
				return err
			}
			a.log.Debug("generated graph", "kind", kind, "vertices", n, "seed", seed)

			if rows {
				fmt.Fprintln(cmd.OutOrStdout(), matrix.EncodeRows(m))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), matrix.Encode(m))
			}

			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64VarP(&prob, "prob", "p", 0.3, "extra-edge probability for random graphs")
	cmd.Flags().Int64Var(&minWeight, "min-weight", 1, "smallest edge weight")
	cmd.Flags().Int64Var(&maxWeight, "max-weight", 9, "largest edge weight")
	cmd.Flags().BoolVar(&rows, "rows", false, "break the matrix into one line per row")

	return cmd
}
