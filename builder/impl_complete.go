// SPDX-License-Identifier: MIT
// Package: primviz/builder
//
// impl_complete.go: implementation of CompleteEdges().
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); K_1 has no edges.
//   • Emits edges for all i<j in row-major order.
//
// Complexity: O(n²) edges.

package builder

import "github.com/katalvlaran/primviz/matrix"

// CompleteEdges returns a Constructor joining every pair of vertices.
func CompleteEdges() Constructor {
	return func(m *matrix.AdjacencyMatrix, cfg builderConfig) error {
		if err := minSize(MethodComplete, m, MinCompleteNodes); err != nil {
			return err
		}
		n := m.Size()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := place(MethodComplete, m, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
