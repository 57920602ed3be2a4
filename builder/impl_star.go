// SPDX-License-Identifier: MIT
// Package: primviz/builder
//
// impl_star.go: implementation of StarEdges().
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub is vertex HubVertex (0); spokes 0-i emitted for i=1..n-1.

package builder

import "github.com/katalvlaran/primviz/matrix"

// StarEdges returns a Constructor joining the hub to every other vertex.
func StarEdges() Constructor {
	return func(m *matrix.AdjacencyMatrix, cfg builderConfig) error {
		if err := minSize(MethodStar, m, MinStarNodes); err != nil {
			return err
		}
		for i := 1; i < m.Size(); i++ {
			if err := place(MethodStar, m, cfg, HubVertex, i); err != nil {
				return err
			}
		}

		return nil
	}
}
