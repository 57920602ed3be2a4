// SPDX-License-Identifier: MIT
// Package: primviz/builder
//
// impl_path.go: implementation of PathEdges().
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i-(i+1) for i=0..n-2.

package builder

import "github.com/katalvlaran/primviz/matrix"

// PathEdges returns a Constructor for the simple path 0-1-…-(n-1).
func PathEdges() Constructor {
	return func(m *matrix.AdjacencyMatrix, cfg builderConfig) error {
		if err := minSize(MethodPath, m, MinPathNodes); err != nil {
			return err
		}
		for i := 1; i < m.Size(); i++ {
			if err := place(MethodPath, m, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
