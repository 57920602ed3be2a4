// SPDX-License-Identifier: MIT
// Package: primviz/builder
//
// impl_cycle.go: implementation of CycleEdges().
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i-(i+1)%n for i=0..n-1.
//
// Complexity: O(n) edges.

package builder

import "github.com/katalvlaran/primviz/matrix"

// CycleEdges returns a Constructor closing the ring 0-1-…-(n-1)-0.
func CycleEdges() Constructor {
	return func(m *matrix.AdjacencyMatrix, cfg builderConfig) error {
		if err := minSize(MethodCycle, m, MinCycleNodes); err != nil {
			return err
		}
		n := m.Size()
		for i := 0; i < n; i++ {
			if err := place(MethodCycle, m, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
