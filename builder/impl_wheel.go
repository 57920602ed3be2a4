// SPDX-License-Identifier: MIT
// Package: primviz/builder
//
// impl_wheel.go: implementation of WheelEdges().
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim 1-2-…-(n-1)-1 first, then spokes 0-i for i=1..n-1.

package builder

import "github.com/katalvlaran/primviz/matrix"

// WheelEdges returns a Constructor for a ring of n-1 vertices plus hub 0.
func WheelEdges() Constructor {
	return func(m *matrix.AdjacencyMatrix, cfg builderConfig) error {
		if err := minSize(MethodWheel, m, MinWheelNodes); err != nil {
			return err
		}
		n := m.Size()
		rim := n - 1

		// rim: vertices 1..n-1
		for k := 0; k < rim; k++ {
			u := 1 + k
			v := 1 + (k+1)%rim
			if err := place(MethodWheel, m, cfg, u, v); err != nil {
				return err
			}
		}
		// spokes
		for i := 1; i < n; i++ {
			if err := place(MethodWheel, m, cfg, HubVertex, i); err != nil {
				return err
			}
		}

		return nil
	}
}
