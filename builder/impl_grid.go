// SPDX-License-Identifier: MIT
// Package: primviz/builder
//
// impl_grid.go: implementation of GridEdges(rows, cols).
//
// Contract:
//   • rows, cols ≥ 1 and rows*cols == matrix size (else ErrTooFewVertices).
//   • Vertex (r,c) is index r*cols+c.
//   • For each vertex in row-major order: right neighbor first, then down.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primviz/matrix"
)

// GridEdges returns a Constructor for the rows×cols 4-neighborhood lattice.
func GridEdges(rows, cols int) Constructor {
	return func(m *matrix.AdjacencyMatrix, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim || rows*cols != m.Size() {
			return fmt.Errorf("%s: %dx%d for size %d: %w", MethodGrid, rows, cols, m.Size(), ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := place(MethodGrid, m, cfg, v, v+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := place(MethodGrid, m, cfg, v, v+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
