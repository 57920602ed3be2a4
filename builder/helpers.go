package builder

import (
	"fmt"

	"github.com/katalvlaran/primviz/matrix"
)

// place writes one undirected edge {i,j} with a freshly drawn weight.
// A weight function returning w < 1 is a programmer error surfaced as
// ErrConstructFailed rather than a silently missing edge.
func place(method string, m *matrix.AdjacencyMatrix, cfg builderConfig, i, j int) error {
	w := cfg.weightFn(cfg.rng)
	if w < 1 {
		return fmt.Errorf("%s: weight %d for edge (%d,%d): %w", method, w, i, j, ErrConstructFailed)
	}
	if err := m.Set(i, j, w, true); err != nil {
		return fmt.Errorf("%s: Set(%d,%d): %w", method, i, j, err)
	}

	return nil
}

// minSize rejects matrices smaller than min vertices.
func minSize(method string, m *matrix.AdjacencyMatrix, min int) error {
	if n := m.Size(); n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}
