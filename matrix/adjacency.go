// SPDX-License-Identifier: MIT
// Package matrix provides the square adjacency-matrix representation that sits
// between the raw text input and the core.Graph edge list.
//
// Entry Data[i][j] holds the weight of the undirected edge {i,j}, or zero if
// no edge exists. Only the upper triangle (i < j) is authoritative when edges
// are extracted; the lower triangle and diagonal are checked solely by the
// strict validators.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/primviz/core"
)

// AdjacencyMatrix holds a fixed-size N×N weight table.
//
// Time complexity:
//   - At/Set: O(1)
//   - Edges: O(N²)
//
// Memory:
//   - O(N²).
type AdjacencyMatrix struct {
	n    int
	data [][]int64
}

// New allocates a zero-filled n×n matrix.
// Errors: ErrBadShape if n <= 0.
func New(n int) (*AdjacencyMatrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrBadShape)
	}
	data := make([][]int64, n)
	for i := range data {
		data[i] = make([]int64, n)
	}

	return &AdjacencyMatrix{n: n, data: data}, nil
}

// FromFlat builds an n×n matrix from values laid out in row-major order:
// row r takes values[r*n : (r+1)*n].
//
// Errors: ErrBadShape (n <= 0), ErrDimensionMismatch (len(values) != n*n).
// Complexity: O(N²).
func FromFlat(n int, values []int64) (*AdjacencyMatrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	if len(values) != n*n {
		return nil, fmt.Errorf("FromFlat: got %d values, want %d: %w", len(values), n*n, ErrDimensionMismatch)
	}
	for row := 0; row < n; row++ {
		copy(m.data[row], values[row*n:(row+1)*n])
	}

	return m, nil
}

// FromGraph writes every edge of g into a fresh matrix, mirrored across the
// diagonal. With parallel edges the last one written wins.
// Complexity: O(N² + E).
func FromGraph(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGraph: %w", ErrNilMatrix)
	}
	m, err := New(g.VertexCount())
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		m.data[e.From][e.To] = e.Weight
		m.data[e.To][e.From] = e.Weight
	}

	return m, nil
}

// Size returns N.
func (m *AdjacencyMatrix) Size() int {
	return m.n
}

// At returns the weight at (i,j).
// Errors: ErrOutOfRange.
func (m *AdjacencyMatrix) At(i, j int) (int64, error) {
	if err := m.checkIndex(i, j); err != nil {
		return 0, err
	}

	return m.data[i][j], nil
}

// Set writes w at (i,j) and, when mirror is true, at (j,i) as well.
// Errors: ErrOutOfRange, ErrNegativeWeight.
func (m *AdjacencyMatrix) Set(i, j int, w int64, mirror bool) error {
	if err := m.checkIndex(i, j); err != nil {
		return err
	}
	if w < 0 {
		return fmt.Errorf("Set(%d,%d)=%d: %w", i, j, w, ErrNegativeWeight)
	}
	m.data[i][j] = w
	if mirror {
		m.data[j][i] = w
	}

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
func (m *AdjacencyMatrix) Row(i int) ([]int64, error) {
	if err := m.checkIndex(i, 0); err != nil {
		return nil, err
	}
	out := make([]int64, m.n)
	copy(out, m.data[i])

	return out, nil
}

// Flatten returns all entries in row-major order.
// Complexity: O(N²).
func (m *AdjacencyMatrix) Flatten() []int64 {
	out := make([]int64, 0, m.n*m.n)
	for _, row := range m.data {
		out = append(out, row...)
	}

	return out
}

// Edges extracts the undirected edge list from the upper triangle.
//
// Algorithm:
//  1. For row in [0,N), for column in (row,N):
//  2. if Data[row][column] != 0, emit (Data[row][column], row, column).
//
// The emission order (row-major) is the order the MST builders break ties by.
// Complexity: O(N²) time, O(E) space.
func (m *AdjacencyMatrix) Edges() []core.Edge {
	var out []core.Edge
	for row := 0; row < m.n; row++ {
		for col := row + 1; col < m.n; col++ {
			if w := m.data[row][col]; w != 0 {
				out = append(out, core.Edge{Weight: w, From: row, To: col})
			}
		}
	}

	return out
}

// ToGraph builds a core.Graph holding Edges() in the same order.
// Errors: core.ErrBadWeight if the upper triangle carries a negative weight.
// Complexity: O(N² + E).
func (m *AdjacencyMatrix) ToGraph() (*core.Graph, error) {
	g, err := core.NewGraph(m.n)
	if err != nil {
		return nil, err
	}
	for _, e := range m.Edges() {
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("ToGraph: %w", err)
		}
	}

	return g, nil
}

// checkIndex returns ErrOutOfRange unless both indices are in [0, N).
func (m *AdjacencyMatrix) checkIndex(i, j int) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("index (%d,%d) for size %d: %w", i, j, m.n, ErrOutOfRange)
	}

	return nil
}
