// SPDX-License-Identifier: MIT
// Package: primviz/builder
//
// impl_random_sparse.go - implementation of RandomSparseEdges(p).
//
// Canonical model:
//   - Erdős–Rényi-like: include each unordered pair {i,j}, i<j, independently
//     with probability p.
//   - Pairs that already carry an edge (e.g. from PathEdges) are skipped without
//     a trial, so overlaying keeps earlier weights.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, j asc (j>i).

package builder

import (
	"fmt"

	"github.com/katalvlaran/primviz/matrix"
)

const minRandomSparseVertices = 1

// RandomSparseEdges returns a Constructor that samples extra edges with probability p.
func RandomSparseEdges(p float64) Constructor {
	return func(m *matrix.AdjacencyMatrix, cfg builderConfig) error {
		// 1) Validate parameters early.
		if err := minSize(MethodRandomSparse, m, minRandomSparseVertices); err != nil {
			return err
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Bernoulli trial per free unordered pair.
		n := m.Size()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if w, _ := m.At(i, j); w != 0 {
					continue
				}
				take := p == 1.0
				if rng != nil && p > 0.0 && p < 1.0 {
					take = rng.Float64() < p
				}
				if !take {
					continue
				}
				if err := place(MethodRandomSparse, m, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
