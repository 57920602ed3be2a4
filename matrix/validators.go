// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for structural checks on adjacency input.
//  - Keep the parser minimal by delegating sign/symmetry/diagonal checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Checks scan row-major and report the FIRST violation found.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *AdjacencyMatrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonNegative ensures every entry is >= 0.
// Errors: ErrNegativeWeight naming the first offending cell.
// Complexity: O(N²).
func ValidateNonNegative(m *AdjacencyMatrix) error {
	for i, row := range m.data {
		for j, w := range row {
			if w < 0 {
				return validatorErrorf("ValidateNonNegative",
					fmt.Errorf("entry [%d][%d]=%d: %w", i, j, w, ErrNegativeWeight))
			}
		}
	}

	return nil
}

// ValidateSymmetric ensures [i][j] == [j][i] for all i < j.
// Runs on the upper triangle only.
// Complexity: O(N²).
func ValidateSymmetric(m *AdjacencyMatrix) error {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i][j] != m.data[j][i] {
				return validatorErrorf("ValidateSymmetric",
					fmt.Errorf("entry [%d][%d]=%d vs [%d][%d]=%d: %w",
						i, j, m.data[i][j], j, i, m.data[j][i], ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal ensures no vertex carries a self-loop weight.
// Complexity: O(N).
func ValidateZeroDiagonal(m *AdjacencyMatrix) error {
	for i := 0; i < m.n; i++ {
		if m.data[i][i] != 0 {
			return validatorErrorf("ValidateZeroDiagonal",
				fmt.Errorf("entry [%d][%d]=%d: %w", i, i, m.data[i][i], ErrNonZeroDiagonal))
		}
	}

	return nil
}

// ValidateUndirected is the composite strict check:
// NotNil → NonNegative → Symmetric → ZeroDiagonal.
func ValidateUndirected(m *AdjacencyMatrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateNonNegative(m); err != nil {
		return err
	}
	if err := ValidateSymmetric(m); err != nil {
		return err
	}

	return ValidateZeroDiagonal(m)
}
