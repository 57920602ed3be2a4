package matrix

import (
	"strconv"
	"strings"
)

// Encode renders m in the single-line input format "N,a00,a01,...".
// Complexity: O(N²).
func Encode(m *AdjacencyMatrix) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(m.n))
	for _, row := range m.data {
		for _, w := range row {
			b.WriteByte(',')
			b.WriteString(strconv.FormatInt(w, 10))
		}
	}

	return b.String()
}

// EncodeRows renders m in the same format with a line break after the vertex
// count and after each row, which the parser accepts since tokens are trimmed.
func EncodeRows(m *AdjacencyMatrix) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(m.n))
	for _, row := range m.data {
		b.WriteString(",\n")
		for j, w := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(w, 10))
		}
	}
	b.WriteByte('\n')

	return b.String()
}
