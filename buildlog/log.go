// Package buildlog holds the narration produced while a spanning tree is
// built: an ordered, append-only sequence of human-readable lines, plus the
// export boundary that turns it into a document.
package buildlog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/primviz/core"
)

// VerticesFound is the header line written before any edge is selected.
func VerticesFound(n int) string {
	return fmt.Sprintf("%d vertices found.", n)
}

// EdgeAdded narrates the selection of e.
func EdgeAdded(e core.Edge) string {
	return fmt.Sprintf("Adding edge (%d,%d) with weight %d.", e.From, e.To, e.Weight)
}

// TotalWeight is the closing line of a successful build.
func TotalWeight(w int64) string {
	return fmt.Sprintf("Total weight of spanning tree: %d", w)
}

// Recorder accumulates log lines. Lines are only ever appended.
// The zero value is ready to use. A Recorder is not safe for concurrent use;
// each build owns its own.
type Recorder struct {
	lines []string
}

// Record appends one line.
func (r *Recorder) Record(line string) {
	r.lines = append(r.lines, line)
}

// Recordf appends one formatted line.
func (r *Recorder) Recordf(format string, args ...any) {
	r.Record(fmt.Sprintf(format, args...))
}

// Blank appends an empty separator line.
func (r *Recorder) Blank() {
	r.Record("")
}

// Len returns the number of recorded lines.
func (r *Recorder) Len() int {
	return len(r.lines)
}

// Log returns an immutable snapshot of everything recorded so far.
func (r *Recorder) Log() Log {
	return NewLog(r.lines...)
}

// Log is an immutable, ordered sequence of log lines.
type Log struct {
	lines []string
}

// NewLog copies lines into a Log.
func NewLog(lines ...string) Log {
	if len(lines) == 0 {
		return Log{}
	}
	cp := make([]string, len(lines))
	copy(cp, lines)

	return Log{lines: cp}
}

// Lines returns a copy of the lines.
func (l Log) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)

	return out
}

// Len returns the number of lines.
func (l Log) Len() int { return len(l.lines) }

// Empty reports whether nothing was logged.
func (l Log) Empty() bool { return len(l.lines) == 0 }

// String joins the lines with newlines.
func (l Log) String() string {
	return strings.Join(l.lines, "\n")
}

// MarshalJSON encodes the log as a JSON array of strings.
func (l Log) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Lines())
}

// MarshalYAML encodes the log as a YAML sequence of strings.
func (l Log) MarshalYAML() (any, error) {
	return l.Lines(), nil
}
