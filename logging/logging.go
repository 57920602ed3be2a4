// Package logging builds the hclog.Logger shared by the CLI, the HTTP server
// and the compute pipeline. Components receive a named sub-logger; library
// packages default to hclog.NewNullLogger().
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// RootName is the name of the top-level logger.
const RootName = "primviz"

// Options configures New.
type Options struct {
	// Level is one of trace, debug, info, warn, error, off. Empty means info.
	Level string
	// JSON switches to one JSON object per line.
	JSON bool
	// Output defaults to os.Stderr.
	Output io.Writer
	// Color forces ANSI color in text mode when Output is a terminal.
	Color bool
}

// New returns a logger configured from opts.
// Errors: an unknown level name.
func New(opts Options) (hclog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	color := hclog.ColorOff
	if opts.Color && !opts.JSON {
		color = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:               RootName,
		Level:              level,
		Output:             out,
		JSONFormat:         opts.JSON,
		JSONEscapeDisabled: true,
		Color:              color,
	}), nil
}

// ParseLevel maps a level name to an hclog.Level. Empty means info.
func ParseLevel(name string) (hclog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return hclog.Info, nil
	}
	level := hclog.LevelFromString(name)
	if level == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("logging: unknown level %q", name)
	}

	return level, nil
}

// OrNull returns l, or a null logger when l is nil.
func OrNull(l hclog.Logger) hclog.Logger {
	if l == nil {
		return hclog.NewNullLogger()
	}

	return l
}

// StdLogger adapts l for APIs that want a *log.Logger, such as http.Server.ErrorLog.
func StdLogger(l hclog.Logger) *log.Logger {
	return OrNull(l).StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})
}
