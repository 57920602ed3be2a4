package parser

import (
	"github.com/hashicorp/go-hclog"
)

// DefaultMaxVertices bounds N so that a hostile header cannot allocate an
// enormous matrix.
const DefaultMaxVertices = 1024

// DefaultMaxBytes bounds ParseReader input: DefaultMaxVertices² entries of a
// few digits each.
const DefaultMaxBytes int64 = 16 << 20

// Options configures parsing. Zero values are replaced by defaults.
type Options struct {
	// MaxVertices is the largest accepted N.
	MaxVertices int
	// MaxBytes bounds ParseReader input.
	MaxBytes int64
	// StrictSymmetry rejects asymmetric matrices and nonzero diagonals.
	// When false, only the upper triangle is read.
	StrictSymmetry bool
	// Logger receives trace output about the parsed shape.
	Logger hclog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns lenient parsing with the default limits and a null logger.
func DefaultOptions() Options {
	return Options{
		MaxVertices: DefaultMaxVertices,
		MaxBytes:    DefaultMaxBytes,
		Logger:      hclog.NewNullLogger(),
	}
}

// WithMaxVertices sets the largest accepted vertex count; n <= 0 keeps the default.
func WithMaxVertices(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxVertices = n
		}
	}
}

// WithMaxBytes sets the ParseReader byte limit; n <= 0 keeps the default.
func WithMaxBytes(n int64) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxBytes = n
		}
	}
}

// WithStrictSymmetry enables symmetry and zero-diagonal checks.
func WithStrictSymmetry() Option {
	return func(o *Options) { o.StrictSymmetry = true }
}

// WithLogger sets the trace logger; nil is ignored.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l.Named("parser")
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
