package pipeline

import (
	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/primviz/parser"
	"github.com/katalvlaran/primviz/prim_kruskal"
)

// Options configures Compute.
type Options struct {
	// Parser options are passed through unchanged.
	Parser []parser.Option
	// Method is prim_kruskal.MethodPrim or prim_kruskal.MethodKruskal.
	Method string
	// Root is the Prim start vertex.
	Root int
	// VerifyWithKruskal recomputes the tree with Kruskal and compares totals.
	VerifyWithKruskal bool
	// Logger receives stage timings; defaults to a null logger.
	Logger hclog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Prim from vertex 0, lenient parsing, no verification.
func DefaultOptions() Options {
	return Options{
		Method: prim_kruskal.MethodPrim,
		Logger: hclog.NewNullLogger(),
	}
}

// WithParserOptions appends parser options.
func WithParserOptions(opts ...parser.Option) Option {
	return func(o *Options) { o.Parser = append(o.Parser, opts...) }
}

// WithMethod selects the MST algorithm; empty keeps the default.
func WithMethod(m string) Option {
	return func(o *Options) {
		if m != "" {
			o.Method = m
		}
	}
}

// WithRoot sets the Prim start vertex.
func WithRoot(root int) Option {
	return func(o *Options) { o.Root = root }
}

// WithVerify toggles the Kruskal cross-check.
func WithVerify(on bool) Option {
	return func(o *Options) { o.VerifyWithKruskal = on }
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l hclog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l.Named("pipeline")
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
