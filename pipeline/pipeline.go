package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/primviz/bfs"
	"github.com/katalvlaran/primviz/buildlog"
	"github.com/katalvlaran/primviz/core"
	"github.com/katalvlaran/primviz/dfs"
	"github.com/katalvlaran/primviz/parser"
	"github.com/katalvlaran/primviz/prim_kruskal"
	"github.com/katalvlaran/primviz/visual"
)

// ErrVerification indicates that the tree is not a spanning tree of the
// input, or that Prim and Kruskal disagreed on its total weight.
var ErrVerification = errors.New("pipeline: spanning tree verification failed")

// Result is the immutable outcome of one successful submission.
type Result struct {
	// VertexCount is N from the input header.
	VertexCount int
	// Edges are the parsed edges in parse order.
	Edges []core.Edge
	// Tree is the spanning tree and its build log.
	Tree *prim_kruskal.Tree
	// Scene is the renderer payload.
	Scene visual.Scene
}

// Log returns the build log.
func (r *Result) Log() buildlog.Log {
	if r == nil || r.Tree == nil {
		return buildlog.Log{}
	}

	return r.Tree.Log
}

// Document wraps the result for buildlog export.
func (r *Result) Document(title, source string, generated time.Time) buildlog.Document {
	doc := buildlog.Document{Title: title, Source: source, Generated: generated, Log: r.Log()}
	if r != nil && r.Tree != nil {
		doc.Vertices = r.VertexCount
		doc.TotalWeight = r.Tree.TotalWeight
	}

	return doc
}

// TextTree renders the spanning tree as an indented text tree.
func (r *Result) TextTree() (string, error) {
	if r == nil {
		return "", visual.ErrNoTree
	}

	return visual.Tree(r.VertexCount, r.Tree)
}

// Compute parses text and builds its spanning tree.
//
// Errors, unwrapped so callers can use errors.As:
//   - *parser.ParseError                 : malformed input, before any algorithm runs.
//   - *prim_kruskal.DisconnectedGraphError: the graph has more than one component.
//   - prim_kruskal.ErrRootOutOfRange, ErrUnknownMethod, ErrWeightOverflow.
//   - ErrVerification                    : cross-check mismatch.
//   - ctx.Err()                          : cancelled.
func Compute(ctx context.Context, text string, opts ...Option) (*Result, error) {
	o := resolve(opts)
	log := o.Logger
	started := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g, err := parser.ParseGraph(text, append(o.Parser, parser.WithLogger(log))...)
	if err != nil {
		log.Debug("parse failed", "error", err)
		return nil, err
	}
	log.Trace("parsed", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	tree, err := prim_kruskal.Compute(g,
		prim_kruskal.WithMethod(o.Method),
		prim_kruskal.WithRoot(o.Root),
		prim_kruskal.WithContext(ctx),
	)
	if err != nil {
		var disc *prim_kruskal.DisconnectedGraphError
		if errors.As(err, &disc) {
			if comps, cerr := bfs.Components(g); cerr == nil {
				log.Debug("graph is disconnected", "components", len(comps), "step", disc.Step)
			}
		}
		return nil, err
	}

	if o.VerifyWithKruskal {
		if err := verify(ctx, g, tree); err != nil {
			return nil, err
		}
		log.Trace("verified spanning tree", "method", tree.Method)
	}

	edges := g.Edges()
	scene, err := visual.NewScene(g.VertexCount(), edges, tree)
	if err != nil {
		return nil, err
	}

	log.Debug("computed spanning tree",
		"method", tree.Method,
		"vertices", g.VertexCount(),
		"edges", len(edges),
		"total", tree.TotalWeight,
		"elapsed", time.Since(started),
	)

	return &Result{
		VertexCount: g.VertexCount(),
		Edges:       edges,
		Tree:        tree,
		Scene:       scene,
	}, nil
}

// verify checks that tree spans g without cycles and that an independent
// Kruskal run reaches the same total.
func verify(ctx context.Context, g *core.Graph, tree *prim_kruskal.Tree) error {
	tg, err := core.NewGraph(g.VertexCount(), core.WithMultiEdges(), core.WithLoops())
	if err != nil {
		return err
	}
	for _, e := range tree.Edges {
		if err := tg.AddEdge(e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("%w: %v", ErrVerification, err)
		}
	}
	if err := dfs.IsTree(tg); err != nil {
		return fmt.Errorf("%w: %v", ErrVerification, err)
	}

	if tree.Method == prim_kruskal.MethodKruskal {
		return nil
	}
	check, err := prim_kruskal.Kruskal(g, prim_kruskal.WithContext(ctx))
	if err != nil {
		return err
	}
	if check.TotalWeight != tree.TotalWeight {
		return fmt.Errorf("%w: prim total %d, kruskal total %d", ErrVerification, tree.TotalWeight, check.TotalWeight)
	}

	return nil
}
