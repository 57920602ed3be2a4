// Package visual shapes a computed spanning tree for its consumers: a JSON
// payload for an external network-graph widget and a plain-text tree.
package visual

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/primviz/core"
	"github.com/katalvlaran/primviz/prim_kruskal"
)

// ErrNoTree is returned when a tree-dependent view is requested without a tree.
var ErrNoTree = errors.New("visual: no spanning tree")

// Node is one vertex of the scene.
type Node struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	// Level is the hop distance from the tree root; -1 if the vertex is not in the tree.
	Level int `json:"level"`
}

// Link is one edge of the input graph.
type Link struct {
	From   int   `json:"from"`
	To     int   `json:"to"`
	Weight int64 `json:"weight"`
	InTree bool  `json:"inTree"`
	// Step is the 1-based selection step for tree edges, 0 otherwise.
	Step int `json:"step,omitempty"`
}

// Scene is the renderer payload: every vertex, every input edge, and which
// edges the spanning tree selected.
type Scene struct {
	Vertices    []Node `json:"vertices"`
	Edges       []Link `json:"edges"`
	Root        int    `json:"root"`
	TotalWeight int64  `json:"totalWeight"`
}

// NewScene builds the payload from the parsed graph and its tree. Input edges
// keep their parse order. Each tree edge marks exactly one input edge: the
// first unclaimed one with the same endpoint pair and weight.
//
// Errors: ErrNoTree if tree is nil; an error if a tree edge is not an input edge.
// Complexity: O(V + E).
func NewScene(vertexCount int, edges []core.Edge, tree *prim_kruskal.Tree) (Scene, error) {
	if tree == nil {
		return Scene{}, ErrNoTree
	}

	levels, err := Levels(vertexCount, tree)
	if err != nil {
		return Scene{}, err
	}

	nodes := make([]Node, vertexCount)
	for v := range nodes {
		nodes[v] = Node{ID: v, Label: fmt.Sprint(v), Level: levels[v]}
	}

	links := make([]Link, len(edges))
	// input indices per (pair, weight), in parse order
	slots := make(map[linkKey][]int, len(edges))
	for i, e := range edges {
		links[i] = Link{From: e.From, To: e.To, Weight: e.Weight}
		k := keyOf(e)
		slots[k] = append(slots[k], i)
	}

	// each tree edge claims the first unclaimed matching input edge
	for step, e := range tree.Edges {
		k := keyOf(e)
		free := slots[k]
		if len(free) == 0 {
			return Scene{}, fmt.Errorf("visual: tree edge %s is not an input edge", e)
		}
		links[free[0]].InTree = true
		links[free[0]].Step = step + 1
		slots[k] = free[1:]
	}

	return Scene{
		Vertices:    nodes,
		Edges:       links,
		Root:        tree.Root,
		TotalWeight: tree.TotalWeight,
	}, nil
}

// TreeEdges returns only the links selected by the spanning tree, in selection order.
func (s Scene) TreeEdges() []Link {
	var count int
	for _, l := range s.Edges {
		if l.InTree {
			count++
		}
	}
	out := make([]Link, count)
	for _, l := range s.Edges {
		if l.InTree && l.Step <= count {
			out[l.Step-1] = l
		}
	}

	return out
}

type linkKey struct {
	lo, hi int
	weight int64
}

func keyOf(e core.Edge) linkKey {
	if e.From > e.To {
		return linkKey{lo: e.To, hi: e.From, weight: e.Weight}
	}

	return linkKey{lo: e.From, hi: e.To, weight: e.Weight}
}

func pairOf(e core.Edge) [2]int {
	if e.From > e.To {
		return [2]int{e.To, e.From}
	}

	return [2]int{e.From, e.To}
}
