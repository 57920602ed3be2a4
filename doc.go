// Package primviz builds minimum spanning trees of small weighted graphs and
// explains, step by step, how each tree was built.
//
// A graph arrives as text: the vertex count N followed by the N*N adjacency
// matrix, all comma-separated ("4,0,2,0,6,2,0,3,..."); 0 means "no edge".
// Only the upper triangle is read.
//
// Packages:
//
//	core/         - Graph over int vertices with an ordered edge list
//	matrix/       - AdjacencyMatrix, flat encoding and validators
//	parser/       - text → matrix/edges, with typed *ParseError
//	prim_kruskal/ - Prim's dense-scan MST with a build log; Kruskal as cross-check
//	buildlog/     - append-only build log and its text/markdown/yaml export
//	bfs/, dfs/    - traversals: components, tree levels, cycle and spanning checks
//	builder/      - deterministic graph generators for fixtures and the CLI
//	visual/       - renderer payload (Scene) and text tree
//	pipeline/     - parse → MST → scene, single or batched
//	session/      - last successful computation for interactive front ends
//	config/, logging/ - TOML + env configuration and hclog setup
//	api/          - HTTP API
//	cmd/primviz/  - command-line interface
//
// Quick start:
//
//	res, err := pipeline.Compute(ctx, "4,0,2,0,6,2,0,3,8,0,3,0,5,6,8,5,0")
//	if err != nil {
//		// *parser.ParseError or *prim_kruskal.DisconnectedGraphError
//	}
//	fmt.Println(res.Log())
//	// 4 vertices found.
//	// Adding edge (0,1) with weight 2.
//	// Adding edge (1,2) with weight 3.
//	// Adding edge (2,3) with weight 5.
//	//
//	// Total weight of spanning tree: 10
package primviz
