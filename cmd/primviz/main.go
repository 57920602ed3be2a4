// Command primviz computes minimum spanning trees of adjacency-matrix graphs
// with Prim's algorithm and shows how the tree was built.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/primviz/buildlog"
)

func main() {
	a := newApp()
	root := newRootCmd(a)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, a.styles.failure(errorPrefix(err)+err.Error()))
		os.Exit(1)
	}
}

// errorPrefix labels the empty-log condition as a warning.
func errorPrefix(err error) string {
	if errors.Is(err, buildlog.ErrEmptyLog) {
		return "Warning: "
	}

	return "Error: "
}
