package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primviz/buildlog"
	"github.com/katalvlaran/primviz/prim_kruskal"
)

const reference = "4,0,2,0,6,2,0,3,8,0,3,0,5,6,8,5,0"

func testApp(t *testing.T, files map[string]string) *app {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(body), 0o644))
	}

	return &app{
		fs:  fs,
		env: func(string) (string, bool) { return "", false },
		log: hclog.NewNullLogger(),
	}
}

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(reference))
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestBuild_PrintsLog(t *testing.T) {
	a := testApp(t, map[string]string{"ref.txt": reference})

	out, err := run(t, a, "build", "ref.txt")
	require.NoError(t, err)
	assert.Equal(t, "4 vertices found.\n"+
		"Adding edge (0,1) with weight 2.\n"+
		"Adding edge (1,2) with weight 3.\n"+
		"Adding edge (2,3) with weight 5.\n"+
		"\n"+
		"Total weight of spanning tree: 10\n", out)
}

func TestBuild_StdinAndTree(t *testing.T) {
	a := testApp(t, nil)

	out, err := run(t, a, "build", "-", "--tree")
	require.NoError(t, err)
	assert.Contains(t, out, "Total weight of spanning tree: 10\n\n0\n")
	assert.Contains(t, out, "3 (w=5)")
}

func TestBuild_JSON(t *testing.T) {
	a := testApp(t, map[string]string{"ref.txt": reference})

	out, err := run(t, a, "build", "ref.txt", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"totalWeight": 10`)
	assert.Contains(t, out, `"inTree": true`)
}

func TestBuild_FlagsOverrideConfig(t *testing.T) {
	a := testApp(t, map[string]string{
		"ref.txt":      reference,
		"primviz.toml": "[algorithm]\nmethod = \"kruskal\"\n",
	})

	out, err := run(t, a, "--config", "primviz.toml", "build", "ref.txt")
	require.NoError(t, err)
	// Kruskal picks edges by weight, which here matches Prim's order.
	assert.Contains(t, out, "Total weight of spanning tree: 10")
	assert.Equal(t, prim_kruskal.MethodKruskal, a.cfg.Algorithm.Method)

	_, err = run(t, a, "--config", "primviz.toml", "build", "ref.txt", "--method", "prim", "--root", "2")
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.MethodPrim, a.cfg.Algorithm.Method)
	assert.Equal(t, 2, a.cfg.Algorithm.Root)

	_, err = run(t, a, "build", "ref.txt", "--method", "boruvka")
	assert.Error(t, err)
}

func TestBuild_Errors(t *testing.T) {
	a := testApp(t, map[string]string{
		"bad.txt":  "3,0,1",
		"disc.txt": "3,0,0,0,0,0,0,0,0,0",
	})

	_, err := run(t, a, "build", "bad.txt")
	assert.Error(t, err)

	_, err = run(t, a, "build", "disc.txt")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.Equal(t, "Error: ", errorPrefix(err))

	_, err = run(t, a, "build", "missing.txt")
	assert.Error(t, err)
}

func TestExport_ToFile(t *testing.T) {
	a := testApp(t, map[string]string{"ref.txt": reference})

	_, err := run(t, a, "export", "ref.txt", "--format", "yaml", "--out", "out.yaml")
	require.NoError(t, err)

	raw, err := afero.ReadFile(a.fs, "out.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "source: ref.txt")
	assert.Contains(t, string(raw), "total_weight: 10")
}

func TestExport_ConfigFormat(t *testing.T) {
	a := testApp(t, map[string]string{
		"ref.txt":      reference,
		"primviz.toml": "[export]\nformat = \"md\"\n",
	})

	out, err := run(t, a, "--config", "primviz.toml", "export", "ref.txt", "--title", "Ref")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "---\ntitle: Ref\n"), out)

	_, err = run(t, a, "export", "ref.txt", "--format", "pdf")
	assert.ErrorIs(t, err, buildlog.ErrUnknownFormat)
}

func TestShow(t *testing.T) {
	a := testApp(t, map[string]string{"ref.txt": reference})

	out, err := run(t, a, "show", "ref.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "Total weight of spanning tree: 10")
	assert.NotContains(t, out, "total_weight:")
}

func TestStripFrontmatter(t *testing.T) {
	assert.Equal(t, "# T\n", stripFrontmatter("---\ntitle: T\n---\n# T\n"))
	assert.Equal(t, "# T\n", stripFrontmatter("# T\n"))
	assert.Equal(t, "---\nunterminated", stripFrontmatter("---\nunterminated"))
}

func TestGenerate(t *testing.T) {
	a := testApp(t, nil)

	out, err := run(t, a, "generate", "cycle", "4", "--min-weight", "3", "--max-weight", "3")
	require.NoError(t, err)
	assert.Equal(t, "4,0,3,0,3,3,0,3,0,0,3,0,3,3,0,3,0\n", out)

	_, err = run(t, a, "generate", "hypercube", "4")
	assert.Error(t, err)

	_, err = run(t, a, "generate", "path", "4", "--min-weight", "0")
	assert.Error(t, err)
}

func TestGenerate_RoundTripsThroughBuild(t *testing.T) {
	a := testApp(t, nil)

	out, err := run(t, a, "generate", "random", "9", "--seed", "5")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(a.fs, "g.txt", []byte(out), 0o644))

	out, err = run(t, a, "build", "g.txt", "--verify")
	require.NoError(t, err)
	assert.Contains(t, out, "9 vertices found.")
}

func TestBatch(t *testing.T) {
	a := testApp(t, map[string]string{
		"a.txt": reference,
		"b.txt": "1,0",
		"c.txt": "oops",
	})

	out, err := run(t, a, "batch", "a.txt", "b.txt", "c.txt", "-w", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 graphs failed")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "GRAPH"))
	assert.Regexp(t, `^a\.txt\s+4\s+5\s+10$`, lines[1])
	assert.Regexp(t, `^b\.txt\s+1\s+0\s+0$`, lines[2])
	assert.Contains(t, lines[3], "malformed token")
}

func TestRoot_BadLogLevel(t *testing.T) {
	a := testApp(t, map[string]string{"ref.txt": reference})

	_, err := run(t, a, "--log-level", "loud", "build", "ref.txt")
	assert.Error(t, err)
}

func TestErrorPrefix(t *testing.T) {
	assert.Equal(t, "Warning: ", errorPrefix(&buildlog.EmptyLogError{}))
}
