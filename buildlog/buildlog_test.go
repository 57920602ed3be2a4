package buildlog_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/primviz/buildlog"
	"github.com/katalvlaran/primviz/core"
)

func sampleLog() buildlog.Log {
	var r buildlog.Recorder
	r.Record(buildlog.VerticesFound(2))
	r.Record(buildlog.EdgeAdded(core.Edge{Weight: 7, From: 0, To: 1}))
	r.Blank()
	r.Record(buildlog.TotalWeight(7))

	return r.Log()
}

func TestLineHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "4 vertices found.", buildlog.VerticesFound(4))
	assert.Equal(t, "Adding edge (1,2) with weight 3.", buildlog.EdgeAdded(core.Edge{Weight: 3, From: 1, To: 2}))
	assert.Equal(t, "Total weight of spanning tree: 10", buildlog.TotalWeight(10))
}

func TestRecorder_AppendOnlySnapshot(t *testing.T) {
	t.Parallel()

	var r buildlog.Recorder
	r.Record("a")
	snap := r.Log()
	r.Recordf("%s-%d", "b", 2)

	assert.Equal(t, []string{"a"}, snap.Lines())
	assert.Equal(t, []string{"a", "b-2"}, r.Log().Lines())
	assert.Equal(t, 2, r.Len())

	// Lines() hands out copies.
	lines := snap.Lines()
	lines[0] = "mutated"
	assert.Equal(t, "a", snap.Lines()[0])

	// Duplicates and blanks are kept as-is.
	r.Record("a")
	r.Blank()
	assert.Equal(t, "a\nb-2\na\n", r.Log().String())
}

func TestLog_Marshal(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(sampleLog())
	require.NoError(t, err)
	assert.JSONEq(t, `["2 vertices found.","Adding edge (0,1) with weight 7.","","Total weight of spanning tree: 7"]`, string(raw))

	raw, err = json.Marshal(buildlog.Log{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]buildlog.Format{
		"":         buildlog.FormatText,
		"TXT":      buildlog.FormatText,
		"md":       buildlog.FormatMarkdown,
		"markdown": buildlog.FormatMarkdown,
		" yml ":    buildlog.FormatYAML,
	}
	for in, want := range cases {
		got, err := buildlog.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := buildlog.ParseFormat("pdf")
	assert.ErrorIs(t, err, buildlog.ErrUnknownFormat)
	assert.Equal(t, ".md", buildlog.FormatMarkdown.Extension())
}

func TestExport_EmptyLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := buildlog.Export(&buf, buildlog.Document{Source: "g.txt"}, buildlog.FormatMarkdown)
	require.Error(t, err)
	assert.ErrorIs(t, err, buildlog.ErrEmptyLog)

	var empty *buildlog.EmptyLogError
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, "g.txt", empty.Source)
	assert.Zero(t, buf.Len(), "nothing may be written on failure")
}

func TestExport_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	doc := buildlog.Document{Title: "Run", Log: sampleLog()}
	require.NoError(t, buildlog.Export(&buf, doc, buildlog.FormatText))

	want := "Run\n===\n\n" +
		"2 vertices found.\n" +
		"Adding edge (0,1) with weight 7.\n" +
		"\n" +
		"Total weight of spanning tree: 7\n"
	assert.Equal(t, want, buf.String())
}

func TestExport_TextWraps(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	x := buildlog.Exporter{Format: buildlog.FormatText, Width: 12}
	require.NoError(t, x.Export(&buf, buildlog.Document{Title: "T", Log: sampleLog()}))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len(line), 12, line)
	}
}

func TestExport_Markdown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	doc := buildlog.Document{Title: "Run", Vertices: 2, TotalWeight: 7, Log: sampleLog()}
	require.NoError(t, buildlog.Export(&buf, doc, buildlog.FormatMarkdown))

	want := "---\n" +
		"title: Run\n" +
		"vertices: 2\n" +
		"total_weight: 7\n" +
		"---\n\n" +
		"# Run\n\n" +
		"```text\n" +
		"2 vertices found.\n" +
		"Adding edge (0,1) with weight 7.\n" +
		"\n" +
		"Total weight of spanning tree: 7\n" +
		"```\n"
	assert.Equal(t, want, buf.String())
}

func TestExport_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	doc := buildlog.Document{Source: "a.txt", Vertices: 2, TotalWeight: 7, Log: sampleLog()}
	require.NoError(t, buildlog.Export(&buf, doc, buildlog.FormatYAML))

	var got struct {
		Title       string   `yaml:"title"`
		Source      string   `yaml:"source"`
		Vertices    int      `yaml:"vertices"`
		TotalWeight int64    `yaml:"total_weight"`
		Log         []string `yaml:"log"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, buildlog.DefaultTitle, got.Title)
	assert.Equal(t, "a.txt", got.Source)
	assert.Equal(t, int64(7), got.TotalWeight)
	assert.Equal(t, sampleLog().Lines(), got.Log)
}

func TestExport_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := buildlog.Export(&bytes.Buffer{}, buildlog.Document{Log: sampleLog()}, buildlog.Format("pdf"))
	assert.ErrorIs(t, err, buildlog.ErrUnknownFormat)
}
