package buildlog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mitchellh/go-wordwrap"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for the export boundary.
var (
	// ErrEmptyLog is matched by every *EmptyLogError.
	ErrEmptyLog = errors.New("buildlog: nothing to export, compute a spanning tree first")

	// ErrUnknownFormat indicates an unsupported export format name.
	ErrUnknownFormat = errors.New("buildlog: unknown export format")
)

// EmptyLogError reports an export attempt before any computation produced a log.
// It is a user-facing warning, not a failure of the program.
type EmptyLogError struct {
	// Source names what was being exported, if known.
	Source string
}

func (e *EmptyLogError) Error() string {
	if e.Source == "" {
		return ErrEmptyLog.Error()
	}

	return fmt.Sprintf("%s (source %q)", ErrEmptyLog.Error(), e.Source)
}

// Is makes errors.Is(err, ErrEmptyLog) true.
func (e *EmptyLogError) Is(target error) bool {
	return target == ErrEmptyLog
}

// Format selects the document encoding.
type Format string

const (
	// FormatText is a plain, word-wrapped listing.
	FormatText Format = "text"
	// FormatMarkdown is a markdown document with YAML frontmatter.
	FormatMarkdown Format = "markdown"
	// FormatYAML encodes the whole Document as YAML.
	FormatYAML Format = "yaml"
)

// DefaultWidth is the wrap column for FormatText.
const DefaultWidth uint = 80

// DefaultTitle is used when a Document carries no title.
const DefaultTitle = "Prim's Algorithm Build Log"

// ParseFormat resolves a format name; "txt" and "md" are accepted aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Extension returns the conventional file extension for f.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatYAML:
		return ".yaml"
	default:
		return ".txt"
	}
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Document is everything an exporter needs: the log plus a few facts about
// the computation it narrates.
type Document struct {
	Title       string    `yaml:"title"`
	Source      string    `yaml:"source,omitempty"`
	Generated   time.Time `yaml:"generated,omitempty"`
	Vertices    int       `yaml:"vertices"`
	TotalWeight int64     `yaml:"total_weight"`
	Log         Log       `yaml:"log"`
}

// frontmatter is Document minus the log body.
type frontmatter struct {
	Title       string    `yaml:"title"`
	Source      string    `yaml:"source,omitempty"`
	Generated   time.Time `yaml:"generated,omitempty"`
	Vertices    int       `yaml:"vertices"`
	TotalWeight int64     `yaml:"total_weight"`
}

// Exporter writes Documents in one Format.
type Exporter struct {
	Format Format
	// Width is the wrap column for FormatText; 0 means DefaultWidth.
	Width uint
}

// Export writes doc to w in the given format with default settings.
func Export(w io.Writer, doc Document, format Format) error {
	return Exporter{Format: format}.Export(w, doc)
}

// Export writes doc to w.
// Errors: *EmptyLogError when doc.Log is empty, ErrUnknownFormat, write errors.
func (x Exporter) Export(w io.Writer, doc Document) error {
	if doc.Log.Empty() {
		return &EmptyLogError{Source: doc.Source}
	}
	if doc.Title == "" {
		doc.Title = DefaultTitle
	}

	var (
		buf bytes.Buffer
		err error
	)
	switch x.Format {
	case FormatText, "":
		x.writeText(&buf, doc)
	case FormatMarkdown:
		err = writeMarkdown(&buf, doc)
	case FormatYAML:
		err = yaml.NewEncoder(&buf).Encode(doc)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, x.Format)
	}
	if err != nil {
		return err
	}
	if _, err = buf.WriteTo(w); err != nil {
		return fmt.Errorf("buildlog: write %s document: %w", x.Format, err)
	}

	return nil
}

// writeText renders a title block followed by the wrapped log lines.
// Blank log lines are preserved.
func (x Exporter) writeText(buf *bytes.Buffer, doc Document) {
	width := x.Width
	if width == 0 {
		width = DefaultWidth
	}
	buf.WriteString(doc.Title)
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat("=", len(doc.Title)))
	buf.WriteString("\n\n")
	for _, line := range doc.Log.lines {
		buf.WriteString(wordwrap.WrapString(line, width))
		buf.WriteByte('\n')
	}
}

// writeMarkdown renders "---\n<yaml>---\n" frontmatter and the log as a text block.
func writeMarkdown(buf *bytes.Buffer, doc Document) error {
	fm, err := yaml.Marshal(frontmatter{
		Title:       doc.Title,
		Source:      doc.Source,
		Generated:   doc.Generated,
		Vertices:    doc.Vertices,
		TotalWeight: doc.TotalWeight,
	})
	if err != nil {
		return fmt.Errorf("buildlog: encoding frontmatter: %w", err)
	}
	buf.WriteString("---\n")
	buf.Write(fm)
	buf.WriteString("---\n\n# ")
	buf.WriteString(doc.Title)
	buf.WriteString("\n\n```text\n")
	for _, line := range doc.Log.lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteString("```\n")

	return nil
}
