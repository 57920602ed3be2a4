package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/primviz/buildlog"
)

func newShowCmd(a *app) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Render the markdown build log in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applyAlgorithmFlags(cmd); err != nil {
				return err
			}
			doc, err := a.document(cmd, args[0], "")
			if err != nil {
				return err
			}

			var md bytes.Buffer
			if err := buildlog.Export(&md, doc, buildlog.FormatMarkdown); err != nil {
				return err
			}
			rendered, err := renderMarkdown(stripFrontmatter(md.String()), width, a.styles.on)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)

			return nil
		},
	}
	a.algorithmFlags(cmd)
	cmd.Flags().IntVar(&width, "width", int(buildlog.DefaultWidth), "wrap column")

	return cmd
}

func renderMarkdown(body string, width int, color bool) (string, error) {
	style := glamour.WithStandardStyle("notty")
	if color {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return "", err
	}

	return r.Render(body)
}

// stripFrontmatter drops a leading "---" YAML block, which glamour would
// otherwise render as rules and text.
func stripFrontmatter(md string) string {
	rest, ok := strings.CutPrefix(md, "---\n")
	if !ok {
		return md
	}
	if _, body, found := strings.Cut(rest, "\n---\n"); found {
		return body
	}

	return md
}
