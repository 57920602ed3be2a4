package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/primviz/buildlog"
	"github.com/katalvlaran/primviz/pipeline"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		out    string
		title  string
		width  uint
	)
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the build log as text, markdown or yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applyAlgorithmFlags(cmd); err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Export.Format
			}
			f, err := buildlog.ParseFormat(format)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				width = a.cfg.Export.Width
			}

			doc, err := a.document(cmd, args[0], title)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := (buildlog.Exporter{Format: f, Width: width}).Export(&buf, doc); err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := afero.WriteFile(a.fs, out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.log.Info("build log exported", "path", out, "format", f)

			return nil
		},
	}
	a.algorithmFlags(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "text, markdown or yaml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&title, "title", "", "document title")
	cmd.Flags().UintVar(&width, "width", buildlog.DefaultWidth, "wrap column for text output")

	return cmd
}

// document computes path and wraps the result for export.
func (a *app) document(cmd *cobra.Command, path, title string) (buildlog.Document, error) {
	text, err := a.readInput(cmd, path)
	if err != nil {
		return buildlog.Document{}, err
	}
	res, err := pipeline.Compute(cmd.Context(), text, a.pipelineOptions()...)
	if err != nil {
		return buildlog.Document{}, err
	}
	source := filepath.Base(path)
	if path == "-" {
		source = "stdin"
	}

	return res.Document(title, source, time.Now().UTC().Truncate(time.Second)), nil
}
