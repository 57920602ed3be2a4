package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/primviz/config"
	"github.com/katalvlaran/primviz/logging"
	"github.com/katalvlaran/primviz/parser"
	"github.com/katalvlaran/primviz/pipeline"
)

// app carries what every subcommand shares once the root command has run.
type app struct {
	fs  afero.Fs
	env func(string) (string, bool)

	cfgPath  string
	logLevel string
	noColor  bool

	cfg    *config.Config
	log    hclog.Logger
	styles styles
}

func newApp() *app {
	return &app{
		fs:  afero.NewOsFs(),
		env: os.LookupEnv,
		log: hclog.NewNullLogger(),
	}
}

// setup loads configuration and builds the logger and styles.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadFS(a.fs, a.cfgPath, a.env)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	color := !a.noColor && isTerminal(cmd.OutOrStdout())
	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		JSON:   cfg.Log.JSON,
		Output: cmd.ErrOrStderr(),
		Color:  color && isTerminal(cmd.ErrOrStderr()),
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger
	a.styles = newStyles(color)
	logger.Debug("configuration loaded", "path", a.cfgPath, "method", cfg.Algorithm.Method)

	return nil
}

// pipelineOptions turns the algorithm config into pipeline options.
func (a *app) pipelineOptions() []pipeline.Option {
	alg := a.cfg.Algorithm
	popts := []parser.Option{parser.WithMaxVertices(alg.MaxVertices)}
	if alg.StrictSymmetry {
		popts = append(popts, parser.WithStrictSymmetry())
	}

	return []pipeline.Option{
		pipeline.WithParserOptions(popts...),
		pipeline.WithMethod(alg.Method),
		pipeline.WithRoot(alg.Root),
		pipeline.WithVerify(alg.Verify),
		pipeline.WithLogger(a.log),
	}
}

// readInput returns the contents of path, or stdin for "-".
func (a *app) readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}
	raw, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

// algorithmFlags registers flags that override [algorithm] settings.
func (a *app) algorithmFlags(cmd *cobra.Command) {
	cmd.Flags().String("method", "", "MST algorithm: prim or kruskal")
	cmd.Flags().Int("root", 0, "Prim start vertex")
	cmd.Flags().Bool("strict", false, "reject asymmetric matrices and nonzero diagonals")
	cmd.Flags().Bool("verify", false, "cross-check the total with Kruskal")
}

// applyAlgorithmFlags copies explicitly set flags over the loaded config.
func (a *app) applyAlgorithmFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("method") {
		a.cfg.Algorithm.Method, err = flags.GetString("method")
	}
	if err == nil && flags.Changed("root") {
		a.cfg.Algorithm.Root, err = flags.GetInt("root")
	}
	if err == nil && flags.Changed("strict") {
		a.cfg.Algorithm.StrictSymmetry, err = flags.GetBool("strict")
	}
	if err == nil && flags.Changed("verify") {
		a.cfg.Algorithm.Verify, err = flags.GetBool("verify")
	}
	if err != nil {
		return err
	}

	return a.cfg.Validate()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
