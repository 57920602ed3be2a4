// Package config loads primviz configuration: built-in defaults, then an
// optional TOML file, then PRIMVIZ_* environment variables. CLI flags are
// applied last by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/katalvlaran/primviz/buildlog"
	"github.com/katalvlaran/primviz/logging"
	"github.com/katalvlaran/primviz/parser"
	"github.com/katalvlaran/primviz/prim_kruskal"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PRIMVIZ_"

// Config holds the whole configuration tree.
type Config struct {
	Server    Server    `toml:"server"`
	Log       Log       `toml:"log"`
	Algorithm Algorithm `toml:"algorithm"`
	Export    Export    `toml:"export"`
}

// Server configures the HTTP API.
type Server struct {
	Addr            string        `toml:"addr"`
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	RequestTimeout  time.Duration `toml:"request_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
	MaxConcurrent   int           `toml:"max_concurrent"`
	MaxBodyBytes    int64         `toml:"max_body_bytes"`
}

// Log configures the root logger.
type Log struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

// Algorithm configures parsing and the MST computation.
type Algorithm struct {
	Method         string `toml:"method"`
	Root           int    `toml:"root"`
	StrictSymmetry bool   `toml:"strict_symmetry"`
	Verify         bool   `toml:"verify"`
	MaxVertices    int    `toml:"max_vertices"`
}

// Export configures build-log documents.
type Export struct {
	Format string `toml:"format"`
	Width  uint   `toml:"width"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxConcurrent:   32,
			MaxBodyBytes:    4 << 20,
		},
		Log: Log{Level: "info"},
		Algorithm: Algorithm{
			Method:      prim_kruskal.MethodPrim,
			MaxVertices: parser.DefaultMaxVertices,
		},
		Export: Export{
			Format: string(buildlog.FormatText),
			Width:  buildlog.DefaultWidth,
		},
	}
}

// Load reads path from the OS filesystem; see LoadFS.
func Load(path string) (*Config, error) {
	return LoadFS(afero.NewOsFs(), path, os.LookupEnv)
}

// LoadFS builds the configuration from defaults, the TOML file at path
// (skipped when path is empty) and environment overrides looked up with env.
// Unknown TOML keys are rejected. The result is validated.
func LoadFS(fs afero.Fs, path string, env func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		md, err := toml.Decode(string(raw), cfg)
		if err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("config: %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}

	if env != nil {
		cfg.applyEnv(env)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides fields from PRIMVIZ_* variables. Unparsable numbers
// and booleans keep the current value.
func (c *Config) applyEnv(env func(string) (string, bool)) {
	e := envReader{lookup: env}

	c.Server.Addr = e.str("ADDR", c.Server.Addr)
	c.Server.RequestTimeout = e.duration("REQUEST_TIMEOUT", c.Server.RequestTimeout)
	c.Server.MaxConcurrent = e.int("MAX_CONCURRENT", c.Server.MaxConcurrent)
	c.Server.MaxBodyBytes = int64(e.int("MAX_BODY_BYTES", int(c.Server.MaxBodyBytes)))

	c.Log.Level = e.str("LOG_LEVEL", c.Log.Level)
	c.Log.JSON = e.bool("LOG_JSON", c.Log.JSON)

	c.Algorithm.Method = e.str("METHOD", c.Algorithm.Method)
	c.Algorithm.Root = e.int("ROOT", c.Algorithm.Root)
	c.Algorithm.StrictSymmetry = e.bool("STRICT", c.Algorithm.StrictSymmetry)
	c.Algorithm.Verify = e.bool("VERIFY", c.Algorithm.Verify)
	c.Algorithm.MaxVertices = e.int("MAX_VERTICES", c.Algorithm.MaxVertices)

	c.Export.Format = e.str("EXPORT_FORMAT", c.Export.Format)
	c.Export.Width = uint(e.int("EXPORT_WIDTH", int(c.Export.Width)))
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs *multierror.Error

	if c.Server.Addr == "" {
		errs = multierror.Append(errs, fmt.Errorf("server.addr is empty"))
	}
	if c.Server.MaxConcurrent < 1 {
		errs = multierror.Append(errs, fmt.Errorf("server.max_concurrent must be >= 1, got %d", c.Server.MaxConcurrent))
	}
	if c.Server.MaxBodyBytes < 1 {
		errs = multierror.Append(errs, fmt.Errorf("server.max_body_bytes must be >= 1, got %d", c.Server.MaxBodyBytes))
	}
	if c.Server.RequestTimeout <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("server.request_timeout must be positive"))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = multierror.Append(errs, err)
	}
	switch strings.ToLower(c.Algorithm.Method) {
	case prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal:
	default:
		errs = multierror.Append(errs, fmt.Errorf("algorithm.method %q is not prim or kruskal", c.Algorithm.Method))
	}
	if c.Algorithm.Root < 0 {
		errs = multierror.Append(errs, fmt.Errorf("algorithm.root must be >= 0, got %d", c.Algorithm.Root))
	}
	if c.Algorithm.MaxVertices < 1 {
		errs = multierror.Append(errs, fmt.Errorf("algorithm.max_vertices must be >= 1, got %d", c.Algorithm.MaxVertices))
	}
	if _, err := buildlog.ParseFormat(c.Export.Format); err != nil {
		errs = multierror.Append(errs, err)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// envReader wraps a lookup function with typed getters in the getEnv style.
type envReader struct {
	lookup func(string) (string, bool)
}

func (e envReader) str(key, defaultValue string) string {
	value, exists := e.lookup(EnvPrefix + key)
	if !exists {
		return defaultValue
	}

	return value
}

func (e envReader) int(key string, defaultValue int) int {
	valueStr := e.str(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func (e envReader) bool(key string, defaultValue bool) bool {
	valueStr := e.str(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func (e envReader) duration(key string, defaultValue time.Duration) time.Duration {
	valueStr := e.str(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
