// Package session holds the most recent successful computation for an
// interactive front end. Every submission recomputes from scratch; a failed
// submission clears the previous snapshot so no stale tree survives it.
package session

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/katalvlaran/primviz/buildlog"
	"github.com/katalvlaran/primviz/pipeline"
)

// Snapshot is one successful submission.
type Snapshot struct {
	Name       string
	Result     *pipeline.Result
	ComputedAt time.Time
}

// Session is safe for concurrent use. Submissions are ordered by the time
// Submit is called, not by when their computation finishes.
type Session struct {
	// issued numbers submissions; applied is the newest one reflected in current.
	issued atomic.Uint64

	mu      sync.RWMutex
	current *Snapshot
	applied uint64

	fs       afero.Fs
	opts     []pipeline.Option
	exporter buildlog.Exporter
	title    string
	now      func() time.Time
	log      hclog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithFs sets the filesystem Load reads from; defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(s *Session) { s.fs = fs }
}

// WithPipelineOptions sets the options passed to every pipeline.Compute call.
func WithPipelineOptions(opts ...pipeline.Option) Option {
	return func(s *Session) { s.opts = append(s.opts, opts...) }
}

// WithExportWidth sets the wrap column for text exports.
func WithExportWidth(w uint) Option {
	return func(s *Session) { s.exporter.Width = w }
}

// WithTitle sets the exported document title.
func WithTitle(title string) Option {
	return func(s *Session) { s.title = title }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l hclog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l.Named("session")
		}
	}
}

// New returns an empty session.
func New(opts ...Option) *Session {
	s := &Session{
		fs:    afero.NewOsFs(),
		title: buildlog.DefaultTitle,
		now:   time.Now,
		log:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load reads path and submits its contents under the file's base name.
func (s *Session) Load(ctx context.Context, path string) (*Snapshot, error) {
	raw, err := afero.ReadFile(s.fs, path)
	if err != nil {
		s.Clear()
		return nil, fmt.Errorf("session: read %s: %w", path, err)
	}

	return s.Submit(ctx, filepath.Base(path), string(raw))
}

// Submit computes text and, on success, makes it the current snapshot.
// On failure the current snapshot is cleared and the error returned as-is.
//
// When a later submission (or Clear) has already been applied by the time
// this one finishes, the outcome is still returned but leaves the session
// untouched.
func (s *Session) Submit(ctx context.Context, name, text string) (*Snapshot, error) {
	seq := s.issued.Add(1)
	res, err := pipeline.Compute(ctx, text, s.pipelineOpts()...)

	return s.commit(seq, name, res, err)
}

// commit applies the outcome of submission seq unless a newer one won.
func (s *Session) commit(seq uint64, name string, res *pipeline.Result, err error) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stale := seq <= s.applied
	if !stale {
		s.applied = seq
	}

	if err != nil {
		if stale {
			s.log.Debug("stale submission rejected", "name", name, "seq", seq, "error", err)
			return nil, err
		}
		s.current = nil
		s.log.Info("submission rejected", "name", name, "error", err)
		return nil, err
	}

	snap := &Snapshot{Name: name, Result: res, ComputedAt: s.now()}
	if stale {
		s.log.Debug("stale submission discarded", "name", name, "seq", seq)
		return snap, nil
	}
	s.current = snap
	s.log.Info("submission computed", "name", name, "vertices", res.VertexCount, "total", res.Tree.TotalWeight)

	return snap, nil
}

// Current returns the last successful snapshot, or nil.
func (s *Session) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Clear drops the current snapshot. Submissions still in flight when Clear
// is called do not bring it back.
func (s *Session) Clear() {
	seq := s.issued.Add(1)

	s.mu.Lock()
	s.current = nil
	s.applied = max(s.applied, seq)
	s.mu.Unlock()
}

// Export writes the current build log to w.
// Errors: *buildlog.EmptyLogError when nothing has been computed.
func (s *Session) Export(w io.Writer, format buildlog.Format) error {
	snap := s.Current()
	if snap == nil {
		return &buildlog.EmptyLogError{}
	}

	x := s.exporter
	x.Format = format

	return x.Export(w, snap.Result.Document(s.title, snap.Name, snap.ComputedAt))
}

func (s *Session) pipelineOpts() []pipeline.Option {
	return append(append([]pipeline.Option{}, s.opts...), pipeline.WithLogger(s.log))
}
