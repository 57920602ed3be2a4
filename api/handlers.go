package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/primviz/buildlog"
	"github.com/katalvlaran/primviz/logging"
	"github.com/katalvlaran/primviz/parser"
	"github.com/katalvlaran/primviz/pipeline"
	"github.com/katalvlaran/primviz/prim_kruskal"
	"github.com/katalvlaran/primviz/session"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	session *session.Session
	maxBody int64
	log     hclog.Logger
}

// NewHandlers creates handlers backed by sess. Request bodies above maxBody
// bytes are rejected; maxBody <= 0 uses the DefaultConfig value.
func NewHandlers(sess *session.Session, maxBody int64, logger hclog.Logger) *Handlers {
	if maxBody <= 0 {
		maxBody = DefaultConfig("").MaxBodyBytes
	}

	return &Handlers{
		session: sess,
		maxBody: maxBody,
		log:     logging.OrNull(logger).Named("api"),
	}
}

// HandleMST handles POST /api/v1/mst. The body is the matrix text
// (text/plain) or {"graph": "..."} (application/json). The optional name
// query parameter labels the submission for export.
func (h *Handlers) HandleMST(w http.ResponseWriter, r *http.Request) {
	text, ok := h.readGraph(w, r)
	if !ok {
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = "request"
	}

	snap, err := h.session.Submit(r.Context(), name, text)
	if err != nil {
		h.writeComputeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newMSTResponse(snap.Result))
}

// HandleExport handles GET /api/v1/export?format=text|markdown|yaml.
func (h *Handlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	format, err := buildlog.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_format", "format")
		return
	}

	var buf bytes.Buffer
	if err := h.session.Export(&buf, format); err != nil {
		if errors.Is(err, buildlog.ErrEmptyLog) {
			writeErrorResponse(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "empty_log", Detail: err.Error()})
			return
		}
		h.log.Error("export failed", "format", format, "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="build-log`+format.Extension()+`"`)
	_, _ = buf.WriteTo(w)
}

// HandleClear handles DELETE /api/v1/session.
func (h *Handlers) HandleClear(w http.ResponseWriter, r *http.Request) {
	h.session.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Computed: h.session.Current() != nil})
}

// readGraph extracts the matrix text from the request body. It writes the
// error response itself and reports false on failure.
func (h *Handlers) readGraph(w http.ResponseWriter, r *http.Request) (string, bool) {
	mediaType := "text/plain"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, _ = mime.ParseMediaType(ct)
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBody)
	switch mediaType {
	case "text/plain":
		raw, err := io.ReadAll(body)
		if err != nil {
			writeBodyError(w, err)
			return "", false
		}
		return string(raw), true
	case "application/json":
		var req MSTRequest
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			writeBodyError(w, err)
			return "", false
		}
		return req.Graph, true
	default:
		writeError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "")
		return "", false
	}
}

func (h *Handlers) writeComputeError(w http.ResponseWriter, err error) {
	var (
		perr *parser.ParseError
		disc *prim_kruskal.DisconnectedGraphError
	)
	switch {
	case errors.As(err, &perr):
		writeErrorResponse(w, http.StatusBadRequest, ErrorResponse{Error: "invalid_graph", Field: "graph", Detail: perr.Error()})
	case errors.As(err, &disc):
		writeErrorResponse(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:     "disconnected_graph",
			Detail:    disc.Error(),
			Reached:   disc.Reached,
			Unreached: disc.Unreached,
		})
	case errors.Is(err, prim_kruskal.ErrRootOutOfRange):
		writeErrorResponse(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid_root", Detail: err.Error()})
	case errors.Is(err, prim_kruskal.ErrWeightOverflow):
		writeErrorResponse(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "weight_overflow", Field: "graph", Detail: err.Error()})
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "request_timeout", "")
	default:
		h.log.Error("compute failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "")
	}
}

func newMSTResponse(res *pipeline.Result) MSTResponse {
	tree := make([]EdgeJSON, len(res.Tree.Edges))
	for i, e := range res.Tree.Edges {
		tree[i] = EdgeJSON{From: e.From, To: e.To, Weight: e.Weight}
	}

	return MSTResponse{
		Method:      res.Tree.Method,
		Vertices:    res.VertexCount,
		TotalWeight: res.Tree.TotalWeight,
		Tree:        tree,
		Log:         res.Log().Lines(),
		Scene:       res.Scene,
	}
}

func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", "")
		return
	}
	writeError(w, http.StatusBadRequest, "invalid_request", "")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, field string) {
	writeErrorResponse(w, status, ErrorResponse{Error: code, Field: field})
}

func writeErrorResponse(w http.ResponseWriter, status int, resp ErrorResponse) {
	writeJSON(w, status, resp)
}
