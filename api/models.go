package api

import "github.com/katalvlaran/primviz/visual"

// MSTRequest is the JSON body for POST /api/v1/mst.
type MSTRequest struct {
	Graph string `json:"graph"`
}

// MSTResponse is the JSON response for a successful computation.
type MSTResponse struct {
	Method      string       `json:"method"`
	Vertices    int          `json:"vertices"`
	TotalWeight int64        `json:"total_weight"`
	Tree        []EdgeJSON   `json:"tree"`
	Log         []string     `json:"log"`
	Scene       visual.Scene `json:"scene"`
}

// EdgeJSON is one selected edge, in selection order.
type EdgeJSON struct {
	From   int   `json:"from"`
	To     int   `json:"to"`
	Weight int64 `json:"weight"`
}

// ErrorResponse is the JSON response for errors.
type ErrorResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Reached   []int  `json:"reached,omitempty"`
	Unreached []int  `json:"unreached,omitempty"`
}

// HealthResponse is the JSON response for GET /api/v1/health.
type HealthResponse struct {
	Status   string `json:"status"`
	Computed bool   `json:"computed"`
}
