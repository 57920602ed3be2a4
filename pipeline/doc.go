// Package pipeline runs one submission end to end: parse the adjacency-matrix
// text, build the spanning tree, optionally cross-check it with Kruskal, and
// shape the renderer payload. Compute is pure; every call starts from scratch
// and returns an immutable Result.
//
// ComputeAll fans independent submissions out over a bounded worker pool.
// Graphs share no state, so one failing input never affects another.
package pipeline
