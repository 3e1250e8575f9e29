// Package prim_kruskal defines the Edge type, configuration options and sentinel errors
// for MST computation over point sets.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstgen/core"
)

// ErrUnknownMethod indicates Compute was asked for an algorithm it does not provide.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ErrNotSpanning indicates an edge list does not have exactly n-1 edges for n points.
var ErrNotSpanning = errors.New("prim_kruskal: edge count does not span the point set")

// ErrIndexOutOfRange indicates an edge endpoint outside [0, n).
var ErrIndexOutOfRange = errors.New("prim_kruskal: edge endpoint out of range")

// ErrSelfLoop indicates an edge whose endpoints coincide.
var ErrSelfLoop = errors.New("prim_kruskal: self-loop edge")

// ErrCycle indicates an edge that closes a cycle.
var ErrCycle = errors.New("prim_kruskal: edge closes a cycle")

// MethodPrim selects Prim's algorithm (grow from index 0 using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all pairs and union-find).
const MethodKruskal = "kruskal"

// Edge is one accepted MST edge between two point indices.
//
// Edges are undirected; From is the endpoint that was already in the tree when the
// edge was accepted (Prim) or the smaller index (Kruskal).
type Edge struct {
	// From and To are PointSet indices.
	From int
	To   int

	// Weight is the Euclidean distance between the two points.
	Weight float64
}

// String renders the edge as "from-to(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%.3f)", e.From, e.To, e.Weight)
}

// MSTOptions configures which MST algorithm Compute runs.
// Use DefaultOptions() to get the default setup (Prim).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions with Method = MethodPrim.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodPrim}
}

// Compute runs the selected MST algorithm over points.
//
// Returns:
//
//	[]Edge  — MST edges (empty for fewer than two points).
//	float64 — total weight.
//	error   — ErrUnknownMethod when opts name an unsupported algorithm.
func Compute(points *core.PointSet, opts ...Option) ([]Edge, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var mst []Edge
	switch cfg.Method {
	case MethodPrim:
		mst = Prim(points)
	case MethodKruskal:
		mst = Kruskal(points)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}

	return mst, TotalWeight(mst), nil
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
