package mst

import "errors"

// Sentinel errors for MST computation.
var (
	// ErrInvalidVertexCount indicates a negative vertex count.
	ErrInvalidVertexCount = errors.New("mst: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint or root outside [0, n).
	ErrVertexOutOfRange = errors.New("mst: vertex out of range")

	// ErrDisconnected indicates no spanning tree covers every vertex.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrUnknownMethod indicates Compute was given an unsupported method name.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// Edge is an undirected weighted edge between vertex ids From and To.
type Edge struct {
	From, To int
	Weight   int64
}

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Options configures Compute.
//
// Fields:
//
//	Method string — MethodKruskal (default) or MethodPrim.
//	Root   int    — start vertex for Prim; ignored by Kruskal.
type Options struct {
	Method string
	Root   int
}

// Option mutates Options.
type Option func(*Options)

// WithMethod sets the algorithm.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithRoot sets Prim's start vertex.
func WithRoot(root int) Option {
	return func(o *Options) {
		o.Root = root
	}
}

// DefaultOptions returns Kruskal with root 0.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal, Root: 0}
}
