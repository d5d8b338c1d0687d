package mst

import "fmt"

// Compute runs the algorithm selected by opts (Kruskal unless overridden).
//
//	– MethodKruskal: Kruskal(n, edges).
//	– MethodPrim:    Prim(n, edges, Root).
//	– otherwise:     ErrUnknownMethod.
func Compute(n int, edges []Edge, opts ...Option) ([]Edge, int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(n, edges)
	case MethodPrim:
		return Prim(n, edges, o.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}
