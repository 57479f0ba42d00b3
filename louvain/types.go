package louvain

import (
	"context"
	"fmt"
	"math"
	"runtime"
)

// Weight is the set of floating-point types a Graph may be instantiated
// over. Polymorphism is realized entirely through generic instantiation —
// there is no runtime dispatch on weight type anywhere in this package.
type Weight interface {
	~float32 | ~float64
}

// Graph is a read-only-from-the-caller CSR view of a weighted, undirected
// graph: Offsets has length n+1, Indices and Weights both have length m and
// are parallel arrays, and adj(v) = Indices[Offsets[v]:Offsets[v+1]].
//
// The graph is treated as undirected: callers are expected to have already
// materialized both directions of every edge (u->v,w) and (v->u,w). Run
// takes ownership of a private working copy and mutates it level-to-level;
// the caller's Graph is never modified.
type Graph[W Weight] struct {
	Offsets []int32
	Indices []int32
	Weights []W
}

// N returns the vertex count of g.
func (g *Graph[W]) N() int32 {
	if len(g.Offsets) == 0 {
		return 0
	}

	return int32(len(g.Offsets) - 1)
}

// M returns the edge count of g (including both directions of every pair).
func (g *Graph[W]) M() int32 {
	return int32(len(g.Indices))
}

// Neighbors returns the adjacency slice of v: parallel neighbor-id and
// edge-weight slices, in the order they appear in the CSR row for v.
func (g *Graph[W]) Neighbors(v int32) ([]int32, []W) {
	lo, hi := g.Offsets[v], g.Offsets[v+1]

	return g.Indices[lo:hi], g.Weights[lo:hi]
}

// validate checks the CSR invariants from spec §3/§7:
//   - n >= 1, m >= 0
//   - len(Offsets) == n+1, len(Indices) == len(Weights) == m
//   - Offsets is non-decreasing, Offsets[0] == 0, Offsets[n] == m
//   - every index in Indices lies in [0, n)
//   - every weight is finite and non-negative
//
// It does not check m2 == 0, since a zero-edge graph is a valid, successful
// boundary case (spec §8), not an error: Modularity returns 0 for m2 == 0
// and the sweep finds no neighbor to move to.
func (g *Graph[W]) validate() error {
	n := len(g.Offsets) - 1
	if n < 1 {
		return fmt.Errorf("%w: graph has fewer than 1 vertex", ErrInvalidGraph)
	}
	if len(g.Indices) != len(g.Weights) {
		return fmt.Errorf("%w: indices/weights length mismatch (%d vs %d)", ErrInvalidGraph, len(g.Indices), len(g.Weights))
	}
	m := len(g.Indices)
	if g.Offsets[0] != 0 {
		return fmt.Errorf("%w: offsets[0] must be 0, got %d", ErrInvalidGraph, g.Offsets[0])
	}
	if int(g.Offsets[n]) != m {
		return fmt.Errorf("%w: offsets[n]=%d does not match edge count %d", ErrInvalidGraph, g.Offsets[n], m)
	}
	for v := 0; v < n; v++ {
		if g.Offsets[v] > g.Offsets[v+1] {
			return fmt.Errorf("%w: offsets not non-decreasing at vertex %d", ErrInvalidGraph, v)
		}
	}
	for i, idx := range g.Indices {
		if idx < 0 || int(idx) >= n {
			return fmt.Errorf("%w: neighbor index %d at edge %d out of range [0,%d)", ErrInvalidGraph, idx, i, n)
		}
	}
	for i, w := range g.Weights {
		fw := float64(w)
		if math.IsNaN(fw) || math.IsInf(fw, 0) {
			return fmt.Errorf("%w: non-finite weight at edge %d", ErrInvalidGraph, i)
		}
		if fw < 0 {
			return fmt.Errorf("%w: negative weight %v at edge %d", ErrInvalidGraph, w, i)
		}
	}

	return nil
}

// Options configures a call to Run.
type Options struct {
	// Ctx carries cancellation; checked at the start of every outer level,
	// including the first. This
	// realizes spec §6's opaque "stream" handle in idiomatic Go.
	Ctx context.Context

	// MaxIter caps the number of outer (dendrogram) levels. Zero means
	// unlimited — a safety bound, not expected to trigger (spec §4.6).
	MaxIter int

	// Workers is the fan-out for the data-parallel kernels (C1, C2, and C5
	// stage 1). Values <= 1 run those kernels on the calling goroutine.
	Workers int

	// ParallelSweep opts into the mutex-striped concurrent variant of the
	// local-move sweep (C3). Off by default: the reference semantics are
	// the sequential per-vertex sweep (spec §4.3, §9).
	ParallelSweep bool

	// OnLevel, if non-nil, is invoked after every completed outer level
	// with the level index (0-based), the surviving cluster count, and the
	// modularity achieved at that level.
	OnLevel func(level int, clusters int32, modularity float64)

	// internal error recorded during option application, surfaced by Run.
	err error
}

// Option configures Options via functional arguments, matching the
// WithXxx(...) convention used throughout lvlath (bfs.Option,
// dijkstra.Option, prim_kruskal.Option).
type Option func(*Options)

// DefaultOptions returns an Options with sane defaults:
//   - Ctx:            context.Background()
//   - MaxIter:        0 (unlimited)
//   - Workers:        runtime.GOMAXPROCS(0)
//   - ParallelSweep:  false
//   - OnLevel:        nil (no hook)
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxIter: 0,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithContext sets a custom cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxIter caps the number of outer levels. A negative value is an
// invalid option and is surfaced as ErrInvalidGraph-wrapped error by Run.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIter cannot be negative (%d)", ErrInvalidGraph, n)
			return
		}
		o.MaxIter = n
	}
}

// WithWorkers sets the data-parallel fan-out. n <= 0 is treated as 1
// (single-goroutine, fully sequential kernels).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = 1
		}
		o.Workers = n
	}
}

// WithParallelSweep enables the mutex-striped concurrent sweep.
func WithParallelSweep() Option {
	return func(o *Options) {
		o.ParallelSweep = true
	}
}

// WithOnLevel registers a per-level progress hook.
func WithOnLevel(fn func(level int, clusters int32, modularity float64)) Option {
	return func(o *Options) {
		o.OnLevel = fn
	}
}

// apply folds opts onto DefaultOptions(), returning the recorded option
// error (if any).
func apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	return o, nil
}

// Result holds the outcome of a successful Run: the dendrogram depth
// reached, the modularity of the deepest completed level, and the final
// per-original-vertex cluster label vector (spec §3's "top-level label
// vector L").
type Result[W Weight] struct {
	// Labels maps each original-graph vertex id to its cluster id at the
	// deepest completed level. len(Labels) == input graph's N(). Values lie
	// in [0, ClusterCount).
	Labels []int32

	// ClusterCount is the number of distinct clusters at the deepest
	// completed level (k in spec §4.4's post-condition).
	ClusterCount int32

	// BestModularity is the modularity of the deepest completed level, in
	// the same floating-point precision the graph was instantiated with.
	BestModularity W

	// Levels is the number of completed dendrogram levels: the outer
	// iterations in which at least one vertex moved. The final iteration,
	// which finds no move, is not counted.
	Levels int
}
