// Package louvain provides a production-grade implementation of the Louvain
// modularity-maximization algorithm for community detection on large
// weighted, undirected graphs stored in compressed sparse row (CSR) form.
//
// What
//
//   - Input: a CSR-encoded weighted undirected graph (Graph[W]).
//   - Output: a Result[W] holding the finest-level per-vertex cluster label,
//     the number of dendrogram levels completed, and the modularity achieved.
//   - The algorithm alternates two phases until no vertex moves:
//   - Local-move phase: greedily relocate each vertex into the neighboring
//     cluster that most increases modularity Q.
//   - Aggregation phase: collapse every cluster into a single super-vertex
//     and repeat on the contracted graph.
//
// Why
//
//   - Louvain is the standard fast heuristic for modularity maximization: it
//     scales near-linearly in practice and produces a hierarchical clustering
//     (a dendrogram) usable at any resolution by stopping early.
//   - Unlike a guaranteed-optimal partition (NP-hard to compute), Louvain
//     trades global optimality for speed: it is a greedy local search.
//
// Determinism
//
//	The local-move sweep (move.go) processes vertices in ascending id order
//	and breaks ties between equally-good moves by preferring the neighbor
//	cluster encountered earliest in the vertex's adjacency list. The
//	super-vertex contraction (contract.go) uses a stable sort over
//	(cluster-of-source, cluster-of-destination) pairs, so the result is
//	reproducible for a fixed input ordering. Enabling Options.ParallelSweep
//	trades this exact reproducibility for throughput — see Options.
//
// Complexity (n = vertices, m = edges, at the current dendrogram level)
//
//   - Vertex-weight reduction (C1): O(m)
//   - Modularity evaluation (C2): O(m) per call
//   - One sweep (C3): O(m) amortized over the pass
//   - Compaction (C4): O(n log n)
//   - Contraction (C5): O(m log m) dominated by the stable sort
//   - Overall: O((n+m) log(n+m)) per dendrogram level, a small constant
//     number of levels in practice (O(log n) for well-behaved graphs).
//
// Usage
//
//	res, err := louvain.Run(g, louvain.WithContext(ctx), louvain.WithWorkers(8))
//	if err != nil {
//	    // one of ErrInvalidGraph, ErrNumericalDegeneracy, context.Canceled
//	}
//	fmt.Printf("levels=%d Q=%.4f labels=%v\n", res.Levels, res.BestModularity, res.Labels)
//
// Options
//
//   - DefaultOptions(): MaxIter unlimited (0), Workers = runtime.GOMAXPROCS(0),
//     ParallelSweep = false, Ctx = context.Background(), no-op OnLevel hook.
//   - WithMaxIter(n): cap the number of outer (dendrogram) levels.
//   - WithWorkers(n): set the data-parallel fan-out for C1/C2/C5; n<=1 runs
//     those kernels on the calling goroutine.
//   - WithParallelSweep(): opt into the mutex-striped concurrent sweep variant
//     of C3 (see move.go); off by default because it does not reproduce the
//     sequential ΔQ trajectory exactly, only the "Q is non-decreasing and
//     every accepted move strictly increases it" guarantee.
//   - WithContext(ctx): cancellation, checked once per outer level.
//   - WithOnLevel(fn): hook invoked after each completed outer level with
//     (level index, surviving cluster count, modularity at that level).
//
// Errors
//
//   - ErrInvalidGraph    if the input CSR graph fails validation.
//   - ErrNumericalDegeneracy if rounding pushes a cluster weight negative
//     beyond tolerance, or modularity evaluates to NaN — both indicate a
//     programming defect per spec, not a recoverable condition.
//   - context.Canceled / context.DeadlineExceeded if opts.Ctx is done.
package louvain
