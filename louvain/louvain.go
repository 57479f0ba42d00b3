package louvain

// Run executes C6, the dendrogram driver: it alternates the inner
// local-move loop (C2/C3) with compaction (C4) and super-vertex
// contraction (C5) until an outer level completes with no vertex having
// moved, then returns the modularity and cluster labels of the deepest
// completed level.
//
// Run never mutates g; it works against a private copy of g's CSR arrays
// that it contracts level by level, per spec §3's "the driver exclusively
// owns the working graph."
//
// Pseudocode (spec §4.6), transcribed directly:
//
//	L[i] <- i for i in [0, n0)
//	G'   <- copy of input graph
//	loop:
//	    k  <- compute_vertex_sums(G')
//	    sigma <- copy of k
//	    Q  <- inner_loop(G', k, sigma, C)
//	    if C[v] == v for every v in G':
//	        break
//	    best_Q <- Q
//	    kk <- compact(C, L)
//	    resize sigma to length kk
//	    G' <- contract(G', kk, C)
//	    C[v] <- v for v in [0, kk)
//	return best_Q, L
//
// Note that best_Q is only ever assigned inside the non-breaking branch:
// if the very first level already finds no improving move (spec §8's n=1,
// edgeless, and self-loop-only boundary cases), best_Q keeps its zero
// value and Run reports modularity 0 — this is the literal, intentional
// behavior of the pseudocode, not an omission.
func Run[W Weight](g *Graph[W], optFns ...Option) (*Result[W], error) {
	opts, err := apply(optFns...)
	if err != nil {
		return nil, err
	}
	if err := g.validate(); err != nil {
		return nil, err
	}

	n0 := g.N()
	labels := identity(n0)

	work := &Graph[W]{
		Offsets: append([]int32(nil), g.Offsets...),
		Indices: append([]int32(nil), g.Indices...),
		Weights: append([]W(nil), g.Weights...),
	}

	var m2 W
	for _, w := range work.Weights {
		m2 += w
	}

	c := identity(work.N())
	var bestQ W
	levels := 0

	for {
		if err := opts.Ctx.Err(); err != nil {
			return nil, err
		}
		if opts.MaxIter > 0 && levels >= opts.MaxIter {
			break
		}

		k := VertexWeights(work, opts.Workers)
		sigma := append([]W(nil), k...)

		q, err := innerLoop(work, k, sigma, c, m2, opts)
		if err != nil {
			return nil, err
		}

		if isIdentity(c) {
			break
		}

		bestQ = q
		levels++

		kk := Compact(c, labels)
		work = Contract(work, kk, c, opts.Workers)
		c = identity(kk)

		if opts.OnLevel != nil {
			opts.OnLevel(levels-1, kk, float64(q))
		}
	}

	return &Result[W]{
		Labels:         labels,
		ClusterCount:   work.N(),
		BestModularity: bestQ,
		Levels:         levels,
	}, nil
}

// identity returns a slice of length n with v[i] == i, the initial value of
// both the cluster vector C and the top-level label vector L (spec §3).
func identity(n int32) []int32 {
	id := make([]int32, n)
	for i := range id {
		id[i] = int32(i)
	}

	return id
}

// isIdentity reports whether c[v] == v for every v — the outer-loop
// termination test of spec §4.6, valid only because c is reset to identity
// at the start of every level (spec §9 Open Questions).
func isIdentity(c []int32) bool {
	for v, cv := range c {
		if cv != int32(v) {
			return false
		}
	}

	return true
}
