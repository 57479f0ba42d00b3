package louvain

import (
	"fmt"
	"math"
)

// Modularity computes C2, the modularity Q of the clustering c over graph g,
// given per-vertex weights k, per-cluster weights sigma, and m2 (twice the
// total edge weight, constant for the run).
//
// Per spec §4.2:
//
//	S = Σ_v [ A_v − k_v·(m2 − Σ_C[v]) / m2 ]
//	Q = −S / m2
//
// where A_v is the sum of edge weights leaving v's cluster (edges (v,u)
// with C[u] != C[v]). The source formula computes an "energy" to minimize;
// Modularity returns its negation so that callers can treat the result as
// the conventional, maximized modularity score (spec §4.2, §9 Open
// Questions: this package adopts the "higher is better" convention).
//
// The per-vertex terms are independent, so the sum is computed through a
// chunked, data-parallel reduction (spec §4.2: "data-parallel per vertex;
// final reduction is a sum over the per-vertex contributions"): each chunk
// owns a private accumulator slot, and the slots are added up on the
// calling goroutine once every chunk has retired.
//
// Complexity: O(m). Memory: O(workers).
func Modularity[W Weight](g *Graph[W], c []int32, k, sigma []W, m2 W, workers int) (W, error) {
	if m2 == 0 {
		return 0, nil
	}

	n := int(g.N())
	partial := make([]W, max(1, min(workers, n)))

	numChunks := parallelForChunks(n, workers, func(chunkIdx, lo, hi int) {
		var local W
		for v := lo; v < hi; v++ {
			cv := c[v]
			nbrs, ws := g.Neighbors(int32(v))
			var a W
			for i, u := range nbrs {
				if c[u] != cv {
					a += ws[i]
				}
			}
			local += a - (k[v]/m2)*(m2-sigma[cv])
		}
		partial[chunkIdx] += local
	})

	var s W
	for i := 0; i < numChunks; i++ {
		s += partial[i]
	}
	// 0 - s rather than -s, so a zero sum yields +0 and not -0.
	q := (0 - s) / m2
	if math.IsNaN(float64(q)) {
		return 0, fmt.Errorf("%w: modularity evaluated to NaN", ErrNumericalDegeneracy)
	}

	return q, nil
}
