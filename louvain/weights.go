package louvain

// VertexWeights computes C1: the vertex-weight vector k, where k[v] is the
// sum of the weights of every edge incident to v in g (self-loops count
// once per occurrence in the CSR row, matching how they appear in the
// adjacency list). Each vertex's sum is independent of every other's, so
// the reduction is purely data-parallel: workers partition the vertex range
// and each worker owns disjoint output slots.
//
// Complexity: O(m). Memory: O(n) for the result.
func VertexWeights[W Weight](g *Graph[W], workers int) []W {
	n := int(g.N())
	k := make([]W, n)
	parallelFor(n, workers, func(lo, hi int) {
		for v := lo; v < hi; v++ {
			_, ws := g.Neighbors(int32(v))
			var sum W
			for _, w := range ws {
				sum += w
			}
			k[v] = sum
		}
	})

	return k
}
