package louvain

import "sort"

// contractedEdge is one (remapped-source, remapped-destination, weight)
// triple produced by C5 step 1-2, before the stable sort and reduce-by-key
// of steps 3-4.
type contractedEdge[W Weight] struct {
	src, dst int32
	w        W
}

// Contract performs C5: it builds the super-vertex graph for the next
// dendrogram level, where each of the k surviving clusters in c becomes one
// vertex and parallel edges (including the self-loops formed by
// intra-cluster edges) are merged by summing their weights.
//
// Steps (spec §4.5):
//  1. Expand g's CSR row pointers into a per-edge source array — run
//     data-parallel via parallelFor, since each edge slot is written by
//     exactly one goroutine and no edge depends on another.
//  2. Remap endpoints: src' <- c[src], dst' <- c[dst]; weight unchanged.
//  3. Stable-sort edges lexicographically by (src', dst') — required only
//     for determinism given a fixed input order (spec §4.5).
//  4. Reduce-by-key on (src', dst'), summing weights.
//  5. Rebuild the CSR offsets from the sorted, reduced edge list.
//
// Post-condition: the returned graph has k vertices and the same total
// edge weight (including self-loops) as g — spec §4.5, verified by the
// property tests in contract_test.go.
func Contract[W Weight](g *Graph[W], k int32, c []int32, workers int) *Graph[W] {
	m := int(g.M())
	edges := make([]contractedEdge[W], m)

	// Step 1-2: expand + remap, data-parallel per edge-owning vertex.
	n := int(g.N())
	parallelFor(n, workers, func(lo, hi int) {
		for v := lo; v < hi; v++ {
			start, end := g.Offsets[v], g.Offsets[v+1]
			cv := c[v]
			for e := start; e < end; e++ {
				edges[e] = contractedEdge[W]{
					src: cv,
					dst: c[g.Indices[e]],
					w:   g.Weights[e],
				}
			}
		}
	})

	// Step 3: stable sort by (src', dst').
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].src != edges[j].src {
			return edges[i].src < edges[j].src
		}
		return edges[i].dst < edges[j].dst
	})

	// Step 4: reduce-by-key.
	newIndices := make([]int32, 0, m)
	newWeights := make([]W, 0, m)
	srcOfReduced := make([]int32, 0, m)
	for i := 0; i < len(edges); {
		j := i
		var sum W
		for j < len(edges) && edges[j].src == edges[i].src && edges[j].dst == edges[i].dst {
			sum += edges[j].w
			j++
		}
		srcOfReduced = append(srcOfReduced, edges[i].src)
		newIndices = append(newIndices, edges[i].dst)
		newWeights = append(newWeights, sum)
		i = j
	}

	// Step 5: rebuild CSR offsets via counting, since srcOfReduced is
	// already sorted ascending (a consequence of the stable sort above).
	offsets := make([]int32, k+1)
	for _, s := range srcOfReduced {
		offsets[s+1]++
	}
	for v := int32(0); v < k; v++ {
		offsets[v+1] += offsets[v]
	}

	return &Graph[W]{
		Offsets: offsets,
		Indices: newIndices,
		Weights: newWeights,
	}
}
