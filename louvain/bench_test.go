package louvain_test

import (
	"testing"

	"github.com/katalvlaran/louvain/louvain"
)

// ringOfTriangles builds numTriangles disjoint K3 components, giving a graph
// whose optimal clustering is known (one cluster per triangle) while letting
// the vertex count scale for benchmarking.
func ringOfTriangles(numTriangles int) *louvain.Graph[float64] {
	n := int32(numTriangles * 3)
	offsets := make([]int32, n+1)
	indices := make([]int32, 0, n*2)
	weights := make([]float64, 0, n*2)

	for t := 0; t < numTriangles; t++ {
		base := int32(t * 3)
		tri := [3]int32{base, base + 1, base + 2}
		for i, v := range tri {
			offsets[v] = int32(len(indices))
			for j, u := range tri {
				if j == i {
					continue
				}
				indices = append(indices, u)
				weights = append(weights, 1)
			}
		}
	}
	offsets[n] = int32(len(indices))

	return &louvain.Graph[float64]{Offsets: offsets, Indices: indices, Weights: weights}
}

// benchmarkRun is a helper that runs Run on a ring-of-triangles graph of the
// given size using opts. It resets the timer before entering the loop and
// fails on unexpected errors.
func benchmarkRun(b *testing.B, numTriangles int, opts ...louvain.Option) {
	g := ringOfTriangles(numTriangles)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := louvain.Run(g, opts...); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkRun_Small100Triangles benchmarks the default sequential sweep on
// a small graph of 300 vertices.
func BenchmarkRun_Small100Triangles(b *testing.B) {
	benchmarkRun(b, 100)
}

// BenchmarkRun_Medium1000Triangles benchmarks the default sequential sweep
// on a medium graph of 3000 vertices.
func BenchmarkRun_Medium1000Triangles(b *testing.B) {
	benchmarkRun(b, 1000)
}

// BenchmarkRun_ParallelWeightsAndModularity benchmarks with a worker fan-out
// for the data-parallel kernels (C1/C2/C5), sweep still sequential.
func BenchmarkRun_ParallelWeightsAndModularity(b *testing.B) {
	benchmarkRun(b, 1000, louvain.WithWorkers(8))
}

// BenchmarkRun_ParallelSweep benchmarks the opt-in mutex-striped concurrent
// sweep variant against the same graph size.
func BenchmarkRun_ParallelSweep(b *testing.B) {
	benchmarkRun(b, 1000, louvain.WithWorkers(8), louvain.WithParallelSweep())
}
