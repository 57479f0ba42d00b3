package louvain_test

import (
	"testing"

	"github.com/katalvlaran/louvain/louvain"
	"github.com/stretchr/testify/assert"
)

func totalWeight(g *louvain.Graph[float64]) float64 {
	var sum float64
	for _, w := range g.Weights {
		sum += w
	}
	return sum
}

func TestContract_TriangleCollapsesToSingleSelfLoop(t *testing.T) {
	g := triangleGraph()
	c := []int32{0, 0, 0}

	out := louvain.Contract(g, 1, c, 1)

	assert.Equal(t, int32(1), out.N())
	assert.Equal(t, []int32{0, 1}, out.Offsets)
	assert.Equal(t, []int32{0}, out.Indices)
	assert.Equal(t, []float64{6}, out.Weights) // all 6 directed CSR entries fold into one self-loop
}

func TestContract_TwoDisjointTrianglesStaySeparate(t *testing.T) {
	g := twoDisjointTrianglesGraph()
	c := []int32{0, 0, 0, 1, 1, 1}

	out := louvain.Contract(g, 2, c, 1)

	assert.Equal(t, int32(2), out.N())
	assert.Equal(t, []int32{0, 1, 2}, out.Offsets)
	assert.Equal(t, []int32{0, 1}, out.Indices)
	assert.Equal(t, []float64{6, 6}, out.Weights)
}

// pathP3Graph builds the three-vertex path 0-1-2 with unit weights.
func pathP3Graph() *louvain.Graph[float64] {
	return &louvain.Graph[float64]{
		Offsets: []int32{0, 1, 3, 4},
		Indices: []int32{1, 0, 2, 1},
		Weights: []float64{1, 1, 1, 1},
	}
}

func TestContract_PathMergesOneEndIntoSelfLoopPlusCrossEdge(t *testing.T) {
	g := pathP3Graph()
	c := []int32{0, 1, 1} // vertex 0 alone, {1,2} merged

	out := louvain.Contract(g, 2, c, 1)

	assert.Equal(t, int32(2), out.N())
	assert.Equal(t, []int32{0, 1, 3}, out.Offsets)
	assert.Equal(t, []int32{1, 0, 1}, out.Indices)
	assert.Equal(t, []float64{1, 1, 2}, out.Weights)
}

func TestContract_PreservesTotalEdgeWeight(t *testing.T) {
	g := twoDisjointTrianglesGraph()
	c := []int32{0, 0, 1, 1, 2, 2} // arbitrary non-trivial clustering

	out := louvain.Contract(g, 3, c, 1)

	assert.InDelta(t, totalWeight(g), totalWeight(out), 1e-9)
}

func TestContract_WorkerFanOutAgreesWithSequential(t *testing.T) {
	g := twoDisjointTrianglesGraph()
	c := []int32{0, 0, 0, 1, 1, 1}

	seq := louvain.Contract(g, 2, c, 1)
	par := louvain.Contract(g, 2, c, 4)

	assert.Equal(t, seq.Offsets, par.Offsets)
	assert.Equal(t, seq.Indices, par.Indices)
	assert.Equal(t, seq.Weights, par.Weights)
}
