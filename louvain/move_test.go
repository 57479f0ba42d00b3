// File: louvain/move_test.go
package louvain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleGraphInternal() *Graph[float64] {
	return &Graph[float64]{
		Offsets: []int32{0, 2, 4, 6},
		Indices: []int32{1, 2, 0, 2, 0, 1},
		Weights: []float64{1, 1, 1, 1, 1, 1},
	}
}

func TestSweep_TriangleMergesIntoOneCluster(t *testing.T) {
	g := triangleGraphInternal()
	c := []int32{0, 1, 2}
	k := VertexWeights(g, 1)
	sigma := append([]float64(nil), k...)

	moved, err := sweep(g, k, sigma, c, 6)
	require.NoError(t, err)
	assert.True(t, moved)
	// every vertex should end up in the same cluster — a K3 clique always
	// strictly benefits from full merger.
	assert.Equal(t, c[0], c[1])
	assert.Equal(t, c[1], c[2])
}

func TestSweep_NoNeighborsNeverMoves(t *testing.T) {
	g := &Graph[float64]{Offsets: []int32{0, 0, 0}, Indices: []int32{}, Weights: []float64{}}
	c := []int32{0, 1}
	k := []float64{0, 0}
	sigma := []float64{0, 0}

	moved, err := sweep(g, k, sigma, c, 0)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, []int32{0, 1}, c)
}

func TestSweep_TieBreaksOnEarliestAdjacencyOccurrence(t *testing.T) {
	// vertex 0 is equally attracted to clusters 1 and 2 (both one unit-weight
	// edge); cluster 1 appears first in 0's adjacency list and must win.
	g := &Graph[float64]{
		Offsets: []int32{0, 2, 3, 4},
		Indices: []int32{1, 2, 0, 0},
		Weights: []float64{1, 1, 1, 1},
	}
	c := []int32{0, 1, 2}
	k := VertexWeights(g, 1)
	sigma := append([]float64(nil), k...)

	var m2 float64
	for _, w := range g.Weights {
		m2 += w
	}

	_, err := sweep(g, k, sigma, c, m2)
	require.NoError(t, err)
	assert.Equal(t, int32(1), c[0])
}

func TestSweepParallel_FallsBackToSequentialForOneWorker(t *testing.T) {
	g := triangleGraphInternal()
	c1 := []int32{0, 1, 2}
	c2 := []int32{0, 1, 2}
	k := VertexWeights(g, 1)
	sigma1 := append([]float64(nil), k...)
	sigma2 := append([]float64(nil), k...)

	moved1, err1 := sweep(g, k, sigma1, c1, 6)
	require.NoError(t, err1)
	moved2, err2 := sweepParallel(g, k, sigma2, c2, 6, 1)
	require.NoError(t, err2)

	assert.Equal(t, moved1, moved2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, sigma1, sigma2)
}

func TestSweepParallel_ConvergesToAllClustersMerged(t *testing.T) {
	g := triangleGraphInternal()
	c := []int32{0, 1, 2}
	k := VertexWeights(g, 1)
	sigma := append([]float64(nil), k...)

	moved, err := sweepParallel(g, k, sigma, c, 6, 4)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, c[0], c[1])
	assert.Equal(t, c[1], c[2])
}

func TestInnerLoop_StopsWhenModularityStopsImproving(t *testing.T) {
	g := triangleGraphInternal()
	c := []int32{0, 1, 2}
	k := VertexWeights(g, 1)
	sigma := append([]float64(nil), k...)

	q, err := innerLoop(g, k, sigma, c, 6, DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0.0, q, 1e-9)
	assert.Equal(t, c[0], c[1])
	assert.Equal(t, c[1], c[2])
}
