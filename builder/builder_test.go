package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/go-graphflow/graphflow/builder"
	"github.com/go-graphflow/graphflow/core"
)

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.True(t, g.HasEdge("0", "1"))
	require.True(t, g.HasEdge("2", "3"))
	require.False(t, g.HasEdge("0", "3"))

	_, err = builder.BuildGraph(nil, nil, builder.Path(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.EdgeCount())
	require.True(t, g.HasEdge("4", "0"))
}

func TestCompleteAndStar(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	require.Equal(t, 10, g.EdgeCount())

	s, err := builder.BuildGraph(nil, nil, builder.Star(5))
	require.NoError(t, err)
	require.Equal(t, 4, s.EdgeCount())
	nbrs, err := s.NeighborIDs("0")
	require.NoError(t, err)
	require.Len(t, nbrs, 4)
}

func TestRandomSparseDeterminism(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(42)},
			builder.RandomSparse(20, 0.3))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	for _, e := range a.Edges() {
		require.True(t, b.HasEdge(e.From, e.To))
	}

	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(5, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestWeightedAndIDOptions(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{
			builder.WithIDFn(func(i int) string { return string(rune('a' + i)) }),
			builder.WithWeightFn(func(_ *rand.Rand) float64 { return 2.5 }),
		},
		builder.Path(3))
	require.NoError(t, err)
	require.True(t, g.HasEdge("a", "b"))

	w, err := g.EdgeWeight("b", "c")
	require.NoError(t, err)
	require.Equal(t, 2.5, w)
}
