package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-graphflow/graphflow/core"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.True(t, g.HasVertex("A"))
	require.Equal(t, 1, g.VertexCount())

	// Idempotent re-add.
	require.NoError(t, g.AddVertex("A"))
	require.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdgeUndirected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 2.5)
	require.NoError(t, err)
	require.NotEmpty(t, eid)

	// Endpoints created implicitly; adjacency mirrored both ways.
	require.True(t, g.HasVertex("A"))
	require.True(t, g.HasVertex("B"))
	require.True(t, g.HasEdge("A", "B"))
	require.True(t, g.HasEdge("B", "A"))

	w, err := g.EdgeWeight("B", "A")
	require.NoError(t, err)
	require.Equal(t, 2.5, w)
}

func TestAddEdgeDirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	require.True(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("B", "A"))

	nbrs, err := g.NeighborIDs("B")
	require.NoError(t, err)
	require.Empty(t, nbrs)

	nbrs, err = g.NeighborIDs("A")
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, nbrs)
}

func TestAddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 3)
	require.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "A", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// Undirected mirror also blocks the reverse orientation.
	_, err = g.AddEdge("B", "A", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestMultiAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	_, err := g.AddEdge("A", "A", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 7)
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())

	// EdgeWeight returns the lightest parallel edge.
	w, err := g.EdgeWeight("A", "B")
	require.NoError(t, err)
	require.Equal(t, 1.0, w)
}

func TestRemoveVertexCascades(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex("B"))
	require.False(t, g.HasVertex("B"))
	require.Equal(t, 0, g.EdgeCount())
	require.False(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("C", "B"))

	require.ErrorIs(t, g.RemoveVertex("Z"), core.ErrVertexNotFound)
}

func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	require.NoError(t, g.RemoveEdge(eid))
	require.False(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("B", "A"))
	require.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)
}

func TestVerticesAndEdgesSorted(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, pair := range [][2]string{{"C", "A"}, {"B", "C"}, {"A", "B"}} {
		_, err := g.AddEdge(pair[0], pair[1], 1)
		require.NoError(t, err)
	}
	require.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 3)
	for i := 1; i < len(edges); i++ {
		require.Less(t, edges[i-1].ID, edges[i].ID)
	}
}

func TestDegree(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "D", 1)
	require.NoError(t, err)

	in, out, und, err := g.Degree("B")
	require.NoError(t, err)
	require.Equal(t, 2, in)
	require.Equal(t, 1, out)
	require.Equal(t, 0, und)

	u := core.NewGraph()
	_, err = u.AddEdge("X", "Y", 0)
	require.NoError(t, err)
	_, _, und, err = u.Degree("X")
	require.NoError(t, err)
	require.Equal(t, 1, und)
}

func TestCloneIndependence(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 4)
	require.NoError(t, err)

	c := g.Clone()
	require.True(t, c.HasEdge("A", "B"))
	require.Equal(t, g.Weighted(), c.Weighted())

	// Mutating the clone must not leak into the original.
	_, err = c.AddEdge("B", "C", 1)
	require.NoError(t, err)
	require.False(t, g.HasVertex("C"))

	ce := c.CloneEmpty()
	require.True(t, ce.HasVertex("A"))
	require.Equal(t, 0, ce.EdgeCount())
}

func TestFilterEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 9)
	require.NoError(t, err)

	g.FilterEdges(func(e *core.Edge) bool { return e.Weight < 5 })
	require.True(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("B", "C"))
}

func TestClear(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	g.Clear()
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	require.True(t, g.Directed())
	require.True(t, g.Weighted())
}
