package prim_kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-graphflow/graphflow/core"
	pk "github.com/go-graphflow/graphflow/prim_kruskal"
)

// diamond builds a 4-cycle with one chord:
//
//	A-B (1), B-C (2), C-D (3), D-A (4), A-C (5)
//
// MST = {A-B, B-C, C-D}, weight 6.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	edges := []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 1}, {"B", "C", 2}, {"C", "D", 3}, {"D", "A", 4}, {"A", "C", 5},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	return g
}

func mstWeight(edges []core.Edge) float64 {
	var w float64
	for _, e := range edges {
		w += e.Weight
	}
	return w
}

func TestKruskalDiamond(t *testing.T) {
	mst, total, err := pk.Kruskal(diamond(t))
	require.NoError(t, err)
	require.Len(t, mst, 3)
	require.Equal(t, 6.0, total)
	require.Equal(t, total, mstWeight(mst))
}

func TestPrimDiamond(t *testing.T) {
	mst, total, err := pk.Prim(diamond(t), "A")
	require.NoError(t, err)
	require.Len(t, mst, 3)
	require.Equal(t, 6.0, total)
}

func TestPrimKruskalAgree(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	edges := []struct {
		u, v string
		w    float64
	}{
		{"a", "b", 4}, {"a", "h", 8}, {"b", "h", 11}, {"b", "c", 8},
		{"c", "i", 2}, {"c", "f", 4}, {"c", "d", 7}, {"d", "e", 9},
		{"d", "f", 14}, {"e", "f", 10}, {"f", "g", 2}, {"g", "i", 6},
		{"g", "h", 1}, {"h", "i", 7},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	_, kw, err := pk.Kruskal(g)
	require.NoError(t, err)
	_, pw, err := pk.Prim(g, "a")
	require.NoError(t, err)
	require.Equal(t, 37.0, kw) // CLRS figure value
	require.Equal(t, kw, pw)
}

func TestValidation(t *testing.T) {
	_, _, err := pk.Kruskal(nil)
	require.ErrorIs(t, err, pk.ErrInvalidGraph)

	unweighted := core.NewGraph()
	_, _, err = pk.Kruskal(unweighted)
	require.ErrorIs(t, err, pk.ErrInvalidGraph)

	directed := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _, err = pk.Kruskal(directed)
	require.ErrorIs(t, err, pk.ErrInvalidGraph)

	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("A"))
	_, _, err = pk.Prim(g, "")
	require.ErrorIs(t, err, pk.ErrEmptyRoot)
	_, _, err = pk.Prim(g, "Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestDisconnected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "D", 1)
	require.NoError(t, err)

	_, _, err = pk.Kruskal(g)
	require.ErrorIs(t, err, pk.ErrDisconnected)
	_, _, err = pk.Prim(g, "A")
	require.ErrorIs(t, err, pk.ErrDisconnected)
}

func TestSingleVertex(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("A"))

	mst, total, err := pk.Kruskal(g)
	require.NoError(t, err)
	require.Empty(t, mst)
	require.Zero(t, total)
}

func TestCompute(t *testing.T) {
	g := diamond(t)
	_, kw, err := pk.Compute(g, pk.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 6.0, kw)

	opts := pk.MSTOptions{}
	pk.WithMethod(pk.MethodPrim)(&opts)
	pk.WithRoot("B")(&opts)
	_, pw, err := pk.Compute(g, opts)
	require.NoError(t, err)
	require.Equal(t, 6.0, pw)

	_, _, err = pk.Compute(g, pk.MSTOptions{Method: "boruvka"})
	require.ErrorIs(t, err, pk.ErrInvalidGraph)
}

func TestDSU(t *testing.T) {
	d := pk.NewDSU([]string{"a", "b", "c"})
	require.True(t, d.Union("a", "b"))
	require.False(t, d.Union("b", "a"))
	require.Equal(t, d.Find("a"), d.Find("b"))
	require.NotEqual(t, d.Find("a"), d.Find("c"))

	d.Add("d")
	require.True(t, d.Union("c", "d"))
}
