package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-graphflow/graphflow/core"
	"github.com/go-graphflow/graphflow/dfs"
)

func TestPreorderTree(t *testing.T) {
	//     A
	//    / \
	//   B   C
	//   |
	//   D
	g := core.NewGraph()
	for _, pair := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	order, err := dfs.Preorder(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "C"}, order)
}

func TestPreorderDirectedReachability(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", 0)
	require.NoError(t, err)

	order, err := dfs.Preorder(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, order)
}

func TestPreorderErrors(t *testing.T) {
	_, err := dfs.Preorder(nil, "A")
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	_, err = dfs.Preorder(g, "Z")
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}
