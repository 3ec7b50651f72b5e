package augment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-graphflow/graphflow/augment"
	"github.com/go-graphflow/graphflow/builder"
	"github.com/go-graphflow/graphflow/connectivity"
	"github.com/go-graphflow/graphflow/core"
)

// pathGraph builds an undirected path over the given vertex names.
func pathGraph(t *testing.T, names ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i < len(names); i++ {
		_, err := g.AddEdge(names[i-1], names[i], 0)
		require.NoError(t, err)
	}
	return g
}

// applied returns a copy of g with the augmentation edges added.
func applied(t *testing.T, g *core.Graph, edges [][2]string) *core.Graph {
	t.Helper()
	h := g.Clone()
	for _, p := range edges {
		_, err := h.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
	return h
}

func TestOneEdgeAugmentationUnconstrained(t *testing.T) {
	g := pathGraph(t, "1", "2", "3", "4")
	require.NoError(t, g.AddVertex("5"))

	edges, err := augment.KEdgeAugmentation(g, 1, augment.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, [][2]string{{"1", "5"}}, edges)
}

func TestOneEdgeAugmentationWeighted(t *testing.T) {
	g := pathGraph(t, "1", "2", "3", "4")
	require.NoError(t, g.AddVertex("5"))

	opts := augment.DefaultOptions()
	opts.Avail = []augment.Candidate{
		{U: "1", V: "5", Weight: 11},
		{U: "2", V: "5", Weight: 10},
	}
	edges, err := augment.KEdgeAugmentation(g, 1, opts)
	require.NoError(t, err)
	require.Equal(t, [][2]string{{"2", "5"}}, edges)
}

func TestOneEdgeAugmentationInfeasible(t *testing.T) {
	g := pathGraph(t, "1", "2")
	require.NoError(t, g.AddVertex("3"))

	opts := augment.DefaultOptions()
	opts.Avail = []augment.Candidate{{U: "1", V: "2", Weight: 1}}
	_, err := augment.KEdgeAugmentation(g, 1, opts)
	require.ErrorIs(t, err, augment.ErrInfeasible)

	// Partial keeps the forest that was reachable.
	opts.Partial = true
	edges, err := augment.KEdgeAugmentation(g, 1, opts)
	require.NoError(t, err)
	require.Empty(t, edges)
}

func TestBridgeAugmentationPath(t *testing.T) {
	g := pathGraph(t, "1", "2", "3", "4", "5", "6", "7")
	edges, err := augment.KEdgeAugmentation(g, 2, augment.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, [][2]string{{"1", "7"}}, edges)

	ok, err := connectivity.IsKEdgeConnected(applied(t, g, edges), 2, connectivity.DefaultOptions())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBridgeAugmentationTreeWithFork(t *testing.T) {
	// Path 1-2-3 with a fork 2-4-5-6-7: three leaves need two edges.
	g := pathGraph(t, "1", "2", "3")
	for _, pair := range [][2]string{{"2", "4"}, {"4", "5"}, {"5", "6"}, {"6", "7"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	edges, err := augment.KEdgeAugmentation(g, 2, augment.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, edges, 2)
	ok, err := connectivity.IsKEdgeConnected(applied(t, g, edges), 2, connectivity.DefaultOptions())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBridgeAugmentationIsolatedNode(t *testing.T) {
	// Triangle plus an isolated vertex: two edges tie it into the cycle.
	g := pathGraph(t, "0", "1", "2")
	_, err := g.AddEdge("2", "0", 0)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("4"))

	edges, err := augment.KEdgeAugmentation(g, 2, augment.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, [][2]string{{"0", "4"}, {"1", "4"}}, edges)
}

func TestWeightedBridgeAugmentation(t *testing.T) {
	g := pathGraph(t, "1", "2", "3", "4")

	opts := augment.DefaultOptions()
	opts.Avail = []augment.Candidate{
		{U: "1", V: "4", Weight: 1},
		{U: "1", V: "3", Weight: 1},
		{U: "2", V: "4", Weight: 1},
	}
	edges, err := augment.KEdgeAugmentation(g, 2, opts)
	require.NoError(t, err)
	require.Equal(t, [][2]string{{"1", "4"}}, edges)

	// Pricing (1,4) out forces the two-edge solution.
	opts.Avail = []augment.Candidate{
		{U: "1", V: "4", Weight: 1000},
		{U: "1", V: "3", Weight: 1},
		{U: "2", V: "4", Weight: 1},
	}
	edges, err = augment.KEdgeAugmentation(g, 2, opts)
	require.NoError(t, err)
	require.Equal(t, [][2]string{{"1", "3"}, {"2", "4"}}, edges)
}

func TestWeightedBridgeAugmentationDisconnected(t *testing.T) {
	g := pathGraph(t, "1", "2", "3", "4")
	require.NoError(t, g.AddVertex("5"))

	opts := augment.DefaultOptions()
	opts.Avail = []augment.Candidate{
		{U: "1", V: "5", Weight: 11},
		{U: "2", V: "5", Weight: 10},
		{U: "4", V: "3", Weight: 1},
		{U: "4", V: "5", Weight: 1},
	}
	edges, err := augment.KEdgeAugmentation(g, 2, opts)
	require.NoError(t, err)
	require.Equal(t, [][2]string{{"1", "5"}, {"4", "5"}}, edges)

	opts.Avail = []augment.Candidate{
		{U: "1", V: "5", Weight: 11},
		{U: "2", V: "5", Weight: 10},
		{U: "4", V: "3", Weight: 1},
		{U: "4", V: "5", Weight: 51},
	}
	edges, err = augment.KEdgeAugmentation(g, 2, opts)
	require.NoError(t, err)
	require.Equal(t, [][2]string{{"1", "5"}, {"2", "5"}, {"4", "5"}}, edges)
}

func TestGreedyKEdgeAugmentationFeasibleAcrossSeeds(t *testing.T) {
	g := pathGraph(t, "1", "2", "3", "4", "5", "6", "7")

	for _, seed := range []uint64{0, 1, 2, 3, 17} {
		opts := augment.DefaultOptions()
		opts.Seed = seed
		edges, err := augment.KEdgeAugmentation(g, 4, opts)
		require.NoError(t, err, "seed %d", seed)

		ok, cerr := connectivity.IsKEdgeConnected(applied(t, g, edges), 4, connectivity.DefaultOptions())
		require.NoError(t, cerr)
		require.True(t, ok, "seed %d produced an infeasible augmentation", seed)
	}
}

func TestGreedyAlreadyConnected(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)
	edges, err := augment.KEdgeAugmentation(g, 3, augment.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, edges)
}

func TestGreedyInfeasibleWithoutCandidates(t *testing.T) {
	g := pathGraph(t, "1", "2", "3", "4", "5")
	opts := augment.DefaultOptions()
	opts.Avail = []augment.Candidate{{U: "1", V: "3", Weight: 1}}
	_, err := augment.KEdgeAugmentation(g, 3, opts)
	require.ErrorIs(t, err, augment.ErrInfeasible)
}

func TestPartialKEdgeAugmentation(t *testing.T) {
	g := pathGraph(t, "1", "2", "3", "4", "5", "6", "7")
	require.NoError(t, g.AddVertex("8"))

	opts := augment.DefaultOptions()
	opts.Partial = true
	opts.Avail = []augment.Candidate{
		{U: "1", V: "3", Weight: 1}, {U: "1", V: "4", Weight: 1},
		{U: "1", V: "5", Weight: 1}, {U: "2", V: "4", Weight: 1},
		{U: "2", V: "5", Weight: 1}, {U: "3", V: "5", Weight: 1},
		{U: "1", V: "8", Weight: 1},
	}
	edges, err := augment.KEdgeAugmentation(g, 2, opts)
	require.NoError(t, err)
	require.Equal(t, [][2]string{{"1", "5"}, {"1", "8"}}, edges)
}

func TestKEdgeAugmentationValidation(t *testing.T) {
	g := pathGraph(t, "1", "2", "3")

	_, err := augment.KEdgeAugmentation(g, 0, augment.DefaultOptions())
	require.ErrorIs(t, err, augment.ErrBadK)

	_, err = augment.KEdgeAugmentation(nil, 1, augment.DefaultOptions())
	require.ErrorIs(t, err, augment.ErrGraphNil)

	d := core.NewGraph(core.WithDirected(true))
	_, err = d.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = augment.KEdgeAugmentation(d, 1, augment.DefaultOptions())
	require.ErrorIs(t, err, augment.ErrDirectedUnsupported)

	// Too few nodes for the requested connectivity.
	_, err = augment.KEdgeAugmentation(g, 3, augment.DefaultOptions())
	require.ErrorIs(t, err, augment.ErrInfeasible)
}

func TestKEdgeAugmentationEmptyAvail(t *testing.T) {
	g := pathGraph(t, "1", "2", "3")
	opts := augment.DefaultOptions()
	opts.Avail = []augment.Candidate{}

	// Already 1-edge-connected, nothing to add.
	edges, err := augment.KEdgeAugmentation(g, 1, opts)
	require.NoError(t, err)
	require.Empty(t, edges)

	// Not 2-edge-connected and no candidates.
	_, err = augment.KEdgeAugmentation(g, 2, opts)
	require.ErrorIs(t, err, augment.ErrInfeasible)
}

func TestKEdgeAugmentationPartialComplement(t *testing.T) {
	g := pathGraph(t, "1", "2", "3", "4")
	require.NoError(t, g.AddVertex("5"))

	opts := augment.DefaultOptions()
	opts.Partial = true
	edges, err := augment.KEdgeAugmentation(g, 5, opts)
	require.NoError(t, err)
	require.Equal(t, augment.ComplementEdges(g), edges)
}

func TestCollapse(t *testing.T) {
	g := pathGraph(t, "a", "b", "c", "d")
	_, err := g.AddEdge("e", "f", 0)
	require.NoError(t, err)

	c, err := augment.Collapse(g, [][]string{{"a", "b"}, {"c", "d"}})
	require.NoError(t, err)
	require.Equal(t, 4, c.Graph.VertexCount())
	require.True(t, c.Graph.HasEdge("0", "1"))
	require.Equal(t, "0", c.Mapping["a"])
	require.Equal(t, []string{"c", "d"}, c.Members["1"])

	// Singletons for the remaining nodes.
	require.Equal(t, []string{"e"}, c.Members[c.Mapping["e"]])

	_, err = augment.Collapse(g, [][]string{{"a"}, {"a"}})
	require.ErrorIs(t, err, augment.ErrInvalidGrouping)
	_, err = augment.Collapse(g, [][]string{{"zz"}})
	require.ErrorIs(t, err, augment.ErrInvalidGrouping)
}

func TestComplementEdges(t *testing.T) {
	g := pathGraph(t, "1", "2", "3", "4")
	require.Equal(t, [][2]string{{"1", "3"}, {"1", "4"}, {"2", "4"}}, augment.ComplementEdges(g))
}
