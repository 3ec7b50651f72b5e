package flow_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-graphflow/graphflow/core"
	"github.com/go-graphflow/graphflow/flow"
)

func TestBuildResidualDirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("a", "b", 4)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 2)
	require.NoError(t, err)

	r, err := flow.BuildResidualNetwork(g, flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3, r.NodeCount())
	require.Equal(t, []string{"a", "b", "c"}, r.Nodes())

	// Forward arcs carry the capacity, synthesized reverse arcs carry zero.
	c, ok := r.Capacity("a", "b")
	require.True(t, ok)
	require.Equal(t, 4.0, c)
	c, ok = r.Capacity("b", "a")
	require.True(t, ok)
	require.Zero(t, c)

	// Inf is three times the finite capacity sum.
	require.Equal(t, 18.0, r.Inf())
}

func TestBuildResidualDigon(t *testing.T) {
	// Opposite arcs keep independent capacities in one pair.
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("a", "b", 7)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "a", 3)
	require.NoError(t, err)

	r, err := flow.BuildResidualNetwork(g, flow.DefaultOptions())
	require.NoError(t, err)
	ab, ok := r.Capacity("a", "b")
	require.True(t, ok)
	require.Equal(t, 7.0, ab)
	ba, ok := r.Capacity("b", "a")
	require.True(t, ok)
	require.Equal(t, 3.0, ba)
}

func TestBuildResidualUndirected(t *testing.T) {
	// Undirected edges yield full capacity in both orientations.
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", 5)
	require.NoError(t, err)

	r, err := flow.BuildResidualNetwork(g, flow.DefaultOptions())
	require.NoError(t, err)
	ab, _ := r.Capacity("a", "b")
	ba, _ := r.Capacity("b", "a")
	require.Equal(t, 5.0, ab)
	require.Equal(t, 5.0, ba)
	require.Equal(t, 30.0, r.Inf())
}

func TestBuildResidualSkipsLoopsAndZeroCapacity(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops())
	_, err := g.AddEdge("a", "a", 9)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 6)
	require.NoError(t, err)

	r, err := flow.BuildResidualNetwork(g, flow.DefaultOptions())
	require.NoError(t, err)
	_, ok := r.Capacity("a", "a")
	require.False(t, ok)
	_, ok = r.Capacity("a", "b")
	require.False(t, ok)
	_, ok = r.Capacity("b", "c")
	require.True(t, ok)
}

func TestBuildResidualInfiniteCapacity(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("a", "b", math.Inf(1))
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 10)
	require.NoError(t, err)

	r, err := flow.BuildResidualNetwork(g, flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 30.0, r.Inf())
	ab, _ := r.Capacity("a", "b")
	require.Equal(t, r.Inf(), ab)
}

func TestResidualReset(t *testing.T) {
	g := cormen(t)
	r, err := flow.PreflowPush(g, "s", "t", flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 23.0, r.FlowValue())

	f, ok := r.Flow("s", "v1")
	require.True(t, ok)
	require.Positive(t, f)

	r.Reset()
	require.Zero(t, r.FlowValue())
	require.Empty(t, r.Algorithm())
	f, ok = r.Flow("s", "v1")
	require.True(t, ok)
	require.Zero(t, f)

	// Capacities survive a reset.
	c, ok := r.Capacity("s", "v1")
	require.True(t, ok)
	require.Equal(t, 16.0, c)
}

func TestSkewSymmetry(t *testing.T) {
	g := cormen(t)
	r, err := flow.PreflowPush(g, "s", "t", flow.DefaultOptions())
	require.NoError(t, err)

	for _, u := range r.Nodes() {
		for _, v := range r.Nodes() {
			f, ok := r.Flow(u, v)
			if !ok {
				continue
			}
			rf, rok := r.Flow(v, u)
			require.True(t, rok, "missing reverse arc %s→%s", v, u)
			require.InDelta(t, -f, rf, 1e-9, "skew symmetry %s/%s", u, v)
		}
	}
}

func TestFlowDictDirectedIncludesZeroEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("s", "t", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("t", "x", 2)
	require.NoError(t, err)

	r, err := flow.PreflowPush(g, "s", "t", flow.DefaultOptions())
	require.NoError(t, err)
	dict := flow.FlowDict(g, r)
	require.Equal(t, 2.0, dict["s"]["t"])
	// The unused edge is reported with zero flow.
	require.Contains(t, dict["t"], "x")
	require.Zero(t, dict["t"]["x"])
}
