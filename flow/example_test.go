package flow_test

import (
	"fmt"

	"github.com/go-graphflow/graphflow/core"
	"github.com/go-graphflow/graphflow/flow"
)

// ExamplePreflowPush demonstrates max-flow on a single-edge network.
// Graph: s→t with capacity 5
func ExamplePreflowPush() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("s", "t", 5)

	r, _ := flow.PreflowPush(g, "s", "t", flow.DefaultOptions())
	fmt.Println(r.FlowValue())
	// Output:
	// 5
}

// ExampleMaximumFlow shows the wrapper on a two-path network.
// Graph:
//
//	s→a(3)→t(2)
//	s→b(2)→t(3)
//
// Each path is throttled to 2, so the maximum flow is 4.
func ExampleMaximumFlow() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("s", "a", 3)
	g.AddEdge("a", "t", 2)
	g.AddEdge("s", "b", 2)
	g.AddEdge("b", "t", 3)

	value, dict, _ := flow.MaximumFlow(g, "s", "t", flow.DefaultOptions())
	fmt.Println(value)
	fmt.Println(dict["s"]["a"], dict["s"]["b"])
	// Output:
	// 4
	// 2 2
}

// ExampleMinimumCutValue finds the bottleneck of the same two-path network
// with the Edmonds-Karp solver.
func ExampleMinimumCutValue() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	g.AddEdge("s", "a", 3)
	g.AddEdge("a", "t", 2)
	g.AddEdge("s", "b", 2)
	g.AddEdge("b", "t", 3)

	opts := flow.DefaultOptions()
	opts.Func = flow.EdmondsKarp
	value, _ := flow.MinimumCutValue(g, "s", "t", opts)
	fmt.Println(value)
	// Output:
	// 4
}
