// Package flow implements maximum-flow and minimum-cut algorithms on graphs
// represented by *core.Graph, built around a shared, reusable residual
// network.
//
// The key algorithms offered are:
//
//   - PreflowPush (highest-label push-relabel)
//
//   - Method: saturate the source, then discharge the highest active node,
//     with gap and global-relabeling heuristics.
//
//   - Time:   O(V² · √E).
//
//   - Memory: O(V + E).
//
//   - The default engine; best general-purpose performance.
//
//   - EdmondsKarp
//
//   - Method: bidirectional breadth-first search for shortest augmenting paths.
//
//   - Time:   O(V · E²) worst case.
//
//   - Memory: O(V + E).
//
//   - The only engine honoring Options.Cutoff.
//
// # Residual network contract
//
// Every solver returns a *ResidualNetwork R with the same nodes as the input
// graph. R contains a pair of arcs (u, v) and (v, u) iff (u, v) is not a
// self-loop and at least one orientation exists in the input. For each arc,
// capacity equals the input capacity (or zero for the synthesized reverse
// arc), and flow satisfies skew symmetry: flow(u, v) == -flow(v, u).
// Infinite capacities (unweighted graphs, or +Inf weights) are simulated by
// R.Inf(), three times the sum of the finite capacities, so that
// infinite-capacity arcs stay distinguishable for unboundedness detection.
//
// The flow value, the total flow into the sink, is available as
// R.FlowValue(). Reachability from the source using only arcs with
// flow < capacity induces a minimum s-t cut.
//
// A ResidualNetwork may be passed back in via Options.Residual to avoid
// rebuilding it across repeated computations on the same graph (the Gomory-Hu
// builder relies on this); each solver fully resets flow state on entry.
//
// # API
//
// The solvers share one signature, the Func type:
//
//	func(g *core.Graph, source, sink string, opts Options) (*ResidualNetwork, error)
//
// MaximumFlow, MaximumFlowValue, MinimumCut, and MinimumCutValue wrap a Func
// (PreflowPush when Options.Func is nil) and derive flow dictionaries and cut
// partitions from the returned residual network. Use DefaultOptions() for
// production-safe defaults.
//
// # Errors
//
//	ErrSourceNotFound        - source vertex missing from the input graph.
//	ErrSinkNotFound          - sink vertex missing.
//	ErrSameSourceSink        - source and sink are the same vertex.
//	ErrMultigraphUnsupported - parallel edges are not supported.
//	ErrUnbounded             - an infinite-capacity s-t path exists.
//	ErrNegativeRelabelFreq   - negative Options.GlobalRelabelFreq.
//	ErrCutoffWithMinCut      - Options.Cutoff combined with a minimum cut.
//	ErrEmptyGraph            - Gomory-Hu on a graph without vertices.
//	ErrDirectedUnsupported   - Gomory-Hu on a directed graph.
//	EdgeError                - negative edge capacity.
//	context.Canceled / context.DeadlineExceeded - Options.Ctx canceled.
package flow
