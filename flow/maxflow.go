package flow

import (
	"github.com/go-graphflow/graphflow/core"
)

// CutPartition is a bipartition of the vertices certifying a minimum s-t
// cut: Source holds the vertices reachable from the source in the final
// residual network, Sink holds the rest. Both slices are sorted.
type CutPartition struct {
	Source []string
	Sink   []string
}

// solverFor returns the configured solver, defaulting to PreflowPush.
func solverFor(opts Options) Func {
	if opts.Func != nil {
		return opts.Func
	}
	return PreflowPush
}

// MaximumFlow computes a maximum s-t flow and returns its value together
// with a flow dictionary keyed by the input graph's edges. The solver is
// Options.Func (PreflowPush by default).
//
// With Options.Cutoff set and an honoring solver (EdmondsKarp), the returned
// flow is feasible but stops at the cutoff value.
func MaximumFlow(g *core.Graph, source, sink string, opts Options) (float64, map[string]map[string]float64, error) {
	opts.normalize()
	r, err := solverFor(opts)(g, source, sink, opts)
	if err != nil {
		return 0, nil, err
	}

	return r.FlowValue(), FlowDict(g, r), nil
}

// MaximumFlowValue computes only the maximum s-t flow value. When the
// default solver is used, ValueOnly is enabled to skip the flow-conversion
// phase.
func MaximumFlowValue(g *core.Graph, source, sink string, opts Options) (float64, error) {
	opts.normalize()
	if opts.Func == nil {
		opts.ValueOnly = true
	}
	r, err := solverFor(opts)(g, source, sink, opts)
	if err != nil {
		return 0, err
	}

	return r.FlowValue(), nil
}

// MinimumCut computes a minimum s-t cut: its capacity (equal to the maximum
// flow value) and the certifying vertex partition. Options.Cutoff is
// rejected with ErrCutoffWithMinCut, since a truncated flow does not induce
// a valid cut.
func MinimumCut(g *core.Graph, source, sink string, opts Options) (float64, CutPartition, error) {
	opts.normalize()
	if opts.hasCutoff() {
		return 0, CutPartition{}, ErrCutoffWithMinCut
	}
	// Source-side reachability needs a feasible flow, not just a preflow.
	opts.ValueOnly = false
	r, err := solverFor(opts)(g, source, sink, opts)
	if err != nil {
		return 0, CutPartition{}, err
	}

	return r.FlowValue(), cutPartition(r, source, opts.Epsilon), nil
}

// MinimumCutValue computes only the capacity of a minimum s-t cut.
func MinimumCutValue(g *core.Graph, source, sink string, opts Options) (float64, error) {
	opts.normalize()
	if opts.hasCutoff() {
		return 0, ErrCutoffWithMinCut
	}

	return MaximumFlowValue(g, source, sink, opts)
}

// cutPartition splits the vertices by residual reachability from source:
// arcs with flow < capacity (beyond eps) remain traversable.
func cutPartition(r *ResidualNetwork, source string, eps float64) CutPartition {
	s := r.index[source]
	reach := make([]bool, len(r.nodes))
	reach[s] = true
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for i := range r.adj[u] {
			a := r.adj[u][i]
			if reach[a.to] || a.cap-a.flow <= eps {
				continue
			}
			reach[a.to] = true
			queue = append(queue, a.to)
		}
	}

	var part CutPartition
	for u, id := range r.nodes {
		if reach[u] {
			part.Source = append(part.Source, id)
		} else {
			part.Sink = append(part.Sink, id)
		}
	}

	return part
}
