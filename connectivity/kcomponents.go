package connectivity

import (
	"sort"

	"github.com/go-graphflow/graphflow/bfs"
	"github.com/go-graphflow/graphflow/core"
	"github.com/go-graphflow/graphflow/flow"
)

// KEdgeSubgraphs partitions the vertices of the undirected graph g into
// maximal sets whose induced subgraphs are k-edge-connected. Vertices that
// belong to no such subgraph come back as singletons. Components are sorted
// internally and ordered by smallest member.
//
// k=1 is plain connected components and k=2 bridge components; for k>=3
// the graph is recursively split along global minimum cuts until every
// piece is k-edge-connected or trivial (Zhou et al.), pruning vertices
// whose degree rules them out before any flow computation.
func KEdgeSubgraphs(g *core.Graph, k int, opts Options) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedUnsupported
	}
	if g.Multigraph() {
		return nil, ErrMultigraphUnsupported
	}
	if k < 1 {
		return nil, ErrBadK
	}

	switch k {
	case 1:
		return bfs.ConnectedComponents(g)
	case 2:
		return BridgeComponents(g)
	}

	var out [][]string
	if g.VertexCount() < k {
		for _, id := range g.Vertices() {
			out = append(out, []string{id})
		}
		return out, nil
	}

	first, err := highDegreeSplit(inducedUnit(g, g.Vertices()), k)
	if err != nil {
		return nil, err
	}
	queue := first
	for len(queue) > 0 {
		sub := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		nodes := sub.Vertices()
		if len(nodes) == 1 {
			out = append(out, nodes)
			continue
		}

		cut, err := minimumEdgeCut(sub, opts)
		if err != nil {
			return nil, err
		}
		if float64(len(cut)) >= float64(k) {
			out = append(out, nodes)
			continue
		}

		// Below k: split along the cut and keep subdividing.
		crossing := make(map[[2]string]struct{}, len(cut))
		for _, c := range cut {
			crossing[c] = struct{}{}
		}
		sub.FilterEdges(func(e *core.Edge) bool {
			_, cutEdge := crossing[orderedPair(e.From, e.To)]
			return !cutEdge
		})
		parts, err := highDegreeSplit(sub, k)
		if err != nil {
			return nil, err
		}
		queue = append(queue, parts...)
	}

	sortComponents(out)

	return out, nil
}

// inducedUnit builds the subgraph of g induced by nodes as a fresh
// undirected graph with unit edge weights, so flow treats every edge as
// capacity 1.
func inducedUnit(g *core.Graph, nodes []string) *core.Graph {
	keep := make(map[string]struct{}, len(nodes))
	for _, id := range nodes {
		keep[id] = struct{}{}
	}
	sub := core.NewGraph(core.WithWeighted())
	for _, id := range nodes {
		_ = sub.AddVertex(id)
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if _, ok := keep[e.From]; !ok {
			continue
		}
		if _, ok := keep[e.To]; !ok {
			continue
		}
		if !sub.HasEdge(e.From, e.To) {
			_, _ = sub.AddEdge(e.From, e.To, 1)
		}
	}

	return sub
}

// highDegreeSplit peels vertices of degree below k (they cannot lie in any
// k-edge-connected subgraph), emitting them as singletons, then returns the
// connected components of the remainder as induced unit subgraphs.
func highDegreeSplit(sub *core.Graph, k int) ([]*core.Graph, error) {
	var out []*core.Graph
	for {
		var weak []string
		for _, id := range sub.Vertices() {
			_, _, und, err := sub.Degree(id)
			if err != nil {
				return nil, err
			}
			if und < k {
				weak = append(weak, id)
			}
		}
		if len(weak) == 0 {
			break
		}
		for _, id := range weak {
			single := core.NewGraph(core.WithWeighted())
			_ = single.AddVertex(id)
			out = append(out, single)
			if err := sub.RemoveVertex(id); err != nil {
				return nil, err
			}
		}
	}

	if sub.VertexCount() == 0 {
		return out, nil
	}
	comps, err := bfs.ConnectedComponents(sub)
	if err != nil {
		return nil, err
	}
	if len(comps) == 1 {
		out = append(out, sub)
		return out, nil
	}
	for _, cc := range comps {
		out = append(out, inducedUnit(sub, cc))
	}

	return out, nil
}

// minimumEdgeCut finds a global minimum edge cut of the connected
// unit-weight graph sub as a set of ordered endpoint pairs. It takes the
// best of the n-1 minimum cuts between a fixed vertex and every other,
// sharing one residual network.
func minimumEdgeCut(sub *core.Graph, opts Options) ([][2]string, error) {
	opts.normalize()
	opts.Flow.Cutoff = 0
	nodes := sub.Vertices()

	r, err := flow.BuildResidualNetwork(sub, opts.Flow)
	if err != nil {
		return nil, err
	}
	opts.Flow.Residual = r

	var (
		best     = -1.0
		bestPart flow.CutPartition
	)
	for _, t := range nodes[1:] {
		value, part, cerr := flow.MinimumCut(sub, nodes[0], t, opts.Flow)
		if cerr != nil {
			return nil, cerr
		}
		if best < 0 || value < best {
			best = value
			bestPart = part
		}
	}

	sink := make(map[string]struct{}, len(bestPart.Sink))
	for _, id := range bestPart.Sink {
		sink[id] = struct{}{}
	}
	var cut [][2]string
	for _, e := range sub.Edges() {
		_, fromSink := sink[e.From]
		_, toSink := sink[e.To]
		if fromSink != toSink {
			cut = append(cut, orderedPair(e.From, e.To))
		}
	}

	return cut, nil
}

// sortComponents orders each component internally and the list by first
// member, matching the convention of bfs.ConnectedComponents.
func sortComponents(comps [][]string) {
	for _, cc := range comps {
		sort.Strings(cc)
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })
}
