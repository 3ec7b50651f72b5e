package augment

import (
	"sort"

	"github.com/go-graphflow/graphflow/bfs"
	"github.com/go-graphflow/graphflow/core"
	"github.com/go-graphflow/graphflow/prim_kruskal"
)

// metaEdge is a candidate projected onto the meta-graph: the lightest
// original edge bridging two distinct meta-vertices.
type metaEdge struct {
	mu, mv string
	cand   Candidate
}

// lightestMetaEdges groups candidates by the meta-vertex pair they would
// connect and keeps the lightest per group, ties broken by (u, v).
// Candidates inside a single meta-vertex are discarded. The result is
// sorted by (weight, mu, mv).
func lightestMetaEdges(mapping map[string]string, avail []Candidate) []metaEdge {
	best := make(map[[2]string]Candidate)
	for _, c := range avail {
		mu, mv := mapping[c.U], mapping[c.V]
		if mu == mv {
			continue
		}
		key := orderedPair(mu, mv)
		prev, ok := best[key]
		if !ok || c.Weight < prev.Weight ||
			(c.Weight == prev.Weight && (c.U < prev.U || (c.U == prev.U && c.V < prev.V))) {
			best[key] = c
		}
	}

	out := make([]metaEdge, 0, len(best))
	for key, c := range best {
		out = append(out, metaEdge{mu: key[0], mv: key[1], cand: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].cand.Weight != out[j].cand.Weight {
			return out[i].cand.Weight < out[j].cand.Weight
		}
		if out[i].mu != out[j].mu {
			return out[i].mu < out[j].mu
		}
		return out[i].mv < out[j].mv
	})

	return out
}

// OneEdgeAugmentation returns a minimum set of edges connecting g,
// equivalent to KEdgeAugmentation with k=1. The solution is optimal in
// both the unconstrained and the weighted variant.
func OneEdgeAugmentation(g *core.Graph, opts Options) ([][2]string, error) {
	if opts.Avail == nil {
		return unconstrainedOneEdgeAugmentation(g)
	}

	return weightedOneEdgeAugmentation(g, unpackAvail(g, opts.Avail), opts.Partial)
}

// unconstrainedOneEdgeAugmentation chains the connected components: with
// every complement edge available, any spanning path of the component
// meta-graph is optimal.
func unconstrainedOneEdgeAugmentation(g *core.Graph) ([][2]string, error) {
	comps, err := bfs.ConnectedComponents(g)
	if err != nil {
		return nil, err
	}
	if len(comps) <= 1 {
		return nil, nil
	}
	c, err := Collapse(g, comps)
	if err != nil {
		return nil, err
	}

	metaNodes := c.Graph.Vertices()
	out := make([][2]string, 0, len(metaNodes)-1)
	for i := 1; i < len(metaNodes); i++ {
		u := c.Members[metaNodes[i-1]][0]
		v := c.Members[metaNodes[i]][0]
		out = append(out, orderedPair(u, v))
	}
	sortPairs(out)

	return out, nil
}

// weightedOneEdgeAugmentation runs Kruskal over the component meta-graph
// using only the lightest candidate per meta-edge. When the meta-graph
// cannot be spanned, partial keeps the forest that minimizes the number of
// remaining components; otherwise the run is infeasible.
func weightedOneEdgeAugmentation(g *core.Graph, avail []Candidate, partial bool) ([][2]string, error) {
	comps, err := bfs.ConnectedComponents(g)
	if err != nil {
		return nil, err
	}
	c, err := Collapse(g, comps)
	if err != nil {
		return nil, err
	}

	metaNodes := c.Graph.Vertices()
	dsu := prim_kruskal.NewDSU(metaNodes)
	var out [][2]string
	for _, me := range lightestMetaEdges(c.Mapping, avail) {
		if dsu.Union(me.mu, me.mv) {
			out = append(out, orderedPair(me.cand.U, me.cand.V))
		}
	}

	if !partial {
		root := dsu.Find(metaNodes[0])
		for _, id := range metaNodes[1:] {
			if dsu.Find(id) != root {
				return nil, ErrInfeasible
			}
		}
	}
	sortPairs(out)

	return out, nil
}
