package augment

import (
	"sort"

	"golang.org/x/exp/rand"

	"github.com/go-graphflow/graphflow/connectivity"
	"github.com/go-graphflow/graphflow/core"
)

// GreedyKEdgeAugmentation finds a feasible (not necessarily minimal)
// k-edge-augmentation for arbitrary k. Candidates are tried lightest first,
// ties broken by endpoint degree sum, and added whenever their endpoints
// are not yet locally k-edge-connected. A seeded randomized pass then
// prunes added edges whose removal keeps the graph k-edge-connected.
//
// Feasibility of the result never depends on the seed; only which
// redundant edges survive the pruning pass does.
func GreedyKEdgeAugmentation(g *core.Graph, k int, opts Options) ([][2]string, error) {
	done, err := connectivity.IsKEdgeConnected(g, k, opts.Connectivity)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, nil
	}

	avail := unpackAvail(g, opts.Avail)
	degSum := func(c Candidate) (int, error) {
		_, _, du, derr := g.Degree(c.U)
		if derr != nil {
			return 0, derr
		}
		_, _, dv, derr := g.Degree(c.V)
		if derr != nil {
			return 0, derr
		}
		return du + dv, nil
	}
	sums := make(map[[2]string]int, len(avail))
	for _, c := range avail {
		s, derr := degSum(c)
		if derr != nil {
			return nil, derr
		}
		sums[[2]string{c.U, c.V}] = s
	}
	sort.SliceStable(avail, func(i, j int) bool {
		a, b := avail[i], avail[j]
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		sa, sb := sums[[2]string{a.U, a.V}], sums[[2]string{b.U, b.V}]
		if sa != sb {
			return sa < sb
		}
		if a.U != b.U {
			return a.U < b.U
		}
		return a.V < b.V
	})

	type added struct {
		u, v, eid string
	}
	h := g.Clone()
	var aug []added
	for _, c := range avail {
		ok, lerr := connectivity.IsLocallyKEdgeConnected(h, c.U, c.V, k, opts.Connectivity)
		if lerr != nil {
			return nil, lerr
		}
		if ok {
			continue
		}
		eid, aerr := addEdgeCompat(h, c.U, c.V, c.Weight)
		if aerr != nil {
			return nil, aerr
		}
		aug = append(aug, added{u: c.U, v: c.V, eid: eid})

		// Only re-check global connectivity once both endpoints clear the
		// degree bound.
		_, _, du, derr := h.Degree(c.U)
		if derr != nil {
			return nil, derr
		}
		_, _, dv, derr := h.Degree(c.V)
		if derr != nil {
			return nil, derr
		}
		if du >= k && dv >= k {
			if done, err = connectivity.IsKEdgeConnected(h, k, opts.Connectivity); err != nil {
				return nil, err
			}
			if done {
				break
			}
		}
	}
	if !done {
		return nil, ErrInfeasible
	}

	// Randomized cleanup: try removing added edges in shuffled order,
	// keeping a removal only if connectivity survives.
	rng := rand.New(rand.NewSource(opts.Seed))
	order := rng.Perm(len(aug))
	kept := make([]bool, len(aug))
	for i := range kept {
		kept[i] = true
	}
	for _, idx := range order {
		ae := &aug[idx]
		_, _, du, derr := h.Degree(ae.u)
		if derr != nil {
			return nil, derr
		}
		_, _, dv, derr := h.Degree(ae.v)
		if derr != nil {
			return nil, derr
		}
		if du <= k || dv <= k {
			continue
		}
		if err = h.RemoveEdge(ae.eid); err != nil {
			return nil, err
		}
		still, kerr := connectivity.IsKEdgeConnected(h, k, opts.Connectivity)
		if kerr != nil {
			return nil, kerr
		}
		if still {
			kept[idx] = false
			opts.Logger.Debug().Str("u", ae.u).Str("v", ae.v).Msg("pruned redundant augmentation edge")
			continue
		}
		eid, aerr := addEdgeCompat(h, ae.u, ae.v, 0)
		if aerr != nil {
			return nil, aerr
		}
		ae.eid = eid
	}

	var out [][2]string
	for i, ae := range aug {
		if kept[i] {
			out = append(out, orderedPair(ae.u, ae.v))
		}
	}
	sortPairs(out)

	return out, nil
}

// PartialKEdgeAugmentation k-edge-connects as much of g as the candidates
// allow: the k-edge-subgraph decomposition of g plus all candidates tells
// which parts can be fully connected, each such part is augmented
// internally with its own candidates, and every candidate crossing two
// parts is included since no internal work can join them otherwise.
func PartialKEdgeAugmentation(g *core.Graph, k int, opts Options) ([][2]string, error) {
	avail := unpackAvail(g, opts.Avail)

	h := g.Clone()
	for _, c := range avail {
		if _, err := addEdgeCompat(h, c.U, c.V, c.Weight); err != nil {
			return nil, err
		}
	}
	subs, err := connectivity.KEdgeSubgraphs(h, k, opts.Connectivity)
	if err != nil {
		return nil, err
	}

	part := make(map[string]int, h.VertexCount())
	for i, sub := range subs {
		for _, id := range sub {
			part[id] = i
		}
	}

	var out [][2]string
	for _, sub := range subs {
		if len(sub) < 2 {
			continue
		}
		inner := induced(g, sub)
		// Non-nil even when empty: nil would mean an unconstrained pool.
		innerAvail := []Candidate{}
		for _, c := range avail {
			if part[c.U] == part[c.V] && part[c.U] == part[sub[0]] {
				innerAvail = append(innerAvail, c)
			}
		}
		edges, aerr := KEdgeAugmentation(inner, k, Options{
			Avail:        innerAvail,
			Seed:         opts.Seed,
			Connectivity: opts.Connectivity,
			Logger:       opts.Logger,
		})
		if aerr != nil {
			return nil, aerr
		}
		out = append(out, edges...)
	}

	// Candidates bridging two different k-edge-subgraphs.
	for _, c := range avail {
		if part[c.U] != part[c.V] {
			out = append(out, orderedPair(c.U, c.V))
		}
	}
	sortPairs(out)

	return out, nil
}

// induced builds the subgraph of g induced by nodes, preserving weights.
func induced(g *core.Graph, nodes []string) *core.Graph {
	keep := make(map[string]struct{}, len(nodes))
	for _, id := range nodes {
		keep[id] = struct{}{}
	}
	sub := g.Clone()
	for _, id := range g.Vertices() {
		if _, ok := keep[id]; !ok {
			_ = sub.RemoveVertex(id)
		}
	}

	return sub
}
