package augment

import (
	"sort"

	"github.com/go-graphflow/graphflow/bfs"
	"github.com/go-graphflow/graphflow/connectivity"
	"github.com/go-graphflow/graphflow/core"
	"github.com/go-graphflow/graphflow/dfs"
)

// BridgeAugmentation returns a set of edges whose addition leaves g free of
// bridges, equivalent to KEdgeAugmentation with k=2. The unconstrained
// variant is optimal (Eswaran-Tarjan); the weighted variant approximates
// the NP-hard problem within a factor of 2 for connected input and 3
// otherwise (Khuller-Thurimella).
func BridgeAugmentation(g *core.Graph, opts Options) ([][2]string, error) {
	if g.VertexCount() < 3 {
		return nil, ErrInfeasible
	}
	if opts.Avail == nil {
		return unconstrainedBridgeAugmentation(g)
	}

	return weightedBridgeAugmentation(g, opts)
}

// unconstrainedBridgeAugmentation collapses the bridge components of g into
// a forest, joins the trees of the forest using leaf (or isolated) meta
// vertices, and then pairs the first half of the merged tree's leaves in
// DFS preorder against the second half. The construction adds exactly
// ceil(p/2) + q edges for p leaves and q isolated meta-vertices, which is
// optimal.
func unconstrainedBridgeAugmentation(g *core.Graph) ([][2]string, error) {
	bridgeCCs, err := connectivity.BridgeComponents(g)
	if err != nil {
		return nil, err
	}
	c, err := Collapse(g, bridgeCCs)
	if err != nil {
		return nil, err
	}

	trees, err := bfs.ConnectedComponents(c.Graph)
	if err != nil {
		return nil, err
	}

	// Per tree: an isolated meta-vertex doubled, or its two smallest-degree
	// vertices (leaves when the tree is nontrivial).
	vset := make([][2]string, 0, len(trees))
	for _, tree := range trees {
		if len(tree) == 1 {
			vset = append(vset, [2]string{tree[0], tree[0]})
			continue
		}
		byDeg := append([]string(nil), tree...)
		degOf := make(map[string]int, len(tree))
		for _, id := range tree {
			_, _, und, derr := c.Graph.Degree(id)
			if derr != nil {
				return nil, derr
			}
			degOf[id] = und
		}
		sort.Slice(byDeg, func(i, j int) bool {
			if degOf[byDeg[i]] != degOf[byDeg[j]] {
				return degOf[byDeg[i]] < degOf[byDeg[j]]
			}
			return byDeg[i] < byDeg[j]
		})
		vset = append(vset, [2]string{byDeg[0], byDeg[1]})
	}

	// First stage: connect the forest into one tree.
	var metaAug [][2]string
	for i := 1; i < len(vset); i++ {
		metaAug = append(metaAug, [2]string{vset[i][0], vset[i-1][1]})
	}
	t := c.Graph.Clone()
	for _, p := range metaAug {
		if _, err := t.AddEdge(p[0], p[1], 0); err != nil {
			return nil, err
		}
	}

	// Second stage: bridge-connect the tree by zipping its preorder leaves.
	leaves, internal, err := splitLeaves(t)
	if err != nil {
		return nil, err
	}
	switch {
	case len(leaves) < 2:
	case len(leaves) == 2:
		metaAug = append(metaAug, [2]string{leaves[0], leaves[1]})
	default:
		order, derr := dfs.Preorder(t, internal[0])
		if derr != nil {
			return nil, derr
		}
		var pre []string
		leafSet := make(map[string]struct{}, len(leaves))
		for _, id := range leaves {
			leafSet[id] = struct{}{}
		}
		for _, id := range order {
			if _, ok := leafSet[id]; ok {
				pre = append(pre, id)
			}
		}
		half := (len(pre) + 1) / 2
		for i := 0; i < half && i+len(pre)-half < len(pre); i++ {
			metaAug = append(metaAug, [2]string{pre[i], pre[i+len(pre)-half]})
		}
	}

	return expandMetaEdges(g, c, metaAug)
}

// splitLeaves partitions the vertices of a tree into degree-1 leaves and
// the rest, both sorted.
func splitLeaves(t *core.Graph) (leaves, internal []string, err error) {
	for _, id := range t.Vertices() {
		_, _, und, derr := t.Degree(id)
		if derr != nil {
			return nil, nil, derr
		}
		if und == 1 {
			leaves = append(leaves, id)
		} else {
			internal = append(internal, id)
		}
	}

	return leaves, internal, nil
}

// expandMetaEdges maps meta-graph edges back to original vertex pairs,
// preferring low-degree members and skipping pairs already present.
func expandMetaEdges(g *core.Graph, c *Collapsed, metaAug [][2]string) ([][2]string, error) {
	byLowDegree := make(map[string][]string, len(c.Members))
	for id, members := range c.Members {
		sorted := append([]string(nil), members...)
		degOf := make(map[string]int, len(sorted))
		for _, m := range sorted {
			_, _, und, err := g.Degree(m)
			if err != nil {
				return nil, err
			}
			degOf[m] = und
		}
		sort.Slice(sorted, func(i, j int) bool {
			if degOf[sorted[i]] != degOf[sorted[j]] {
				return degOf[sorted[i]] < degOf[sorted[j]]
			}
			return sorted[i] < sorted[j]
		})
		byLowDegree[id] = sorted
	}

	g2 := g.Clone()
	var out [][2]string
	for _, me := range metaAug {
		found := false
		for _, u := range byLowDegree[me[0]] {
			for _, v := range byLowDegree[me[1]] {
				if u == v || g2.HasEdge(u, v) {
					continue
				}
				if _, err := g2.AddEdge(u, v, 0); err != nil {
					return nil, err
				}
				out = append(out, orderedPair(u, v))
				found = true
				break
			}
			if found {
				break
			}
		}
	}
	sortPairs(out)

	return out, nil
}

// weightedBridgeAugmentation approximates a minimum-weight bridge
// augmentation: the bridge-component tree is rooted at a leaf, candidate
// edges are attached at the lowest common ancestor of their meta-endpoints
// in a derived digraph where tree arcs cost nothing, and a minimum rooted
// branching of that digraph selects the candidates to use.
func weightedBridgeAugmentation(g *core.Graph, opts Options) ([][2]string, error) {
	h := g
	var connectors [][2]string
	comps, err := bfs.ConnectedComponents(g)
	if err != nil {
		return nil, err
	}
	if len(comps) > 1 {
		// One-edge-connect first; this raises the approximation factor to 3.
		h = g.Clone()
		connectors, err = OneEdgeAugmentation(h, Options{Avail: opts.Avail})
		if err != nil {
			return nil, err
		}
		for _, p := range connectors {
			if _, aerr := h.AddEdge(p[0], p[1], 0); aerr != nil {
				return nil, aerr
			}
		}
	}

	avail := unpackAvail(h, opts.Avail)
	if len(avail) == 0 {
		bridged, berr := connectivity.HasBridges(h)
		if berr != nil {
			return nil, berr
		}
		if bridged {
			return nil, ErrInfeasible
		}
		return connectors, nil
	}

	bridgeCCs, err := connectivity.BridgeComponents(h)
	if err != nil {
		return nil, err
	}
	c, err := Collapse(h, bridgeCCs)
	if err != nil {
		return nil, err
	}
	metaNodes := c.Graph.Vertices()
	if len(metaNodes) == 1 {
		// Already 2-edge-connected.
		sortPairs(connectors)
		return connectors, nil
	}

	leaves, _, err := splitLeaves(c.Graph)
	if err != nil {
		return nil, err
	}
	root := leaves[0]
	parent, depth, err := rootTree(c.Graph, root)
	if err != nil {
		return nil, err
	}

	// Derived digraph: zero-cost arcs child -> parent, plus for each
	// candidate a weighted arc (or pair of arcs) from the LCA of its
	// meta-endpoints down to them. When two candidates map to the same arc
	// the lighter one wins, ties resolved by (u, v).
	type darc struct {
		w    float64
		cand *Candidate
	}
	d := make(map[string]map[string]darc, len(metaNodes))
	addArc := func(from, to string, w float64, cand *Candidate) {
		if d[from] == nil {
			d[from] = make(map[string]darc)
		}
		prev, ok := d[from][to]
		if ok && (prev.w < w || (prev.w == w && prev.cand != nil && cand != nil &&
			(prev.cand.U < cand.U || (prev.cand.U == cand.U && prev.cand.V <= cand.V)))) {
			return
		}
		d[from][to] = darc{w: w, cand: cand}
	}
	for _, v := range metaNodes {
		if v != root {
			addArc(v, parent[v], 0, nil)
		}
	}
	for _, me := range lightestMetaEdges(c.Mapping, avail) {
		l := lowestCommonAncestor(parent, depth, me.mu, me.mv)
		cand := me.cand
		switch l {
		case me.mu:
			addArc(l, me.mv, cand.Weight, &cand)
		case me.mv:
			addArc(l, me.mu, cand.Weight, &cand)
		default:
			addArc(l, me.mu, cand.Weight, &cand)
			addArc(l, me.mv, cand.Weight, &cand)
		}
	}

	froms := make([]string, 0, len(d))
	for from := range d {
		froms = append(froms, from)
	}
	sort.Strings(froms)
	var arcs []arc
	gens := make(map[int]*Candidate)
	for _, from := range froms {
		tos := make([]string, 0, len(d[from]))
		for to := range d[from] {
			tos = append(tos, to)
		}
		sort.Strings(tos)
		for _, to := range tos {
			a := d[from][to]
			id := len(arcs)
			arcs = append(arcs, arc{from: from, to: to, w: a.w, id: id})
			gens[id] = a.cand
		}
	}
	chosen, err := minimumRootedBranching(metaNodes, arcs, root)
	if err != nil {
		return nil, ErrInfeasible
	}

	picked := make(map[[2]string]struct{})
	for _, id := range chosen {
		if cand := gens[id]; cand != nil {
			picked[orderedPair(cand.U, cand.V)] = struct{}{}
		}
	}
	out := append([][2]string(nil), connectors...)
	for p := range picked {
		out = append(out, p)
	}
	sortPairs(out)

	return out, nil
}

// rootTree orients the tree t away from root, returning parent links and
// depths.
func rootTree(t *core.Graph, root string) (parent map[string]string, depth map[string]int, err error) {
	parent = make(map[string]string, t.VertexCount())
	depth = map[string]int{root: 0}
	order, err := dfs.Preorder(t, root)
	if err != nil {
		return nil, nil, err
	}
	seen := map[string]struct{}{root: {}}
	for _, u := range order {
		nbrs, nerr := t.NeighborIDs(u)
		if nerr != nil {
			return nil, nil, nerr
		}
		for _, v := range nbrs {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			parent[v] = u
			depth[v] = depth[u] + 1
		}
	}

	return parent, depth, nil
}

// lowestCommonAncestor walks the shallower vertex up until the paths meet.
func lowestCommonAncestor(parent map[string]string, depth map[string]int, u, v string) string {
	for depth[u] > depth[v] {
		u = parent[u]
	}
	for depth[v] > depth[u] {
		v = parent[v]
	}
	for u != v {
		u = parent[u]
		v = parent[v]
	}

	return u
}
