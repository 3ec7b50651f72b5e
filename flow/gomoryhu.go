package flow

import (
	"github.com/go-graphflow/graphflow/core"
)

// GomoryHuTree computes a Gomory-Hu tree of an undirected graph using
// Gusfield's simplification: n-1 minimum-cut computations against a single
// reused residual network, with no node contractions.
//
// The returned tree is an undirected weighted graph on the same vertices.
// For any pair (u, v), the minimum u-v cut in the input equals the smallest
// edge weight on the unique u-v path in the tree, and removing that edge
// splits the tree into the partition defining the cut. All pairwise minimum
// cuts of a graph are therefore captured by n-1 values.
//
// Errors: ErrEmptyGraph for a graph without vertices,
// ErrDirectedUnsupported for directed input, plus any solver error.
func GomoryHuTree(g *core.Graph, opts Options) (*core.Graph, error) {
	opts.normalize()
	if g.Directed() {
		return nil, ErrDirectedUnsupported
	}
	nodes := g.Vertices()
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	// Start the tree as a star with an arbitrary node at the center.
	root := nodes[0]
	tree := make(map[string]string, len(nodes)-1)
	for _, n := range nodes[1:] {
		tree[n] = root
	}

	type pair struct{ u, v string }
	labels := make(map[pair]float64, len(nodes)-1)

	// One residual network serves every cut computation.
	r, err := BuildResidualNetwork(g, opts)
	if err != nil {
		return nil, err
	}
	opts.Residual = r

	// Process the star leaves: n-1 minimum cuts.
	for _, source := range nodes[1:] {
		target := tree[source]
		cutValue, part, err := MinimumCut(g, source, target, opts)
		if err != nil {
			return nil, err
		}
		labels[pair{source, target}] = cutValue
		// source always lands in part.Source and target in part.Sink.
		// Leaves on the source side hanging off target re-parent to source,
		// carrying their cut label forward.
		for _, node := range part.Source {
			if node == source || tree[node] != target {
				continue
			}
			tree[node] = source
			if lbl, ok := labels[pair{node, target}]; ok {
				labels[pair{node, source}] = lbl
			} else {
				labels[pair{node, source}] = cutValue
			}
		}
	}

	t := core.NewGraph(core.WithWeighted())
	for _, n := range nodes {
		if err := t.AddVertex(n); err != nil {
			return nil, err
		}
	}
	for _, n := range nodes[1:] {
		if _, err := t.AddEdge(n, tree[n], labels[pair{n, tree[n]}]); err != nil {
			return nil, err
		}
	}

	return t, nil
}
