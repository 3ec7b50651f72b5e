package flow

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/go-graphflow/graphflow/core"
)

// arc is one directed residual arc. Arcs always come in pairs: the reverse
// arc of adj[u][i] is adj[to][rev], and flows satisfy skew symmetry.
type arc struct {
	to   int     // head node index
	cap  float64 // capacity (0 for synthesized reverse arcs)
	flow float64 // current flow; flow(u,v) == -flow(v,u)
	rev  int     // index of the reverse arc within adj[to]
}

// ResidualNetwork is an index-based arena holding residual arcs plus the
// per-node solver state (excess, height, current-arc cursor). It is built
// once per graph and reset between solver runs, so repeated computations
// (Gomory-Hu, global edge connectivity) avoid reallocation.
type ResidualNetwork struct {
	nodes []string       // index → vertex ID, sorted
	index map[string]int // vertex ID → index
	adj   [][]arc

	excess []float64
	height []int
	curr   []int // current-arc cursor per node

	inf       float64 // finite stand-in for infinite capacity
	flowValue float64
	algorithm string
}

// NodeCount returns the number of nodes.
func (r *ResidualNetwork) NodeCount() int { return len(r.nodes) }

// Nodes returns a copy of the node IDs in index order.
func (r *ResidualNetwork) Nodes() []string {
	out := make([]string, len(r.nodes))
	copy(out, r.nodes)

	return out
}

// Inf returns the finite value simulating infinite capacity. An arc with
// capacity equal to Inf was uncapacitated in the input graph.
func (r *ResidualNetwork) Inf() float64 { return r.inf }

// FlowValue returns the flow value computed by the last solver run.
func (r *ResidualNetwork) FlowValue() float64 { return r.flowValue }

// Algorithm names the solver that produced the current flow.
func (r *ResidualNetwork) Algorithm() string { return r.algorithm }

// Flow returns the current flow on the arc u→v, or false when the arc does
// not exist in the residual network.
func (r *ResidualNetwork) Flow(u, v string) (float64, bool) {
	ui, ok := r.index[u]
	if !ok {
		return 0, false
	}
	vi, ok := r.index[v]
	if !ok {
		return 0, false
	}
	for i := range r.adj[ui] {
		if r.adj[ui][i].to == vi {
			return r.adj[ui][i].flow, true
		}
	}

	return 0, false
}

// Capacity returns the capacity of the arc u→v, or false when absent.
func (r *ResidualNetwork) Capacity(u, v string) (float64, bool) {
	ui, ok := r.index[u]
	if !ok {
		return 0, false
	}
	vi, ok := r.index[v]
	if !ok {
		return 0, false
	}
	for i := range r.adj[ui] {
		if r.adj[ui][i].to == vi {
			return r.adj[ui][i].cap, true
		}
	}

	return 0, false
}

// Reset zeroes all flow state (arc flows, excesses, heights, cursors, flow
// value) while keeping nodes and capacities, readying the network for reuse.
func (r *ResidualNetwork) Reset() {
	for u := range r.adj {
		for i := range r.adj[u] {
			r.adj[u][i].flow = 0
		}
		r.excess[u] = 0
		r.height[u] = 0
		r.curr[u] = 0
	}
	r.flowValue = 0
	r.algorithm = ""
}

// push moves f units of flow along adj[u][i] and its reverse arc.
func (r *ResidualNetwork) push(u, i int, f float64) {
	a := &r.adj[u][i]
	r.adj[a.to][a.rev].flow -= f
	a.flow += f
	r.excess[u] -= f
	r.excess[a.to] += f
}

// addArcPair appends the arc pair u→v (capUV) and v→u (capVU).
func (r *ResidualNetwork) addArcPair(u, v int, capUV, capVU float64) {
	r.adj[u] = append(r.adj[u], arc{to: v, cap: capUV, rev: len(r.adj[v])})
	r.adj[v] = append(r.adj[v], arc{to: u, cap: capVU, rev: len(r.adj[u]) - 1})
}

// arcCount returns the number of arc pairs (the residual "edge" count).
func (r *ResidualNetwork) arcCount() int {
	total := 0
	for u := range r.adj {
		total += len(r.adj[u])
	}

	return total / 2
}

// BuildResidualNetwork builds a residual network from g and initializes a
// zero flow.
//
// The residual network has the same nodes as g and contains a pair of arcs
// (u, v) and (v, u) iff (u, v) is not a self-loop and at least one
// orientation exists in g with positive capacity. Infinity is simulated with
// three times the sum of the finite capacities (or 1 when that sum is zero):
// the residual capacity of an uncapacitated arc is then always at least 2/3
// of Inf while a finite arc's is at most 1/3, which keeps infinite-capacity
// arcs distinguishable for unboundedness detection without affecting finite
// solutions.
//
// Unweighted graphs treat every edge as uncapacitated. Negative capacities
// yield an EdgeError; multigraphs yield ErrMultigraphUnsupported.
func BuildResidualNetwork(g *core.Graph, opts Options) (*ResidualNetwork, error) {
	opts.normalize()
	if g.Multigraph() {
		return nil, ErrMultigraphUnsupported
	}

	nodes := g.Vertices()
	r := &ResidualNetwork{
		nodes:  nodes,
		index:  make(map[string]int, len(nodes)),
		adj:    make([][]arc, len(nodes)),
		excess: make([]float64, len(nodes)),
		height: make([]int, len(nodes)),
		curr:   make([]int, len(nodes)),
	}
	for i, id := range nodes {
		r.index[id] = i
	}

	// Collect per-orientation capacities. Self-loops and non-positive
	// capacities are excluded; missing capacities (unweighted graph or +Inf
	// weight) are recorded as uncapacitated.
	type key struct{ u, v int }
	caps := make(map[key]float64)
	uncapped := make(map[key]bool)
	var pairs []key // first-encounter order, normalized per pair
	seenPair := make(map[key]bool)

	note := func(u, v int, c float64, isInf bool) {
		k := key{u, v}
		if isInf {
			uncapped[k] = true
		} else {
			caps[k] = c
		}
		norm := k
		if rk := (key{v, u}); seenPair[rk] {
			return
		}
		if !seenPair[norm] {
			seenPair[norm] = true
			pairs = append(pairs, norm)
		}
	}

	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		u, v := r.index[e.From], r.index[e.To]
		c := e.Weight
		isInf := !g.Weighted() || math.IsInf(c, 1)
		if !isInf {
			if c < -opts.Epsilon {
				return nil, EdgeError{From: e.From, To: e.To, Cap: c}
			}
			if c <= opts.Epsilon {
				continue
			}
		}
		note(u, v, c, isInf)
		if !g.Directed() {
			note(v, u, c, isInf)
		}
	}

	finite := make([]float64, 0, len(caps))
	for _, c := range caps {
		finite = append(finite, c)
	}
	r.inf = 3 * floats.Sum(finite)
	if r.inf == 0 {
		r.inf = 1
	}

	capOf := func(u, v int) float64 {
		k := key{u, v}
		if uncapped[k] {
			return r.inf
		}
		return caps[k] // zero when the orientation is absent
	}
	for _, p := range pairs {
		r.addArcPair(p.u, p.v, capOf(p.u, p.v), capOf(p.v, p.u))
	}

	return r, nil
}

// detectUnboundedness reports ErrUnbounded when t is reachable from s using
// only uncapacitated arcs (capacity == Inf).
func detectUnboundedness(r *ResidualNetwork, s, t int) error {
	seen := make([]bool, len(r.nodes))
	seen[s] = true
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for i := range r.adj[u] {
			a := r.adj[u][i]
			if a.cap != r.inf || seen[a.to] {
				continue
			}
			if a.to == t {
				return ErrUnbounded
			}
			seen[a.to] = true
			queue = append(queue, a.to)
		}
	}

	return nil
}

// FlowDict converts the residual network's flow into a nested map keyed by
// the input graph's edges. Directed graphs report the positive flow per arc
// (zero-flow edges included). Undirected graphs report the magnitude of the
// net edge flow on both orientations.
func FlowDict(g *core.Graph, r *ResidualNetwork) map[string]map[string]float64 {
	dict := make(map[string]map[string]float64, len(r.nodes))
	for _, u := range g.Vertices() {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			continue
		}
		inner := make(map[string]float64, len(nbrs))
		for _, v := range nbrs {
			inner[v] = 0
		}
		dict[u] = inner
	}
	for ui, u := range r.nodes {
		for i := range r.adj[ui] {
			a := r.adj[ui][i]
			if a.flow <= 0 {
				continue
			}
			v := r.nodes[a.to]
			dict[u][v] = a.flow
			if !g.Directed() {
				dict[v][u] = a.flow
			}
		}
	}

	return dict
}
