package flow

import (
	"math"

	"github.com/go-graphflow/graphflow/core"
)

// PreflowPush finds a maximum single-commodity flow using the highest-label
// preflow-push algorithm and returns the residual network resulting after
// computing the maximum flow. Running time is O(V² √E).
//
// Phase 1 finds a maximum preflow by pushing as much flow as possible toward
// the sink, discharging the highest active node first; nodes whose height
// reaches V-1 are known to be on the source side of a minimum cut and are
// parked until phase 2, which returns their excess to the source, converting
// the preflow into a feasible flow. Two heuristics bound the relabeling
// work: the gap heuristic (an empty level proves every node above it cannot
// reach the sink) and periodic global relabeling (exact heights recomputed
// by reverse breadth-first search once the accumulated work crosses
// (V+E)/Options.GlobalRelabelFreq).
//
// With Options.ValueOnly, the algorithm stops after phase 1: FlowValue() is
// exact, but the arc flows do not form a feasible flow.
//
// Errors: ErrSourceNotFound, ErrSinkNotFound, ErrSameSourceSink,
// ErrNegativeRelabelFreq, ErrUnbounded, plus any residual build error.
func PreflowPush(g *core.Graph, source, sink string, opts Options) (*ResidualNetwork, error) {
	opts.normalize()
	if opts.GlobalRelabelFreq < 0 {
		return nil, ErrNegativeRelabelFreq
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSameSourceSink
	}

	r := opts.Residual
	if r == nil {
		var err error
		if r, err = BuildResidualNetwork(g, opts); err != nil {
			return nil, err
		}
	}
	r.Reset()
	r.algorithm = "preflow-push"

	s, t := r.index[source], r.index[sink]
	if err := detectUnboundedness(r, s, t); err != nil {
		return nil, err
	}

	p := &pusher{r: r, s: s, t: t, n: r.NodeCount(), opts: opts}
	if err := p.run(); err != nil {
		return nil, err
	}

	return r, nil
}

// level holds the active and inactive nodes at one height.
type level struct {
	active   map[int]struct{}
	inactive map[int]struct{}
}

// relabelThreshold measures work before the global relabeling heuristic
// should be applied.
type relabelThreshold struct {
	threshold float64
	work      float64
}

func newRelabelThreshold(n, m int, freq float64) *relabelThreshold {
	g := &relabelThreshold{threshold: math.Inf(1)}
	if freq > 0 {
		g.threshold = float64(n+m) / freq
	}

	return g
}

func (g *relabelThreshold) addWork(w int) { g.work += float64(w) }
func (g *relabelThreshold) reached() bool { return g.work >= g.threshold }
func (g *relabelThreshold) clearWork()    { g.work = 0 }

// pusher is the mutable state of one PreflowPush run.
type pusher struct {
	r    *ResidualNetwork
	s, t int
	n    int
	opts Options

	levels    []*level
	grt       *relabelThreshold
	maxHeight int // highest level below n with at least one active node
}

func (p *pusher) run() error {
	r := p.r
	n := p.n

	// Initialize heights by reverse BFS from the sink.
	heights, seen := p.reverseBFS(p.t)
	if !seen[p.s] {
		// t unreachable from s: the maximum flow is zero.
		r.flowValue = 0
		return nil
	}

	p.maxHeight = 0
	for u := 0; u < n; u++ {
		if seen[u] && u != p.s && heights[u] > p.maxHeight {
			p.maxHeight = heights[u]
		}
	}
	heights[p.s] = n

	p.grt = newRelabelThreshold(n, r.arcCount(), p.opts.GlobalRelabelFreq)

	for u := 0; u < n; u++ {
		if seen[u] {
			r.height[u] = heights[u]
		} else {
			r.height[u] = n + 1
		}
	}

	// The maximum flow must be nonzero now. Initialize the preflow by
	// saturating all arcs emanating from s.
	for i := range r.adj[p.s] {
		if c := r.adj[p.s][i].cap; c > 0 {
			r.push(p.s, i, c)
		}
	}

	// Partition nodes into levels.
	p.levels = make([]*level, 2*n)
	for h := range p.levels {
		p.levels[h] = &level{
			active:   make(map[int]struct{}),
			inactive: make(map[int]struct{}),
		}
	}
	for u := 0; u < n; u++ {
		if u == p.s || u == p.t {
			continue
		}
		lv := p.levels[r.height[u]]
		if r.excess[u] > 0 {
			lv.active[u] = struct{}{}
		} else {
			lv.inactive[u] = struct{}{}
		}
	}

	// Phase 1: find a maximum preflow by pushing as much flow as possible
	// toward t.
	height := p.maxHeight
	for height > 0 {
		select {
		case <-p.opts.Ctx.Done():
			return p.opts.Ctx.Err()
		default:
		}
		for {
			lv := p.levels[height]
			if len(lv.active) == 0 {
				// All active nodes in the current level have been
				// discharged; move to the next lower level.
				height--
				break
			}
			oldHeight, oldLevel := height, lv
			u := anyOf(lv.active)
			height = p.discharge(u, true)
			if p.grt.reached() {
				// Recompute the exact heights of all nodes.
				height = p.globalRelabel(true)
				p.maxHeight = height
				p.grt.clearWork()
				p.opts.Logger.Debug().Int("height", height).Msg("flow: global relabel")
			} else if len(oldLevel.active) == 0 && len(oldLevel.inactive) == 0 {
				// Gap heuristic: the level at oldHeight is empty, so a
				// minimum cut has been identified. Nodes above oldHeight
				// cannot reach t before a maximum preflow is found.
				p.gapHeuristic(oldHeight)
				height = oldHeight - 1
				p.maxHeight = height
				p.opts.Logger.Debug().Int("height", oldHeight).Msg("flow: gap heuristic")
			} else if height > p.maxHeight {
				p.maxHeight = height
			}
		}
	}

	// A maximum preflow has been found; the excess at t is the flow value.
	r.flowValue = r.excess[p.t]
	if p.opts.ValueOnly {
		return nil
	}

	// Phase 2: convert the maximum preflow into a maximum flow by returning
	// the excess to s. Relabel all nodes so they have accurate heights.
	height = p.globalRelabel(false)
	p.grt.clearWork()

	for height > n {
		select {
		case <-p.opts.Ctx.Done():
			return p.opts.Ctx.Err()
		default:
		}
		for {
			lv := p.levels[height]
			if len(lv.active) == 0 {
				height--
				break
			}
			u := anyOf(lv.active)
			height = p.discharge(u, false)
			if p.grt.reached() {
				height = p.globalRelabel(false)
				p.grt.clearWork()
			}
		}
	}

	r.flowValue = r.excess[p.t]
	return nil
}

// reverseBFS computes BFS distances from src against residual arcs
// (flow < capacity on the arc toward the frontier node).
func (p *pusher) reverseBFS(src int) ([]int, []bool) {
	r := p.r
	heights := make([]int, p.n)
	seen := make([]bool, p.n)
	seen[src] = true
	queue := []int{src}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		d := heights[v] + 1
		for i := range r.adj[v] {
			a := r.adj[v][i]
			ra := r.adj[a.to][a.rev] // the arc a.to → v
			if !seen[a.to] && ra.flow < ra.cap {
				seen[a.to] = true
				heights[a.to] = d
				queue = append(queue, a.to)
			}
		}
	}

	return heights, seen
}

// activate moves a node from the inactive set to the active set of its level.
func (p *pusher) activate(v int) {
	if v == p.s || v == p.t {
		return
	}
	lv := p.levels[p.r.height[v]]
	if _, ok := lv.inactive[v]; ok {
		delete(lv.inactive, v)
		lv.active[v] = struct{}{}
	}
}

// relabel raises u to one above its lowest neighbor offering residual
// capacity, creating an admissible arc.
func (p *pusher) relabel(u int) int {
	r := p.r
	p.grt.addWork(len(r.adj[u]))
	minHeight := math.MaxInt32
	for i := range r.adj[u] {
		a := r.adj[u][i]
		if a.flow < a.cap && r.height[a.to] < minHeight {
			minHeight = r.height[a.to]
		}
	}

	return minHeight + 1
}

// discharge pushes u's excess until it becomes inactive or, during phase 1,
// its height reaches at least n-1. u is known to have the largest height
// among active nodes. Returns the next height to examine.
func (p *pusher) discharge(u int, isPhase1 bool) int {
	r := p.r
	height := r.height[u]
	// nextHeight is the next height to examine after discharging u. During
	// phase 1 it stays capped below n.
	nextHeight := height
	delete(p.levels[height].active, u)
	for {
		a := &r.adj[u][r.curr[u]]
		if height == r.height[a.to]+1 && a.flow < a.cap {
			f := math.Min(r.excess[u], a.cap-a.flow)
			r.push(u, r.curr[u], f)
			p.activate(a.to)
			if r.excess[u] == 0 {
				// The node has become inactive.
				p.levels[height].inactive[u] = struct{}{}
				break
			}
		}
		r.curr[u]++
		if r.curr[u] == len(r.adj[u]) {
			// Ran off the end of the adjacency list with no admissible arc
			// left: rewind the cursor and relabel.
			r.curr[u] = 0
			height = p.relabel(u)
			if isPhase1 && height >= p.n-1 {
				// Still active, but at height ≥ n-1 the node is on the s
				// side of the minimum cut. Park it until phase 2.
				p.levels[height].active[u] = struct{}{}
				break
			}
			// The first relabel after global relabeling may not increase the
			// height since the current-arc cursor is not rewound; use height
			// rather than height-1 so active peers at this level are kept.
			nextHeight = height
		}
	}
	r.height[u] = height

	return nextHeight
}

// gapHeuristic lifts every node between height+1 and maxHeight to level n+1.
func (p *pusher) gapHeuristic(height int) {
	n := p.n
	top := p.levels[n+1]
	for h := height + 1; h <= p.maxHeight; h++ {
		lv := p.levels[h]
		for u := range lv.active {
			p.r.height[u] = n + 1
			top.active[u] = struct{}{}
		}
		for u := range lv.inactive {
			p.r.height[u] = n + 1
			top.inactive[u] = struct{}{}
		}
		lv.active = make(map[int]struct{})
		lv.inactive = make(map[int]struct{})
	}
}

// globalRelabel recomputes exact heights by reverse BFS from the sink
// (phase 1) or the source (phase 2) and rebuilds the level sets.
// Returns the new maximum height worth examining.
func (p *pusher) globalRelabel(fromSink bool) int {
	r := p.r
	n := p.n
	src := p.s
	if fromSink {
		src = p.t
	}
	heights, seen := p.reverseBFS(src)
	if !fromSink {
		// s must be reachable from t; remove t explicitly.
		seen[p.t] = false
	}
	maxHeight := 0
	for u := 0; u < n; u++ {
		if seen[u] && heights[u] > maxHeight {
			maxHeight = heights[u]
		}
	}
	if fromSink {
		// Mark nodes from which t is unreachable for relabeling; this
		// serves the same purpose as the gap heuristic.
		for u := 0; u < n; u++ {
			if !seen[u] && r.height[u] < n {
				heights[u] = n + 1
				seen[u] = true
			}
		}
	} else {
		// Shift the computed heights: the height of s is n.
		for u := 0; u < n; u++ {
			if seen[u] {
				heights[u] += n
			}
		}
		maxHeight += n
	}
	seen[src] = false
	for u := 0; u < n; u++ {
		if !seen[u] || u == p.s || u == p.t {
			continue
		}
		oldHeight := r.height[u]
		if heights[u] == oldHeight {
			continue
		}
		oldLevel, newLevel := p.levels[oldHeight], p.levels[heights[u]]
		if _, ok := oldLevel.active[u]; ok {
			delete(oldLevel.active, u)
			newLevel.active[u] = struct{}{}
		} else {
			delete(oldLevel.inactive, u)
			newLevel.inactive[u] = struct{}{}
		}
		r.height[u] = heights[u]
	}

	return maxHeight
}

// anyOf returns an arbitrary element of a non-empty set.
func anyOf(set map[int]struct{}) int {
	for u := range set {
		return u
	}
	panic("flow: empty set")
}
