package flow

import (
	"github.com/go-graphflow/graphflow/core"
)

// EdmondsKarp finds a maximum single-commodity flow by repeatedly augmenting
// along shortest paths, located with a bidirectional breadth-first search
// that expands the smaller frontier. Running time is O(V E²).
//
// EdmondsKarp is the only solver honoring Options.Cutoff: augmentation stops
// once the flow value reaches the cutoff, leaving a feasible (not
// necessarily maximum) flow.
//
// Errors: ErrSourceNotFound, ErrSinkNotFound, ErrSameSourceSink,
// ErrUnbounded, plus any residual build error.
func EdmondsKarp(g *core.Graph, source, sink string, opts Options) (*ResidualNetwork, error) {
	opts.normalize()
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
	r.algorithm = "edmonds-karp"

	s, t := r.index[source], r.index[sink]
	if err := detectUnboundedness(r, s, t); err != nil {
		return nil, err
	}

	value, err := edmondsKarpCore(r, s, t, opts)
	if err != nil {
		return nil, err
	}
	r.flowValue = value

	return r, nil
}

// edmondsKarpCore augments shortest paths until none remains or the cutoff
// is reached.
func edmondsKarpCore(r *ResidualNetwork, s, t int, opts Options) (float64, error) {
	flowValue := 0.0
	for flowValue < opts.Cutoff {
		select {
		case <-opts.Ctx.Done():
			return 0, opts.Ctx.Err()
		default:
		}

		path := bidirectionalBFS(r, s, t)
		if path == nil {
			break
		}
		pushed, err := augment(r, path)
		if err != nil {
			return 0, err
		}
		flowValue += pushed
		opts.Logger.Debug().
			Int("path_len", len(path)).
			Float64("pushed", pushed).
			Msg("flow: augmented")
	}

	return flowValue, nil
}

// augment pushes the bottleneck residual capacity along path (a node index
// sequence from s to t). Moving more than half of Inf proves an
// infinite-capacity s-t path, so ErrUnbounded is returned.
func augment(r *ResidualNetwork, path []int) (float64, error) {
	bottleneck := r.inf
	for k := 1; k < len(path); k++ {
		a := arcBetween(r, path[k-1], path[k])
		if residual := a.cap - a.flow; residual < bottleneck {
			bottleneck = residual
		}
	}
	if bottleneck*2 > r.inf {
		return 0, ErrUnbounded
	}
	for k := 1; k < len(path); k++ {
		u := path[k-1]
		for i := range r.adj[u] {
			if r.adj[u][i].to == path[k] {
				r.push(u, i, bottleneck)
				break
			}
		}
	}

	return bottleneck, nil
}

func arcBetween(r *ResidualNetwork, u, v int) *arc {
	for i := range r.adj[u] {
		if r.adj[u][i].to == v {
			return &r.adj[u][i]
		}
	}
	panic("flow: missing residual arc")
}

// bidirectionalBFS searches for a shortest augmenting path, growing the
// smaller of the two frontiers each round. Returns the node sequence from s
// to t, or nil when no augmenting path remains.
func bidirectionalBFS(r *ResidualNetwork, s, t int) []int {
	pred := map[int]int{s: -1}
	succ := map[int]int{t: -1}
	qs, qt := []int{s}, []int{t}

	var meet = -1
	for meet < 0 {
		var next []int
		if len(qs) <= len(qt) {
			for _, u := range qs {
				for i := range r.adj[u] {
					a := r.adj[u][i]
					if _, ok := pred[a.to]; ok || a.flow >= a.cap {
						continue
					}
					pred[a.to] = u
					if _, ok := succ[a.to]; ok {
						meet = a.to
						break
					}
					next = append(next, a.to)
				}
				if meet >= 0 {
					break
				}
			}
			if meet < 0 {
				if len(next) == 0 {
					return nil
				}
				qs = next
			}
		} else {
			for _, u := range qt {
				for i := range r.adj[u] {
					a := r.adj[u][i]
					ra := r.adj[a.to][a.rev] // the arc a.to → u
					if _, ok := succ[a.to]; ok || ra.flow >= ra.cap {
						continue
					}
					succ[a.to] = u
					if _, ok := pred[a.to]; ok {
						meet = a.to
						break
					}
					next = append(next, a.to)
				}
				if meet >= 0 {
					break
				}
			}
			if meet < 0 {
				if len(next) == 0 {
					return nil
				}
				qt = next
			}
		}
	}

	// Trace s → meet, then meet → t.
	var head []int
	for u := meet; u != -1; u = pred[u] {
		head = append(head, u)
	}
	for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
		head[i], head[j] = head[j], head[i]
	}
	for u := succ[meet]; u != -1; u = succ[u] {
		head = append(head, u)
	}

	return head
}
