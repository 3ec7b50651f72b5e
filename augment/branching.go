package augment

import (
	"errors"
	"strconv"
)

// errNoBranching is internal; callers surface ErrInfeasible.
var errNoBranching = errors.New("augment: no rooted branching exists")

// arc is a directed edge of the derived digraph fed to the branching
// solver. The id survives cycle contractions so selected arcs can be
// mapped back to the arcs of the original digraph.
type arc struct {
	from, to string
	w        float64
	id       int
}

// minimumRootedBranching returns the ids of the arcs forming a minimum
// weight arborescence rooted at root: a directed tree reaching every node,
// all arcs pointing away from the root (Chu-Liu/Edmonds).
//
// Arcs into the root and self-loops are ignored. Fails with an error when
// some node is unreachable.
func minimumRootedBranching(nodes []string, arcs []arc, root string) ([]int, error) {
	// Minimum incoming arc per non-root node, ties by id for determinism.
	minIn := make(map[string]arc, len(nodes))
	for _, a := range arcs {
		if a.to == root || a.from == a.to {
			continue
		}
		prev, ok := minIn[a.to]
		if !ok || a.w < prev.w || (a.w == prev.w && a.id < prev.id) {
			minIn[a.to] = a
		}
	}
	for _, v := range nodes {
		if v == root {
			continue
		}
		if _, ok := minIn[v]; !ok {
			return nil, errNoBranching
		}
	}

	cycle := findCycle(nodes, minIn, root)
	if cycle == nil {
		out := make([]int, 0, len(minIn))
		for _, a := range minIn {
			out = append(out, a.id)
		}
		return out, nil
	}

	// Contract the cycle into a supernode and recurse on the smaller
	// digraph; arcs entering the cycle are reweighted by the cycle arc
	// they displace.
	inCycle := make(map[string]struct{}, len(cycle))
	for _, v := range cycle {
		inCycle[v] = struct{}{}
	}
	super := "\x00" + strconv.Itoa(len(nodes))

	newNodes := make([]string, 0, len(nodes)-len(cycle)+1)
	for _, v := range nodes {
		if _, ok := inCycle[v]; !ok {
			newNodes = append(newNodes, v)
		}
	}
	newNodes = append(newNodes, super)

	entry := make(map[int]string) // arc id -> cycle node it enters
	var newArcs []arc
	for _, a := range arcs {
		_, fromIn := inCycle[a.from]
		_, toIn := inCycle[a.to]
		switch {
		case fromIn && toIn:
		case toIn:
			entry[a.id] = a.to
			newArcs = append(newArcs, arc{from: a.from, to: super, w: a.w - minIn[a.to].w, id: a.id})
		case fromIn:
			newArcs = append(newArcs, arc{from: super, to: a.to, w: a.w, id: a.id})
		default:
			newArcs = append(newArcs, a)
		}
	}

	sub, err := minimumRootedBranching(newNodes, newArcs, root)
	if err != nil {
		return nil, err
	}

	// Exactly one selected arc enters the supernode; its original head is
	// the cycle node whose internal arc is displaced.
	displaced := ""
	for _, id := range sub {
		if v, ok := entry[id]; ok {
			displaced = v
			break
		}
	}
	out := sub
	for _, v := range cycle {
		if v != displaced {
			out = append(out, minIn[v].id)
		}
	}

	return out, nil
}

// findCycle looks for a cycle in the chosen minimum in-arcs by walking
// parent links; nil means the selection is already an arborescence.
func findCycle(nodes []string, minIn map[string]arc, root string) []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(nodes))
	for _, start := range nodes {
		if start == root || color[start] != white {
			continue
		}
		v := start
		for v != root && color[v] == white {
			color[v] = gray
			v = minIn[v].from
		}
		if v != root && color[v] == gray {
			// Walk the cycle once to collect it.
			cyc := []string{v}
			for u := minIn[v].from; u != v; u = minIn[u].from {
				cyc = append(cyc, u)
			}
			return cyc
		}
		u := start
		for u != root && color[u] == gray {
			color[u] = black
			u = minIn[u].from
		}
	}

	return nil
}
