package augment

import (
	"errors"
	"sort"
	"strconv"

	"github.com/go-graphflow/graphflow/core"
)

// ErrInvalidGrouping is returned by Collapse when the supplied groups are
// not disjoint subsets of the vertex set.
var ErrInvalidGrouping = errors.New("augment: groups must be disjoint subsets of the vertex set")

// Collapsed is the quotient of a graph under a node grouping. Meta-vertex
// ids are the decimal group indices; vertices outside every group become
// their own singleton meta-vertex with the following indices.
type Collapsed struct {
	// Graph is the simple undirected meta-graph: one vertex per group, an
	// edge wherever the original graph has an edge between two groups.
	Graph *core.Graph

	// Mapping sends each original vertex to its meta-vertex id.
	Mapping map[string]string

	// Members sends each meta-vertex id to its sorted original vertices.
	Members map[string][]string
}

// Collapse quotients g by the given disjoint vertex groups. Edges inside a
// group vanish; multiple edges between two groups collapse to one.
func Collapse(g *core.Graph, groups [][]string) (*Collapsed, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	c := &Collapsed{
		Graph:   core.NewGraph(),
		Mapping: make(map[string]string, g.VertexCount()),
		Members: make(map[string][]string, len(groups)),
	}

	next := 0
	for _, group := range groups {
		id := strconv.Itoa(next)
		next++
		for _, node := range group {
			if !g.HasVertex(node) {
				return nil, ErrInvalidGrouping
			}
			if _, taken := c.Mapping[node]; taken {
				return nil, ErrInvalidGrouping
			}
			c.Mapping[node] = id
		}
		members := append([]string(nil), group...)
		sort.Strings(members)
		c.Members[id] = members
	}
	for _, node := range g.Vertices() {
		if _, ok := c.Mapping[node]; ok {
			continue
		}
		id := strconv.Itoa(next)
		next++
		c.Mapping[node] = id
		c.Members[id] = []string{node}
	}

	for id := range c.Members {
		if err := c.Graph.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		mu, mv := c.Mapping[e.From], c.Mapping[e.To]
		if mu == mv || c.Graph.HasEdge(mu, mv) {
			continue
		}
		if _, err := c.Graph.AddEdge(mu, mv, 0); err != nil {
			return nil, err
		}
	}

	return c, nil
}
