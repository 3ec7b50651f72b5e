package builder

import (
	"fmt"

	"github.com/go-graphflow/graphflow/core"
)

// Path builds a simple path P_n: edges (0,1), (1,2), ..., (n-2, n-1).
// Requires n ≥ 2. Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("Path: n=%d: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(cfg.idFn(i-1), cfg.idFn(i), cfg.weight(g)); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}
		return nil
	}
}

// Cycle builds an n-vertex simple cycle C_n. Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d: %w", n, ErrTooFewVertices)
		}
		if err := Path(n)(g, cfg); err != nil {
			return fmt.Errorf("Cycle: %w", err)
		}
		if _, err := g.AddEdge(cfg.idFn(n-1), cfg.idFn(0), cfg.weight(g)); err != nil {
			return fmt.Errorf("Cycle: %w", err)
		}
		return nil
	}
}

// Complete builds the complete simple graph K_n. Requires n ≥ 1.
// Complexity: O(n^2).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("Complete: %w", err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(j), cfg.weight(g)); err != nil {
					return fmt.Errorf("Complete: %w", err)
				}
			}
		}
		return nil
	}
}

// Star builds a star: vertex 0 as center joined to n-1 leaves.
// Requires n ≥ 2. Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("Star: n=%d: %w", n, ErrTooFewVertices)
		}
		center := cfg.idFn(0)
		if err := g.AddVertex(center); err != nil {
			return fmt.Errorf("Star: %w", err)
		}
		for i := 1; i < n; i++ {
			if _, err := g.AddEdge(center, cfg.idFn(i), cfg.weight(g)); err != nil {
				return fmt.Errorf("Star: %w", err)
			}
		}
		return nil
	}
}

// RandomSparse builds a G(n, p) graph: each of the C(n,2) candidate edges is
// included independently with probability p, drawn from the configured RNG.
// Requires n ≥ 1 and 0 ≤ p ≤ 1. Fixed seed ⇒ identical output.
// Complexity: O(n^2).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
		}
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("RandomSparse: %w", err)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if _, err := g.AddEdge(cfg.idFn(i), cfg.idFn(j), cfg.weight(g)); err != nil {
					return fmt.Errorf("RandomSparse: %w", err)
				}
			}
		}
		return nil
	}
}
