// Package graphflow is an in-memory toolkit for maximum-flow analysis and
// edge-connectivity engineering on graphs: build a graph, solve s-t flow,
// extract minimum cuts, and compute the edges that make a network robust.
//
// What is graphflow?
//
//	A thread-safe library organized around one reusable residual network:
//		• Core primitives: create vertices & edges, mutate safely under locks
//		• Traversals: BFS, DFS, connected components
//		• Minimum spanning trees: Prim, Kruskal
//		• Flow solvers: highest-label preflow-push, Edmonds–Karp
//		• Cuts: minimum s-t cuts, Gomory–Hu cut trees
//		• Connectivity: local & global edge connectivity, bridges,
//		  k-edge-connected subgraphs
//		• Augmentation: minimum edge sets that make a graph k-edge-connected
//
// Everything is organized under per-family subpackages:
//
//	core/         — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	bfs/, dfs/    — traversal, components, preorder
//	prim_kruskal/ — minimum spanning trees and disjoint sets
//	flow/         — residual networks, max-flow solvers, min cut, Gomory–Hu
//	connectivity/ — edge connectivity, bridges, k-edge-connected subgraphs
//	augment/      — k-edge-augmentation (one-edge, bridge, greedy, partial)
//	builder/      — deterministic graph generators for tests and examples
//
// Quick ASCII example:
//
//	    A──▶B
//	    │   │
//	    ▼   ▼
//	    C──▶D
//
//	a digraph where the maximum A-D flow equals the minimum A-D cut.
//
//	go get github.com/go-graphflow/graphflow
package graphflow
