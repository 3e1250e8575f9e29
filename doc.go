// Package mstgen builds Euclidean Minimum Spanning Trees over a growing set of
// 2D points: drop a point, rebuild the tree, hand the edges to whoever draws them.
//
// 🚀 What is mstgen?
//
//	A small toolkit that brings together:
//		• core: an append-only, index-stable PointSet
//		• prim_kruskal: Prim (reference builder) and Kruskal (cross-check) over the
//		  complete Euclidean graph, plus a spanning-tree validator
//		• session: the insert-then-rebuild loop of an interactive viewer, headless
//		• cmd/mstgen: a CLI that replays "x y" lines and prints every rebuilt tree
//
// ✨ Why mstgen?
//
//   - Deterministic – a stable priority queue makes repeated builds byte-identical
//   - Total – 0 or 1 points and coincident points are ordinary inputs, not errors
//   - Decoupled – no rendering types anywhere; edges are plain index pairs
//
// Layout:
//
//	core/          — Point, PointSet, Distance
//	prim_kruskal/  — Prim, Kruskal, Compute, TotalWeight, Validate
//	session/       — Session: Add, Edges, Weight
//	internal/      — config (viper), logger (logrus), metrics (prometheus)
//	cmd/mstgen/    — command line entry point
//	examples/      — runnable click-stream walkthrough
//
// Quick ASCII example (root 0, points inserted left to right):
//
//	0───1
//	     ╲
//	      2
//
//	go get github.com/katalvlaran/mstgen
package mstgen
