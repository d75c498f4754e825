// Package polyflag is your in-memory engine for enumerating, orienting
// and partitioning the flags of abstract polytopes, from the nullitope
// up through hypercubes, orthoplexes and beyond.
//
// 🚀 What is polyflag?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Core primitives: ranked incidence structures built level by level
//		• Validation: boundary checks plus the diamond property, per section
//		• Flag enumeration: lexicographic FlagIter over every maximal chain
//		• Orientation: parity-tracked traversal with non-orientability detection
//		• Orbits: FlagSet decomposition under restricted change sets
//		• Walks: cyclic rank sequences, the flag engine behind Petrie polygons
//		• Builders: simplex, hypercube, orthoplex, polygon and the hemicube
//
// ✨ Why choose polyflag?
//
//   - Beginner-friendly: minimal API, clear, intuitive naming
//   - Rock-solid guarantees: sentinel errors, no panics, no global state
//   - Deterministic: same structure in, same enumeration order out, every run
//   - Pure Go: no cgo, no hidden deps
//
// Under the hood, everything is organized under three subpackages:
//
//	builder/ — canonical incidence structures, one constructor per family
//	core/    — Rank, Element and Structure: build, sort, query, validate
//	flags/   — Flag, FlagIter, OrientedFlagIter, FlagSet and Walk
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	represents a square with four vertices and four edges; a flag picks one
//	element of every proper rank, say (vertex 1, edge {0,1}), and the square
//	has exactly eight of them.
//
// Next up: duals, antiprisms, orbit statistics and beyond. Dive into the
// package docs of builder, core and flags for the full contracts.
//
//	go get github.com/katalvlaran/polyflag
package polyflag
