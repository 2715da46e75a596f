// Package repository merges the resource declarations of many packs into
// one ordered list of repository mutations.
//
// Building happens in two phases. LoadPackage decodes and validates one
// pack's declarations and records them; nothing is ordered or emitted yet,
// so packs may be loaded in any order. BuildRepository then takes a
// snapshot of everything loaded and, in a single pass:
//
//  1. registers every pack that maps at least one path as a graph node
//  2. adds an edge overridden → overriding for each "override" reference
//     to a registered pack
//  3. chains the root pack's "override-order" list where it does not
//     contradict the graph
//  4. rejects unrelated packs whose paths collide
//  5. emits Add calls in topological pack order, paths sorted, directories
//     in declaration order
//  6. emits Tag calls in the same pack order, each (path, tag) pair once
//
// Any failure in steps 1-4 leaves the sink untouched.
//
// # Pack configuration
//
// The builder reads four keys from a pack's extra configuration:
//
//	resources       mapping of virtual path -> directory | [directories]
//	override        pack name | [pack names]
//	override-order  [pack names], root pack only
//	resource-tags   mapping of virtual path -> tag | [tags]
//
// Directories are relative to the pack root and must exist.
//
// # Collisions
//
// Two packs collide when they map the same virtual path, or when one maps
// a path below another's and the directory mapped at the upper path already
// contains that sub-path on disk. Colliding packs must be connected in the
// override graph, in either direction.
package repository
