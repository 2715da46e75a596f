// Package graph implements the override graph between packs.
//
// A Graph holds named nodes and directed edges and stays acyclic at all
// times: AddEdge rejects any edge that would close a cycle and leaves the
// graph untouched when it does. Edges point from the overridden pack to the
// overriding one, so a topological walk visits packs in the order their
// resources must be layered.
//
// # Storage
//
// Nodes live in an arena. Each name maps to an index, and successor and
// predecessor lists hold indices kept in ascending (insertion) order, which
// makes every traversal deterministic.
//
// # Ordering
//
// SortedNodes walks candidates in insertion order. Before placing a
// candidate it places, recursively, each direct predecessor that is itself a
// candidate. When a subset is given only direct edges between subset members
// constrain the order; a relationship that passes through an excluded node
// is not followed.
//
// Graph is not safe for concurrent use.
package graph
