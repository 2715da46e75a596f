package graph

import (
	"sort"

	"github.com/arthur-debert/overlay/pkg/errors"
)

// Graph is a directed acyclic graph of named nodes
type Graph struct {
	names []string
	index map[string]int
	succ  [][]int
	pred  [][]int
}

// New creates an empty graph
func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.names)
}

// Nodes returns all node names in insertion order
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// AddNode registers a node. Registering a name twice fails.
func (g *Graph) AddNode(name string) error {
	if _, ok := g.index[name]; ok {
		return errors.Newf(errors.ErrDuplicateNode, "node %q is already defined", name).
			WithDetail("node", name)
	}
	g.index[name] = len(g.names)
	g.names = append(g.names, name)
	g.succ = append(g.succ, nil)
	g.pred = append(g.pred, nil)
	return nil
}

// HasNode reports whether name is registered
func (g *Graph) HasNode(name string) bool {
	_, ok := g.index[name]
	return ok
}

// HasEdge reports whether the edge from → to exists
func (g *Graph) HasEdge(from, to string) bool {
	f, ok := g.index[from]
	if !ok {
		return false
	}
	t, ok := g.index[to]
	if !ok {
		return false
	}
	return containsIndex(g.succ[f], t)
}

// AddEdge adds the edge from → to. Both nodes must exist. An edge that
// would close a cycle is rejected and the graph is left unchanged. Adding
// an existing edge is a no-op.
func (g *Graph) AddEdge(from, to string) error {
	f, err := g.lookup(from)
	if err != nil {
		return err
	}
	t, err := g.lookup(to)
	if err != nil {
		return err
	}

	if containsIndex(g.succ[f], t) {
		return nil
	}

	if f == t {
		return errors.Newf(errors.ErrCycle, "edge %q -> %q would create a cycle", from, to).
			WithDetail("from", from).
			WithDetail("to", to).
			WithDetail("cycle", []string{from, from})
	}

	if witness, ok := g.GetPath(to, from); ok {
		return errors.Newf(errors.ErrCycle, "edge %q -> %q would create a cycle", from, to).
			WithDetail("from", from).
			WithDetail("to", to).
			WithDetail("cycle", append(witness, to))
	}

	g.succ[f] = insertIndex(g.succ[f], t)
	g.pred[t] = insertIndex(g.pred[t], f)
	return nil
}

// Predecessors returns the direct predecessors of name in insertion order
func (g *Graph) Predecessors(name string) []string {
	i, ok := g.index[name]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(g.pred[i]))
	for _, p := range g.pred[i] {
		out = append(out, g.names[p])
	}
	return out
}

// HasPath reports whether a path of length one or more leads from → to.
// Unknown nodes have no paths.
func (g *Graph) HasPath(from, to string) bool {
	_, ok := g.GetPath(from, to)
	return ok
}

// GetPath returns the nodes along some path from → to, both included.
// The path is found depth first; it is a witness, not necessarily the
// shortest one.
func (g *Graph) GetPath(from, to string) ([]string, bool) {
	f, ok := g.index[from]
	if !ok {
		return nil, false
	}
	t, ok := g.index[to]
	if !ok {
		return nil, false
	}

	visited := make([]bool, len(g.names))
	var stack []int

	var dfs func(n int) bool
	dfs = func(n int) bool {
		stack = append(stack, n)
		for _, next := range g.succ[n] {
			if next == t {
				stack = append(stack, next)
				return true
			}
			if visited[next] {
				continue
			}
			visited[next] = true
			if dfs(next) {
				return true
			}
		}
		stack = stack[:len(stack)-1]
		return false
	}

	visited[f] = true
	if !dfs(f) {
		return nil, false
	}

	path := make([]string, len(stack))
	for i, n := range stack {
		path[i] = g.names[n]
	}
	return path, true
}

// SortedNodes returns the nodes in topological order. With a subset only
// those nodes are returned, and only direct edges between them are
// honored. Naming an unknown node fails.
func (g *Graph) SortedNodes(subset ...string) ([]string, error) {
	candidate := make([]bool, len(g.names))
	if len(subset) == 0 {
		for i := range candidate {
			candidate[i] = true
		}
	} else {
		for _, name := range subset {
			i, err := g.lookup(name)
			if err != nil {
				return nil, err
			}
			candidate[i] = true
		}
	}

	placed := make([]bool, len(g.names))
	sorted := make([]string, 0, len(g.names))

	var place func(n int)
	place = func(n int) {
		// The graph is acyclic, so marking on entry cannot hide a predecessor.
		placed[n] = true
		for _, p := range g.pred[n] {
			if candidate[p] && !placed[p] {
				place(p)
			}
		}
		sorted = append(sorted, g.names[n])
	}

	for i := range g.names {
		if candidate[i] && !placed[i] {
			place(i)
		}
	}

	return sorted, nil
}

func (g *Graph) lookup(name string) (int, error) {
	i, ok := g.index[name]
	if !ok {
		return 0, errors.Newf(errors.ErrUnknownNode, "node %q is not defined", name).
			WithDetail("node", name)
	}
	return i, nil
}

func containsIndex(list []int, v int) bool {
	i := sort.SearchInts(list, v)
	return i < len(list) && list[i] == v
}

func insertIndex(list []int, v int) []int {
	i := sort.SearchInts(list, v)
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = v
	return list
}
