// Test Type: Unit Test
// Description: Tests for the override graph - membership, cycles, paths and ordering

package graph_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/arthur-debert/overlay/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFixtureGraph builds:
//
//	(p1) → (p2)   →   (p3)
//	      ↗    ↘     ↗
//	  (p5)       (p4)
//
//	       (p6)
func newFixtureGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, name := range []string{"p1", "p2", "p3", "p4", "p5", "p6"} {
		require.NoError(t, g.AddNode(name))
	}
	require.NoError(t, g.AddEdge("p1", "p2"))
	require.NoError(t, g.AddEdge("p2", "p3"))
	require.NoError(t, g.AddEdge("p2", "p4"))
	require.NoError(t, g.AddEdge("p5", "p2"))
	require.NoError(t, g.AddEdge("p4", "p3"))
	return g
}

func TestPaths(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		path []string
	}{
		{"adjacent", "p1", "p2", []string{"p1", "p2"}},
		{"adjacent_wrong_order", "p2", "p1", nil},
		{"multi_node", "p1", "p3", []string{"p1", "p2", "p3"}},
		{"multi_node_wrong_order", "p3", "p1", nil},
		{"multi_node_no_path", "p3", "p4", nil},
		{"node_without_edges_from", "p1", "p5", nil},
		{"node_without_edges_to", "p5", "p1", nil},
		{"undefined_target", "p1", "foo", nil},
		{"undefined_source", "foo", "p1", nil},
		{"same_node", "p1", "p1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newFixtureGraph(t)

			assert.Equal(t, tt.path != nil, g.HasPath(tt.from, tt.to))

			path, ok := g.GetPath(tt.from, tt.to)
			assert.Equal(t, tt.path != nil, ok)
			assert.Equal(t, tt.path, path)
		})
	}
}

func TestAddNode(t *testing.T) {
	t.Run("registers_node", func(t *testing.T) {
		g := graph.New()
		assert.False(t, g.HasNode("p1"))

		require.NoError(t, g.AddNode("p1"))

		assert.True(t, g.HasNode("p1"))
		assert.Equal(t, 1, g.Len())
	})

	t.Run("fails_if_already_defined", func(t *testing.T) {
		g := graph.New()
		require.NoError(t, g.AddNode("p1"))

		err := g.AddNode("p1")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateNode))
		assert.Equal(t, 1, g.Len())
	})
}

func TestAddEdge(t *testing.T) {
	t.Run("fails_if_left_node_missing", func(t *testing.T) {
		g := graph.New()
		require.NoError(t, g.AddNode("p2"))

		err := g.AddEdge("p1", "p2")
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownNode))
	})

	t.Run("fails_if_right_node_missing", func(t *testing.T) {
		g := graph.New()
		require.NoError(t, g.AddNode("p1"))

		err := g.AddEdge("p1", "p2")
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownNode))
	})

	t.Run("fails_if_cycle", func(t *testing.T) {
		g := graph.New()
		require.NoError(t, g.AddNode("p1"))
		require.NoError(t, g.AddNode("p2"))
		require.NoError(t, g.AddEdge("p1", "p2"))

		err := g.AddEdge("p2", "p1")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCycle))
		assert.Equal(t, []string{"p1", "p2", "p1"}, errors.GetErrorDetails(err)["cycle"])
	})

	t.Run("fails_on_self_loop", func(t *testing.T) {
		g := graph.New()
		require.NoError(t, g.AddNode("p1"))

		err := g.AddEdge("p1", "p1")
		assert.True(t, errors.IsErrorCode(err, errors.ErrCycle))
		assert.False(t, g.HasEdge("p1", "p1"))
	})

	t.Run("rejected_cycle_leaves_graph_unchanged", func(t *testing.T) {
		g := newFixtureGraph(t)
		names := g.Nodes()

		before := snapshot(g, names)
		err := g.AddEdge("p3", "p1")
		require.Error(t, err)
		assert.Equal(t, before, snapshot(g, names))
	})

	t.Run("re_adding_edge_is_noop", func(t *testing.T) {
		g := newFixtureGraph(t)

		require.NoError(t, g.AddEdge("p1", "p2"))
		assert.Equal(t, []string{"p1", "p5"}, g.Predecessors("p2"))
	})
}

func TestHasEdge(t *testing.T) {
	g := graph.New()
	assert.False(t, g.HasEdge("p1", "p2"))
	assert.False(t, g.HasEdge("p2", "p1"))

	require.NoError(t, g.AddNode("p1"))
	require.NoError(t, g.AddNode("p2"))

	assert.False(t, g.HasEdge("p1", "p2"))
	assert.False(t, g.HasEdge("p2", "p1"))

	require.NoError(t, g.AddEdge("p1", "p2"))

	assert.True(t, g.HasEdge("p1", "p2"))
	assert.False(t, g.HasEdge("p2", "p1"))
}

func TestSortedNodes(t *testing.T) {
	t.Run("full_graph", func(t *testing.T) {
		g := newFixtureGraph(t)

		sorted, err := g.SortedNodes()
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p5", "p2", "p4", "p3", "p6"}, sorted)
	})

	t.Run("subset_ignores_edges_through_excluded_nodes", func(t *testing.T) {
		g := newFixtureGraph(t)

		sorted, err := g.SortedNodes("p1", "p3", "p4", "p5", "p6")
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p4", "p3", "p5", "p6"}, sorted)
	})

	t.Run("subset_order_of_arguments_is_irrelevant", func(t *testing.T) {
		g := newFixtureGraph(t)

		sorted, err := g.SortedNodes("p6", "p3", "p5", "p4", "p1")
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p4", "p3", "p5", "p6"}, sorted)
	})

	t.Run("subset_expects_valid_nodes", func(t *testing.T) {
		g := graph.New()

		_, err := g.SortedNodes("foo")
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownNode))
	})

	t.Run("empty_graph", func(t *testing.T) {
		sorted, err := graph.New().SortedNodes()
		require.NoError(t, err)
		assert.Empty(t, sorted)
	})
}

// TestSortedNodesRandomGraphs checks the ordering contract on random DAGs:
// every node appears exactly once and every edge is respected.
func TestSortedNodesRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		g := graph.New()
		n := 2 + rng.Intn(12)
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("n%d", i)
			require.NoError(t, g.AddNode(names[i]))
		}

		var edges [][2]string
		for k := 0; k < n*2; k++ {
			from, to := names[rng.Intn(n)], names[rng.Intn(n)]
			if err := g.AddEdge(from, to); err == nil {
				edges = append(edges, [2]string{from, to})
			} else {
				require.True(t, errors.IsErrorCode(err, errors.ErrCycle))
			}
		}

		sorted, err := g.SortedNodes()
		require.NoError(t, err)
		require.ElementsMatch(t, names, sorted)

		pos := make(map[string]int, len(sorted))
		for i, name := range sorted {
			pos[name] = i
		}
		for _, e := range edges {
			assert.Less(t, pos[e[0]], pos[e[1]], "edge %s -> %s", e[0], e[1])
		}

		subset := make([]string, 0, n)
		for _, name := range names {
			if rng.Intn(2) == 0 {
				subset = append(subset, name)
			}
		}
		if len(subset) == 0 {
			continue
		}
		inSubset := make(map[string]bool, len(subset))
		for _, name := range subset {
			inSubset[name] = true
		}

		partial, err := g.SortedNodes(subset...)
		require.NoError(t, err)
		require.ElementsMatch(t, subset, partial)

		pos = make(map[string]int, len(partial))
		for i, name := range partial {
			pos[name] = i
		}
		for _, e := range edges {
			if inSubset[e[0]] && inSubset[e[1]] {
				assert.Less(t, pos[e[0]], pos[e[1]], "subset edge %s -> %s", e[0], e[1])
			}
		}
	}
}

func snapshot(g *graph.Graph, names []string) map[string]bool {
	out := make(map[string]bool)
	for _, a := range names {
		for _, b := range names {
			out[a+">"+b] = g.HasEdge(a, b)
			out[a+">>"+b] = g.HasPath(a, b)
		}
	}
	return out
}
