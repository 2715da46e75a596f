package repository

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/arthur-debert/overlay/pkg/filesystem"
	"github.com/arthur-debert/overlay/pkg/graph"
	"github.com/arthur-debert/overlay/pkg/types"
)

// checkConflicts fails on the first pair of packs, in load order, whose
// paths collide while neither pack reaches the other in g.
func checkConflicts(fsys types.FS, g *graph.Graph, decls []*declaration) error {
	var registered []*declaration
	for _, decl := range decls {
		if decl.hasResources() {
			registered = append(registered, decl)
		}
	}

	for i := 0; i < len(registered); i++ {
		for j := i + 1; j < len(registered); j++ {
			a, b := registered[i], registered[j]
			paths := collisions(fsys, a, b)
			if len(paths) == 0 {
				continue
			}
			if g.HasPath(a.name, b.name) || g.HasPath(b.name, a.name) {
				continue
			}
			return errors.Newf(errors.ErrResourceConflict,
				"packs %q and %q both map %s; declare an override between them or list them in the root pack's override-order",
				a.name, b.name, strings.Join(quoted(paths), ", ")).
				WithDetail("units", []string{a.name, b.name}).
				WithDetail("paths", paths)
		}
	}
	return nil
}

// collisions returns the sorted virtual paths where a and b collide
func collisions(fsys types.FS, a, b *declaration) []string {
	found := make(map[string]bool)
	for p, aDirs := range a.resources {
		for q, bDirs := range b.resources {
			switch {
			case p == q:
				found[p] = true
			case isBelow(q, p):
				if anyContains(fsys, aDirs, relative(q, p)) {
					found[q] = true
				}
			case isBelow(p, q):
				if anyContains(fsys, bDirs, relative(p, q)) {
					found[p] = true
				}
			}
		}
	}

	paths := make([]string, 0, len(found))
	for p := range found {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// isBelow reports whether child lies strictly below parent
func isBelow(child, parent string) bool {
	if parent == "/" {
		return child != "/"
	}
	return strings.HasPrefix(child, parent+"/")
}

func relative(child, parent string) string {
	return strings.TrimPrefix(strings.TrimPrefix(child, parent), "/")
}

func anyContains(fsys types.FS, dirs []types.Directory, rel string) bool {
	for _, dir := range dirs {
		if filesystem.Contains(fsys, dir, rel) {
			return true
		}
	}
	return false
}

func quoted(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = fmt.Sprintf("%q", p)
	}
	return out
}
