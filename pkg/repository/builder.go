package repository

import (
	"github.com/arthur-debert/overlay/pkg/graph"
	"github.com/arthur-debert/overlay/pkg/logging"
	"github.com/arthur-debert/overlay/pkg/types"
	"github.com/rs/zerolog"
)

// Builder records pack declarations and turns them into repository
// mutations. A Builder is not safe for concurrent use.
type Builder struct {
	fs     types.FS
	loaded []*declaration
}

// NewBuilder creates a builder that resolves directories through fsys
func NewBuilder(fsys types.FS) *Builder {
	return &Builder{fs: fsys}
}

// LoadPackage decodes and records the declarations of unit, whose
// directories are relative to rootPath. It performs no ordering and makes
// no sink calls.
func (b *Builder) LoadPackage(unit types.Unit, rootPath string) error {
	logger := logging.GetLogger("repository.load").With().
		Str("unit", unit.Name()).
		Str("root", rootPath).
		Logger()

	decl, err := decodeDeclaration(b.fs, unit, rootPath)
	if err != nil {
		logger.Debug().Err(err).Msg("Rejected pack declaration")
		return err
	}

	b.loaded = append(b.loaded, decl)
	logger.Trace().
		Bool("root", decl.root).
		Int("resources", len(decl.resources)).
		Int("overrides", len(decl.overrides)).
		Int("tags", len(decl.tags)).
		Msg("Pack declaration recorded")
	return nil
}

// BuildRepository orders every loaded declaration and emits the result
// into sink. When it fails the sink has received no calls.
func (b *Builder) BuildRepository(sink types.Sink) error {
	mutations, err := b.Plan()
	if err != nil {
		return err
	}

	for _, m := range mutations {
		switch m.Op {
		case types.OpAdd:
			sink.Add(m.Path, types.Directory{Path: m.Directory})
		case types.OpTag:
			sink.Tag(m.Path, m.Tag)
		}
	}
	return nil
}

// Plan computes the mutations BuildRepository would emit
func (b *Builder) Plan() ([]types.Mutation, error) {
	snapshot := make([]*declaration, len(b.loaded))
	copy(snapshot, b.loaded)

	logger, _ := logging.ForBuild("repository.build")
	done := logging.LogOperationStart(logger, "plan")
	defer done()

	return plan(b.fs, snapshot, logger)
}

// Order returns the build order of the packs that have resources. With a
// subset only those packs are ordered. Conflicts are not checked.
func (b *Builder) Order(subset ...string) ([]string, error) {
	snapshot := make([]*declaration, len(b.loaded))
	copy(snapshot, b.loaded)

	g, _, err := buildGraph(snapshot)
	if err != nil {
		return nil, err
	}
	return g.SortedNodes(subset...)
}

// plan runs the whole build over an immutable snapshot of declarations
func plan(fsys types.FS, decls []*declaration, logger zerolog.Logger) ([]types.Mutation, error) {
	g, byName, err := buildGraph(decls)
	if err != nil {
		logger.Debug().Err(err).Msg("Override graph rejected")
		return nil, err
	}

	if err := checkConflicts(fsys, g, decls); err != nil {
		logger.Debug().Err(err).Msg("Resource conflict")
		return nil, err
	}

	order, err := g.SortedNodes()
	if err != nil {
		return nil, err
	}
	logger.Debug().Strs("order", order).Msg("Packs ordered")

	var mutations []types.Mutation
	for _, name := range order {
		decl := byName[name]
		for _, p := range decl.resourcePaths() {
			for _, dir := range decl.resources[p] {
				mutations = append(mutations, types.AddMutation(p, dir))
			}
		}
	}

	// Packs without resources are not in the graph; their tags follow in
	// load order.
	tagOrder := make([]*declaration, 0, len(decls))
	for _, name := range order {
		tagOrder = append(tagOrder, byName[name])
	}
	for _, decl := range decls {
		if !decl.hasResources() {
			tagOrder = append(tagOrder, decl)
		}
	}

	seen := make(map[[2]string]bool)
	for _, decl := range tagOrder {
		for _, p := range decl.tagPaths() {
			for _, tag := range decl.tags[p] {
				key := [2]string{p, tag}
				if seen[key] {
					continue
				}
				seen[key] = true
				mutations = append(mutations, types.TagMutation(p, tag))
			}
		}
	}

	logger.Info().
		Int("packs", len(order)).
		Int("mutations", len(mutations)).
		Msg("Repository planned")
	return mutations, nil
}

// buildGraph registers packs with resources and adds override edges
func buildGraph(decls []*declaration) (*graph.Graph, map[string]*declaration, error) {
	g := graph.New()
	byName := make(map[string]*declaration)

	for _, decl := range decls {
		if !decl.hasResources() {
			continue
		}
		if err := g.AddNode(decl.name); err != nil {
			return nil, nil, err
		}
		byName[decl.name] = decl
	}

	for _, decl := range decls {
		if !decl.hasResources() {
			continue
		}
		for _, overridden := range decl.overrides {
			if !g.HasNode(overridden) {
				continue
			}
			if err := g.AddEdge(overridden, decl.name); err != nil {
				return nil, nil, err
			}
		}
	}

	for _, decl := range decls {
		if !decl.root {
			continue
		}
		for i := 1; i < len(decl.overrideOrder); i++ {
			prev, curr := decl.overrideOrder[i-1], decl.overrideOrder[i]
			if !g.HasNode(prev) || !g.HasNode(curr) {
				continue
			}
			if g.HasEdge(prev, curr) || g.HasPath(curr, prev) {
				continue
			}
			if err := g.AddEdge(prev, curr); err != nil {
				return nil, nil, err
			}
		}
	}

	return g, byName, nil
}
