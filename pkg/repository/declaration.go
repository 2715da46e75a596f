package repository

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/arthur-debert/overlay/pkg/filesystem"
	"github.com/arthur-debert/overlay/pkg/types"
)

// Recognized keys of a pack's extra configuration
const (
	KeyResources     = "resources"
	KeyOverride      = "override"
	KeyOverrideOrder = "override-order"
	KeyResourceTags  = "resource-tags"
)

// declaration is the decoded, immutable form of one loaded pack
type declaration struct {
	name          string
	root          bool
	resources     map[string][]types.Directory
	overrides     []string
	overrideOrder []string
	tags          map[string][]string
}

func (d *declaration) hasResources() bool {
	return len(d.resources) > 0
}

func (d *declaration) resourcePaths() []string {
	return sortedKeys(d.resources)
}

func (d *declaration) tagPaths() []string {
	return sortedKeys(d.tags)
}

// decodeDeclaration validates the extra configuration of unit and resolves
// every source directory against rootPath.
func decodeDeclaration(fsys types.FS, unit types.Unit, rootPath string) (*declaration, error) {
	decl := &declaration{
		name:      unit.Name(),
		root:      unit.IsRoot(),
		resources: make(map[string][]types.Directory),
		tags:      make(map[string][]string),
	}
	extra := unit.Extra()

	if raw, ok := extra[KeyResources]; ok && raw != nil {
		mapping, ok := asMapping(raw)
		if !ok {
			return nil, definitionError(decl.name, KeyResources, "must be a mapping of paths to directories", raw)
		}
		for _, virtualPath := range sortedKeys(mapping) {
			value := mapping[virtualPath]
			cleaned, err := cleanVirtualPath(decl.name, KeyResources, virtualPath)
			if err != nil {
				return nil, err
			}
			rels, ok := asScalarOrList(value)
			if !ok || len(rels) == 0 {
				return nil, definitionError(decl.name, KeyResources, "must map each path to a directory or a list of directories", value).
					WithDetail("path", virtualPath)
			}
			for _, rel := range rels {
				dir, err := filesystem.ResolveDirectory(fsys, rootPath, rel)
				if err != nil {
					return nil, errors.Wrapf(err, errors.ErrFilesystem, "pack %q maps %q to a missing directory", decl.name, cleaned).
						WithDetail("unit", decl.name).
						WithDetail("path", cleaned).
						WithDetail("directory", rel)
				}
				decl.resources[cleaned] = append(decl.resources[cleaned], dir)
			}
		}
	}

	if raw, ok := extra[KeyOverride]; ok && raw != nil {
		names, ok := asScalarOrList(raw)
		if !ok {
			return nil, definitionError(decl.name, KeyOverride, "must be a pack name or a list of pack names", raw)
		}
		decl.overrides = names
	}

	if raw, ok := extra[KeyOverrideOrder]; ok && raw != nil && decl.root {
		names, ok := asList(raw)
		if !ok {
			return nil, definitionError(decl.name, KeyOverrideOrder, "must be a list of pack names", raw)
		}
		decl.overrideOrder = names
	}

	if raw, ok := extra[KeyResourceTags]; ok && raw != nil {
		mapping, ok := asMapping(raw)
		if !ok {
			return nil, definitionError(decl.name, KeyResourceTags, "must be a mapping of paths to tags", raw)
		}
		for _, virtualPath := range sortedKeys(mapping) {
			value := mapping[virtualPath]
			cleaned, err := cleanVirtualPath(decl.name, KeyResourceTags, virtualPath)
			if err != nil {
				return nil, err
			}
			tags, ok := asScalarOrList(value)
			if !ok {
				return nil, definitionError(decl.name, KeyResourceTags, "must map each path to a tag or a list of tags", value).
					WithDetail("path", virtualPath)
			}
			decl.tags[cleaned] = append(decl.tags[cleaned], tags...)
		}
	}

	return decl, nil
}

func definitionError(unit, key, problem string, value interface{}) *errors.OverlayError {
	return errors.Newf(errors.ErrResourceDefinition, "pack %q: %q %s, got %T", unit, key, problem, value).
		WithDetail("unit", unit).
		WithDetail("key", key)
}

// cleanVirtualPath requires an absolute path and normalizes it
func cleanVirtualPath(unit, key, p string) (string, error) {
	if !strings.HasPrefix(p, "/") {
		return "", errors.Newf(errors.ErrResourceDefinition, "pack %q: %q path %q must be absolute", unit, key, p).
			WithDetail("unit", unit).
			WithDetail("key", key).
			WithDetail("path", p)
	}
	return path.Clean(p), nil
}

// asScalarOrList accepts a string or a list of strings
func asScalarOrList(v interface{}) ([]string, bool) {
	if s, ok := v.(string); ok {
		return []string{s}, true
	}
	return asList(v)
}

// asList accepts a list whose items are all strings
func asList(v interface{}) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out, true
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// asMapping accepts the map shapes TOML, YAML and Go callers produce
func asMapping(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case map[string]string:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	case map[string][]string:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
