package testutil

import (
	"testing"

	"github.com/arthur-debert/overlay/pkg/filesystem"
	"github.com/arthur-debert/overlay/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// Roots of the standard fixture packs inside NewFixtureFS
const (
	Package1Root = "/fixtures/package1"
	Package2Root = "/fixtures/package2"
	Package3Root = "/fixtures/package3"
)

// fixtureDirs is the directory layout of the standard fixture packs.
// package1/resources contains "config" but not "new", which the sub-path
// collision tests rely on.
var fixtureDirs = []string{
	Package1Root + "/resources/config",
	Package1Root + "/assets/css",
	Package2Root + "/resources",
	Package2Root + "/override",
	Package2Root + "/css-override",
	Package3Root + "/override1",
	Package3Root + "/override2",
}

// NewFixtureFS returns an in-memory filesystem with the fixture packs and
// any extra directories
func NewFixtureFS(t *testing.T, extraDirs ...string) types.FS {
	t.Helper()

	mem := afero.NewMemMapFs()
	for _, dir := range append(append([]string{}, fixtureDirs...), extraDirs...) {
		require.NoError(t, mem.MkdirAll(dir, 0755))
	}
	return filesystem.NewAferoFS(mem)
}

// Unit returns a non-root unit
func Unit(name string, extra map[string]interface{}) types.Unit {
	return types.StaticUnit{UnitName: name, Config: extra}
}

// RootUnit returns the root unit, named __root__
func RootUnit(extra map[string]interface{}) types.Unit {
	return types.StaticUnit{Root: true, Config: extra}
}

// Dir returns the directory handle for a fixture path
func Dir(path string) types.Directory {
	return types.NewDirectory(path)
}

// Add is the expected mutation for an add call
func Add(path, dir string) types.Mutation {
	return types.AddMutation(path, types.NewDirectory(dir))
}

// Tag is the expected mutation for a tag call
func Tag(path, tag string) types.Mutation {
	return types.TagMutation(path, tag)
}
