package packs_test

import (
	"testing"

	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/arthur-debert/overlay/pkg/filesystem"
	"github.com/arthur-debert/overlay/pkg/packs"
	"github.com/arthur-debert/overlay/pkg/repository"
	"github.com/arthur-debert/overlay/pkg/sink"
	"github.com/arthur-debert/overlay/pkg/testutil"
	"github.com/arthur-debert/overlay/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"/packs/a/overlay.toml": ``,
		"/packs/b/overlay.toml": ``,
		"/packs/c/overlay.toml": ``,
	})
	all, err := packs.Discover(fsys, "/packs", packs.DefaultOptions())
	require.NoError(t, err)

	selected, err := packs.Select(all, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, packs.Names(selected))

	selected, err = packs.Select(all, []string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, packs.Names(selected))

	_, err = packs.Select(all, []string{"a", "zzz"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, []string{"zzz"}, errors.GetErrorDetails(err)["notFound"])
}

// Discovers packs on the real filesystem and builds them
func TestDiscoverAndBuild(t *testing.T) {
	root := testutil.SetupTestRoot(t)

	rootFiles := &testutil.TestPack{Root: root, Name: "", Dir: root}
	rootFiles.AddFile(t, "overlay.toml", `
[extra]
override-order = ["acme/base", "acme/site"]
`)

	base := testutil.AddTestPack(t, root, "base")
	base.AddFile(t, "overlay.toml", `
name = "acme/base"

[extra.resources]
"/www" = "public"
`)
	base.AddFile(t, "public/index.html", "base")

	site := testutil.AddTestPack(t, root, "site")
	site.AddFile(t, "overlay.yaml", `
name: acme/site
extra:
  resources:
    /www: public
  resource-tags:
    /www: [live]
`)
	site.AddFile(t, "public/index.html", "site")

	found, err := packs.Discover(filesystem.NewOS(), root, packs.DefaultOptions())
	require.NoError(t, err)

	builder := repository.NewBuilder(filesystem.NewOS())
	require.NoError(t, packs.LoadAll(builder, found))

	rec := sink.NewRecorder()
	require.NoError(t, builder.BuildRepository(rec))

	assert.Equal(t, []types.Mutation{
		testutil.Add("/www", base.Dir+"/public"),
		testutil.Add("/www", site.Dir+"/public"),
		testutil.Tag("/www", "live"),
	}, rec.Mutations())
}

type failingLoader struct{ calls int }

func (f *failingLoader) LoadPackage(unit types.Unit, rootPath string) error {
	f.calls++
	return errors.New(errors.ErrResourceDefinition, "bad pack")
}

func TestLoadAllStopsAtFirstError(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"/packs/a/overlay.toml": ``,
		"/packs/b/overlay.toml": ``,
	})
	all, err := packs.Discover(fsys, "/packs", packs.DefaultOptions())
	require.NoError(t, err)

	loader := &failingLoader{}
	err = packs.LoadAll(loader, all)
	assert.True(t, errors.IsErrorCode(err, errors.ErrResourceDefinition))
	assert.Equal(t, 1, loader.calls)
}
