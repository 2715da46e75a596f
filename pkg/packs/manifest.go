package packs

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/arthur-debert/overlay/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// manifest is the on-disk shape of a pack manifest
type manifest struct {
	Name  string                 `toml:"name" yaml:"name"`
	Extra map[string]interface{} `toml:"extra" yaml:"extra"`
}

// findManifest returns the first manifest file present in dir
func findManifest(fsys types.FS, dir string, names []string) (string, bool) {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := fsys.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// readManifest parses the manifest at path, picking the decoder by extension
func readManifest(fsys types.FS, path string) (*manifest, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read manifest").
			WithDetail("path", path)
	}

	var m manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &m)
	default:
		err = toml.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse manifest").
			WithDetail("path", path)
	}
	return &m, nil
}
