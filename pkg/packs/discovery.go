package packs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/overlay/pkg/config"
	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/arthur-debert/overlay/pkg/logging"
	"github.com/arthur-debert/overlay/pkg/types"
)

// Options controls discovery
type Options struct {
	// ManifestNames are tried in order in each directory
	ManifestNames []string
	// Ignore holds directory name patterns that are never packs
	Ignore []string
	// IgnoreFile marks a pack directory to skip
	IgnoreFile string
}

// OptionsFromConfig builds discovery options from the app configuration
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		ManifestNames: cfg.Manifest.Names,
		Ignore:        cfg.Packs.Ignore,
		IgnoreFile:    cfg.Manifest.IgnoreFile,
	}
}

// DefaultOptions returns the options of the built-in configuration
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// Discover finds the packs under root. The root directory itself is the
// root unit when it has a manifest. Each visible child directory with a
// manifest is a pack. The root unit comes first, then packs sorted by
// directory name.
func Discover(fsys types.FS, root string, opts Options) ([]Pack, error) {
	logger := logging.GetLogger("packs.discovery")
	logger.Trace().Str("root", root).Msg("Discovering packs")

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve packs root").
			WithDetail("path", root)
	}

	info, err := fsys.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrNotFound, "packs root does not exist").
				WithDetail("path", root)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access packs root").
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "packs root is not a directory").
			WithDetail("path", root)
	}

	var packs []Pack

	if path, ok := findManifest(fsys, root, opts.ManifestNames); ok {
		pack, err := loadPack(fsys, root, path, true)
		if err != nil {
			return nil, err
		}
		packs = append(packs, pack)
		logger.Debug().Str("name", pack.name).Str("manifest", path).Msg("Found root pack")
	}

	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read packs root").
			WithDetail("path", root)
	}

	var children []Pack
	for _, entry := range entries {
		name := entry.Name()
		dir := filepath.Join(root, name)

		if strings.HasPrefix(name, ".") {
			logger.Trace().Str("name", name).Msg("Skipping hidden directory")
			continue
		}
		if matchesIgnore(name, opts.Ignore) {
			logger.Trace().Str("name", name).Msg("Skipping ignored pattern")
			continue
		}
		if !isDir(fsys, dir, entry) {
			continue
		}
		if hasIgnoreFile(fsys, dir, opts.IgnoreFile) {
			logger.Info().Str("name", name).Msg("Pack is skipped due to ignore file")
			continue
		}

		path, ok := findManifest(fsys, dir, opts.ManifestNames)
		if !ok {
			logger.Trace().Str("name", name).Msg("Skipping directory without manifest")
			continue
		}

		pack, err := loadPack(fsys, dir, path, false)
		if err != nil {
			return nil, err
		}
		children = append(children, pack)
		logger.Trace().
			Str("name", pack.name).
			Str("path", pack.Path).
			Msg("Loaded pack")
	}

	// Sort for consistent ordering
	sort.Slice(children, func(i, j int) bool {
		return filepath.Base(children[i].Path) < filepath.Base(children[j].Path)
	})
	packs = append(packs, children...)

	logger.Info().Int("count", len(packs)).Msg("Discovered packs")
	return packs, nil
}

// loadPack reads the manifest of the pack in dir
func loadPack(fsys types.FS, dir, manifestPath string, root bool) (Pack, error) {
	m, err := readManifest(fsys, manifestPath)
	if err != nil {
		return Pack{}, errors.Wrap(err, errors.GetErrorCode(err), "invalid pack manifest").
			WithDetail("pack", filepath.Base(dir)).
			WithDetail("path", manifestPath)
	}

	name := m.Name
	if name == "" {
		if root {
			name = types.RootUnitName
		} else {
			name = filepath.Base(dir)
		}
	}

	return Pack{
		Path:     dir,
		Manifest: manifestPath,
		name:     name,
		root:     root,
		extra:    m.Extra,
	}, nil
}

// isDir follows symlinks so linked pack directories are found too
func isDir(fsys types.FS, path string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}
