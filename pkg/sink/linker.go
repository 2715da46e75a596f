package sink

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/arthur-debert/overlay/pkg/logging"
	"github.com/arthur-debert/overlay/pkg/types"
	"gopkg.in/yaml.v3"
)

// TagsFileName is written at the target root and lists tags per path
const TagsFileName = ".overlay-tags.yaml"

// Linker records a build and then materializes it under a target
// directory. Each added directory's entries are symlinked into the target
// path; later layers replace files placed by earlier ones and are merged
// into directories both layers carry.
type Linker struct {
	Recorder
	fs     types.FS
	target string
}

// ApplyResult summarizes what Apply did
type ApplyResult struct {
	Links    []string
	Replaced []string
	Tags     int
}

// NewLinker creates a linker writing below target through fsys
func NewLinker(fsys types.FS, target string) *Linker {
	return &Linker{fs: fsys, target: target}
}

// Target returns the target directory
func (l *Linker) Target() string {
	return l.target
}

// Apply writes the recorded mutations to the target directory
func (l *Linker) Apply() (*ApplyResult, error) {
	logger := logging.GetLogger("sink.linker").With().Str("target", l.target).Logger()
	done := logging.LogOperationStart(logger, "apply")
	defer done()

	if err := l.fs.MkdirAll(l.target, 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "cannot create target directory").
			WithDetail("path", l.target)
	}

	result := &ApplyResult{}
	tags := make(map[string][]string)

	for _, m := range l.mutations {
		switch m.Op {
		case types.OpAdd:
			if err := l.link(m, result); err != nil {
				return result, err
			}
		case types.OpTag:
			tags[m.Path] = append(tags[m.Path], m.Tag)
			result.Tags++
		}
	}

	if len(tags) > 0 {
		if err := l.writeTags(tags); err != nil {
			return result, err
		}
	}

	logger.Info().
		Int("links", len(result.Links)).
		Int("replaced", len(result.Replaced)).
		Int("tags", result.Tags).
		Msg("Repository materialized")
	return result, nil
}

func (l *Linker) link(m types.Mutation, result *ApplyResult) error {
	dest := l.destination(m.Path)
	if err := l.ensureDir(dest, result); err != nil {
		return err
	}
	return l.linkEntries(m.Directory, dest, result)
}

// ensureDir creates dest as a real directory. A symlink on the way, placed
// by an earlier layer, is expanded into a directory of links so nothing is
// ever written into a source directory.
func (l *Linker) ensureDir(dest string, result *ApplyResult) error {
	rel, err := filepath.Rel(l.target, dest)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "repository path escapes target").
			WithDetail("path", dest)
	}

	if rel != "." {
		current := l.target
		for _, part := range strings.Split(rel, string(filepath.Separator)) {
			current = filepath.Join(current, part)
			info, err := l.fs.Lstat(current)
			if err != nil || info.Mode()&os.ModeSymlink == 0 {
				continue
			}

			if err := l.expand(current, result); err != nil {
				return err
			}
		}
	}

	if err := l.fs.MkdirAll(dest, 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create repository directory").
			WithDetail("path", dest)
	}
	return nil
}

// linkEntries symlinks every entry of source into dest
func (l *Linker) linkEntries(source, dest string, result *ApplyResult) error {
	entries, err := l.fs.ReadDir(source)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "cannot read source directory").
			WithDetail("directory", source)
	}

	for _, entry := range entries {
		from := filepath.Join(source, entry.Name())
		linkPath := filepath.Join(dest, entry.Name())

		if info, err := l.fs.Lstat(linkPath); err == nil {
			isLink := info.Mode()&os.ModeSymlink != 0
			if isLink && entry.IsDir() && l.isDir(linkPath) {
				// Directory placed by an earlier layer; layer into it.
				if err := l.expand(linkPath, result); err != nil {
					return err
				}
				if err := l.linkEntries(from, linkPath, result); err != nil {
					return err
				}
				continue
			}
			// A real directory here belongs to a deeper virtual path or an
			// expanded layer; merge into it instead of shadowing it.
			if info.IsDir() && !isLink {
				if entry.IsDir() {
					if err := l.linkEntries(from, linkPath, result); err != nil {
						return err
					}
				}
				continue
			}
			if err := l.fs.Remove(linkPath); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "cannot replace existing entry").
					WithDetail("path", linkPath)
			}
			result.Replaced = append(result.Replaced, linkPath)
		}

		if err := l.fs.Symlink(from, linkPath); err != nil {
			return errors.Wrap(err, errors.ErrSymlinkCreate, "cannot create symlink").
				WithDetail("source", from).
				WithDetail("path", linkPath)
		}
		result.Links = append(result.Links, linkPath)
	}
	return nil
}

// expand turns the symlink at path into a real directory holding links to
// the entries of the directory it pointed at
func (l *Linker) expand(path string, result *ApplyResult) error {
	source, err := l.fs.Readlink(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "cannot read symlink").
			WithDetail("path", path)
	}
	if !filepath.IsAbs(source) {
		source = filepath.Join(filepath.Dir(path), source)
	}
	if err := l.fs.Remove(path); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot replace existing entry").
			WithDetail("path", path)
	}
	if err := l.fs.MkdirAll(path, 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create repository directory").
			WithDetail("path", path)
	}
	result.Replaced = append(result.Replaced, path)

	if srcInfo, err := l.fs.Stat(source); err == nil && srcInfo.IsDir() {
		return l.linkEntries(source, path, result)
	}
	return nil
}

func (l *Linker) isDir(path string) bool {
	info, err := l.fs.Stat(path)
	return err == nil && info.IsDir()
}

func (l *Linker) writeTags(tags map[string][]string) error {
	type entry struct {
		Path string   `yaml:"path"`
		Tags []string `yaml:"tags"`
	}

	paths := make([]string, 0, len(tags))
	for p := range tags {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	doc := make([]entry, 0, len(paths))
	for _, p := range paths {
		doc = append(doc, entry{Path: p, Tags: tags[p]})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot encode tags")
	}

	path := filepath.Join(l.target, TagsFileName)
	if err := l.fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot write tags file").
			WithDetail("path", path)
	}
	return nil
}

func (l *Linker) destination(virtualPath string) string {
	rel := strings.TrimPrefix(virtualPath, "/")
	return filepath.Join(l.target, filepath.FromSlash(rel))
}
