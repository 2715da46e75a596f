package filesystem

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/overlay/pkg/errors"
	"github.com/arthur-debert/overlay/pkg/types"
)

// ResolveDirectory resolves rel against root and returns the directory
// handle. The directory must exist.
func ResolveDirectory(fsys types.FS, root, rel string) (types.Directory, error) {
	path := filepath.Join(root, rel)
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return types.Directory{}, errors.Wrap(err, errors.ErrFilesystem, "cannot make path absolute").
				WithDetail("path", path)
		}
		path = abs
	}

	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Directory{}, errors.Wrapf(err, errors.ErrFilesystem, "directory %q does not exist", path).
				WithDetail("root", root).
				WithDetail("path", rel)
		}
		return types.Directory{}, errors.Wrapf(err, errors.ErrFilesystem, "cannot access directory %q", path).
			WithDetail("root", root).
			WithDetail("path", rel)
	}

	if !info.IsDir() {
		return types.Directory{}, errors.Newf(errors.ErrFilesystem, "%q is not a directory", path).
			WithDetail("root", root).
			WithDetail("path", rel)
	}

	return types.NewDirectory(path), nil
}

// Contains reports whether rel exists below dir
func Contains(fsys types.FS, dir types.Directory, rel string) bool {
	_, err := fsys.Stat(filepath.Join(dir.Path, filepath.FromSlash(rel)))
	return err == nil
}
