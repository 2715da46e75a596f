package types

import "path/filepath"

// RootUnitName is the name given to a root unit that does not declare one
const RootUnitName = "__root__"

// Directory is a resolved local directory. Handles for the same absolute
// directory compare equal.
type Directory struct {
	Path string `json:"path" yaml:"path" toml:"path"`
}

// NewDirectory returns the handle for path, cleaned
func NewDirectory(path string) Directory {
	return Directory{Path: filepath.Clean(path)}
}

// String returns the directory path
func (d Directory) String() string {
	return d.Path
}

// StaticUnit is a Unit backed by plain values
type StaticUnit struct {
	UnitName string
	Root     bool
	Config   map[string]interface{}
}

// Name implements Unit
func (u StaticUnit) Name() string {
	if u.UnitName == "" && u.Root {
		return RootUnitName
	}
	return u.UnitName
}

// IsRoot implements Unit
func (u StaticUnit) IsRoot() bool { return u.Root }

// Extra implements Unit
func (u StaticUnit) Extra() map[string]interface{} {
	if u.Config == nil {
		return map[string]interface{}{}
	}
	return u.Config
}
