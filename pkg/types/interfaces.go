package types

import (
	"io/fs"
)

// FS is the filesystem interface required for overlay operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Optional operations - implementations should check for support
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// Unit is an independently loaded source of resource declarations.
// Packs discovered on disk implement it, and so can any other supplier.
type Unit interface {
	// Name is unique within one build
	Name() string

	// IsRoot reports whether the unit declares the overall build
	IsRoot() bool

	// Extra returns the unit's extra configuration block. Only the keys
	// "resources", "override", "override-order" and "resource-tags" are read.
	Extra() map[string]interface{}
}

// Sink receives the ordered repository mutations of a build.
// Repeated Add calls for one path layer on top of each other.
type Sink interface {
	Add(virtualPath string, dir Directory)
	Tag(virtualPath, tag string)
}
