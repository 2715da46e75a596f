package packs

import (
	"github.com/arthur-debert/overlay/pkg/types"
)

// Pack is a discovered unit. It implements types.Unit.
type Pack struct {
	// Path is the pack directory; resource directories resolve against it
	Path string
	// Manifest is the manifest file the pack was read from
	Manifest string

	name  string
	root  bool
	extra map[string]interface{}
}

// Name implements types.Unit
func (p Pack) Name() string { return p.name }

// IsRoot implements types.Unit
func (p Pack) IsRoot() bool { return p.root }

// Extra implements types.Unit
func (p Pack) Extra() map[string]interface{} {
	if p.extra == nil {
		return map[string]interface{}{}
	}
	return p.extra
}

// String returns the pack name
func (p Pack) String() string { return p.name }

// Loader receives packs for a build
type Loader interface {
	LoadPackage(unit types.Unit, rootPath string) error
}

// LoadAll hands every pack to loader, in order
func LoadAll(loader Loader, packs []Pack) error {
	for _, pack := range packs {
		if err := loader.LoadPackage(pack, pack.Path); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the pack names, in order
func Names(packs []Pack) []string {
	names := make([]string, len(packs))
	for i, pack := range packs {
		names[i] = pack.name
	}
	return names
}
