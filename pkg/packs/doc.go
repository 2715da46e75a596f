// Package packs discovers the units overlay builds from.
//
// A pack is a directory carrying a manifest (overlay.toml, overlay.yaml and
// friends). The manifest names the pack and holds its extra configuration:
// resources, overrides and tags, as understood by the repository builder.
// A manifest in the packs root itself makes the root unit, which alone may
// declare an override-order.
//
// This package handles:
//
//   - Pack discovery under a root directory
//   - Manifest parsing (TOML and YAML)
//   - Pack ignore functionality (name patterns and .overlayignore files)
//   - Pack selection by name
package packs
