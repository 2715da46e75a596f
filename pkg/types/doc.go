// Package types defines the contracts shared across overlay.
// This includes the Unit a pack exposes to the repository builder, the
// Directory handle resources resolve to, the Sink a build emits into, and
// the FS abstraction every filesystem touch goes through.
package types
