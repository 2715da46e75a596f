// Package sink provides the repository sinks a build can emit into.
//
// Recorder keeps the mutations in memory. Linker records them too and then
// materializes the repository under a target directory with Apply. Export
// writes a recorded plan in one of several machine-readable formats.
package sink
