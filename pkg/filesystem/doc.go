// Package filesystem provides filesystem implementations for overlay.
//
// Every types.FS here is afero-backed: NewOS wraps afero's OsFs and tests
// wrap a MemMapFs. The package also resolves the directories the
// repository builder maps to virtual paths.
package filesystem
