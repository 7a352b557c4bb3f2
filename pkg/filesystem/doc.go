// Package filesystem provides the FS abstraction used by enablers, facet
// detection, settings loading and icon pack import/export.
//
// Both implementations are backed by afero: NewOS wraps the real
// filesystem and NewMemory an in-memory one for tests.
package filesystem
