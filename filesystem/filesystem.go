// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// Chapter files, logs and configuration are all accessed through API, which
// is backed by the operating system in production and by memory in tests.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// IsOs reports whether files written through API are visible to external processes.
func IsOs() bool {
	_, ok := backend.Fs.(*afero.OsFs)
	return ok
}
