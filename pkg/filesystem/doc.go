// Package filesystem provides concrete implementations of the
// types.FS interface: one backed by the real OS filesystem and one
// backed by afero for tests.
package filesystem
