// Package types holds the value types and small interfaces shared
// across the appicon packages: the read-only FS abstraction and the
// ThemeDir candidate-directory record that search paths are built from.
package types
