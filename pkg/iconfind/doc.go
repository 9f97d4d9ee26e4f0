// Package iconfind resolves an application's icon file under one
// install root, following the size-prioritized search order of the
// freedesktop Icon Theme Specification.
//
// A Finder is constructed once per base root. Construction derives the
// full candidate-directory search path (theme index parsing, with a
// directory-scanning fallback) and sorts it largest size first; the
// search path is immutable afterwards, so a Finder is safe for
// concurrent Find calls. "Not found" is a routine outcome reported as
// an empty path, never an error.
package iconfind
