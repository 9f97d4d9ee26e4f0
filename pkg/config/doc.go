// Package config loads appicon's settings by layering, in order of
// increasing precedence: embedded TOML defaults, an optional
// appicon.toml in the XDG config directory (or APPICON_CONFIG), and
// APPICON_* environment variables.
//
// The settings control where the resolver looks (theme names, generic
// directory names, extension preference) but never how it ranks what
// it finds.
package config
