// Package appid models the package_app_version identifier triple that
// names one installed application version. The icon engine itself only
// needs a base root, but callers commonly hold an AppID and derive the
// conventional bare icon name from it.
package appid

import (
	"regexp"
	"strings"
)

// appNamePattern is the restrictive application-name charset used by
// snap packages: alphanumeric runs joined by single dashes.
var appNamePattern = regexp.MustCompile(`^[a-zA-Z0-9](?:-?[a-zA-Z0-9])*$`)

// AppID uniquely identifies an application: the package it ships in,
// the application name within that package, and the installed package
// version. Legacy applications have an empty package and version.
type AppID struct {
	Package string
	AppName string
	Version string
}

// Empty reports whether the AppID carries no information
func (a AppID) Empty() bool {
	return a.Package == "" && a.AppName == "" && a.Version == ""
}

// String concatenates the triple back into its canonical
// package_app_version form. Legacy IDs render as the bare app name.
func (a AppID) String() string {
	if a.Package == "" && a.Version == "" {
		return a.AppName
	}
	return a.Package + "_" + a.AppName + "_" + a.Version
}

// Parse expects a strict package_app_version triple and returns an
// empty AppID for anything else. Use Find for tolerant handling of
// short and legacy forms.
func Parse(s string) AppID {
	parts := strings.Split(s, "_")
	if len(parts) != 3 {
		return AppID{}
	}
	if parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return AppID{}
	}
	return AppID{Package: parts[0], AppName: parts[1], Version: parts[2]}
}

// Find is the tolerant variant of Parse. It accepts the full triple,
// the short package_app form (version left empty), and legacy bare
// application names (package and version left empty). It is slower
// than Parse and intended for identifiers of uncertain provenance.
func Find(s string) AppID {
	if s == "" {
		return AppID{}
	}

	parts := strings.Split(s, "_")
	switch len(parts) {
	case 1:
		return AppID{AppName: parts[0]}
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return AppID{}
		}
		return AppID{Package: parts[0], AppName: parts[1]}
	case 3:
		return Parse(s)
	}
	return AppID{}
}

// Valid reports whether the string is a well-formed full AppID with an
// acceptable application name.
func Valid(s string) bool {
	id := Parse(s)
	if id.Empty() {
		return false
	}
	return appNamePattern.MatchString(id.AppName)
}
