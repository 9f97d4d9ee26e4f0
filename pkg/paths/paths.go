// Package paths resolves the base root an icon lookup operates under
// and provides the shared path normalization helpers.
package paths

import (
	"os"
	"path/filepath"

	"github.com/launchpath/appicon/pkg/errors"
)

// Environment variable names
const (
	// EnvBaseRoot is the primary environment variable for the install
	// root to search, e.g. /snap/my-app/current
	EnvBaseRoot = "APPICON_BASE_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// ResolveBaseRoot determines the base root using the following priority:
// 1. The explicit argument (if non-empty)
// 2. APPICON_BASE_ROOT environment variable
// 3. Current working directory (fallback)
//
// The returned bool reports whether the cwd fallback was used, so the
// CLI can warn about it. A base root that does not exist on disk is
// not an error here; resolution against it simply finds nothing.
func ResolveBaseRoot(explicit string) (string, bool, error) {
	if explicit != "" {
		normalized, err := Normalize(explicit)
		if err != nil {
			return "", false, err
		}
		return normalized, false, nil
	}

	if root := os.Getenv(EnvBaseRoot); root != "" {
		normalized, err := Normalize(root)
		if err != nil {
			return "", false, err
		}
		return normalized, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
	}
	return cwd, true, nil
}

// Normalize expands a leading ~, makes the path absolute, and cleans it.
func Normalize(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	expanded := ExpandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
