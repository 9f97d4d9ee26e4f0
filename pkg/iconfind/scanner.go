package iconfind

import (
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/launchpath/appicon/pkg/types"
)

// appsDirName is the per-size subdirectory that holds application icons
const appsDirName = "apps"

// scalableDirName is the conventional name for vector icon directories
const scalableDirName = "scalable"

// sizeDirPattern matches size-named theme subdirectories such as
// "48x48". Both dimensions must be equal to count.
var sizeDirPattern = regexp.MustCompile(`^(\d+)x(\d+)$`)

// scanThemeDirs lists a theme root's immediate children and infers a
// pixel size for each one from its name. Only children that contain an
// apps subdirectory are considered. This is the fallback used when a
// theme ships no usable index file, and the most I/O-heavy path in the
// package.
func scanThemeDirs(fsys types.FS, themeRoot string) []types.ThemeDir {
	entries, err := fsys.ReadDir(themeRoot)
	if err != nil {
		return nil
	}

	var dirs []types.ThemeDir
	for _, entry := range entries {
		name := entry.Name()
		appsPath := filepath.Join(themeRoot, name, appsDirName)
		if !dirExists(fsys, appsPath) {
			continue
		}

		if name == scalableDirName {
			// No real size information for vector directories;
			// treat them as a large bucket.
			dirs = append(dirs, types.ThemeDir{Path: appsPath, Size: types.SizeScalable})
			continue
		}

		m := sizeDirPattern.FindStringSubmatch(name)
		if m == nil || m[1] != m[2] {
			continue
		}
		size, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		dirs = append(dirs, types.ThemeDir{Path: appsPath, Size: size})
	}
	return dirs
}
