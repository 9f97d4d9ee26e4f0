package iconfind

import (
	"path/filepath"
	"sort"

	"github.com/launchpath/appicon/pkg/config"
	"github.com/launchpath/appicon/pkg/themeindex"
	"github.com/launchpath/appicon/pkg/types"
)

// themePaths collects the candidate directories for one theme root.
// The root itself is always emitted first with an unknown size, to
// cover icons placed loosely at the theme's top level. Index-file
// entries are preferred; the directory scan only runs when the index
// yielded nothing.
func themePaths(fsys types.FS, themeRoot, context string) []types.ThemeDir {
	if !dirExists(fsys, themeRoot) {
		return nil
	}

	dirs := []types.ThemeDir{{Path: themeRoot, Size: types.SizeUnknown}}

	indexed := themeindex.Parse(fsys, themeRoot, themeindex.Options{Context: context})
	if len(indexed) > 0 {
		return append(dirs, indexed...)
	}
	return append(dirs, scanThemeDirs(fsys, themeRoot)...)
}

// buildSearchPath aggregates theme candidates with the generic icons
// and pixmaps fallbacks, then stably sorts everything by size,
// descending. Stability is load-bearing: equal sizes keep their
// discovery order (themes in configured order, then icons, then
// pixmaps; within a theme, index or scan entries after the bare root).
func buildSearchPath(fsys types.FS, baseRoot string, settings config.Settings) []types.ThemeDir {
	var dirs []types.ThemeDir

	for _, theme := range settings.Themes {
		themeRoot := filepath.Join(baseRoot, settings.IconsDir, theme)
		dirs = append(dirs, themePaths(fsys, themeRoot, settings.Context)...)
	}

	iconsPath := filepath.Join(baseRoot, settings.IconsDir)
	if dirExists(fsys, iconsPath) {
		dirs = append(dirs, types.ThemeDir{Path: iconsPath, Size: types.SizeUnknown})
	}

	// Join also normalizes a configured trailing separator, which the
	// conventional "pixmaps/" value carries.
	pixmapsPath := filepath.Join(baseRoot, settings.PixmapsDir)
	if dirExists(fsys, pixmapsPath) {
		dirs = append(dirs, types.ThemeDir{Path: pixmapsPath, Size: types.SizeUnknown})
	}

	sort.SliceStable(dirs, func(i, j int) bool {
		return types.BySizeDesc(dirs[i], dirs[j])
	})
	return dirs
}

// dirExists reports whether path is an existing directory
func dirExists(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// fileExists reports whether path is an existing regular file
func fileExists(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}
