// Package themeindex parses freedesktop index.theme files into ordered
// candidate-directory records.
//
// Parsing is a pure function of the file contents plus the filesystem
// existence checks: there is no shared parser state, and every failure
// mode (missing file, malformed INI, missing keys, absent directories)
// degrades by shrinking the result rather than raising an error.
// Absence of index.theme is an expected, common case.
package themeindex

import (
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/launchpath/appicon/pkg/logging"
	"github.com/launchpath/appicon/pkg/types"
)

// index.theme group and key names, per the Icon Theme Specification
const (
	IndexFileName = "index.theme"

	iconThemeSection = "Icon Theme"
	directoriesKey   = "Directories"
	contextKey       = "Context"
	typeKey          = "Type"
	sizeKey          = "Size"
	maxSizeKey       = "MaxSize"
	thresholdKey     = "Threshold"
	typeFixed        = "Fixed"
	typeScalable     = "Scalable"
	typeThreshold    = "Threshold"
	listSeparator    = ","
	defaultThreshold = 2
)

// DefaultContext is the stanza Context this engine cares about; other
// contexts (actions, devices, mimetypes, ...) index icon classes that
// are never application icons.
const DefaultContext = "Applications"

// Options controls stanza selection during parsing.
type Options struct {
	// Context is the required stanza Context value. Empty means
	// DefaultContext.
	Context string
}

// Parse reads <themeRoot>/index.theme and returns one ThemeDir per
// directory stanza that has the wanted Context, a recognized Type with
// a usable size, and an actually existing directory. The order of the
// Directories list is preserved. A missing or malformed index file
// yields an empty result, never an error.
func Parse(fsys types.FS, themeRoot string, opts Options) []types.ThemeDir {
	logger := logging.GetLogger("themeindex")

	wantContext := opts.Context
	if wantContext == "" {
		wantContext = DefaultContext
	}

	indexPath := filepath.Join(themeRoot, IndexFileName)
	data, err := fsys.ReadFile(indexPath)
	if err != nil {
		logger.Debug().Str("path", indexPath).Msg("no readable theme index")
		return nil
	}

	f, err := ini.Load(data)
	if err != nil {
		logger.Debug().Err(err).Str("path", indexPath).Msg("malformed theme index")
		return nil
	}

	theme, err := f.GetSection(iconThemeSection)
	if err != nil || !theme.HasKey(directoriesKey) {
		logger.Debug().Str("path", indexPath).Msg("theme index has no directory list")
		return nil
	}

	var dirs []types.ThemeDir
	for _, name := range theme.Key(directoriesKey).Strings(listSeparator) {
		stanza, err := f.GetSection(name)
		if err != nil {
			continue
		}
		if stanza.Key(contextKey).String() != wantContext {
			continue
		}

		size, ok := stanzaSize(stanza)
		if !ok {
			continue
		}

		path := filepath.Join(themeRoot, name)
		if info, err := fsys.Stat(path); err != nil || !info.IsDir() {
			// Stanzas pointing at nothing are silently dropped.
			continue
		}
		dirs = append(dirs, types.ThemeDir{Path: path, Size: size})
	}
	return dirs
}

// stanzaSize applies the Fixed/Scalable/Threshold sizing rules to one
// directory stanza. The bool is false when the stanza must be skipped.
func stanzaSize(stanza *ini.Section) (int, bool) {
	switch stanza.Key(typeKey).String() {
	case typeFixed:
		size, err := stanza.Key(sizeKey).Int()
		if err != nil {
			return 0, false
		}
		return size, true
	case typeScalable:
		size, err := stanza.Key(maxSizeKey).Int()
		if err != nil {
			return 0, false
		}
		return size, true
	case typeThreshold:
		size, err := stanza.Key(sizeKey).Int()
		if err != nil {
			return 0, false
		}
		threshold, err := stanza.Key(thresholdKey).Int()
		if err != nil {
			threshold = defaultThreshold
		}
		return size + threshold, true
	}
	return 0, false
}
