package iconfind

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/launchpath/appicon/pkg/config"
	"github.com/launchpath/appicon/pkg/filesystem"
	"github.com/launchpath/appicon/pkg/logging"
	"github.com/launchpath/appicon/pkg/types"
)

// Finder answers icon lookups for one base root. The search path is
// computed once in New and never mutated, which makes concurrent Find
// calls safe without locking.
type Finder struct {
	baseRoot   string
	fsys       types.FS
	settings   config.Settings
	searchPath []types.ThemeDir
	logger     zerolog.Logger
}

// Option configures a Finder during construction
type Option func(*Finder)

// WithFS injects the filesystem implementation. The default is the
// real OS filesystem.
func WithFS(fsys types.FS) Option {
	return func(f *Finder) {
		f.fsys = fsys
	}
}

// WithSettings overrides the resolver settings. The default is
// config.Default().
func WithSettings(settings config.Settings) Option {
	return func(f *Finder) {
		f.settings = settings
	}
}

// New creates a Finder for the given base root and derives its search
// path. A base root with no icon data at all is fine: the search path
// comes out empty and every bare-name lookup misses.
func New(baseRoot string, opts ...Option) *Finder {
	f := &Finder{
		baseRoot: baseRoot,
		fsys:     filesystem.NewOS(),
		settings: config.Default(),
		logger:   logging.GetLogger("iconfind"),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.searchPath = buildSearchPath(f.fsys, f.baseRoot, f.settings)

	f.logger.Debug().
		Str("baseRoot", baseRoot).
		Int("candidates", len(f.searchPath)).
		Msg("search path built")
	return f
}

// BaseRoot returns the base root the Finder was constructed with
func (f *Finder) BaseRoot() string {
	return f.baseRoot
}

// SearchPath returns a copy of the sorted candidate directory list,
// largest size first.
func (f *Finder) SearchPath() []types.ThemeDir {
	out := make([]types.ThemeDir, len(f.searchPath))
	copy(out, f.searchPath)
	return out
}

// Find resolves an icon identifier to an existing file path, or ""
// when nothing matches. Identifiers with a leading separator are
// treated as explicit paths and reconciled against the base root;
// bare names are probed through the search path from the largest size
// down, first hit wins.
func (f *Finder) Find(iconName string) string {
	if strings.HasPrefix(iconName, string(filepath.Separator)) {
		found := f.findExplicitFile(iconName)
		f.logger.Trace().Str("icon", iconName).Str("resolved", found).Msg("explicit path lookup")
		return found
	}

	// The list is sorted descending, so the first directory that
	// contains the icon is the largest-size one that does.
	for _, dir := range f.searchPath {
		if found := f.findExistingIcon(dir.Path, iconName); found != "" {
			f.logger.Trace().
				Str("icon", iconName).
				Str("resolved", found).
				Int("size", dir.Size).
				Msg("icon resolved")
			return found
		}
	}

	f.logger.Trace().Str("icon", iconName).Msg("icon not found")
	return ""
}

// hasImageExtension checks whether the name is an icon filename rather
// than a bare icon name.
func (f *Finder) hasImageExtension(name string) bool {
	for _, ext := range f.settings.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// findExistingIcon probes one directory for the icon. A name that
// already carries a recognized extension suppresses the extension
// loop: only that exact filename is checked. Otherwise each extension
// is tried in the configured order, so the order encodes format
// preference.
func (f *Finder) findExistingIcon(dir, iconName string) string {
	if f.hasImageExtension(iconName) {
		path := filepath.Join(dir, iconName)
		if fileExists(f.fsys, path) {
			return path
		}
		return ""
	}

	for _, ext := range f.settings.Extensions {
		path := filepath.Join(dir, iconName+ext)
		if fileExists(f.fsys, path) {
			return path
		}
	}
	return ""
}

// findExplicitFile resolves an icon identifier that is already a path:
// verbatim first, then joined under the base root, then via the
// path-merge heuristic. Bare-name search is never attempted for
// explicit paths.
func (f *Finder) findExplicitFile(iconName string) string {
	if fileExists(f.fsys, iconName) {
		return iconName
	}

	joined := filepath.Join(f.baseRoot, iconName)
	if fileExists(f.fsys, joined) {
		return joined
	}

	return f.tryMergePaths(f.baseRoot, iconName)
}

// tryMergePaths reconciles an icon path whose embedded filesystem
// prefix comes from a different mount context than the current base
// root (click and snap metadata bake in the prefix of whichever root
// was mounted at build time).
//
// Walk the base root's separators from the end. The first position
// whose suffix is not already a substring of the icon path, provided a
// more specific position was visited before it, decides the merge: the
// base root's prefix up to that previous position is joined with the
// full icon path. Whether or not the merged path exists, the walk
// stops there.
//
// This is a best-effort heuristic; when it fails the icon is simply
// reported as not found.
func (f *Finder) tryMergePaths(baseRoot, iconName string) string {
	sep := string(filepath.Separator)

	slashPos := strings.LastIndex(baseRoot, sep)
	prevSlashPos := -1
	for slashPos != -1 {
		if !strings.Contains(iconName, baseRoot[slashPos:]) && prevSlashPos != -1 {
			merged := filepath.Join(baseRoot[:prevSlashPos], iconName)
			if fileExists(f.fsys, merged) {
				return merged
			}
			break
		}
		prevSlashPos = slashPos
		slashPos = strings.LastIndex(baseRoot[:slashPos], sep)
	}
	return ""
}
