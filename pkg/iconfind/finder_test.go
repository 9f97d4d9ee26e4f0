package iconfind

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchpath/appicon/pkg/testutil"
)

func TestFindNoIconsSubtree(t *testing.T) {
	finder := New(t.TempDir())

	assert.Empty(t, finder.Find("anything"))
	assert.Empty(t, finder.Find("anything.png"))
	assert.Empty(t, finder.SearchPath())
}

func TestFindFixedStanzaDirectory(t *testing.T) {
	baseRoot := t.TempDir()
	hicolor := testutil.CreateDir(t, baseRoot, "icons/hicolor")
	testutil.WriteThemeIndex(t, hicolor,
		testutil.IndexStanza{Name: "48x48/apps", Context: "Applications", Type: "Fixed", Size: 48})
	appsDir := testutil.CreateDir(t, hicolor, "48x48/apps")
	want := testutil.TouchIcon(t, appsDir, "foo.png")

	finder := New(baseRoot)

	assert.Equal(t, want, finder.Find("foo"))
}

func TestFindLargerSizeWins(t *testing.T) {
	baseRoot := t.TempDir()
	hicolor := testutil.CreateDir(t, baseRoot, "icons/hicolor")
	testutil.WriteThemeIndex(t, hicolor,
		testutil.IndexStanza{Name: "16x16/apps", Context: "Applications", Type: "Fixed", Size: 16},
		testutil.IndexStanza{Name: "48x48/apps", Context: "Applications", Type: "Fixed", Size: 48},
	)
	small := testutil.CreateDir(t, hicolor, "16x16/apps")
	large := testutil.CreateDir(t, hicolor, "48x48/apps")
	testutil.TouchIcon(t, small, "foo.svg")
	want := testutil.TouchIcon(t, large, "foo.svg")

	finder := New(baseRoot)

	assert.Equal(t, want, finder.Find("foo"))
}

// The two-stanza hicolor scenario: both 16x16/apps and 48x48/apps hold
// mail.png; the 48x48 copy must win.
func TestFindMailScenario(t *testing.T) {
	baseRoot := t.TempDir()
	hicolor := testutil.CreateDir(t, baseRoot, "icons/hicolor")
	testutil.WriteThemeIndex(t, hicolor,
		testutil.IndexStanza{Name: "16x16/apps", Context: "Applications", Type: "Fixed", Size: 16},
		testutil.IndexStanza{Name: "48x48/apps", Context: "Applications", Type: "Fixed", Size: 48},
	)
	small := testutil.CreateDir(t, hicolor, "16x16/apps")
	large := testutil.CreateDir(t, hicolor, "48x48/apps")
	testutil.TouchIcon(t, small, "mail.png")
	want := testutil.TouchIcon(t, large, "mail.png")

	finder := New(baseRoot)

	assert.Equal(t, want, finder.Find("mail"))
}

// An explicit extension suppresses the extension-search loop: bar.svg
// must be found even though .png is preferred for extensionless names.
func TestFindExplicitExtension(t *testing.T) {
	baseRoot := t.TempDir()
	icons := testutil.CreateDir(t, baseRoot, "icons")
	want := testutil.TouchIcon(t, icons, "bar.svg")

	finder := New(baseRoot)

	assert.Equal(t, want, finder.Find("bar.svg"))
	// And the bare name still resolves through the loop
	assert.Equal(t, want, finder.Find("bar"))
}

func TestFindExtensionPreferenceOrder(t *testing.T) {
	baseRoot := t.TempDir()
	icons := testutil.CreateDir(t, baseRoot, "icons")
	want := testutil.TouchIcon(t, icons, "baz.png")
	testutil.TouchIcon(t, icons, "baz.svg")
	testutil.TouchIcon(t, icons, "baz.xpm")

	finder := New(baseRoot)

	assert.Equal(t, want, finder.Find("baz"), ".png is tried before .svg and .xpm")
}

// Two finders over the same base root agree; no hidden mutable state
// affects the outcome.
func TestFindIdempotent(t *testing.T) {
	baseRoot := t.TempDir()
	hicolor := testutil.CreateDir(t, baseRoot, "icons/hicolor")
	testutil.CreateDir(t, hicolor, "48x48/apps")
	testutil.TouchIcon(t, filepath.Join(hicolor, "48x48", "apps"), "foo.png")

	a := New(baseRoot)
	b := New(baseRoot)

	for _, name := range []string{"foo", "foo.png", "missing", ""} {
		assert.Equal(t, a.Find(name), b.Find(name), "identifier %q", name)
	}
	assert.Equal(t, a.SearchPath(), b.SearchPath())
}

func TestFindExplicitPathVerbatim(t *testing.T) {
	baseRoot := t.TempDir()
	want := testutil.TouchIcon(t, baseRoot, "icon.png")

	finder := New(baseRoot)

	assert.Equal(t, want, finder.Find(want))
}

func TestFindExplicitPathUnderRoot(t *testing.T) {
	baseRoot := t.TempDir()
	testutil.TouchIcon(t, filepath.Join(baseRoot, "meta"), "icon.png")

	finder := New(baseRoot)

	assert.Equal(t, filepath.Join(baseRoot, "meta", "icon.png"),
		finder.Find("/meta/icon.png"))
}

// Path-merge reconciliation: the icon path embeds a prefix from a
// different mount context than the base root. The install tree shares
// the click/<package>/<version> suffix, so the merge joins the base
// root's outer prefix with the full icon path.
func TestFindExplicitPathMerge(t *testing.T) {
	tmp := t.TempDir()
	baseRoot := filepath.Join(tmp, "click", "com.foo.bar", "1.0")
	testutil.CreateDir(t, tmp, "click/com.foo.bar/1.0")
	want := testutil.TouchIcon(t,
		filepath.Join(tmp, "custom", "click", "com.foo.bar", "1.0"), "icon.png")

	finder := New(baseRoot)

	assert.Equal(t, want, finder.Find("/custom/click/com.foo.bar/1.0/icon.png"))
}

func TestFindExplicitPathMergeMiss(t *testing.T) {
	tmp := t.TempDir()
	baseRoot := filepath.Join(tmp, "click", "com.foo.bar", "1.0")
	testutil.CreateDir(t, tmp, "click/com.foo.bar/1.0")

	finder := New(baseRoot)

	assert.Empty(t, finder.Find("/custom/click/com.other.app/2.0/icon.png"))
}

// Explicit paths never fall through to bare-name search, even when a
// same-named icon is present in the search path.
func TestFindExplicitPathNoBareFallback(t *testing.T) {
	baseRoot := t.TempDir()
	icons := testutil.CreateDir(t, baseRoot, "icons")
	testutil.TouchIcon(t, icons, "foo.png")

	finder := New(baseRoot)

	assert.Empty(t, finder.Find("/does/not/exist/foo.png"))
}

// The first-hit walk over the descending-sorted list must agree with
// the naive running-best formulation for every identifier.
func TestFindMatchesRunningBest(t *testing.T) {
	baseRoot := t.TempDir()
	hicolor := testutil.CreateDir(t, baseRoot, "icons/hicolor")
	testutil.WriteThemeIndex(t, hicolor,
		testutil.IndexStanza{Name: "16x16/apps", Context: "Applications", Type: "Fixed", Size: 16},
		testutil.IndexStanza{Name: "32x32/apps", Context: "Applications", Type: "Fixed", Size: 32},
		testutil.IndexStanza{Name: "48x48/apps", Context: "Applications", Type: "Fixed", Size: 48},
	)
	for _, dir := range []string{"16x16/apps", "32x32/apps", "48x48/apps"} {
		testutil.CreateDir(t, hicolor, dir)
	}
	icons := filepath.Join(baseRoot, "icons")
	pixmaps := testutil.CreateDir(t, baseRoot, "pixmaps")

	testutil.TouchIcon(t, filepath.Join(hicolor, "16x16", "apps"), "alpha.png")
	testutil.TouchIcon(t, filepath.Join(hicolor, "32x32", "apps"), "alpha.png")
	testutil.TouchIcon(t, filepath.Join(hicolor, "32x32", "apps"), "beta.svg")
	testutil.TouchIcon(t, filepath.Join(hicolor, "48x48", "apps"), "gamma.xpm")
	testutil.TouchIcon(t, icons, "delta.png")
	testutil.TouchIcon(t, pixmaps, "delta.png")
	testutil.TouchIcon(t, pixmaps, "epsilon.svg")

	finder := New(baseRoot)

	// Running-best over the same sorted list, as the size-comparison
	// guard formulation would compute it.
	runningBest := func(name string) string {
		bestSize := 0
		bestPath := ""
		for _, dir := range finder.SearchPath() {
			if dir.Size > bestSize {
				if found := finder.findExistingIcon(dir.Path, name); found != "" {
					bestSize = dir.Size
					bestPath = found
				}
			}
		}
		return bestPath
	}

	for _, name := range []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "alpha.png", "beta.svg"} {
		assert.Equal(t, runningBest(name), finder.Find(name), "identifier %q", name)
	}
	require.Equal(t, filepath.Join(hicolor, "32x32", "apps", "alpha.png"), finder.Find("alpha"))
}

// Icons dropped loosely at a theme's top level are still found via the
// size-1 root entry.
func TestFindThemeRootLooseIcon(t *testing.T) {
	baseRoot := t.TempDir()
	hicolor := testutil.CreateDir(t, baseRoot, "icons/hicolor")
	want := testutil.TouchIcon(t, hicolor, "loose.png")

	finder := New(baseRoot)

	assert.Equal(t, want, finder.Find("loose"))
}

func TestFindHeuristicScanFallback(t *testing.T) {
	baseRoot := t.TempDir()
	hicolor := testutil.CreateDir(t, baseRoot, "icons/hicolor")
	testutil.CreateDir(t, hicolor, "scalable/apps")
	testutil.CreateDir(t, hicolor, "48x48/apps")
	small := testutil.TouchIcon(t, filepath.Join(hicolor, "48x48", "apps"), "app.png")
	scalable := testutil.TouchIcon(t, filepath.Join(hicolor, "scalable", "apps"), "app.svg")

	finder := New(baseRoot)

	// scalable carries the 256 sentinel, so it outranks 48x48
	assert.Equal(t, scalable, finder.Find("app"))

	// with only the sized directory holding the icon, it still resolves
	finderName := finder.Find("app.png")
	assert.Equal(t, small, finderName)
}
