package testutil

import (
	"fmt"
	"strings"
	"testing"
)

// IndexStanza describes one directory stanza for WriteThemeIndex.
// Zero-valued fields are omitted from the generated stanza, which is
// how tests exercise the skip-on-missing-key rules.
type IndexStanza struct {
	Name      string
	Context   string
	Type      string
	Size      int
	MaxSize   int
	Threshold int
}

// WriteThemeIndex renders an index.theme file for the given stanzas
// into themeRoot. The Directories list follows the stanza order.
func WriteThemeIndex(t *testing.T, themeRoot string, stanzas ...IndexStanza) string {
	t.Helper()

	names := make([]string, len(stanzas))
	for i, s := range stanzas {
		names[i] = s.Name
	}

	var b strings.Builder
	b.WriteString("[Icon Theme]\n")
	b.WriteString("Name=Test\n")
	fmt.Fprintf(&b, "Directories=%s\n", strings.Join(names, ","))

	for _, s := range stanzas {
		fmt.Fprintf(&b, "\n[%s]\n", s.Name)
		if s.Context != "" {
			fmt.Fprintf(&b, "Context=%s\n", s.Context)
		}
		if s.Type != "" {
			fmt.Fprintf(&b, "Type=%s\n", s.Type)
		}
		if s.Size != 0 {
			fmt.Fprintf(&b, "Size=%d\n", s.Size)
		}
		if s.MaxSize != 0 {
			fmt.Fprintf(&b, "MaxSize=%d\n", s.MaxSize)
		}
		if s.Threshold != 0 {
			fmt.Fprintf(&b, "Threshold=%d\n", s.Threshold)
		}
	}

	return CreateFile(t, themeRoot, "index.theme", b.String())
}
