package types

// Sentinel sizes used when a directory's true pixel size is unknown
// or only inferred from naming convention.
const (
	// SizeUnknown marks directories with no declared resolution: a
	// theme root itself, the bare icons directory, and pixmaps.
	SizeUnknown = 1

	// SizeScalable is assigned to "scalable" directories found during
	// heuristic scanning. There is no better information available, so
	// they are treated as a large, preferred bucket.
	SizeScalable = 256
)

// ThemeDir is one candidate icon directory together with the nominal
// pixel size used to rank it. Size is purely a sort key; it says
// nothing about the images actually inside.
type ThemeDir struct {
	Path string
	Size int
}

// BySizeDesc orders ThemeDirs largest size first. It is used with a
// stable sort so that equal sizes keep their discovery order.
func BySizeDesc(a, b ThemeDir) bool {
	return a.Size > b.Size
}
