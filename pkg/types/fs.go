package types

import "io/fs"

// FS is the read-only filesystem surface the icon engine needs.
// Resolution never writes; implementations only have to answer
// metadata and content queries.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}
