// Package assets embeds the default level and sprite files so the game
// runs without a data directory.
package assets

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed levels/*.lvl sprites/*.spr
var files embed.FS

// FS returns the embedded asset tree (levels/ and sprites/).
func FS() fs.FS {
	return files
}

// Resolve returns dir as an asset tree when it contains a levels
// directory, and the embedded tree otherwise. The boolean reports
// whether dir was used.
func Resolve(dir string) (fs.FS, bool) {
	if dir == "" {
		return files, false
	}
	info, err := os.Stat(filepath.Join(dir, "levels"))
	if err != nil || !info.IsDir() {
		return files, false
	}
	return os.DirFS(dir), true
}
