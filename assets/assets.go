package assets

import (
	"embed"
	"io/fs"
)

// LevelsDir is the directory of the bundled arenas inside Levels.
const LevelsDir = "levels"

//go:embed all:levels
var assetFS embed.FS

// Levels exposes the bundled TMX files.
func Levels() fs.FS {
	return assetFS
}
