package level

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/thirdperson/assets"
)

// Open loads a level by name. Names ending in .tmx are read from disk,
// anything else is looked up among the bundled arenas.
func Open(name string) (*Level, error) {
	if strings.HasSuffix(name, ".tmx") {
		dir, file := filepath.Split(name)
		if dir == "" {
			dir = "."
		}
		return Load(os.DirFS(dir), file)
	}
	return Load(assets.Levels(), assets.LevelsDir+"/"+name+".tmx")
}
