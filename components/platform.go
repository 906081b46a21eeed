package components

import (
	"github.com/automoto/thirdperson/level"
	"github.com/yohamta/donburi"
)

// PlatformData moves a platform's collider along its tween.
type PlatformData struct {
	*level.Mover
}

var Platform = donburi.NewComponentType[PlatformData]()
