package components

import (
	"github.com/automoto/thirdperson/physics"
	"github.com/yohamta/donburi"
)

// SpaceData is the collision world every collider of the level lives in.
type SpaceData struct {
	*physics.World
}

var Space = donburi.NewComponentType[SpaceData]()
