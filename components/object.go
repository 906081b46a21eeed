package components

import (
	"github.com/automoto/thirdperson/physics"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*physics.Body
}

var Object = donburi.NewComponentType[ObjectData]()
