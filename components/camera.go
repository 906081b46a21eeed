package components

import (
	"github.com/automoto/thirdperson/view"
	"github.com/yohamta/donburi"
)

// CameraData holds the projection of the current frame.
type CameraData struct {
	view.Camera
}

var Camera = donburi.NewComponentType[CameraData]()
