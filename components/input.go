package components

import (
	"github.com/automoto/thirdperson/input"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// InputData is the folded input of the agent plus what the poller needs to
// turn absolute cursor positions into deltas.
type InputData struct {
	input.State
	LastCursor  mgl32.Vec2
	CursorKnown bool
}

var Input = donburi.NewComponentType[InputData]()
