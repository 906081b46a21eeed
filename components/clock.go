package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData tracks the fixed tick length and the measured frame time.
type ClockData struct {
	FixedDelta float32
	FrameDelta float32
	LastFrame  time.Time
	Ticks      uint64
	Frames     uint64
}

var Clock = donburi.NewComponentType[ClockData]()
