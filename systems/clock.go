package systems

import (
	"time"

	"github.com/yohamta/donburi/ecs"
)

// maxFrameDelta caps the measured frame time after stalls such as window
// drags so the presentation blend does not jump.
const maxFrameDelta = 0.1

// BeginFrame measures the time since the previous frame. It runs first in
// every Draw.
func BeginFrame(ecs *ecs.ECS) {
	clock := GetClock(ecs)
	now := time.Now()
	dt := float32(now.Sub(clock.LastFrame).Seconds())
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	clock.FrameDelta = dt
	clock.LastFrame = now
	clock.Frames++
}
