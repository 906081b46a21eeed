package components

import "github.com/yohamta/donburi/ecs"

// Draw layers, rendered in order.
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)
