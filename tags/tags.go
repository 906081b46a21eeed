package tags

import "github.com/yohamta/donburi"

var (
	Agent    = donburi.NewTag().SetName("Agent")
	Platform = donburi.NewTag().SetName("Platform")
	Wall     = donburi.NewTag().SetName("Wall")
)
