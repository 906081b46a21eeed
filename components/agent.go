package components

import (
	"github.com/automoto/thirdperson/character"
	"github.com/yohamta/donburi"
)

type AgentData struct {
	*character.Controller
}

var Agent = donburi.NewComponentType[AgentData]()
