// Package headless drives the character controller without a window: a
// fixed rate loop feeds scripted input to the simulation and logs what the
// agent does.
package headless

import (
	"github.com/automoto/thirdperson/character"
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/level"
	"github.com/automoto/thirdperson/logging"
	"github.com/automoto/thirdperson/physics"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// flatExtent is the half size of the floor used when no level is given.
const flatExtent = 50

// Sim owns a collision world, its moving platforms and one agent.
type Sim struct {
	World      *physics.World
	Movers     []*level.Mover
	Controller *character.Controller
	log        logrus.FieldLogger
}

// NewSim builds a simulation on lvl, or on a flat floor when lvl is nil.
func NewSim(cfg config.Config, lvl *level.Level, log logrus.FieldLogger) *Sim {
	log = logging.OrDiscard(log)
	if lvl == nil {
		lvl = flat()
	}

	w := physics.NewWorld(lvl.Min, lvl.Max, cfg.Collision, log)
	lvl.Build(w)
	s := &Sim{
		World:  w,
		Movers: lvl.Movers(w),
		log:    log,
	}
	s.Controller = character.New(cfg, lvl.Spawn, w, log)

	log.WithFields(logrus.Fields{
		"level":     lvl.Name,
		"solids":    len(lvl.Solids),
		"platforms": len(lvl.Platforms),
		"spawn":     lvl.Spawn,
	}).Info("simulation ready")
	return s
}

// Step runs one fixed tick followed by one presentation frame of the same
// length.
func (s *Sim) Step(in character.InputSample, dt float32) {
	for _, m := range s.Movers {
		m.Step(dt)
	}
	s.Controller.FixedTick(in, dt)
	s.Controller.RenderTick(in, dt)
}

func flat() *level.Level {
	return &level.Level{
		Name: "flat",
		Min:  mgl32.Vec3{-flatExtent, -1, -flatExtent},
		Max:  mgl32.Vec3{flatExtent, 0, flatExtent},
		Solids: []level.Solid{{
			Name:  "floor",
			Box:   cube.Box(-flatExtent, -1, -flatExtent, flatExtent, 0, flatExtent),
			Layer: physics.LayerGround,
		}},
	}
}
