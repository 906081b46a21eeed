// Package level turns TMX arena files into collider boxes, moving platform
// descriptions and a spawn point. It has no dependencies on ebitengine or
// donburi so the headless runner and the tests can load levels directly.
package level

import (
	"github.com/automoto/thirdperson/physics"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Level is a parsed arena in world units. One tile is one unit on the X and
// Z axes; map pixels are converted through the tile size.
type Level struct {
	Name      string
	Min, Max  mgl32.Vec3
	Solids    []Solid
	Platforms []Platform
	Spawn     mgl32.Vec3
}

// Solid is a static collider built from a run of identical tiles.
type Solid struct {
	Name  string
	Box   cube.BBox
	Layer physics.Layer
}

// Platform is a box that travels by Travel and back, taking Duration
// seconds each way.
type Platform struct {
	Name     string
	Box      cube.BBox
	Travel   mgl32.Vec3
	Duration float32
}

// Moving reports whether the platform actually goes anywhere.
func (p Platform) Moving() bool {
	return p.Duration > 0 && p.Travel.Len() > 0
}

// Build registers every static solid with w and returns the bodies.
func (l *Level) Build(w *physics.World) []*physics.Body {
	bodies := make([]*physics.Body, 0, len(l.Solids))
	for _, s := range l.Solids {
		bodies = append(bodies, w.Add(s.Name, s.Box, s.Layer))
	}
	return bodies
}
