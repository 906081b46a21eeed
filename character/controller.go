package character

import (
	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/logging"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// Controller wires the stages together and owns their state. Fixed tick
// stages are the only writers of the simulation state, render tick stages
// the only writers of the look state and the rendered transforms.
type Controller struct {
	cfg   config.Config
	log   logrus.FieldLogger
	spawn mgl32.Vec3

	integrator *Integrator
	ground     *GroundMachine
	resolver   MovementResolver
	sweep      *SweepResolver
	rig        *CameraRig
	interp     *Interpolator
	combat     *Combat

	state    SimulationState
	grounds  GroundState
	look     LookState
	attack   CombatState
	movement Movement
	signals  Signals
	pose     RigPose
	body     Transform
	camera   Transform
	ticks    uint64
}

// New builds a controller for an agent standing at spawn.
func New(cfg config.Config, spawn mgl32.Vec3, query CollisionQuery, log logrus.FieldLogger) *Controller {
	log = logging.OrDiscard(log)
	if query == nil {
		query = NoCollision{}
	}
	pad := cfg.Physics.RaycastPad
	c := &Controller{
		cfg:        cfg,
		log:        log,
		spawn:      spawn,
		integrator: NewIntegrator(cfg.Physics),
		ground:     NewGroundMachine(cfg.Ground, pad, query, log),
		resolver:   NewResolver(cfg.Agent, log),
		sweep:      NewSweepResolver(cfg.Agent, pad, query),
		rig:        NewCameraRig(cfg.Camera, query, log),
		interp:     NewInterpolator(cfg.Presentation, pad, query),
		combat:     NewCombat(cfg.Combat),
	}
	c.Reset(spawn)
	return c
}

// Reset puts the agent back at pos at rest, keeping the view angles.
func (c *Controller) Reset(pos mgl32.Vec3) {
	c.state = NewSimulationState(pos, TunablesFrom(c.cfg.Agent))
	c.grounds = NewGroundState(c.cfg.Ground)
	c.attack = NewCombatState(c.cfg.Combat)
	c.movement = Movement{}
	c.signals = Signals{}
	c.body = Transform{Position: pos, Rotation: mgl32.QuatIdent()}

	c.pose = c.placeRig(0)
	c.camera = Transform{Position: c.pose.HandlePosition, Rotation: c.pose.HandleRotation}
}

// Respawn returns the agent to where it was created.
func (c *Controller) Respawn() {
	c.log.WithField("at", c.state.Position).Info("respawn")
	c.Reset(c.spawn)
}

// FixedTick advances the simulation by dt: platform carry, ground probe,
// jump eligibility, movement, integration, then collision sweeps.
func (c *Controller) FixedTick(in InputSample, dt float32) {
	if c.grounds.Support != nil {
		c.state.Position = c.state.Position.Add(c.grounds.Support.Delta())
	}

	c.ground.Probe(&c.grounds, c.state.Position, dt)
	c.ground.Refresh(&c.grounds, dt)

	basis := c.look.YawRotation()
	if c.cfg.Camera.CoupleModel {
		c.state.Orientation = basis
	}

	from := c.state.Position
	c.movement = c.resolver.Resolve(MovementInput{
		Sample:       in,
		AttackLocked: c.combat.Locked(c.attack),
		Basis:        basis,
	}, &c.grounds, &c.state, dt)
	c.integrator.Step(&c.state, c.grounds.Grounded, dt)

	if c.sweep.Resolve(&c.state, from) && !c.grounds.Grounded {
		c.log.WithField("y", c.state.Position.Y()).Debug("landed")
	}

	if c.state.Position.Y() < c.cfg.Agent.KillHeight {
		c.Respawn()
	}
	c.ticks++
}

// RenderTick runs the presentation stages for a frame of length dt.
func (c *Controller) RenderTick(in InputSample, dt float32) {
	if c.combat.Tick(&c.attack, in.Attack, dt) {
		c.log.Debug("attack")
	}

	c.interp.Body(&c.body, Transform{Position: c.state.Position, Rotation: c.state.Orientation})

	c.pose = c.rig.Update(&c.look, in.LookDelta, c.state.Tunables.LookSensitivity, dt, c.anchor())
	if c.cfg.Camera.CoupleModel {
		c.body.Rotation = c.pose.AnchorRotation
	}

	c.interp.Camera(&c.camera, Transform{Position: c.pose.HandlePosition, Rotation: c.pose.HandleRotation})
	c.signals.Update(c.movement, in, c.grounds, c.attack.Attacking, c.state.Tunables.Speed, c.cfg.Presentation.SignalSmoothing)
}

func (c *Controller) anchor() mgl32.Vec3 {
	return c.body.Position.Add(c.cfg.Camera.AnchorOffset.V())
}

func (c *Controller) placeRig(dt float32) RigPose {
	return c.rig.Update(&c.look, mgl32.Vec2{}, 0, dt, c.anchor())
}

// SetSensitivity changes the look sensitivity at runtime.
func (c *Controller) SetSensitivity(v float32) {
	c.state.Tunables.LookSensitivity = v
}

// SetCoupling toggles whether the body faces the look yaw.
func (c *Controller) SetCoupling(on bool) {
	c.cfg.Camera.CoupleModel = on
}

// SetInvertY flips the vertical look axis.
func (c *Controller) SetInvertY(on bool) {
	c.cfg.Camera.InvertY = on
	c.rig.cfg.InvertY = on
}

func (c *Controller) State() SimulationState { return c.state }
func (c *Controller) Ground() GroundState    { return c.grounds }
func (c *Controller) Look() LookState        { return c.look }
func (c *Controller) Combat() CombatState    { return c.attack }
func (c *Controller) Movement() Movement     { return c.movement }
func (c *Controller) Signals() Signals       { return c.signals }
func (c *Controller) Pose() RigPose          { return c.pose }
func (c *Controller) Body() Transform        { return c.body }
func (c *Controller) Camera() Transform      { return c.camera }
func (c *Controller) Ticks() uint64          { return c.ticks }
func (c *Controller) Config() config.Config  { return c.cfg }
