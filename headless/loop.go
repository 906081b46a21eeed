package headless

import (
	"context"
	"sync"
	"time"

	"github.com/automoto/thirdperson/logging"
	"github.com/sirupsen/logrus"
)

// Loop feeds a script into a Sim at a fixed rate.
type Loop struct {
	sim      *Sim
	input    cursor
	tickRate int
	dt       float32
	logEvery int
	ticks    int
	log      logrus.FieldLogger

	stopOnce sync.Once
	stopChan chan struct{}
}

// NewLoop prepares a loop running script at tickRate ticks per second. The
// agent state is logged every logEvery ticks, or never when it is zero.
func NewLoop(sim *Sim, script Script, tickRate, logEvery int, log logrus.FieldLogger) *Loop {
	return &Loop{
		sim:      sim,
		input:    cursor{steps: script.Steps},
		tickRate: tickRate,
		dt:       1 / float32(tickRate),
		logEvery: logEvery,
		log:      logging.OrDiscard(log),
		stopChan: make(chan struct{}),
	}
}

// Run ticks in real time until the script ends, Stop is called or ctx is
// done.
func (g *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.log.WithField("rate", g.tickRate).Info("loop started")
	for {
		select {
		case <-ctx.Done():
			g.log.Info("loop cancelled")
			return ctx.Err()
		case <-g.stopChan:
			g.log.Info("loop stopped")
			return nil
		case <-ticker.C:
			if !g.tick() {
				g.log.WithField("ticks", g.ticks).Info("script finished")
				return nil
			}
		}
	}
}

// RunTicks runs up to n ticks as fast as possible and returns how many ran.
// It stops early when the script ends.
func (g *Loop) RunTicks(n int) int {
	ran := 0
	for ran < n && g.tick() {
		ran++
	}
	return ran
}

// Stop ends a running loop. It is safe to call more than once.
func (g *Loop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Ticks returns how many ticks have run.
func (g *Loop) Ticks() int {
	return g.ticks
}

func (g *Loop) tick() bool {
	in, ok := g.input.next()
	if !ok {
		return false
	}
	g.sim.Step(in, g.dt)
	g.ticks++

	if g.logEvery > 0 && g.ticks%g.logEvery == 0 {
		g.logState()
	}
	return true
}

func (g *Loop) logState() {
	c := g.sim.Controller
	s, gr, look := c.State(), c.Ground(), c.Look()
	g.log.WithFields(logrus.Fields{
		"tick":     g.ticks,
		"position": s.Position,
		"velocity": s.Velocity,
		"phase":    gr.Phase(),
		"yaw":      look.Yaw,
		"pitch":    look.Pitch,
		"boom":     c.Pose().Boom,
	}).Info("agent")
}
