package character

import "github.com/automoto/thirdperson/config"

// CombatState is the attack timer, advanced on the render clock.
type CombatState struct {
	AttackTimer float32
	Attacking   bool // An attack started this render tick
}

// NewCombatState starts with the timer at the interval, so the first attack
// is allowed after one more tick.
func NewCombatState(cfg config.CombatConfig) CombatState {
	return CombatState{AttackTimer: cfg.AttackInterval}
}

// Combat gates attacks and the movement lock that follows them.
type Combat struct {
	interval float32
}

func NewCombat(cfg config.CombatConfig) *Combat {
	return &Combat{interval: cfg.AttackInterval}
}

// Tick advances the timer and starts an attack when requested and allowed.
func (c *Combat) Tick(cs *CombatState, attack bool, dt float32) bool {
	cs.AttackTimer += dt
	cs.Attacking = attack && cs.AttackTimer > c.interval
	if cs.Attacking {
		cs.AttackTimer = 0
	}
	return cs.Attacking
}

// Locked reports whether movement is frozen by a recent attack.
func (c *Combat) Locked(cs CombatState) bool {
	return cs.AttackTimer < c.interval
}
