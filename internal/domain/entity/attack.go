package entity

import "github.com/younwookim/platformfighter/internal/domain/geom"

// AttackBand selects the vertical extent of an attack hitbox
type AttackBand int

const (
	// AttackBandFull spans the attacker's full height
	AttackBandFull AttackBand = iota
	// AttackBandMiddle spans the middle half of the attacker's height
	AttackBandMiddle
)

// AttackConfig holds timing and reach of a melee attack (frames / pixels)
type AttackConfig struct {
	Duration int        // Animation length in frames
	Cooldown int        // Frames from attack start until the next is allowed
	Range    float64    // Hitbox reach in front of the attacker
	Band     AttackBand // Vertical extent
}

// ActiveFrames returns the number of leading frames with a live hitbox
func (c AttackConfig) ActiveFrames() int {
	return c.Duration / 2
}

// AttackState tracks an in-progress attack and its cooldown.
// Frame stays in [0, Duration) and Cooldown never goes negative.
type AttackState struct {
	Attacking bool
	Frame     int
	Cooldown  int
	Swing     int // Incremented on every started attack
}

// CanStart returns true if a new attack may begin
func (a *AttackState) CanStart() bool {
	return !a.Attacking && a.Cooldown == 0
}

// Start begins an attack if allowed. Returns false (state unchanged) otherwise.
func (a *AttackState) Start(cfg AttackConfig) bool {
	if !a.CanStart() {
		return false
	}
	a.Attacking = true
	a.Frame = 0
	a.Cooldown = cfg.Cooldown
	a.Swing++
	return true
}

// Tick advances the attack animation and the cooldown by one frame.
// The two counters are independent.
func (a *AttackState) Tick(cfg AttackConfig) {
	if a.Attacking {
		a.Frame++
		if a.Frame >= cfg.Duration {
			a.Attacking = false
			a.Frame = 0
		}
	}
	if a.Cooldown > 0 {
		a.Cooldown--
	}
}

// InWindow returns true while the hitbox is live (first half of the animation)
func (a *AttackState) InWindow(cfg AttackConfig) bool {
	return a.Attacking && a.Frame < cfg.ActiveFrames()
}

// Reset clears all attack state
func (a *AttackState) Reset() {
	*a = AttackState{}
}

// attackRect projects the attack hitbox from body in the facing direction.
// Returns an empty rect outside the active window.
func attackRect(body geom.Rect, facing Facing, cfg AttackConfig, state *AttackState) geom.Rect {
	if !state.InWindow(cfg) {
		return geom.Rect{}
	}

	x := body.Right()
	if facing == FacingLeft {
		x = body.X - cfg.Range
	}

	y, h := body.Y, body.H
	if cfg.Band == AttackBandMiddle {
		y += body.H / 4
		h = body.H / 2
	}

	return geom.NewRect(x, y, cfg.Range, h)
}
