package entity

import "github.com/younwookim/platformfighter/internal/domain/geom"

// PlayerConfig holds tuning for the player. Values are per frame.
type PlayerConfig struct {
	Width     float64
	Height    float64
	MoveSpeed float64
	JumpForce float64 // Negative is up
	Attack    AttackConfig
}

// DefaultPlayerConfig returns the default player tuning
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Width:     50,
		Height:    50,
		MoveSpeed: 5,
		JumpForce: -15,
		Attack: AttackConfig{
			Duration: 10,
			Cooldown: 20,
			Range:    60,
			Band:     AttackBandFull,
		},
	}
}

// Player represents the player character. The player has no health.
type Player struct {
	Body
	Config PlayerConfig
	Attack AttackState
}

// NewPlayer creates a player at the given top-left position facing right
func NewPlayer(x, y float64, cfg PlayerConfig) *Player {
	return &Player{
		Body: Body{
			X:      x,
			Y:      y,
			W:      cfg.Width,
			H:      cfg.Height,
			Facing: FacingRight,
		},
		Config: cfg,
	}
}

// IsJumping returns true while the player is airborne
func (p *Player) IsJumping() bool {
	return !p.Grounded
}

// StartAttack begins an attack if the cooldown has elapsed
func (p *Player) StartAttack() bool {
	return p.Attack.Start(p.Config.Attack)
}

// AttackRect returns the live attack hitbox, or an empty rect
func (p *Player) AttackRect() geom.Rect {
	return attackRect(p.Rect(), p.Facing, p.Config.Attack, &p.Attack)
}

// CooldownRatio returns the remaining cooldown as a fraction (0 = ready)
func (p *Player) CooldownRatio() float64 {
	if p.Config.Attack.Cooldown <= 0 {
		return 0
	}
	return float64(p.Attack.Cooldown) / float64(p.Config.Attack.Cooldown)
}
