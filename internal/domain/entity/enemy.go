package entity

import "github.com/younwookim/platformfighter/internal/domain/geom"

// EnemyConfig holds tuning for the enemy. Values are per frame / pixels.
type EnemyConfig struct {
	Width     float64
	Height    float64
	MaxHealth int

	PatrolSpeed  float64
	ChaseSpeed   float64
	RetreatSpeed float64
	JumpForce    float64 // Negative is up

	DetectionRange   float64
	AttackRange      float64
	RetreatThreshold int     // Retreat when health <= this
	JumpMargin       float64 // Chase jumps when the player is this much higher
	EscapeProximity  float64 // Retreat jumps when the player is closer than this
	BoundInset       float64 // Patrol bound margin from platform edges

	Attack AttackConfig
}

// DefaultEnemyConfig returns the default enemy tuning
func DefaultEnemyConfig() EnemyConfig {
	return EnemyConfig{
		Width:            40,
		Height:           60,
		MaxHealth:        5,
		PatrolSpeed:      2,
		ChaseSpeed:       3,
		RetreatSpeed:     3,
		JumpForce:        -12,
		DetectionRange:   250,
		AttackRange:      70,
		RetreatThreshold: 2,
		JumpMargin:       40,
		EscapeProximity:  100,
		BoundInset:       5,
		Attack: AttackConfig{
			Duration: 10,
			Cooldown: 40,
			Range:    40,
			Band:     AttackBandFull,
		},
	}
}

// Bounds is a horizontal patrol range. Left <= Right.
type Bounds struct {
	Left, Right float64
}

// Enemy represents the AI-driven combatant
type Enemy struct {
	Body
	Config EnemyConfig
	Health int
	Attack AttackState
	State  AIState
	Bounds Bounds

	// Index into the session's platform list, NoPlatform when airborne
	Platform int
}

// NewEnemy creates a patrolling enemy at the given position.
// It starts walking right at patrol speed.
func NewEnemy(x, y float64, bounds Bounds, cfg EnemyConfig) *Enemy {
	if bounds.Left > bounds.Right {
		bounds.Left, bounds.Right = bounds.Right, bounds.Left
	}
	return &Enemy{
		Body: Body{
			X:      x,
			Y:      y,
			VX:     cfg.PatrolSpeed,
			W:      cfg.Width,
			H:      cfg.Height,
			Facing: FacingRight,
		},
		Config:   cfg,
		Health:   cfg.MaxHealth,
		State:    AIPatrol,
		Bounds:   bounds,
		Platform: NoPlatform,
	}
}

// IsAlive returns true if enemy still has health
func (e *Enemy) IsAlive() bool {
	return e.Health > 0
}

// IsHit applies one point of damage if the attack rect overlaps the body.
// Every overlapping call damages again; callers limit it to once per swing.
func (e *Enemy) IsHit(attack geom.Rect) bool {
	if !e.IsAlive() {
		return false
	}
	if !geom.Overlaps(e.Rect(), attack) {
		return false
	}
	e.Health--
	return true
}

// HealthRatio returns health as a fraction of max health
func (e *Enemy) HealthRatio() float64 {
	if e.Config.MaxHealth <= 0 || e.Health <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.Config.MaxHealth)
}

// StandOn records the platform the enemy is grounded on this tick.
// Patrol bounds are re-derived only when the platform changes.
// Returns true if the bounds were recomputed.
func (e *Enemy) StandOn(index int, platform geom.Rect) bool {
	if index == e.Platform {
		return false
	}
	e.Platform = index
	if index == NoPlatform {
		return false
	}
	e.Bounds = BoundsFor(platform, e.Config.BoundInset)
	return true
}

// BoundsFor derives patrol bounds from a platform with an inset margin
func BoundsFor(platform geom.Rect, inset float64) Bounds {
	b := Bounds{Left: platform.X + inset, Right: platform.Right() - inset}
	if b.Left > b.Right {
		mid := platform.X + platform.W/2
		b.Left, b.Right = mid, mid
	}
	return b
}

// StartAttack begins an attack if the cooldown has elapsed
func (e *Enemy) StartAttack() bool {
	return e.Attack.Start(e.Config.Attack)
}

// AttackRect returns the live attack hitbox, or an empty rect
func (e *Enemy) AttackRect() geom.Rect {
	return attackRect(e.Rect(), e.Facing, e.Config.Attack, &e.Attack)
}

// ShouldRetreat returns true when health is at or below the retreat threshold
func (e *Enemy) ShouldRetreat() bool {
	return e.Health <= e.Config.RetreatThreshold
}
