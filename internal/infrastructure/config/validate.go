package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned when a configuration fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Attack band names
const (
	BandFull   = "full"
	BandMiddle = "middle"
)

// Validate checks the configuration for values the simulation cannot run with
func (c *GameConfig) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		add("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.TPS <= 0 {
		add("display.tps must be positive, got %d", c.Display.TPS)
	}

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		add("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	}
	validateAttack("player", c.Player.Attack, add)

	if c.Enemy.Width <= 0 || c.Enemy.Height <= 0 {
		add("enemy size must be positive, got %vx%v", c.Enemy.Width, c.Enemy.Height)
	}
	if c.Enemy.MaxHealth <= 0 {
		add("enemy.maxHealth must be positive, got %d", c.Enemy.MaxHealth)
	}
	if c.Enemy.AttackRange > c.Enemy.DetectionRange {
		add("enemy.attackRange (%v) exceeds detectionRange (%v)", c.Enemy.AttackRange, c.Enemy.DetectionRange)
	}
	if c.Enemy.BoundInset < 0 {
		add("enemy.boundInset must not be negative, got %v", c.Enemy.BoundInset)
	}
	validateAttack("enemy", c.Enemy.Attack, add)

	w := c.World
	if w.Width <= 0 || w.Height <= 0 {
		add("world size must be positive, got %vx%v", w.Width, w.Height)
	}
	if len(w.Platforms) == 0 {
		add("world needs at least one platform")
	}
	for i, p := range w.Platforms {
		if p.W <= 0 || p.H <= 0 {
			add("platform %d has non-positive size %vx%v", i, p.W, p.H)
		}
	}
	if w.EnemySpawn.Bounds.Left > w.EnemySpawn.Bounds.Right {
		add("enemy bounds left (%v) > right (%v)", w.EnemySpawn.Bounds.Left, w.EnemySpawn.Bounds.Right)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func validateAttack(owner string, a AttackConfig, add func(string, ...any)) {
	if a.Duration <= 0 {
		add("%s.attack.duration must be positive, got %d", owner, a.Duration)
	}
	if a.Cooldown < 0 {
		add("%s.attack.cooldown must not be negative, got %d", owner, a.Cooldown)
	}
	if a.Range <= 0 {
		add("%s.attack.range must be positive, got %v", owner, a.Range)
	}
	switch a.Band {
	case "", BandFull, BandMiddle:
	default:
		add("%s.attack.band must be %q or %q, got %q", owner, BandFull, BandMiddle, a.Band)
	}
}
