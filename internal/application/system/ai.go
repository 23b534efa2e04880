package system

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/younwookim/platformfighter/internal/domain/entity"
)

// AISystem drives the enemy behavior state machine
type AISystem struct {
	logger *log.Logger

	// OnTransition is called after the enemy changes state
	OnTransition func(from, to entity.AIState)
}

// NewAISystem creates a new AI system. A nil logger discards output.
func NewAISystem(logger *log.Logger) *AISystem {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &AISystem{logger: logger}
}

// Update evaluates the current state once and applies its behavior.
// The machine is not iterated to a fixed point: a transition takes effect
// on the velocity only from the next tick.
func (s *AISystem) Update(enemy *entity.Enemy, player *entity.Player) {
	if !enemy.IsAlive() {
		return
	}

	dx := player.X - enemy.X
	dy := player.Y - enemy.Y
	dist := math.Hypot(dx, dy)
	enemy.Facing = entity.FacingToward(enemy.Facing, enemy.X, player.X)

	cfg := enemy.Config
	switch enemy.State {
	case entity.AIPatrol:
		if dist <= cfg.DetectionRange {
			switch {
			case enemy.ShouldRetreat():
				s.transition(enemy, entity.AIRetreat, dist)
			case dist <= cfg.AttackRange:
				s.transition(enemy, entity.AIAttack, dist)
			default:
				s.transition(enemy, entity.AIChase, dist)
			}
			return
		}
		s.patrol(enemy)

	case entity.AIChase:
		if dist > cfg.DetectionRange {
			s.transition(enemy, entity.AIPatrol, dist)
			return
		}
		if dist <= cfg.AttackRange {
			s.transition(enemy, entity.AIAttack, dist)
			return
		}
		enemy.VX = sign(dx) * cfg.ChaseSpeed
		if enemy.Grounded && player.Y < enemy.Y-cfg.JumpMargin {
			s.jump(enemy)
		}

	case entity.AIAttack:
		if dist > cfg.AttackRange {
			s.transition(enemy, entity.AIChase, dist)
			return
		}
		enemy.VX = 0
		if enemy.Attack.CanStart() {
			enemy.StartAttack()
		}

	case entity.AIRetreat:
		if !enemy.ShouldRetreat() {
			// Health never rises during a match, kept for healing mechanics
			s.transition(enemy, entity.AIPatrol, dist)
			return
		}
		enemy.VX = -sign(dx) * cfg.RetreatSpeed
		if dx == 0 {
			enemy.VX = -enemy.Facing.Sign() * cfg.RetreatSpeed
		}
		if enemy.Grounded && dist < cfg.EscapeProximity {
			s.jump(enemy)
		}
	}
}

// patrol paces the enemy between its bounds at patrol speed.
// Velocity flips at either bound; the position snaps back onto the bound
// only while grounded so a mid-air enemy is not teleported.
func (s *AISystem) patrol(enemy *entity.Enemy) {
	speed := enemy.Config.PatrolSpeed
	switch {
	case enemy.VX > 0:
		enemy.VX = speed
	case enemy.VX < 0:
		enemy.VX = -speed
	default:
		enemy.VX = enemy.Facing.Sign() * speed
	}

	b := enemy.Bounds
	switch {
	case enemy.X <= b.Left:
		enemy.VX = speed
		if enemy.Grounded {
			enemy.X = b.Left
		}
	case enemy.X+enemy.W >= b.Right:
		enemy.VX = -speed
		if enemy.Grounded {
			enemy.X = b.Right - enemy.W
		}
	}
}

func (s *AISystem) jump(enemy *entity.Enemy) {
	enemy.VY = enemy.Config.JumpForce
	enemy.Grounded = false
}

func (s *AISystem) transition(enemy *entity.Enemy, to entity.AIState, dist float64) {
	from := enemy.State
	enemy.State = to
	s.logger.Debug("enemy state", "from", from, "to", to, "distance", math.Round(dist))
	if s.OnTransition != nil {
		s.OnTransition(from, to)
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
