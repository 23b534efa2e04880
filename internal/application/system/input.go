package system

import (
	"github.com/younwookim/platformfighter/internal/domain/entity"
)

// InputSystem applies the per-tick key snapshot to the player
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState is a snapshot of the logical keys held this tick
type InputState struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
}

// IsZero returns true if no key is held
func (in InputState) IsZero() bool {
	return in == InputState{}
}

// UpdatePlayer sets the player's horizontal velocity, starts jumps and attacks
func (s *InputSystem) UpdatePlayer(player *entity.Player, input InputState) {
	s.handleMovement(player, input)

	if input.Jump && !player.IsJumping() {
		player.VY = player.Config.JumpForce
		player.Grounded = false
	}

	if input.Attack {
		player.StartAttack()
	}
}

// handleMovement processes horizontal movement input. Left wins if both are held.
func (s *InputSystem) handleMovement(player *entity.Player, input InputState) {
	switch {
	case input.Left:
		player.VX = -player.Config.MoveSpeed
		player.Facing = entity.FacingLeft
	case input.Right:
		player.VX = player.Config.MoveSpeed
		player.Facing = entity.FacingRight
	default:
		player.VX = 0
	}
}
