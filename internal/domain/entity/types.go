package entity

// Facing is the horizontal direction a combatant looks toward
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 for right and -1 for left
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// String returns the string representation of the facing
func (f Facing) String() string {
	if f == FacingLeft {
		return "Left"
	}
	return "Right"
}

// FacingToward returns the facing that points from x toward targetX.
// When both are equal the current facing is kept.
func FacingToward(current Facing, x, targetX float64) Facing {
	switch {
	case targetX > x:
		return FacingRight
	case targetX < x:
		return FacingLeft
	default:
		return current
	}
}

// AIState is the state of the enemy behavior machine
type AIState int

const (
	AIPatrol AIState = iota
	AIChase
	AIAttack
	AIRetreat
)

// String returns the string representation of the AI state
func (s AIState) String() string {
	switch s {
	case AIPatrol:
		return "Patrol"
	case AIChase:
		return "Chase"
	case AIAttack:
		return "Attack"
	case AIRetreat:
		return "Retreat"
	default:
		return "Unknown"
	}
}

// NoPlatform marks a combatant that is not standing on any platform
const NoPlatform = -1
