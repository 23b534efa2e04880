package entity

import "github.com/younwookim/platformfighter/internal/domain/geom"

// Body represents the physical body shared by player and enemy.
// Position is the top-left corner; floats keep sub-pixel gravity accumulation.
type Body struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	Grounded bool // Resting on top of a platform after this tick's resolution
	Ceiling  bool // Pushed below a platform this tick
	Facing   Facing
}

// Rect returns the body rectangle in world coordinates
func (b *Body) Rect() geom.Rect {
	return geom.NewRect(b.X, b.Y, b.W, b.H)
}

// Position returns the top-left corner
func (b *Body) Position() geom.Vec {
	return geom.Vec{X: b.X, Y: b.Y}
}

// Velocity returns the current velocity
func (b *Body) Velocity() geom.Vec {
	return geom.Vec{X: b.VX, Y: b.VY}
}

// Apply copies a collision resolution into the body
func (b *Body) Apply(res geom.Resolution) {
	b.X = res.Position.X
	b.Y = res.Position.Y
	b.VX = res.Velocity.X
	b.VY = res.Velocity.Y
	if res.Grounded {
		b.Grounded = true
	}
	if res.Ceiling {
		b.Ceiling = true
	}
}

// Integrate adds gravity to vertical velocity and moves by the velocity.
// There is no terminal velocity.
func (b *Body) Integrate(gravity float64) {
	b.VY += gravity
	b.X += b.VX
	b.Y += b.VY
}

// ClampX keeps the body horizontally within [0, worldWidth-W].
// Returns true if the position was changed.
func (b *Body) ClampX(worldWidth float64) bool {
	switch {
	case b.X < 0:
		b.X = 0
		return true
	case b.X > worldWidth-b.W:
		b.X = worldWidth - b.W
		return true
	}
	return false
}
