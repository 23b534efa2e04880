package geom

import "math"

// WallResponse selects what happens to horizontal velocity when a body is
// pushed out of a platform along the x axis.
type WallResponse int

const (
	// StopOnWall zeroes horizontal velocity.
	StopOnWall WallResponse = iota
	// BounceOffWall reverses horizontal velocity.
	BounceOffWall
)

// Axis identifies which axis a resolution pushed along.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

// Resolution is the outcome of resolving a body against one platform.
type Resolution struct {
	Position Vec  // Corrected top-left corner of the body
	Delta    Vec  // Position correction that was applied
	Velocity Vec  // Velocity after the correction
	Axis     Axis // Axis the correction was applied on
	Grounded bool // True if the body now rests on top of the platform
	Ceiling  bool // True if the body was pushed below the platform
}

// Resolve pushes body out of platform along the axis of least overlap.
//
// It is a discrete positional correction evaluated after movement; fast
// bodies can pass through thin platforms between two ticks.
// If the rectangles do not overlap, the velocity is returned unchanged.
func Resolve(body Rect, vel Vec, platform Rect, wall WallResponse) Resolution {
	res := Resolution{Position: Vec{X: body.X, Y: body.Y}, Velocity: vel}
	if !Overlaps(body, platform) {
		return res
	}

	overlapX := math.Min(body.Right()-platform.X, platform.Right()-body.X)
	overlapY := math.Min(body.Bottom()-platform.Y, platform.Bottom()-body.Y)

	if overlapX < overlapY {
		res.Axis = AxisX
		if body.X < platform.X {
			res.Position.X = platform.X - body.W
		} else {
			res.Position.X = platform.Right()
		}
		res.Delta.X = res.Position.X - body.X
		switch wall {
		case BounceOffWall:
			res.Velocity.X = -vel.X
		default:
			res.Velocity.X = 0
		}
		return res
	}

	res.Axis = AxisY
	res.Velocity.Y = 0
	if body.Y < platform.Y {
		res.Position.Y = platform.Y - body.H
		res.Grounded = true
	} else {
		res.Position.Y = platform.Bottom()
		res.Ceiling = true
	}
	res.Delta.Y = res.Position.Y - body.Y
	return res
}
