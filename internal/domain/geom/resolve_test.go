package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ground = NewRect(0, 550, 800, 50)

func TestResolve_NoOverlap(t *testing.T) {
	vel := Vec{X: 3, Y: 4}
	res := Resolve(NewRect(0, 0, 50, 50), vel, ground, StopOnWall)

	assert.Equal(t, AxisNone, res.Axis)
	assert.Equal(t, Vec{}, res.Delta)
	assert.Equal(t, Vec{X: 0, Y: 0}, res.Position)
	assert.Equal(t, vel, res.Velocity)
	assert.False(t, res.Grounded)
}

func TestResolve_LandsOnTop(t *testing.T) {
	body := NewRect(100, 505, 50, 50) // 5px into the ground
	res := Resolve(body, Vec{X: 5, Y: 9}, ground, StopOnWall)

	require.Equal(t, AxisY, res.Axis)
	assert.True(t, res.Grounded)
	assert.False(t, res.Ceiling)
	assert.Equal(t, -5.0, res.Delta.Y)
	assert.Equal(t, 0.0, res.Velocity.Y)
	assert.Equal(t, 5.0, res.Velocity.X, "horizontal velocity kept on floor contact")
	assert.Equal(t, 500.0, body.Translate(res.Delta).Y)
}

func TestResolve_HitsCeiling(t *testing.T) {
	ledge := NewRect(100, 400, 200, 20)
	body := NewRect(150, 415, 50, 50) // head 5px into the underside
	res := Resolve(body, Vec{Y: -10}, ledge, StopOnWall)

	require.Equal(t, AxisY, res.Axis)
	assert.False(t, res.Grounded)
	assert.True(t, res.Ceiling)
	assert.Equal(t, 0.0, res.Velocity.Y)
	assert.Equal(t, 420.0, res.Position.Y)
	assert.Equal(t, 5.0, res.Delta.Y)
}

func TestResolve_Horizontal(t *testing.T) {
	wall := NewRect(300, 0, 20, 600)

	tests := []struct {
		name  string
		body  Rect
		wall  WallResponse
		vx    float64
		wantX float64
		wantV float64
	}{
		{"from left, stop", NewRect(255, 100, 50, 50), StopOnWall, 5, 250, 0},
		{"from right, stop", NewRect(316, 100, 50, 50), StopOnWall, -5, 320, 0},
		{"from left, bounce", NewRect(285, 100, 40, 60), BounceOffWall, 2, 260, -2},
		{"from right, bounce", NewRect(318, 100, 40, 60), BounceOffWall, -2, 320, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.body, Vec{X: tt.vx, Y: 1}, wall, tt.wall)

			require.Equal(t, AxisX, res.Axis)
			assert.Equal(t, tt.wantX, res.Position.X)
			assert.Equal(t, tt.wantV, res.Velocity.X)
			assert.Equal(t, 1.0, res.Velocity.Y, "vertical velocity kept on wall contact")
			assert.False(t, res.Grounded)
		})
	}
}

func TestResolve_EqualOverlapResolvesVertically(t *testing.T) {
	p := NewRect(100, 100, 100, 100)
	body := NewRect(90, 90, 20, 20) // 10px overlap on both axes
	res := Resolve(body, Vec{}, p, StopOnWall)

	assert.Equal(t, AxisY, res.Axis)
	assert.True(t, res.Grounded)
}

func TestResolve_NonPenetration(t *testing.T) {
	platforms := []Rect{
		NewRect(0, 550, 800, 50),
		NewRect(100, 400, 200, 20),
		NewRect(400, 300, 20, 200),
	}
	bodies := []Rect{
		NewRect(120, 395, 50, 50),
		NewRect(280, 410, 50, 50),
		NewRect(95, 405, 50, 50),
		NewRect(390, 320, 50, 50),
		NewRect(410, 480, 40, 60),
		NewRect(700, 549.2, 50, 50),
		NewRect(150, 560, 40, 60),
	}

	for _, p := range platforms {
		for _, b := range bodies {
			if !Overlaps(b, p) {
				continue
			}
			for _, wall := range []WallResponse{StopOnWall, BounceOffWall} {
				res := Resolve(b, Vec{X: 3, Y: 7}, p, wall)
				after := NewRect(res.Position.X, res.Position.Y, b.W, b.H)
				assert.False(t, Overlaps(after, p), "body %+v still overlaps %+v after %+v", b, p, res)
				if res.Grounded {
					assert.Equal(t, 0.0, res.Velocity.Y)
					assert.Equal(t, p.Y, after.Bottom())
				}
			}
		}
	}
}
