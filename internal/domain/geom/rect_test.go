package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Edges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.False(t, r.Empty())
	assert.True(t, Rect{}.Empty())
	assert.True(t, NewRect(0, 0, -1, 5).Empty())
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", NewRect(0, 0, 10, 10), NewRect(0, 0, 10, 10), true},
		{"partial", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(0, 0, 100, 100), NewRect(40, 40, 5, 5), true},
		{"touching right edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"touching bottom edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"touching corner", NewRect(0, 0, 10, 10), NewRect(10, 10, 10, 10), false},
		{"apart", NewRect(0, 0, 10, 10), NewRect(50, 50, 10, 10), false},
		{"sub-pixel overlap", NewRect(0, 0, 10, 10.5), NewRect(0, 10, 10, 10), true},
		{"empty inside other", Rect{}, NewRect(-5, -5, 10, 10), false},
		{"zero width", NewRect(2, 2, 0, 5), NewRect(0, 0, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
		})
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	var rects []Rect
	for _, x := range []float64{-15, -10, 0, 5, 10, 20} {
		for _, y := range []float64{-10, 0, 7, 10} {
			for _, size := range []Vec{{10, 10}, {0, 10}, {25, 3}} {
				rects = append(rects, NewRect(x, y, size.X, size.Y))
			}
		}
	}

	for _, a := range rects {
		for _, b := range rects {
			assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "a=%+v b=%+v", a, b)
		}
	}
}

func TestRect_Translate(t *testing.T) {
	r := NewRect(1, 2, 3, 4).Translate(Vec{X: 10, Y: -2})
	assert.Equal(t, NewRect(11, 0, 3, 4), r)
}
