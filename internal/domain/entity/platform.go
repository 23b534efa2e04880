package entity

import (
	"errors"
	"fmt"

	"github.com/younwookim/platformfighter/internal/domain/geom"
)

// ErrInvalidPlatform is returned when platform geometry has no area
var ErrInvalidPlatform = errors.New("invalid platform")

// Platform is a static solid rectangle. It cannot be changed after creation.
type Platform struct {
	rect geom.Rect
}

// NewPlatform creates a platform, rejecting non-positive width or height
func NewPlatform(x, y, width, height float64) (Platform, error) {
	if width <= 0 || height <= 0 {
		return Platform{}, fmt.Errorf("%w: size %vx%v at (%v, %v)", ErrInvalidPlatform, width, height, x, y)
	}
	return Platform{rect: geom.NewRect(x, y, width, height)}, nil
}

// Rect returns the platform rectangle
func (p Platform) Rect() geom.Rect {
	return p.rect
}
