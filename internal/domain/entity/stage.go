package entity

import "github.com/younwookim/platformfighter/internal/domain/geom"

// Stage holds the static arena: world size, platforms and spawn points.
// Platforms are addressed by index; the list never changes during a session.
type Stage struct {
	Width  float64
	Height float64

	Platforms []Platform

	PlayerSpawn geom.Vec
	EnemySpawn  geom.Vec
	EnemyBounds Bounds
}

// Platform returns the platform at index i
func (s *Stage) Platform(i int) (Platform, bool) {
	if i < 0 || i >= len(s.Platforms) {
		return Platform{}, false
	}
	return s.Platforms[i], true
}
