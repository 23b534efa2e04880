package system

import (
	"math"

	"github.com/younwookim/platformfighter/internal/domain/entity"
	"github.com/younwookim/platformfighter/internal/domain/geom"
	"github.com/younwookim/platformfighter/internal/infrastructure/config"
)

// PhysicsSystem integrates gravity and resolves bodies against the stage platforms
type PhysicsSystem struct {
	config *config.PhysicsConfig
	stage  *entity.Stage
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, stage *entity.Stage) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		stage:  stage,
	}
}

// UpdatePlayer moves the player one tick: gravity, integration, platform
// resolution (stopping on walls) and the horizontal world clamp.
func (s *PhysicsSystem) UpdatePlayer(player *entity.Player) {
	player.Integrate(s.config.Gravity)
	s.ResolvePlatforms(&player.Body, geom.StopOnWall)
	player.ClampX(s.stage.Width)
}

// UpdateEnemy moves the enemy one tick and tracks the platform it stands on.
// Horizontal contact with a platform reverses the enemy's direction.
// Returns true if the patrol bounds were re-derived.
func (s *PhysicsSystem) UpdateEnemy(enemy *entity.Enemy) bool {
	enemy.Integrate(s.config.Gravity)
	idx := s.ResolvePlatforms(&enemy.Body, geom.BounceOffWall)

	if idx == entity.NoPlatform {
		return enemy.StandOn(entity.NoPlatform, geom.Rect{})
	}
	platform, _ := s.stage.Platform(idx)
	return enemy.StandOn(idx, platform.Rect())
}

// ClampEnemy keeps the enemy inside the world and turns it away from the edge
func (s *PhysicsSystem) ClampEnemy(enemy *entity.Enemy) {
	if !enemy.ClampX(s.stage.Width) {
		return
	}
	if enemy.X <= 0 {
		enemy.VX = math.Abs(enemy.VX)
	} else {
		enemy.VX = -math.Abs(enemy.VX)
	}
}

// ResolvePlatforms resolves body against every platform in list order.
// Each platform sees the position produced by the previous one, so when a
// body overlaps several platforms the last one in the list has the final say.
// Returns the index of the last platform the body landed on, or NoPlatform.
func (s *PhysicsSystem) ResolvePlatforms(body *entity.Body, wall geom.WallResponse) int {
	body.Grounded = false
	body.Ceiling = false

	grounded := entity.NoPlatform
	for i, platform := range s.stage.Platforms {
		res := geom.Resolve(body.Rect(), body.Velocity(), platform.Rect(), wall)
		if res.Axis == geom.AxisNone {
			continue
		}
		body.Apply(res)
		if res.Grounded {
			grounded = i
		}
	}
	return grounded
}
