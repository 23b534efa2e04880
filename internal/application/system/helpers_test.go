package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformfighter/internal/domain/entity"
	"github.com/younwookim/platformfighter/internal/domain/geom"
	"github.com/younwookim/platformfighter/internal/infrastructure/config"
)

func createTestPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{Gravity: 0.8}
}

// createTestStage builds an 800x600 stage from the given platform rects
func createTestStage(t *testing.T, rects ...geom.Rect) *entity.Stage {
	t.Helper()
	platforms := make([]entity.Platform, 0, len(rects))
	for _, r := range rects {
		p, err := entity.NewPlatform(r.X, r.Y, r.W, r.H)
		require.NoError(t, err)
		platforms = append(platforms, p)
	}
	return &entity.Stage{Width: 800, Height: 600, Platforms: platforms}
}

func createDefaultStage(t *testing.T) *entity.Stage {
	t.Helper()
	world := config.DefaultGameConfig().World
	stage, err := LoadWorld(&world)
	require.NoError(t, err)
	return stage
}

// createGroundedEnemy places an enemy resting on the first ledge (y 400)
func createGroundedEnemy(x float64) *entity.Enemy {
	e := entity.NewEnemy(x, 340, entity.Bounds{Left: 105, Right: 295}, entity.DefaultEnemyConfig())
	e.Grounded = true
	e.Platform = 1
	return e
}
