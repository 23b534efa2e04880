package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration.
// It matches defaults/game.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Display: DisplayConfig{
			Title:  "Platform Fighter",
			Width:  800,
			Height: 600,
			Scale:  1,
			TPS:    60,
		},
		Physics: PhysicsConfig{Gravity: 0.8},
		Player: PlayerConfig{
			Width:     50,
			Height:    50,
			MoveSpeed: 5,
			JumpForce: -15,
			Attack:    AttackConfig{Duration: 10, Cooldown: 20, Range: 60, Band: BandFull},
		},
		Enemy: EnemyConfig{
			Width:            40,
			Height:           60,
			MaxHealth:        5,
			PatrolSpeed:      2,
			ChaseSpeed:       3,
			RetreatSpeed:     3,
			JumpForce:        -12,
			DetectionRange:   250,
			AttackRange:      70,
			RetreatThreshold: 2,
			JumpMargin:       40,
			EscapeProximity:  100,
			BoundInset:       5,
			Attack:           AttackConfig{Duration: 10, Cooldown: 40, Range: 40, Band: BandFull},
		},
		World: WorldConfig{
			Width:  800,
			Height: 600,
			Platforms: []RectConfig{
				{X: 0, Y: 550, W: 800, H: 50},
				{X: 100, Y: 400, W: 200, H: 20},
				{X: 400, Y: 300, W: 200, H: 20},
				{X: 200, Y: 200, W: 200, H: 20},
				{X: 620, Y: 450, W: 150, H: 20},
			},
			PlayerSpawn: PositionConfig{X: 400, Y: 300},
			EnemySpawn: EnemySpawnConfig{
				X:      150,
				Y:      350,
				Bounds: BoundsConfig{Left: 100, Right: 300},
			},
		},
	}
}
