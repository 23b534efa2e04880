package system

import (
	"fmt"

	"github.com/younwookim/platformfighter/internal/domain/entity"
	"github.com/younwookim/platformfighter/internal/domain/geom"
	"github.com/younwookim/platformfighter/internal/infrastructure/config"
)

// LoadWorld converts a WorldConfig into a Stage entity.
// Platforms with a non-positive width or height are rejected.
func LoadWorld(cfg *config.WorldConfig) (*entity.Stage, error) {
	platforms := make([]entity.Platform, 0, len(cfg.Platforms))
	for i, r := range cfg.Platforms {
		p, err := entity.NewPlatform(r.X, r.Y, r.W, r.H)
		if err != nil {
			return nil, fmt.Errorf("platform %d: %w", i, err)
		}
		platforms = append(platforms, p)
	}

	bounds := entity.Bounds{Left: cfg.EnemySpawn.Bounds.Left, Right: cfg.EnemySpawn.Bounds.Right}
	if bounds.Left > bounds.Right {
		return nil, fmt.Errorf("enemy bounds left %v > right %v: %w", bounds.Left, bounds.Right, config.ErrInvalidConfig)
	}

	return &entity.Stage{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Platforms:   platforms,
		PlayerSpawn: geom.Vec{X: cfg.PlayerSpawn.X, Y: cfg.PlayerSpawn.Y},
		EnemySpawn:  geom.Vec{X: cfg.EnemySpawn.X, Y: cfg.EnemySpawn.Y},
		EnemyBounds: bounds,
	}, nil
}

// PlayerConfigFrom converts YAML player settings into entity tuning
func PlayerConfigFrom(cfg *config.PlayerConfig) (entity.PlayerConfig, error) {
	attack, err := attackConfigFrom(cfg.Attack)
	if err != nil {
		return entity.PlayerConfig{}, fmt.Errorf("player: %w", err)
	}
	return entity.PlayerConfig{
		Width:     cfg.Width,
		Height:    cfg.Height,
		MoveSpeed: cfg.MoveSpeed,
		JumpForce: cfg.JumpForce,
		Attack:    attack,
	}, nil
}

// EnemyConfigFrom converts YAML enemy settings into entity tuning
func EnemyConfigFrom(cfg *config.EnemyConfig) (entity.EnemyConfig, error) {
	attack, err := attackConfigFrom(cfg.Attack)
	if err != nil {
		return entity.EnemyConfig{}, fmt.Errorf("enemy: %w", err)
	}
	return entity.EnemyConfig{
		Width:            cfg.Width,
		Height:           cfg.Height,
		MaxHealth:        cfg.MaxHealth,
		PatrolSpeed:      cfg.PatrolSpeed,
		ChaseSpeed:       cfg.ChaseSpeed,
		RetreatSpeed:     cfg.RetreatSpeed,
		JumpForce:        cfg.JumpForce,
		DetectionRange:   cfg.DetectionRange,
		AttackRange:      cfg.AttackRange,
		RetreatThreshold: cfg.RetreatThreshold,
		JumpMargin:       cfg.JumpMargin,
		EscapeProximity:  cfg.EscapeProximity,
		BoundInset:       cfg.BoundInset,
		Attack:           attack,
	}, nil
}

func attackConfigFrom(cfg config.AttackConfig) (entity.AttackConfig, error) {
	var band entity.AttackBand
	switch cfg.Band {
	case "", config.BandFull:
		band = entity.AttackBandFull
	case config.BandMiddle:
		band = entity.AttackBandMiddle
	default:
		return entity.AttackConfig{}, fmt.Errorf("unknown attack band %q: %w", cfg.Band, config.ErrInvalidConfig)
	}
	return entity.AttackConfig{
		Duration: cfg.Duration,
		Cooldown: cfg.Cooldown,
		Range:    cfg.Range,
		Band:     band,
	}, nil
}
