package replay

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/younwookim/platformfighter/internal/application/match"
	"github.com/younwookim/platformfighter/internal/infrastructure/config"
)

// Result summarizes a headless playback
type Result struct {
	Frames      int
	Hits        int
	DefeatedAt  int // Frame the enemy died on, 0 if it survived
	EnemyHealth int
	EnemyAlive  bool
	PlayerAlive bool
	Final       match.Snapshot
}

// Run plays the recording through a fresh match without a window.
// Recordings without an embedded config use the built-in defaults.
func Run(data *ReplayData, logger *log.Logger) (Result, error) {
	cfg := data.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Default(); err != nil {
			return Result{}, err
		}
	} else if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("replay config: %w", err)
	}

	m, err := match.NewFromConfig(cfg, logger)
	if err != nil {
		return Result{}, err
	}

	var res Result
	res.PlayerAlive = true
	res.EnemyAlive = m.Enemy().IsAlive()

	r := NewReplayer(*data)
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		step := m.Step(in)
		if step.EnemyHit {
			res.Hits++
		}
		if step.EnemyDefeated {
			res.DefeatedAt = step.Frame
		}
		res.PlayerAlive = step.PlayerAlive
		res.EnemyAlive = step.EnemyAlive
	}

	res.Frames = m.Frame()
	res.EnemyHealth = m.Enemy().Health
	res.Final = m.Snapshot()
	return res, nil
}
