// Package match runs one player-versus-enemy session on a fixed stage.
//
// A Match owns every simulated record. Step advances it by exactly one
// tick and is a pure function of the previous state and the input
// snapshot, so two matches fed the same inputs stay identical.
package match

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/younwookim/platformfighter/internal/application/system"
	"github.com/younwookim/platformfighter/internal/domain/entity"
	"github.com/younwookim/platformfighter/internal/infrastructure/config"
)

// StepResult reports what happened during one tick
type StepResult struct {
	Frame         int
	EnemyHit      bool // The player's swing landed this tick
	EnemyDefeated bool // The enemy died this tick
	PlayerInReach bool // The enemy's live hitbox overlaps the player
	PlayerAlive   bool
	EnemyAlive    bool
}

// Match is the session driver
type Match struct {
	stage     *entity.Stage
	physCfg   config.PhysicsConfig
	playerCfg entity.PlayerConfig
	enemyCfg  entity.EnemyConfig

	player *entity.Player
	enemy  *entity.Enemy
	frame  int

	input   *system.InputSystem
	physics *system.PhysicsSystem
	ai      *system.AISystem
	combat  *system.CombatSystem

	logger *log.Logger
}

// New creates a match with both combatants at their spawn points.
// A nil logger discards output.
func New(stage *entity.Stage, physics config.PhysicsConfig, playerCfg entity.PlayerConfig, enemyCfg entity.EnemyConfig, logger *log.Logger) *Match {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Match{
		stage:     stage,
		physCfg:   physics,
		playerCfg: playerCfg,
		enemyCfg:  enemyCfg,
		input:     system.NewInputSystem(),
		ai:        system.NewAISystem(logger),
		combat:    system.NewCombatSystem(logger),
		logger:    logger,
	}
	m.physics = system.NewPhysicsSystem(&m.physCfg, stage)
	m.Reset()
	return m
}

// NewFromConfig builds the stage and tuning from a loaded game config
func NewFromConfig(cfg *config.GameConfig, logger *log.Logger) (*Match, error) {
	stage, err := system.LoadWorld(&cfg.World)
	if err != nil {
		return nil, fmt.Errorf("failed to load world: %w", err)
	}
	playerCfg, err := system.PlayerConfigFrom(&cfg.Player)
	if err != nil {
		return nil, err
	}
	enemyCfg, err := system.EnemyConfigFrom(&cfg.Enemy)
	if err != nil {
		return nil, err
	}
	return New(stage, cfg.Physics, playerCfg, enemyCfg, logger), nil
}

// Reset puts both combatants back at their spawn points
func (m *Match) Reset() {
	spawn := m.stage.PlayerSpawn
	m.player = entity.NewPlayer(spawn.X, spawn.Y, m.playerCfg)

	spawn = m.stage.EnemySpawn
	m.enemy = entity.NewEnemy(spawn.X, spawn.Y, m.stage.EnemyBounds, m.enemyCfg)

	m.combat.Reset()
	m.frame = 0
}

// Step advances the match by one tick.
// Order: input, player, then (while alive) enemy physics, AI and
// attack timers, then the player's attack against the enemy.
func (m *Match) Step(in system.InputState) StepResult {
	m.frame++
	res := StepResult{Frame: m.frame, PlayerAlive: true}

	p, e := m.player, m.enemy

	m.input.UpdatePlayer(p, in)
	m.physics.UpdatePlayer(p)
	m.combat.TickPlayer(p)

	if e.IsAlive() {
		m.physics.UpdateEnemy(e)
		m.ai.Update(e, p)
		m.physics.ClampEnemy(e)
		m.combat.TickEnemy(e)
		res.PlayerInReach = m.combat.EnemyAttackHits(e, p)

		if p.Attack.Attacking {
			res.EnemyHit = m.combat.ResolvePlayerAttack(p, e)
			res.EnemyDefeated = res.EnemyHit && !e.IsAlive()
		}
	}

	res.EnemyAlive = e.IsAlive()
	return res
}

// Frame returns the number of ticks since the last reset
func (m *Match) Frame() int { return m.frame }

// Player returns the player record
func (m *Match) Player() *entity.Player { return m.player }

// Enemy returns the enemy record. It persists after death.
func (m *Match) Enemy() *entity.Enemy { return m.enemy }

// Stage returns the static stage
func (m *Match) Stage() *entity.Stage { return m.stage }

// Snapshot is a comparable copy of the dynamic match state
type Snapshot struct {
	Frame  int
	Player entity.Player
	Enemy  entity.Enemy
}

// Snapshot returns a copy of the current state
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Frame:  m.frame,
		Player: *m.player,
		Enemy:  *m.enemy,
	}
}
