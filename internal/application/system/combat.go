package system

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/younwookim/platformfighter/internal/domain/entity"
)

// CombatSystem handles attack timers and hit resolution
type CombatSystem struct {
	logger *log.Logger

	// Swing number of the player's last attack that landed
	landedSwing int

	// Event callbacks
	OnHit    func(enemy *entity.Enemy)
	OnDefeat func(enemy *entity.Enemy)
}

// NewCombatSystem creates a new combat system. A nil logger discards output.
func NewCombatSystem(logger *log.Logger) *CombatSystem {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &CombatSystem{logger: logger}
}

// TickPlayer advances the player's attack animation and cooldown
func (s *CombatSystem) TickPlayer(player *entity.Player) {
	player.Attack.Tick(player.Config.Attack)
}

// TickEnemy advances the enemy's attack animation and cooldown
func (s *CombatSystem) TickEnemy(enemy *entity.Enemy) {
	enemy.Attack.Tick(enemy.Config.Attack)
}

// ResolvePlayerAttack tests the player's attack hitbox against the enemy.
// A swing damages the enemy at most once even though its hitbox stays
// live for several frames. Returns true if the enemy was hit.
func (s *CombatSystem) ResolvePlayerAttack(player *entity.Player, enemy *entity.Enemy) bool {
	if !player.Attack.Attacking || !enemy.IsAlive() {
		return false
	}
	swing := player.Attack.Swing
	if swing == s.landedSwing {
		return false
	}
	if !enemy.IsHit(player.AttackRect()) {
		return false
	}
	s.landedSwing = swing

	s.logger.Info("enemy hit", "health", enemy.Health, "max", enemy.Config.MaxHealth)
	if s.OnHit != nil {
		s.OnHit(enemy)
	}
	if !enemy.IsAlive() {
		s.logger.Info("enemy defeated")
		if s.OnDefeat != nil {
			s.OnDefeat(enemy)
		}
	}
	return true
}

// EnemyAttackHits reports whether the enemy's live hitbox overlaps the player.
// The player has no health; the result is informational only.
func (s *CombatSystem) EnemyAttackHits(enemy *entity.Enemy, player *entity.Player) bool {
	if !enemy.IsAlive() {
		return false
	}
	return enemy.AttackRect().Overlaps(player.Rect())
}

// Reset forgets which swing has landed
func (s *CombatSystem) Reset() {
	s.landedSwing = 0
}
