package match

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/younwookim/platformfighter/internal/domain/geom"
)

// Palette
var (
	ColorBackground  = color.RGBA{0, 0, 0, 255}
	ColorPlatform    = color.RGBA{100, 100, 100, 255}
	ColorPlayer      = colornames.Lime
	ColorEnemy       = colornames.Red
	ColorAttack      = colornames.Yellow
	ColorEnemyAttack = colornames.Orange
	ColorCooldown    = colornames.Red
	ColorHealth      = colornames.Deepskyblue
)

const (
	cooldownBarOffset = 10
	cooldownBarHeight = 3
	healthBarOffset   = 8
	healthBarHeight   = 4
)

// DrawCommand is a filled rectangle request for the presentation layer
type DrawCommand struct {
	Rect  geom.Rect
	Color color.RGBA
}

// DrawList returns the frame's draw requests, back to front.
// A dead enemy and its bars are omitted.
func (m *Match) DrawList() []DrawCommand {
	cmds := make([]DrawCommand, 0, len(m.stage.Platforms)+6)

	for _, p := range m.stage.Platforms {
		cmds = append(cmds, DrawCommand{Rect: p.Rect(), Color: ColorPlatform})
	}

	if e := m.enemy; e.IsAlive() {
		cmds = append(cmds, DrawCommand{Rect: e.Rect(), Color: ColorEnemy})
		if r := e.AttackRect(); !r.Empty() {
			cmds = append(cmds, DrawCommand{Rect: r, Color: ColorEnemyAttack})
		}
		cmds = append(cmds, DrawCommand{
			Rect:  geom.NewRect(e.X, e.Y-healthBarOffset, e.W*e.HealthRatio(), healthBarHeight),
			Color: ColorHealth,
		})
	}

	p := m.player
	cmds = append(cmds, DrawCommand{Rect: p.Rect(), Color: ColorPlayer})
	if r := p.AttackRect(); !r.Empty() {
		cmds = append(cmds, DrawCommand{Rect: r, Color: ColorAttack})
	}
	if p.Attack.Cooldown > 0 {
		cmds = append(cmds, DrawCommand{
			Rect:  geom.NewRect(p.X, p.Y-cooldownBarOffset, p.W*p.CooldownRatio(), cooldownBarHeight),
			Color: ColorCooldown,
		})
	}

	return cmds
}
