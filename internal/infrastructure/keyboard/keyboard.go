// Package keyboard turns ebiten key state into per-tick input snapshots.
package keyboard

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/platformfighter/internal/application/system"
)

// Snapshot is everything the gameplay scene reads from the keyboard in one tick
type Snapshot struct {
	Input system.InputState

	// Edge-triggered session controls
	Pause   bool
	Restart bool
	Quit    bool
}

// Bindings maps logical keys to physical keys. Any bound key activates its action.
type Bindings struct {
	Left    []ebiten.Key
	Right   []ebiten.Key
	Jump    []ebiten.Key
	Attack  []ebiten.Key
	Pause   []ebiten.Key
	Restart []ebiten.Key
	Quit    []ebiten.Key
}

// DefaultBindings returns arrows to move, Space to jump, Z to attack
func DefaultBindings() Bindings {
	return Bindings{
		Left:    []ebiten.Key{ebiten.KeyArrowLeft},
		Right:   []ebiten.Key{ebiten.KeyArrowRight},
		Jump:    []ebiten.Key{ebiten.KeySpace},
		Attack:  []ebiten.Key{ebiten.KeyZ},
		Pause:   []ebiten.Key{ebiten.KeyEscape},
		Restart: []ebiten.Key{ebiten.KeyR},
		Quit:    []ebiten.Key{ebiten.KeyQ},
	}
}

// Source polls ebiten for key state
type Source struct {
	bindings Bindings
}

// NewSource creates a keyboard source with the given bindings
func NewSource(b Bindings) *Source {
	return &Source{bindings: b}
}

// Poll reads the current key state. Must be called from ebiten's Update.
func (s *Source) Poll() Snapshot {
	b := s.bindings
	return Snapshot{
		Input: system.InputState{
			Left:   anyPressed(b.Left),
			Right:  anyPressed(b.Right),
			Jump:   anyPressed(b.Jump),
			Attack: anyPressed(b.Attack),
		},
		Pause:   anyJustPressed(b.Pause),
		Restart: anyJustPressed(b.Restart),
		Quit:    anyJustPressed(b.Quit) || ebiten.IsWindowBeingClosed(),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
