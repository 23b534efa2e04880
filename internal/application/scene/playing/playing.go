// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/platformfighter/internal/application/match"
	"github.com/younwookim/platformfighter/internal/application/replay"
	"github.com/younwookim/platformfighter/internal/application/scene"
	"github.com/younwookim/platformfighter/internal/application/state"
	"github.com/younwookim/platformfighter/internal/infrastructure/keyboard"
)

// InputSource produces one keyboard snapshot per tick
type InputSource interface {
	Poll() keyboard.Snapshot
}

// Options configures the Playing scene
type Options struct {
	ScreenW int
	ScreenH int

	// Recorder, when set, receives every simulated tick's input
	Recorder   *replay.Recorder
	RecordPath string

	Logger *log.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	match   *match.Match
	source  InputSource
	state   state.GameState
	screenW int
	screenH int
	logger  *log.Logger

	// Input recording
	recorder   *replay.Recorder
	recordPath string
	unsaved    bool
}

// New creates a new Playing scene driving m
func New(m *match.Match, source InputSource, opts Options) *Playing {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &Playing{
		match:      m,
		source:     source,
		state:      state.StatePlaying,
		screenW:    opts.ScreenW,
		screenH:    opts.ScreenH,
		logger:     logger,
		recorder:   opts.Recorder,
		recordPath: opts.RecordPath,
	}
	if p.recorder != nil && p.recordPath == "" {
		p.recordPath = replay.GenerateFilename()
	}
	return p
}

// State returns the current session state
func (p *Playing) State() state.GameState {
	return p.state
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	c := p.source.Poll()
	if c.Quit {
		return nil, ebiten.Termination
	}

	switch p.state {
	case state.StatePlaying:
		if c.Pause {
			p.state = p.state.TogglePause()
			return nil, nil
		}
		p.step(c)
	case state.StatePaused:
		if c.Pause {
			p.state = p.state.TogglePause()
		}
	case state.StateCleared:
		if c.Restart {
			p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) step(c keyboard.Snapshot) {
	if p.recorder != nil {
		p.recorder.RecordFrame(c.Input)
		p.unsaved = true
	}

	res := p.match.Step(c.Input)
	if res.EnemyDefeated {
		p.state = state.StateCleared
		p.logger.Info("stage cleared", "frame", res.Frame)
		// Auto-save recording on clear
		p.saveRecording()
	}
}

// restart resets the match to its spawn points and starts a new recording
func (p *Playing) restart() {
	p.saveRecording()
	p.match.Reset()
	if p.recorder != nil {
		p.recorder.Restart()
	}
	p.state = state.StatePlaying
	p.logger.Info("match restarted")
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.unsaved {
		return
	}

	if err := p.recorder.Save(p.recordPath); err != nil {
		p.logger.Error("failed to save recording", "path", p.recordPath, "err", err)
		return
	}
	p.unsaved = false
	p.logger.Info("recording saved", "path", p.recordPath, "frames", p.recorder.FrameCount())
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {}

// OnExit saves any pending recording (implements scene.Scene)
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Draw renders the match (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(match.ColorBackground)

	for _, cmd := range p.match.DrawList() {
		r := cmd.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), cmd.Color, false)
	}

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateCleared:
		text := fmt.Sprintf("CLEARED in %d frames\n\nPress R to restart, Q to quit", p.match.Frame())
		p.drawOverlay(screen, color.RGBA{0, 60, 0, 160}, text)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	e := p.match.Enemy()
	status := fmt.Sprintf("Enemy HP: %d/%d  AI: %s", e.Health, e.Config.MaxHealth, e.State)
	if !e.IsAlive() {
		status = "Enemy defeated"
	}
	ebitenutil.DebugPrintAt(screen, status, 10, 10)

	controls := "Arrows: Move | Space: Jump | Z: Attack | ESC: Pause | Q: Quit"
	ebitenutil.DebugPrintAt(screen, controls, 10, p.screenH-20)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, clr color.RGBA, text string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), clr, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-90, p.screenH/2-20)
}
