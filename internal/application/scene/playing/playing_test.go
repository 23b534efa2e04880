package playing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformfighter/internal/application/match"
	"github.com/younwookim/platformfighter/internal/application/replay"
	"github.com/younwookim/platformfighter/internal/application/state"
	"github.com/younwookim/platformfighter/internal/application/system"
	"github.com/younwookim/platformfighter/internal/infrastructure/config"
	"github.com/younwookim/platformfighter/internal/infrastructure/keyboard"
)

// scriptedSource replays a fixed list of snapshots, then idles
type scriptedSource struct {
	snaps []keyboard.Snapshot
	polls int
}

func (s *scriptedSource) Poll() keyboard.Snapshot {
	s.polls++
	if len(s.snaps) == 0 {
		return keyboard.Snapshot{}
	}
	snap := s.snaps[0]
	s.snaps = s.snaps[1:]
	return snap
}

func (s *scriptedSource) push(snaps ...keyboard.Snapshot) {
	s.snaps = append(s.snaps, snaps...)
}

func createTestConfig() *config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.World.Platforms = []config.RectConfig{{X: 0, Y: 550, W: 800, H: 50}}
	cfg.World.PlayerSpawn = config.PositionConfig{X: 100, Y: 500}
	cfg.World.EnemySpawn = config.EnemySpawnConfig{X: 160, Y: 490, Bounds: config.BoundsConfig{Left: 0, Right: 800}}
	cfg.Enemy.MaxHealth = 1
	return &cfg
}

func createTestScene(t *testing.T, rec *replay.Recorder, path string) (*Playing, *scriptedSource) {
	t.Helper()
	m, err := match.NewFromConfig(createTestConfig(), nil)
	require.NoError(t, err)
	src := &scriptedSource{}
	p := New(m, src, Options{ScreenW: 800, ScreenH: 600, Recorder: rec, RecordPath: path})
	return p, src
}

var attack = keyboard.Snapshot{Input: system.InputState{Attack: true}}

func TestPlaying_StepsMatch(t *testing.T) {
	p, src := createTestScene(t, nil, "")
	src.push(keyboard.Snapshot{}, keyboard.Snapshot{})

	for i := 0; i < 2; i++ {
		next, err := p.Update()
		require.NoError(t, err)
		assert.Nil(t, next)
	}

	assert.Equal(t, 2, p.match.Frame())
	assert.Equal(t, state.StatePlaying, p.State())
}

func TestPlaying_PauseStopsSimulation(t *testing.T) {
	p, src := createTestScene(t, nil, "")
	src.push(
		keyboard.Snapshot{Pause: true},
		keyboard.Snapshot{},
		keyboard.Snapshot{},
	)

	for i := 0; i < 3; i++ {
		_, err := p.Update()
		require.NoError(t, err)
	}
	assert.Equal(t, state.StatePaused, p.State())
	assert.Equal(t, 0, p.match.Frame())

	src.push(keyboard.Snapshot{Pause: true}, keyboard.Snapshot{})
	_, _ = p.Update()
	_, _ = p.Update()

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 1, p.match.Frame())
}

func TestPlaying_ClearAndRestart(t *testing.T) {
	p, src := createTestScene(t, nil, "")
	src.push(attack)

	_, err := p.Update()
	require.NoError(t, err)
	require.Equal(t, state.StateCleared, p.State())

	// Simulation is frozen while cleared
	src.push(attack, attack)
	_, _ = p.Update()
	_, _ = p.Update()
	assert.Equal(t, 1, p.match.Frame())

	src.push(keyboard.Snapshot{Restart: true})
	_, _ = p.Update()

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 0, p.match.Frame())
	assert.True(t, p.match.Enemy().IsAlive())
}

func TestPlaying_RestartIgnoredWhilePlaying(t *testing.T) {
	p, src := createTestScene(t, nil, "")
	src.push(keyboard.Snapshot{}, keyboard.Snapshot{Restart: true})

	_, _ = p.Update()
	_, _ = p.Update()

	assert.Equal(t, 2, p.match.Frame())
}

func TestPlaying_Quit(t *testing.T) {
	p, src := createTestScene(t, nil, "")
	src.push(keyboard.Snapshot{Quit: true})

	_, err := p.Update()
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, 0, p.match.Frame())
}

func TestPlaying_RecordsAndSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.json")
	rec := replay.NewRecorder(createTestConfig(), "test")
	p, src := createTestScene(t, rec, path)

	src.push(keyboard.Snapshot{}, keyboard.Snapshot{Pause: true}, keyboard.Snapshot{Pause: true}, attack)
	for i := 0; i < 4; i++ {
		_, _ = p.Update()
	}

	// Paused ticks are not recorded; clearing saves automatically
	require.Equal(t, state.StateCleared, p.State())
	assert.Equal(t, 2, rec.FrameCount())
	_, err := os.Stat(path)
	require.NoError(t, err)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	res, err := replay.Run(data, nil)
	require.NoError(t, err)
	assert.False(t, res.EnemyAlive)
	assert.Equal(t, 2, res.DefeatedAt)
}

func TestPlaying_OnExitSavesPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exit.json")
	rec := replay.NewRecorder(createTestConfig(), "test")
	p, src := createTestScene(t, rec, path)
	src.push(keyboard.Snapshot{}, keyboard.Snapshot{})

	_, _ = p.Update()
	_, _ = p.Update()
	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 2)
}

func TestPlaying_OnExitWithoutRecorder(t *testing.T) {
	p, _ := createTestScene(t, nil, "")

	assert.NotPanics(t, p.OnExit)
}
