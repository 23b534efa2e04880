package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformfighter/internal/application/replay"
	"github.com/younwookim/platformfighter/internal/application/system"
	"github.com/younwookim/platformfighter/internal/infrastructure/config"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := newLogger(&buf, "warn")
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = newLogger(&buf, "loud")
	assert.Error(t, err)
}

func TestReplayCommand(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.World.Platforms = []config.RectConfig{{X: 0, Y: 550, W: 800, H: 50}}
	cfg.World.PlayerSpawn = config.PositionConfig{X: 100, Y: 500}
	cfg.World.EnemySpawn = config.EnemySpawnConfig{X: 160, Y: 490, Bounds: config.BoundsConfig{Left: 0, Right: 800}}

	rec := replay.NewRecorder(&cfg, "test")
	for i := 0; i < 90; i++ {
		rec.RecordFrame(system.InputState{Attack: true})
	}
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"replay", path, "--log-level", "error"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "frames:       90\n")
	assert.Contains(t, out.String(), "hits:         5\n")
	assert.Contains(t, out.String(), "enemy alive:  false\n")
	assert.Contains(t, out.String(), "defeated at:  81\n")
}

func TestReplayCommand_MissingFile(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"replay", filepath.Join(t.TempDir(), "missing.json"), "--log-level", "error"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, errOut.String(), "failed to load replay")
}
