package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	var cfg TetrisConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))

	assert.Equal(t, DefaultTetrisConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTetrisEmbeddedFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, source, err := LoadTetris("")
	require.NoError(t, err)

	assert.Equal(t, SourceEmbedded, source)
	assert.Equal(t, 500*time.Millisecond, cfg.Gameplay.FallPeriod())
	assert.Equal(t, 80*time.Millisecond, cfg.Gameplay.MinFallPeriod())
}

func TestLoadTetrisSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	writeFile(t, filepath.Join(work, "configs", "tetris.yaml"), "gameplay:\n  fall_period_ms: 300\n")

	cfg, source, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("configs", "tetris.yaml"), source)
	assert.Equal(t, 300, cfg.Gameplay.FallPeriodMS)
	assert.Equal(t, 80, cfg.Gameplay.MinFallPeriodMS, "unset fields keep defaults")

	userPath := filepath.Join(home, ".tetris", "configs", "tetris.yaml")
	writeFile(t, userPath, "gameplay:\n  fall_period_ms: 250\n")

	cfg, source, err = LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, userPath, source)
	assert.Equal(t, 250, cfg.Gameplay.FallPeriodMS)
}

func TestLoadTetrisSkipsInvalidCandidates(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	writeFile(t, filepath.Join(home, ".tetris", "configs", "tetris.yaml"), "gameplay: [not, a, map]\n")

	_, source, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, source)
}

func TestLoadTetrisCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "difficulty:\n  enabled: true\n  progression:\n    type: time\n    max_at: 600\n")

	cfg, source, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Equal(t, ProgressionTime, cfg.Difficulty.Progression.Type)
	assert.Equal(t, 600, cfg.Difficulty.Progression.MaxAt)
}

func TestLoadTetrisCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := LoadTetris(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "gameplay:\n  fall_period_ms: 0\n")
	_, _, err = LoadTetris(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fall_period_ms")
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Gameplay.FallPeriodMS = 50
	cfg.Gameplay.MinFallPeriodMS = 100
	cfg.Difficulty.InitialLevel = 1.5
	cfg.Difficulty.Progression.Type = "lines"
	cfg.Difficulty.Scaling.SpeedMultiplier = -1

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"min_fall_period_ms", "initial_level", "progression.type", "speed_multiplier"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets() {
		got, err := ParsePreset(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyPreset(""), got)

	_, err = ParsePreset("insane")
	var perr *PresetError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "insane", perr.Name)
}

func TestApplyTetrisPreset(t *testing.T) {
	testCases := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
		fallPeriodMS int
	}{
		{"", false, 0.0, 500},
		{DifficultyEasy, true, 0.0, 700},
		{DifficultyNormal, true, 0.3, 500},
		{DifficultyHard, true, 0.7, 350},
		{DifficultyFixed, false, 0.0, 500},
	}

	for _, tc := range testCases {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tc.preset)

			assert.Equal(t, tc.enabled, cfg.Difficulty.Enabled)
			assert.InDelta(t, tc.initialLevel, cfg.Difficulty.InitialLevel, 1e-9)
			assert.Equal(t, tc.fallPeriodMS, cfg.Gameplay.FallPeriodMS)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultTetrisConfig()
	ApplyTetrisPreset(&cfg, DifficultyHard)

	data, err := Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dump.yaml")
	writeFile(t, path, string(data))

	loaded, _, err := LoadTetris(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
