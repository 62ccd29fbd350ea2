package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pixel-runner/internal/config"
	"github.com/vovakirdan/pixel-runner/internal/games/runner"
)

func newTestSettings(t *testing.T, args ...string) (settings, error) {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerFlags(flags)
	require.NoError(t, flags.Parse(args))

	vp := viper.New()
	require.NoError(t, bindSettings(vp, flags))
	return loadSettings(vp)
}

func TestSettingsDefaults(t *testing.T) {
	s, err := newTestSettings(t)
	require.NoError(t, err)

	assert.Equal(t, 60, s.FPS)
	assert.Zero(t, s.Seed)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, config.DifficultyPreset(""), s.Difficulty)
}

func TestSettingsEnvironment(t *testing.T) {
	t.Setenv("PIXELRUN_FPS", "30")
	t.Setenv("PIXELRUN_LOG_LEVEL", "debug")
	t.Setenv("PIXELRUN_DIFFICULTY", "hard")

	s, err := newTestSettings(t, "--seed", "7")
	require.NoError(t, err)

	assert.Equal(t, 30, s.FPS)
	assert.Equal(t, int64(7), s.Seed)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, config.DifficultyHard, s.Difficulty)
}

func TestSettingsFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("PIXELRUN_FPS", "30")

	s, err := newTestSettings(t, "--fps", "120")
	require.NoError(t, err)
	assert.Equal(t, 120, s.FPS)
}

func TestSettingsRejectBadValues(t *testing.T) {
	_, err := newTestSettings(t, "--difficulty", "nightmare")
	assert.Error(t, err)

	_, err = newTestSettings(t, "--fps", "0")
	assert.Error(t, err)
}

func TestNewLoggerDiscardsWithoutFile(t *testing.T) {
	l, closer, err := newLogger("", "debug")
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.Equal(t, log.DebugLevel, l.GetLevel())
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixelrun.log")

	l, closer, err := newLogger(path, "info")
	require.NoError(t, err)
	l.Debug("hidden")
	l.Info("game over", "score", 42)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "game over")
	assert.Contains(t, string(data), "score=42")
	assert.NotContains(t, string(data), "hidden")
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, _, err := newLogger("", "loud")
	assert.Error(t, err)
}

func TestLoadTuningAppliesPreset(t *testing.T) {
	orig := runner.CurrentConfig()
	t.Cleanup(func() { require.NoError(t, runner.Configure(orig)) })
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadTuning(settings{Difficulty: config.DifficultyEasy})
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Progression.BaseSpeed)
	assert.Equal(t, cfg, runner.CurrentConfig())
}

func TestLoadTuningRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: -1\n"), 0o600))

	_, err := loadTuning(settings{ConfigPath: path})
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigValidateCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("progression:\n  max_speed: 12\n"), 0o600))
	out, err := runCLI(t, "config", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "good.yaml: ok")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("progression:\n  max_speed: 1\n"), 0o600))
	_, err = runCLI(t, "config", "validate", bad)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestConfigDumpCommand(t *testing.T) {
	orig := runner.CurrentConfig()
	t.Cleanup(func() { require.NoError(t, runner.Configure(orig)) })
	t.Setenv("HOME", t.TempDir())

	out, err := runCLI(t, "config", "dump")
	require.NoError(t, err)

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultRunnerConfig(), cfg)
}

func TestCharactersCommand(t *testing.T) {
	orig := runner.CurrentConfig()
	t.Cleanup(func() { require.NoError(t, runner.Configure(orig)) })
	t.Setenv("HOME", t.TempDir())

	out, err := runCLI(t, "characters")
	require.NoError(t, err)
	assert.Contains(t, out, "ZIGGY")
	assert.Contains(t, out, "LIGHTNING DASH")
	assert.Equal(t, 1, strings.Count(out, "locked"))
}

func TestListCommand(t *testing.T) {
	out, err := runCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "runner")
	assert.Contains(t, out, "Pixel Runner")
}
