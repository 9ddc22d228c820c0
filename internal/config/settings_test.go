package config

import (
	"go-space-shooter/internal/defs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Len(t, s.Backgrounds.MenuFrames, 12)
	assert.Equal(t, 4.0, s.Spawner.Interval)
	assert.Equal(t, 5, s.Spawner.Threshold)
}

func TestLoadWithoutPathUsesDefaults(t *testing.T) {
	t.Setenv("GAME_CONFIG", "")
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadFromEnvOverridesFields(t *testing.T) {
	path := writeFile(t, `
player:
  speed: 150
spawner:
  interval: 2.5
weapons:
  - id: fan
    pattern: spread
    missile: bolt
    count: 3
    step_deg: 10
    cooldown: 0.4
`)
	t.Setenv("GAME_CONFIG", path)

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 150.0, s.Player.Speed)
	assert.Equal(t, 3, s.Player.Lives, "незаданное поле остаётся по умолчанию")
	assert.Equal(t, 2.5, s.Spawner.Interval)
	require.Len(t, s.Weapons, 1)
	assert.Equal(t, defs.PatternSpread, s.Weapons[0].Pattern)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "player: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "player:\n  lives: 0\n"))
	assert.ErrorIs(t, err, ErrSettings)

	_, err = Load(writeFile(t, "weapons:\n  - id: w\n    pattern: straight\n    missile: nope\n"))
	assert.ErrorIs(t, err, defs.ErrUnknownID)
}
