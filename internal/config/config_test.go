package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func TestLoadDefaults(t *testing.T) {
	config, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, mines.GameParams{Width: 10, Height: 10, MineCount: 15}, config.Game)
	assert.True(t, config.Production())
	assert.Nil(t, config.Seed)
	assert.NoError(t, config.Validate())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{
		"mode": "development",
		"game": {"width": 16, "height": 16, "mine_count": 40},
		"seed": 7,
		"log": {"file": "/tmp/file.log", "max_size_mb": 1}
	}`), 0o600)
	require.NoError(t, err)

	config, err := Load(path)
	require.NoError(t, err)
	assert.True(t, config.Development())
	assert.Equal(t, Presets[PresetIntermediate], config.Game)
	require.NotNil(t, config.Seed)
	assert.Equal(t, uint64(7), *config.Seed)
	assert.Equal(t, "/tmp/file.log", config.Log.File)
	assert.Equal(t, 1, config.Log.MaxSizeMB)
	// untouched keys keep their defaults
	assert.Equal(t, 3, config.Log.MaxBackups)

	t.Setenv("MINES_PRESET", PresetExpert)
	t.Setenv("MINES_SEED", "42")
	t.Setenv("MINES_LOG_FILE", "/tmp/env.log")
	config, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, Presets[PresetExpert], config.Game)
	assert.Equal(t, uint64(42), *config.Seed)
	assert.Equal(t, "/tmp/env.log", config.Log.File)

	t.Setenv("MINES_GAME", "width=5&height=4&mine_count=3")
	config, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 5, Height: 4, MineCount: 3}, config.Game)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	t.Setenv("MINES_SEED", "minus one")
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoadUnknownPreset(t *testing.T) {
	t.Setenv("MINES_PRESET", "impossible")
	_, err := Load("")
	assert.Error(t, err)
}

func TestParseGameParams(t *testing.T) {
	t.Parallel()

	params, err := ParseGameParams("width=30&height=16&mine_count=99&unique=1")
	require.NoError(t, err)
	assert.Equal(t, Presets[PresetExpert], params)

	for _, query := range []string{
		"width=30&height=16",
		"width=a&height=16&mine_count=1",
		"%zz",
	} {
		_, err := ParseGameParams(query)
		assert.Error(t, err, query)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	config := Default()
	config.Game = mines.GameParams{Width: 3, Height: 3, MineCount: 9}
	assert.ErrorIs(t, config.Validate(), mines.ErrInvalidConfiguration)

	config = Default()
	config.Mode = "staging"
	assert.Error(t, config.Validate())
}

func TestRandIsReproducibleWithSeed(t *testing.T) {
	t.Parallel()

	seed := uint64(1)
	config := Default()
	config.Seed = &seed

	a, err := config.Game.NewBoard(config.Rand())
	require.NoError(t, err)
	b, err := config.Game.NewBoard(config.Rand())
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}
