package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) (configHome, dataHome string) {
	t.Helper()
	configHome = t.TempDir()
	dataHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	return configHome, dataHome
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	configHome, _ := isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(configHome, "promptdeck", "config.toml")
	assert.Equal(t, path, GetConfigFilePath())
	assert.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `default_cards = "family"`)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	isolate(t)

	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("default_cards = \"office\"\nstrip_carriage_returns = true\n"), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "office", cfg.DefaultCards)
	assert.True(t, cfg.StripCarriageReturns)
	assert.Equal(t, DefaultCountdownSeconds, cfg.CountdownSeconds)
	assert.True(t, cfg.Color)
	assert.Equal(t, DefaultMaxArenaBytes, cfg.MaxArenaBytes)
}

func TestLoadConfig_Invalid(t *testing.T) {
	isolate(t)

	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))

	require.NoError(t, os.WriteFile(path, []byte("default_cards = [\n"), 0644))
	_, err := LoadConfig()
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("countdown_seconds = -1\n"), 0644))
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "countdown_seconds")
}

func TestSetDefaultCards(t *testing.T) {
	isolate(t)

	require.NoError(t, SetDefaultCards("office"))

	name, err := GetDefaultCards()
	require.NoError(t, err)
	assert.Equal(t, "office", name)
}

func TestGetCardsPath(t *testing.T) {
	_, dataHome := isolate(t)

	library := filepath.Join(dataHome, "promptdeck", "cards")
	assert.Equal(t, library, GetCardsLibraryPath())
	require.NoError(t, os.MkdirAll(library, 0755))

	named := filepath.Join(library, "family.cards")
	require.NoError(t, os.WriteFile(named, []byte("A ~1\n"), 0644))

	path, err := GetCardsPath("family")
	require.NoError(t, err)
	assert.Equal(t, named, path)

	local := filepath.Join(t.TempDir(), "local.txt")
	require.NoError(t, os.WriteFile(local, []byte("A ~1\n"), 0644))

	path, err = GetCardsPath(local)
	require.NoError(t, err)
	assert.Equal(t, local, path)

	_, err = GetCardsPath("nope")
	assert.ErrorContains(t, err, "cards file not found")
}
