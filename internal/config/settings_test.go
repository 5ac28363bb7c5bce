package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsEmptyPath(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "highscore.json", s.HighscorePath)
}

func TestLoadSettingsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := []byte("storage: gdata\nappName: td_test\nsoundEnabled: false\nseed: 42\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, StorageGdata, s.Storage)
	assert.Equal(t, "td_test", s.AppName)
	assert.False(t, s.SoundEnabled)
	assert.Equal(t, int64(42), s.Seed)
	// не заданные поля остаются по умолчанию
	assert.Equal(t, "highscore.json", s.HighscorePath)
	assert.True(t, s.StartInMenu)
}

func TestLoadSettingsRejectsUnknownStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: s3\n"), 0o644))

	s, err := LoadSettings(path)
	assert.Error(t, err)
	assert.Equal(t, StorageFile, s.Storage)
}

func TestLoadSettingsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [unclosed\n"), 0o644))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}
