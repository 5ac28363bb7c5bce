package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage backends for the high score.
const (
	StorageFile  = "file"
	StorageGdata = "gdata"
)

// Settings — настройки запуска, читаются из YAML-файла.
type Settings struct {
	HighscorePath string `yaml:"highscorePath"` // путь к highscore.json (backend "file")
	Storage       string `yaml:"storage"`       // "file" или "gdata"
	AppName       string `yaml:"appName"`       // имя приложения для gdata
	AssetDir      string `yaml:"assetDir"`      // каталог со спрайтами, может отсутствовать
	DefsPath      string `yaml:"defsPath"`      // файл с определениями башен/врагов, пусто = встроенные
	SoundEnabled  bool   `yaml:"soundEnabled"`
	Seed          int64  `yaml:"seed"` // 0 = текущее время
	StartInMenu   bool   `yaml:"startInMenu"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() *Settings {
	return &Settings{
		HighscorePath: "highscore.json",
		Storage:       StorageFile,
		AppName:       "station_defense",
		AssetDir:      "assets",
		SoundEnabled:  true,
		StartInMenu:   true,
	}
}

// LoadSettings reads YAML settings from path on top of the defaults.
// A missing file is not an error.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Settings] %s not found, using defaults", path)
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

// Validate checks enum-like fields.
func (s *Settings) Validate() error {
	switch s.Storage {
	case StorageFile:
		if s.HighscorePath == "" {
			return fmt.Errorf("settings: highscorePath is required for storage %q", s.Storage)
		}
	case StorageGdata:
		if s.AppName == "" {
			return fmt.Errorf("settings: appName is required for storage %q", s.Storage)
		}
	default:
		return fmt.Errorf("settings: unknown storage %q", s.Storage)
	}
	return nil
}
