// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"go-station-defense/internal/config"

	"gopkg.in/yaml.v3"
)

//go:embed data/defs.yaml
var defaultDefs []byte

// Library holds every tower definition and the wave rules.
type Library struct {
	Towers     map[string]*TowerDefinition
	TowerOrder []string // порядок из файла, для HUD и горячих клавиш
	Waves      WaveRules
}

type libraryFile struct {
	Towers []TowerDefinition `yaml:"towers"`
	Waves  WaveRules         `yaml:"waves"`
}

// Parse builds a Library from YAML data.
func Parse(data []byte) (*Library, error) {
	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	if len(file.Towers) == 0 {
		return nil, fmt.Errorf("definitions contain no towers")
	}

	lib := &Library{
		Towers: make(map[string]*TowerDefinition, len(file.Towers)),
		Waves:  file.Waves,
	}
	for i := range file.Towers {
		def := file.Towers[i]
		if err := def.validate(config.TowerMaxLevel); err != nil {
			return nil, err
		}
		if _, dup := lib.Towers[def.ID]; dup {
			return nil, fmt.Errorf("duplicate tower id %s", def.ID)
		}
		lib.Towers[def.ID] = &def
		lib.TowerOrder = append(lib.TowerOrder, def.ID)
	}
	if err := lib.Waves.validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Load reads definitions from path.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d tower definitions from %s", len(lib.Towers), path)
	return lib, nil
}

// Default returns the built-in definitions.
func Default() *Library {
	lib, err := Parse(defaultDefs)
	if err != nil {
		panic(fmt.Sprintf("defs: embedded definitions are invalid: %v", err))
	}
	return lib
}

// LoadOrDefault loads path when set and falls back to the built-in definitions.
func LoadOrDefault(path string) *Library {
	if path == "" {
		return Default()
	}
	lib, err := Load(path)
	if err != nil {
		log.Printf("Definitions: %v, using built-in defaults", err)
		return Default()
	}
	return lib
}

// TowerByKey finds the tower bound to a build-mode digit key.
func (l *Library) TowerByKey(key int) (*TowerDefinition, bool) {
	for _, id := range l.TowerOrder {
		if def := l.Towers[id]; def.Key == key {
			return def, true
		}
	}
	return nil, false
}
