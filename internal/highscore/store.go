// internal/highscore/store.go
package highscore

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
)

// Store persists a single best score.
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// record — формат файла: {"highscore": N}
type record struct {
	Highscore int `json:"highscore"`
}

// decode принимает любое JSON-число и отбрасывает дробную часть: 12.0 -> 12.
func decode(data []byte) (int, error) {
	var r struct {
		Highscore json.Number `json:"highscore"`
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("failed to unmarshal highscore: %w", err)
	}
	if r.Highscore == "" {
		return 0, nil
	}
	f, err := r.Highscore.Float64()
	if err != nil {
		return 0, fmt.Errorf("invalid highscore %q: %w", r.Highscore, err)
	}
	if f < 0 || f > math.MaxInt32 {
		return 0, fmt.Errorf("highscore %v out of range", f)
	}
	return int(f), nil
}

func encode(score int) ([]byte, error) {
	data, err := json.MarshalIndent(record{Highscore: score}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal highscore: %w", err)
	}
	return data, nil
}

// LoadOrZero reads the stored score. Any failure is logged and yields 0.
func LoadOrZero(s Store) int {
	if s == nil {
		return 0
	}
	score, err := s.Load()
	if err != nil {
		log.Printf("[Highscore] load failed, starting from 0: %v", err)
		return 0
	}
	return score
}

// SaveIfHigher writes score when it beats stored and reports whether it did.
// A failed write is logged and otherwise ignored.
func SaveIfHigher(s Store, stored, score int) bool {
	if score <= stored {
		return false
	}
	if s == nil {
		return true
	}
	if err := s.Save(score); err != nil {
		log.Printf("[Highscore] save failed: %v", err)
	}
	return true
}
