// internal/component/status_effect.go
package component

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	Timer      float64 // How much time is left for the effect.
	SlowFactor float64 // Multiplier for speed (e.g., 0.5 for 50% slow).
}

// Apply merges a new slow into the effect: the strongest factor wins and the
// longest remaining duration is kept.
func (s *SlowEffect) Apply(factor, duration float64) {
	if factor < s.SlowFactor {
		s.SlowFactor = factor
	}
	if duration > s.Timer {
		s.Timer = duration
	}
}
