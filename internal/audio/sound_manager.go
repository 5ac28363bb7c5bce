// internal/audio/sound_manager.go
package audio

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"go-station-defense/internal/event"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const (
	sampleRate = 44100
	volume     = 0.35
)

// звуки: имя файла в <assetDir>/sounds и параметры запасного сигнала
var sounds = map[string]struct {
	freq, dur float64
}{
	"laser":     {950, 0.05},
	"cannon":    {220, 0.10},
	"slow":      {520, 0.07},
	"kill":      {660, 0.06},
	"leak":      {140, 0.20},
	"destroyed": {90, 0.35},
	"wave":      {440, 0.15},
	"gameover":  {110, 0.60},
}

// SoundManager проигрывает звуки по игровым событиям.
type SoundManager struct {
	ctx     *audio.Context
	players map[string]*audio.Player
	enabled bool
}

// NewSoundManager creates the audio context and prepares every sound.
// ebiten allows only one audio context per process.
func NewSoundManager(assetDir string, enabled bool) *SoundManager {
	m := &SoundManager{
		players: make(map[string]*audio.Player),
		enabled: enabled,
	}
	if !enabled {
		return m
	}
	m.ctx = audio.NewContext(sampleRate)
	for name, beep := range sounds {
		p, err := loadWav(m.ctx, filepath.Join(assetDir, "sounds", name+".wav"))
		if err != nil {
			p, err = newBeep(m.ctx, beep.freq, beep.dur)
		}
		if err != nil {
			log.Printf("[Audio] %s: %v", name, err)
			continue
		}
		m.players[name] = p
	}
	return m
}

// Subscribe registers the manager for every event it reacts to.
func (m *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(m,
		event.ShotFired, event.EnemyKilled, event.EnemyReachedBase,
		event.TowerDestroyed, event.WaveStarted, event.GameOver)
}

// OnEvent реализует интерфейс event.Listener.
func (m *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShotFired:
		if data, ok := e.Data.(event.ShotFiredData); ok {
			m.Play(data.DefID)
		}
	case event.EnemyKilled:
		m.Play("kill")
	case event.EnemyReachedBase:
		m.Play("leak")
	case event.TowerDestroyed:
		m.Play("destroyed")
	case event.WaveStarted:
		m.Play("wave")
	case event.GameOver:
		m.Play("gameover")
	}
}

// Play restarts the named sound. Unknown names are ignored.
func (m *SoundManager) Play(name string) {
	if !m.enabled {
		return
	}
	p, ok := m.players[name]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("[Audio] %s: rewind failed: %v", name, err)
		return
	}
	p.Play()
}

func loadWav(ctx *audio.Context, path string) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return audio.NewPlayer(ctx, s)
}

// newBeep синтезирует синусоиду: 16 бит, стерео, с затуханием.
func newBeep(ctx *audio.Context, freq, durSec float64) (*audio.Player, error) {
	n := int(sampleRate * durSec)
	pcm := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * volume * env
		s := int16(v * math.MaxInt16)
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return audio.NewPlayer(ctx, bytes.NewReader(pcm))
}
