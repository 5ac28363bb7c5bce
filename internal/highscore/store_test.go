package highscore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFileIsZero(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "highscore.json"))
	score, err := s.Load()
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestFileStoreRoundTripFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscore.json")
	s := NewFileStore(path)
	require.NoError(t, s.Save(420))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"highscore": 420}`, string(data))

	score, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 420, score)
}

func TestLoadTruncatesFractionalScore(t *testing.T) {
	for body, want := range map[string]int{
		`{"highscore": 12.0}`: 12,
		`{"highscore": 12.9}`: 12,
		`{"highscore": 3e2}`:  300,
		`{}`:                  0,
	} {
		path := filepath.Join(t.TempDir(), "highscore.json")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		score, err := NewFileStore(path).Load()
		require.NoError(t, err, body)
		assert.Equal(t, want, score, body)
	}
}

func TestCorruptFileLoadsAsZero(t *testing.T) {
	for name, body := range map[string]string{
		"garbage":  "not json",
		"wrong":    `{"highscore": "lots"}`,
		"negative": `{"highscore": -3}`,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

			s := NewFileStore(path)
			_, err := s.Load()
			assert.Error(t, err)
			assert.Zero(t, LoadOrZero(s))
		})
	}
}

func TestSaveIfHigher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.json")
	s := NewFileStore(path)
	require.NoError(t, s.Save(100))

	assert.False(t, SaveIfHigher(s, 100, 100))
	assert.False(t, SaveIfHigher(s, 100, 40))
	assert.Equal(t, 100, LoadOrZero(s))

	assert.True(t, SaveIfHigher(s, 100, 150))
	assert.Equal(t, 150, LoadOrZero(s))
}

type failingStore struct{}

func (failingStore) Load() (int, error) { return 0, errors.New("disk on fire") }
func (failingStore) Save(int) error     { return errors.New("disk on fire") }

func TestFailuresAreSwallowed(t *testing.T) {
	assert.Zero(t, LoadOrZero(failingStore{}))
	assert.True(t, SaveIfHigher(failingStore{}, 0, 10))
	assert.Zero(t, LoadOrZero(nil))
}

func TestGdataStore(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))

	s, err := OpenGdataStore("station_defense_test")
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}

	score, err := s.Load()
	require.NoError(t, err)
	assert.Zero(t, score)

	require.NoError(t, s.Save(77))
	score, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, 77, score)
}
