package highscore

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

const (
	gdataObject   = "profile"
	gdataProperty = "highscore"
)

// GdataStore keeps the same JSON payload in the per-user data directory managed by gdata.
type GdataStore struct {
	manager *gdata.Manager
}

// OpenGdataStore opens the gdata storage for appName.
func OpenGdataStore(appName string) (*GdataStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage: %w", err)
	}
	return &GdataStore{manager: manager}, nil
}

func (s *GdataStore) Load() (int, error) {
	if !s.manager.ObjectPropExists(gdataObject, gdataProperty) {
		return 0, nil
	}
	data, err := s.manager.LoadObjectProp(gdataObject, gdataProperty)
	if err != nil {
		return 0, fmt.Errorf("failed to load highscore from gdata: %w", err)
	}
	return decode(data)
}

func (s *GdataStore) Save(score int) error {
	data, err := encode(score)
	if err != nil {
		return err
	}
	if err := s.manager.SaveObjectProp(gdataObject, gdataProperty, data); err != nil {
		return fmt.Errorf("failed to save highscore to gdata: %w", err)
	}
	return nil
}
