// internal/ui/fonts.go
package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"go-station-defense/internal/config"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts — все начертания интерфейса.
type Fonts struct {
	HUD   font.Face
	Small font.Face
	Big   font.Face
}

// LoadFonts parses the TTF at path, or the built-in Go Regular when path is empty or missing.
func LoadFonts(path string) (*Fonts, error) {
	data := goregular.TTF
	if path != "" {
		custom, err := os.ReadFile(path)
		switch {
		case err == nil:
			data = custom
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("[Fonts] %s not found, using Go Regular", path)
		default:
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	fonts := &Fonts{}
	for _, f := range []struct {
		dst  *font.Face
		size float64
	}{
		{&fonts.HUD, config.HUDFontSize},
		{&fonts.Small, config.SmallFontSize},
		{&fonts.Big, config.BigFontSize},
	} {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    f.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create font face: %w", err)
		}
		*f.dst = face
	}
	return fonts, nil
}
