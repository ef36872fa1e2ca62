// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

// ErrEmptyPalette is returned when a palette file holds no usable entries.
var ErrEmptyPalette = errors.New("palette has no entries with positive weight")

// LoadPalette reads a JSON array of palette entries from path.
func LoadPalette(path string) ([]PaletteEntry, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}

	var entries []PaletteEntry
	if err := json.Unmarshal(file, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal palette: %w", err)
	}

	usable := entries[:0]
	for _, e := range entries {
		if e.Weight > 0 && e.Color != "" {
			usable = append(usable, e)
		}
	}
	if len(usable) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyPalette)
	}

	log.Printf("Loaded %d palette entries from %s", len(usable), path)
	return usable, nil
}
