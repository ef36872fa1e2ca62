package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writePalette(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palette.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write palette: %v", err)
	}
	return path
}

func TestLoadPalette(t *testing.T) {
	path := writePalette(t, `[
		{"name": "violet", "color": "#a855f7", "weight": 2},
		{"name": "ghost", "color": "#ffffff", "weight": 0},
		{"name": "cyan", "color": "#00f0ff", "weight": 1}
	]`)

	entries, err := LoadPalette(path)
	if err != nil {
		t.Fatalf("LoadPalette() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 usable entries, got %d", len(entries))
	}
	if entries[0].Name != "violet" || entries[1].Name != "cyan" {
		t.Errorf("Unexpected entries: %+v", entries)
	}
}

func TestLoadPaletteErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string { return writePalette(t, `{"name":`) },
		},
		{
			name:    "no positive weights",
			path:    func(t *testing.T) string { return writePalette(t, `[{"name":"x","color":"#fff","weight":0}]`) },
			wantErr: ErrEmptyPalette,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPalette(tt.path(t))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaultPaletteWeights(t *testing.T) {
	for _, e := range DefaultPalette() {
		if e.Weight <= 0 {
			t.Errorf("Entry %q has non-positive weight %d", e.Name, e.Weight)
		}
	}
}
