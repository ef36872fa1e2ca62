// internal/defs/palette.go
package defs

// PaletteEntry представляет один цвет в палитре вспышек.
// Color - hex-строка ("#a855f7"), Weight - относительный шанс выбора.
type PaletteEntry struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Weight int    `json:"weight"`
}

// DefaultPalette returns the neon set the board uses when no palette file is configured.
func DefaultPalette() []PaletteEntry {
	return []PaletteEntry{
		{Name: "violet", Color: "#a855f7", Weight: 4},
		{Name: "cyan", Color: "#00f0ff", Weight: 3},
		{Name: "magenta", Color: "#ff2bd6", Weight: 2},
		{Name: "lime", Color: "#a3ff12", Weight: 1},
	}
}
