package board

import "strings"

// Preset is a named board configuration offered on the difficulty screen.
type Preset struct {
	Name    string
	Columns int
	Rows    int
	Mines   int
}

var (
	Easy   = Preset{Name: "Easy", Columns: 9, Rows: 9, Mines: 10}
	Medium = Preset{Name: "Medium", Columns: 16, Rows: 16, Mines: 40}
	Hard   = Preset{Name: "Hard", Columns: 30, Rows: 16, Mines: 99}
)

// Presets returns the presets in menu order.
func Presets() []Preset {
	return []Preset{Easy, Medium, Hard}
}

var presetAliases = map[string]Preset{
	"easy":         Easy,
	"beginner":     Easy,
	"medium":       Medium,
	"intermediate": Medium,
	"hard":         Hard,
	"expert":       Hard,
}

// PresetByName looks a preset up by name, ignoring case.
func PresetByName(name string) (Preset, bool) {
	p, ok := presetAliases[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// NewBoard creates a fresh board for the preset.
func (p Preset) NewBoard(opts ...Option) *Board {
	return NewBoard(p.Columns, p.Rows, p.Mines, opts...)
}

// Custom reports whether p is not one of the built-in presets.
func (p Preset) Custom() bool {
	for _, q := range Presets() {
		if p == q {
			return false
		}
	}
	return true
}

// Key returns a stable lower-case identifier used for storage.
func (p Preset) Key() string {
	if p.Custom() {
		return "custom"
	}
	return strings.ToLower(p.Name)
}
