// Package config provides YAML-based board configuration loading and the
// built-in board presets.
package config

import "fmt"

// BoardConfig describes a board shape: dimensions and mine count.
type BoardConfig struct {
	Cols  int `yaml:"cols"`
	Rows  int `yaml:"rows"`
	Mines int `yaml:"mines"`
}

// Preset is a named built-in board shape.
type Preset string

const (
	PresetBeginner     Preset = "beginner"
	PresetIntermediate Preset = "intermediate"
	PresetExpert       Preset = "expert"
)

// presetBoards holds the classic board shapes.
var presetBoards = map[Preset]BoardConfig{
	PresetBeginner:     {Cols: 9, Rows: 9, Mines: 10},
	PresetIntermediate: {Cols: 16, Rows: 16, Mines: 40},
	PresetExpert:       {Cols: 30, Rows: 16, Mines: 99},
}

// Presets returns the built-in presets in difficulty order.
func Presets() []Preset {
	return []Preset{PresetBeginner, PresetIntermediate, PresetExpert}
}

// PresetBoard returns the board shape for a named preset.
func PresetBoard(p Preset) (BoardConfig, bool) {
	cfg, ok := presetBoards[p]
	return cfg, ok
}

// Validate rejects board shapes that cannot host a game. The mine bound uses
// the worst-case safe zone of 9 cells; the engine re-checks against the
// actual first-click pool at placement time.
func (c BoardConfig) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("config: invalid board size %dx%d", c.Cols, c.Rows)
	}
	if c.Mines < 0 {
		return fmt.Errorf("config: negative mine count %d", c.Mines)
	}
	if c.Mines > c.Cols*c.Rows-9 {
		return fmt.Errorf("config: %d mines cannot guarantee a safe first click on a %dx%d board (max %d)",
			c.Mines, c.Cols, c.Rows, c.Cols*c.Rows-9)
	}
	return nil
}

// String formats the shape as "9x9/10".
func (c BoardConfig) String() string {
	return fmt.Sprintf("%dx%d/%d", c.Cols, c.Rows, c.Mines)
}
