package config

import (
	_ "embed"
)

//go:embed defaults/board.yaml
var defaultBoardYAML []byte

// DefaultBoardConfig returns the default board shape (the beginner preset).
func DefaultBoardConfig() BoardConfig {
	return presetBoards[PresetBeginner]
}
