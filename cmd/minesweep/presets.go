package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minesweep/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in board presets",
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	fmt.Println("Built-in board presets:")
	fmt.Println()
	fmt.Printf("  %-14s  %-8s  %s\n", "Preset", "Size", "Mines")
	fmt.Printf("  %-14s  %-8s  %s\n", "------", "----", "-----")

	for _, p := range config.Presets() {
		cfg, _ := config.PresetBoard(p)
		fmt.Printf("  %-14s  %dx%-6d  %d\n", p, cfg.Cols, cfg.Rows, cfg.Mines)
	}

	fmt.Println()
	fmt.Println("Use a preset with: minesweep deal --preset <name>")
	fmt.Println("Or supply a custom shape: minesweep deal --config ./board.yaml")
}
