// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake play               - Play in the terminal
//	snake sim --events ...   - Replay a scripted event sequence headlessly
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Preset: easy, normal, hard, fixed
//	--board-size <n>      - Override board.size
//	--policy <name>       - Override input.direction_policy
//	--seed <value>        - RNG seed for apple placement
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagBoardSize  int
	flagPolicy     string
	flagSeed       int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake moves one cell per clock tick. Eat apples to grow and score;
every point makes the clock a little faster. Hitting a wall or your own
body ends the run.

Available commands:
  play     - Play in the terminal
  sim      - Replay a scripted event sequence without a terminal
  config   - Print the effective configuration

Examples:
  snake play
  snake play --difficulty hard --board-size 30
  snake sim --events "space,tick,ArrowUp,tick"
  snake config --policy buffered`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: "+presetList())
	rootCmd.PersistentFlags().IntVar(&flagBoardSize, "board-size", 0, "Board edge length (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagPolicy, "policy", "", "Direction policy: immediate, buffered (empty = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// presetList joins the accepted difficulty names for flag help.
func presetList() string {
	presets := config.Presets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
