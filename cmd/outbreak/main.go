// outbreak is a top-down zombie survival shooter played in the terminal.
//
// Usage:
//
//	outbreak play            - Start a survival run directly
//	outbreak menu            - Start screen with difficulty picker
//	outbreak serve           - Start SSH server for remote play
//	outbreak scores          - Show the run history
//	outbreak catalog         - List weapons, perks and enemy types
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.outbreak/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/precinct-outbreak/internal/core"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// runtimeConfig starts from the session defaults, then applies the probed
// terminal size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "outbreak",
	Short: "Precinct Outbreak - survive the horde in your terminal",
	Long: `Precinct Outbreak is a terminal-based survival shooter. Hold a
procedurally furnished police station against escalating zombie waves,
buy doors and weapons with the money you earn, and chase a high score.

Available commands:
  play     - Start a run directly
  menu     - Start screen with difficulty picker
  serve    - Start SSH server for remote play
  scores   - View the run history
  catalog  - List weapons, perks and enemy types

Examples:
  outbreak play
  outbreak play --difficulty hard
  outbreak menu
  outbreak serve --ssh :2222
  outbreak scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.outbreak/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(catalogCmd)
}
