package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/precinct-outbreak/internal/config"
	"github.com/vovakirdan/precinct-outbreak/internal/platform/tui"
	"github.com/vovakirdan/precinct-outbreak/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the outbreak with a difficulty picker",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a run.
After a run ends, you return to the menu to go again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start run
  Tab          - Run history
  Q            - Quit

Examples:
  outbreak menu
  outbreak menu --fps 30
  outbreak menu --db ./runs.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	baseCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		// Rebalance a copy for the chosen difficulty
		runCfg := baseCfg
		config.ApplyPreset(&runCfg, menuResult.Preset)

		// Fresh seed for each run
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(runCfg.Tuning(), store, cfg, nil); err != nil {
			fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
