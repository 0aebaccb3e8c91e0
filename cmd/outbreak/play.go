package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/precinct-outbreak/internal/audio"
	"github.com/vovakirdan/precinct-outbreak/internal/config"
	"github.com/vovakirdan/precinct-outbreak/internal/game"
	"github.com/vovakirdan/precinct-outbreak/internal/platform/tui"
	"github.com/vovakirdan/precinct-outbreak/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogAudio   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a survival run",
	Long: `Start a run in the precinct.

Controls:
  WASD        - Move
  Mouse       - Aim and fire (or J to fire at the crosshair)
  E           - Interact (doors, shops, weapon racks, vending, mystery box)
  R           - Reload
  Q/Tab       - Swap weapon, 1/2 select slot
  G           - Grenade, V - knife, Space - roll
  C/Z         - Crouch / prone
  P/Esc       - Pause
  N           - New run (after death)
  Ctrl+C      - Quit

Difficulty options:
  easy   - More starting cash, slower and sparser hordes
  normal - The intended balance
  hard   - Tight money, fast hordes
  fixed  - Same as normal; pair with --seed for reproducible runs

Examples:
  outbreak play
  outbreak play --difficulty hard
  outbreak play --difficulty fixed --seed 42
  outbreak play --config ./my-outbreak.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogAudio, "log-audio", "", "Write sound cues to the given file (debug)")
}

// loadTuning resolves the gameplay config and difficulty flags into an
// engine ruleset.
func loadTuning() (tun game.Tuning, err error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return tun, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return tun, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	return cfg.Tuning(), nil
}

func runPlay(cmd *cobra.Command, args []string) {
	tun, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}

	// Optional sound cue log for debugging
	var sink audio.Sink
	if flagLogAudio != "" {
		f, fileErr := os.OpenFile(flagLogAudio, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if fileErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open audio log: %v\n", fileErr)
		} else {
			defer f.Close()
			logger := log.NewWithOptions(f, log.Options{Level: log.DebugLevel, Prefix: "audio"})
			sink = audio.NewLogSink(logger)
		}
	}

	runErr := tui.Run(tun, store, cfg, sink)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
