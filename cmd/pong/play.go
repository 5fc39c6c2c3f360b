package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  W/Up       - Paddle up
  S/Down     - Paddle down
  R/Space    - Restart (after game over)
  Esc/B      - Leave the game
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Variants:
  classic    - Opponent chases the ball, narrow hit box
  predictive - Opponent predicts bounces off the walls
  demo       - Two predictive AIs play each other

Examples:
  pong play classic
  pong play predictive --sound
  pong play demo --config ./my-pong.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addSoundFlag(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := args[0]
	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q, run 'pong list' to see available variants", id)
	}

	logger, closeLog, err := newLogger(io.Discard, "pong")
	if err != nil {
		return err
	}
	defer closeLog()

	if _, source, loadErr := config.LoadPongWithSource(flagConfig); loadErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (using defaults)\n", loadErr)
	} else {
		logger.Info("config loaded", "source", source)
	}

	sounder, closeSound := openSound(cmd)
	defer closeSound()
	opts := tui.Options{Logger: logger, Sounder: sounder}

	game, err := registry.Create(id)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Config = flagConfig
	return cfg
}
