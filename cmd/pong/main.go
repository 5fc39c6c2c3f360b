// pong plays Pong against AI opponents in the terminal.
//
// Usage:
//
//	pong list              - List available variants
//	pong play <variant>    - Play a variant
//	pong menu              - Pick a variant interactively
//	pong serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--config <path>   - Use a custom pong.yaml
//	--log <path>      - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"

	// Import games to register them
	_ "github.com/vovakirdan/tui-pong/internal/games/pong"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - Beat the AI in your terminal",
	Long: `Pong is the classic two-paddle game played in your terminal against
AI opponents that track the ball or predict its bounces.

Available commands:
  list     - Show all variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play

Examples:
  pong list
  pong play predictive
  pong play classic --sound
  pong menu --log ./pong.log
  pong serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pong config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns a logger writing to --log, or to fallback when the
// flag is empty. The returned func closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}

func addSoundFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("sound", false, "Play sound effects")
}

// openSound opens the speaker when cmd's --sound flag is set. A speaker
// that cannot be opened is reported and the game runs silent. The returned
// func closes the speaker.
func openSound(cmd *cobra.Command) (tui.Sounder, func()) {
	if on, _ := cmd.Flags().GetBool("sound"); !on {
		return nil, func() {}
	}
	player, err := audio.Open()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: sound disabled: %v\n", err)
		return nil, func() {}
	}
	return player, player.Close
}
