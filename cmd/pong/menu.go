package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant interactively",
	Long: `Opens the variant picker. Leaving a game with Esc or B returns to
the menu; Q quits.`,
	RunE: runMenu,
}

func init() {
	addSoundFlag(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "pong")
	if err != nil {
		return err
	}
	defer closeLog()

	sounder, closeSound := openSound(cmd)
	defer closeSound()
	opts := tui.Options{Logger: logger, Sounder: sounder}

	if err := tui.RunSession(runtimeConfig(), opts); err != nil {
		return fmt.Errorf("run menu: %w", err)
	}
	return nil
}
