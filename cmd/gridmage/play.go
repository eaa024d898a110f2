package main

import (
	"github.com/spf13/cobra"

	"gridmage/internal/engine"
	"gridmage/internal/tui"
)

var (
	playSeed  int64
	playASCII bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively in the terminal",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "run seed, 0 picks one from the clock")
	playCmd.Flags().BoolVar(&playASCII, "ascii", false, "draw with ASCII glyphs instead of emoji")
}

func runPlay(cmd *cobra.Command, args []string) error {
	theme := tui.EmojiTheme
	if playASCII {
		theme = tui.ASCIITheme
	}
	g, err := tui.New(engine.Config{Seed: playSeed}, theme)
	if err != nil {
		return err
	}
	g.Run()
	return nil
}
