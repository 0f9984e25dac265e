package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	tetriscore "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var flagFirstShape string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Tetris.

Controls:
  ←/a →/d       - Move left/right
  ↓/s           - Soft drop
  ↑/w/x         - Rotate clockwise
  Enter/Space   - Start
  P/Esc         - Pause
  R             - Restart (after game over)
  ?             - Show all keys
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower start, speeds up as you clear rows
  normal - Starts at 30% speed-up, progresses to max
  hard   - Faster start at 70% speed-up, progresses to max
  fixed  - No progression, constant fall speed`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addConfigFlags(playCmd)
	playCmd.Flags().StringVar(&flagFirstShape, "first-shape", "", "Fix the first piece: I, J, L, O, S, T or Z")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closer, err := logging.New(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	opts := tetris.Options{Config: cfg, Logger: logger}
	if flagFirstShape != "" {
		shape, err := tetriscore.ParseShape(flagFirstShape)
		if err != nil {
			return err
		}
		opts.FirstShape = &shape
	}
	tetris.Configure(opts)

	game, err := registry.Create(tetris.ID)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Info("starting", "config", source, "difficulty", flagDifficulty,
		"fps", flagFPS, "seed", flagSeed, "size", fmt.Sprintf("%dx%d", width, height))

	if err := tui.Run(game, runtime, logger); err != nil {
		logger.Error("program failed", "err", err)
		return fmt.Errorf("play: %w", err)
	}
	return nil
}
