package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/minesweep/game"
	"github.com/they4kman/minesweep/ui"
	"github.com/they4kman/minesweep/ui/desktop"
)

// debugEnv raises logging to debug level when set to anything non-empty
const debugEnv = "MINESWEEP_DEBUG"

var gameConfig = ui.NewConfig()

var rootCmd = &cobra.Command{
	Use:   "minesweep",
	Short: "Play a small game of Minesweeper",
	Long: `minesweep opens a window with a 15x10 grid of tiles, about one in
ten of them hiding a mine.

Click a tile to reveal it. Click the flag icon in the top right corner to
toggle flag mode; while it is on, clicks place or remove flags instead.
Press Enter to deal a new board and Escape to quit.
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging()

		gameConfig.Seed = time.Now().UnixNano()
		game.Log.WithField("seed", gameConfig.Seed).Debug("starting")

		var err error
		pixelgl.Run(func() {
			err = desktop.Run(gameConfig)
		})
		if err != nil {
			game.Log.WithError(err).Fatal("minesweep stopped")
		}
	},
}

func configureLogging() {
	game.Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	game.Log.SetLevel(logrus.InfoLevel)
	if os.Getenv(debugEnv) != "" {
		game.Log.SetLevel(logrus.DebugLevel)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
