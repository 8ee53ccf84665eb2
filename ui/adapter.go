package ui

import (
	"image"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/minesweep/game"
)

var log = game.Log.WithField("component", "ui")

// Adapter turns input events into Board operations. It owns the board for
// the current session and the flag-mode toggle.
type Adapter struct {
	config   Config
	rng      *rand.Rand
	board    *game.Board
	flagMode bool
}

func NewAdapter(config Config, rng *rand.Rand) *Adapter {
	adapter := &Adapter{
		config: config,
		rng:    rng,
	}
	adapter.Reset()
	return adapter
}

func (adapter *Adapter) Board() *game.Board {
	return adapter.board
}

func (adapter *Adapter) FlagMode() bool {
	return adapter.flagMode
}

func (adapter *Adapter) Config() Config {
	return adapter.config
}

// Reset throws the current board away and builds a fresh one
func (adapter *Adapter) Reset() {
	adapter.board = game.NewBoard(
		adapter.config.Rows,
		adapter.config.Cols,
		adapter.config.MineProbability,
		adapter.rng,
	)
	adapter.flagMode = false

	log.WithFields(logrus.Fields{
		"rows":  adapter.board.Rows(),
		"cols":  adapter.board.Cols(),
		"mines": adapter.board.NumMines(),
	}).Info("new game")
}

// GridPos maps a window pixel to a tile. ok is false outside the grid.
func (adapter *Adapter) GridPos(x, y int) (pos game.Pos, ok bool) {
	if x < 0 || y < 0 {
		return pos, false
	}

	pos = game.Pos{
		Row: y / adapter.config.TileSize,
		Col: x / adapter.config.TileSize,
	}
	return pos, adapter.board.InBounds(pos.Row, pos.Col)
}

// Handle applies one event and reports whether the loop should quit
func (adapter *Adapter) Handle(event Event) (quit bool) {
	switch event := event.(type) {
	case Quit:
		log.Info("quit")
		return true
	case Restart:
		adapter.Reset()
	case Click:
		adapter.click(event)
	default:
		log.WithField("event", event).Warn("unhandled event")
	}
	return false
}

func (adapter *Adapter) click(click Click) {
	if adapter.board.GameOver() {
		return
	}

	if image.Pt(click.X, click.Y).In(adapter.config.FlagButton) {
		adapter.flagMode = !adapter.flagMode
		log.WithField("flagMode", adapter.flagMode).Debug("flag mode toggled")
		return
	}

	pos, ok := adapter.GridPos(click.X, click.Y)
	if !ok {
		return
	}

	if adapter.flagMode {
		adapter.board.Flag(pos.Row, pos.Col)
		return
	}

	before := adapter.board.Status()
	adapter.board.Reveal(pos.Row, pos.Col)
	if after := adapter.board.Status(); after != before {
		log.WithFields(logrus.Fields{
			"tile":  pos,
			"state": after,
		}).Info("game over")
	}
}
