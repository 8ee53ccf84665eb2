package ui

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/minesweep/game"
)

func newTestAdapter(layout game.Layout) *Adapter {
	adapter := NewAdapter(NewConfig(), rand.New(rand.NewSource(1)))
	adapter.board = game.MustBoardFromLayout(layout)
	return adapter
}

// tileCenter returns the window pixel in the middle of (row, col)
func tileCenter(row, col int) Click {
	size := NewConfig().TileSize
	return Click{X: col*size + size/2, Y: row*size + size/2}
}

var flagButtonClick = Click{X: 770, Y: 20}

func TestNewAdapterUsesConfig(t *testing.T) {
	config := NewConfig()
	adapter := NewAdapter(config, rand.New(rand.NewSource(5)))

	assert.Equal(t, config.Rows, adapter.Board().Rows())
	assert.Equal(t, config.Cols, adapter.Board().Cols())
	assert.Equal(t, config.MineProbability, adapter.Board().MineProbability())
	assert.Equal(t, game.InProgress, adapter.Board().Status())
	assert.False(t, adapter.FlagMode())

	again := NewAdapter(config, rand.New(rand.NewSource(5)))
	assert.Equal(t, adapter.Board().Layout(), again.Board().Layout())
}

func TestGridPos(t *testing.T) {
	adapter := NewAdapter(NewConfig(), rand.New(rand.NewSource(1)))

	tests := []struct {
		x, y     int
		expected game.Pos
		ok       bool
	}{
		{0, 0, game.Pos{Row: 0, Col: 0}, true},
		{49, 49, game.Pos{Row: 0, Col: 0}, true},
		{50, 0, game.Pos{Row: 0, Col: 1}, true},
		{0, 50, game.Pos{Row: 1, Col: 0}, true},
		{749, 499, game.Pos{Row: 9, Col: 14}, true},
		{750, 10, game.Pos{}, false},
		{10, 500, game.Pos{}, false},
		{-1, 10, game.Pos{}, false},
		{10, -1, game.Pos{}, false},
	}

	for _, test := range tests {
		pos, ok := adapter.GridPos(test.x, test.y)
		assert.Equal(t, test.ok, ok, "(%d, %d)", test.x, test.y)
		if test.ok {
			assert.Equal(t, test.expected, pos, "(%d, %d)", test.x, test.y)
		}
	}
}

func TestClickReveals(t *testing.T) {
	adapter := newTestAdapter("...\n..*")

	assert.False(t, adapter.Handle(tileCenter(0, 0)))

	board := adapter.Board()
	assert.True(t, board.Tile(0, 0).IsRevealed())
	assert.True(t, board.Tile(1, 1).IsRevealed())
	assert.False(t, board.Tile(0, 2).IsRevealed())
	assert.False(t, board.Tile(1, 2).IsRevealed())
	assert.Equal(t, game.InProgress, board.Status())

	adapter.Handle(tileCenter(0, 2))
	assert.Equal(t, game.Won, board.Status())
}

func TestClickOutsideGridIsIgnored(t *testing.T) {
	adapter := newTestAdapter("..\n..")

	adapter.Handle(Click{X: 120, Y: 10})
	adapter.Handle(Click{X: 10, Y: 400})

	assert.Equal(t, 4, adapter.Board().UnrevealedSafe())
	assert.False(t, adapter.FlagMode())
}

func TestFlagModeRoutesClicksToFlag(t *testing.T) {
	adapter := newTestAdapter("..\n.*")
	board := adapter.Board()

	adapter.Handle(flagButtonClick)
	require.True(t, adapter.FlagMode())

	adapter.Handle(tileCenter(0, 0))
	assert.True(t, board.Tile(0, 0).IsFlagged())
	assert.False(t, board.Tile(0, 0).IsRevealed())

	adapter.Handle(tileCenter(0, 0))
	assert.False(t, board.Tile(0, 0).IsFlagged())

	adapter.Handle(tileCenter(1, 1))
	assert.True(t, board.Tile(1, 1).IsFlagged())
	assert.Equal(t, game.InProgress, board.Status())

	adapter.Handle(flagButtonClick)
	require.False(t, adapter.FlagMode())

	// flagged mine is protected from reveal
	adapter.Handle(tileCenter(1, 1))
	assert.False(t, board.Tile(1, 1).IsRevealed())
	assert.Equal(t, game.InProgress, board.Status())

	adapter.Handle(tileCenter(0, 0))
	assert.True(t, board.Tile(0, 0).IsRevealed())
}

func TestClicksIgnoredAfterGameOver(t *testing.T) {
	adapter := newTestAdapter("*.\n..")
	board := adapter.Board()

	adapter.Handle(tileCenter(0, 0))
	require.Equal(t, game.Lost, board.Status())

	adapter.Handle(flagButtonClick)
	assert.False(t, adapter.FlagMode())

	adapter.Handle(tileCenter(1, 1))
	assert.False(t, board.Tile(1, 1).IsRevealed())
	assert.Equal(t, game.Lost, board.Status())
}

func TestQuit(t *testing.T) {
	adapter := newTestAdapter("..")

	assert.True(t, adapter.Handle(Quit{}))
	assert.False(t, adapter.Handle(Click{X: 0, Y: 0}))
}

func TestRestartDealsNewBoard(t *testing.T) {
	adapter := newTestAdapter("*.")

	adapter.Handle(flagButtonClick)
	adapter.Handle(flagButtonClick)
	adapter.Handle(flagButtonClick)
	require.True(t, adapter.FlagMode())

	old := adapter.Board()
	adapter.Handle(Restart{})

	assert.NotSame(t, old, adapter.Board())
	assert.False(t, adapter.FlagMode())
	assert.Equal(t, NewConfig().Rows, adapter.Board().Rows())
	assert.Equal(t, game.InProgress, adapter.Board().Status())
}

func TestEventStrings(t *testing.T) {
	assert.Equal(t, "Click(3, 4)", Click{X: 3, Y: 4}.String())
	assert.Equal(t, "Quit", Quit{}.String())
	assert.Equal(t, "Restart", Restart{}.String())
}
