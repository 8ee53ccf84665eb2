package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"
)

type Board struct {
	rows, cols      int // in number of tiles
	mineProbability float64
	tiles           [][]Tile

	state          BoardState
	numMines       int
	numFlags       int
	unrevealedSafe int
}

// NewBoard builds a rows×cols grid where every tile independently becomes a
// mine with probability mineProbability. Tiles are drawn in row-major order,
// so a seeded rng always produces the same layout.
func NewBoard(rows, cols int, mineProbability float64, rng *rand.Rand) *Board {
	if mineProbability < 0 || mineProbability > 1 {
		panic(fmt.Sprintf("game: mine probability %v outside [0, 1]", mineProbability))
	}

	board := newEmptyBoard(rows, cols)
	board.mineProbability = mineProbability

	for r := range board.tiles {
		for c := range board.tiles[r] {
			if rng.Float64() < mineProbability {
				board.placeMine(r, c)
			}
		}
	}

	Log.WithFields(logrus.Fields{
		"rows":        rows,
		"cols":        cols,
		"probability": mineProbability,
		"mines":       board.numMines,
	}).Debug("board created")

	return board
}

func newEmptyBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("game: invalid board dimensions %dx%d", rows, cols))
	}

	board := &Board{
		rows:           rows,
		cols:           cols,
		tiles:          make([][]Tile, rows),
		state:          InProgress,
		unrevealedSafe: rows * cols,
	}

	for r := 0; r < rows; r++ {
		row := make([]Tile, cols)
		for c := range row {
			row[c].row, row[c].col = r, c
		}
		board.tiles[r] = row
	}

	return board
}

// placeMine is only called while the board is being built
func (board *Board) placeMine(r, c int) {
	tile := &board.tiles[r][c]
	if tile.isMine {
		return
	}
	tile.isMine = true
	board.numMines++
	board.unrevealedSafe--
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumTiles() int {
	return board.rows * board.cols
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

func (board *Board) MineProbability() float64 {
	return board.mineProbability
}

// UnrevealedSafe returns how many non-mine tiles are still hidden
func (board *Board) UnrevealedSafe() int {
	return board.unrevealedSafe
}

func (board *Board) Status() BoardState {
	return board.state
}

func (board *Board) GameOver() bool {
	return board.state.IsTerminal()
}

func (board *Board) Won() bool {
	return board.state == Won
}

func (board *Board) InBounds(r, c int) bool {
	return r >= 0 && c >= 0 && r < board.rows && c < board.cols
}

// Tile returns the tile at (r, c). Callers must treat it as read-only.
func (board *Board) Tile(r, c int) *Tile {
	board.mustBeInBounds(r, c)
	return &board.tiles[r][c]
}

func (board *Board) mustBeInBounds(r, c int) {
	if !board.InBounds(r, c) {
		panic(fmt.Sprintf("game: position (%d, %d) outside %dx%d board", r, c, board.rows, board.cols))
	}
}

// EachNeighbor calls visit for every in-bounds tile in the 8-neighbourhood
// of (r, c).
func (board *Board) EachNeighbor(r, c int, visit func(*Tile)) {
	board.mustBeInBounds(r, c)

	isAtTopBorder := r < 1
	isAtBottomBorder := r >= board.rows-1

	if c >= 1 {
		visit(&board.tiles[r][c-1])

		if !isAtTopBorder {
			visit(&board.tiles[r-1][c-1])
		}
		if !isAtBottomBorder {
			visit(&board.tiles[r+1][c-1])
		}
	}

	if c < board.cols-1 {
		visit(&board.tiles[r][c+1])

		if !isAtTopBorder {
			visit(&board.tiles[r-1][c+1])
		}
		if !isAtBottomBorder {
			visit(&board.tiles[r+1][c+1])
		}
	}

	if !isAtTopBorder {
		visit(&board.tiles[r-1][c])
	}
	if !isAtBottomBorder {
		visit(&board.tiles[r+1][c])
	}
}

func (board *Board) Neighbors(r, c int) []Pos {
	neighbors := make([]Pos, 0, 8)
	board.EachNeighbor(r, c, func(tile *Tile) {
		neighbors = append(neighbors, tile.Pos())
	})
	return neighbors
}

func (board *Board) AdjacentMineCount(r, c int) int {
	count := 0
	board.EachNeighbor(r, c, func(tile *Tile) {
		if tile.isMine {
			count++
		}
	})
	return count
}

func (board *Board) MinePositions() []Pos {
	mines := make([]Pos, 0, board.numMines)
	for r := range board.tiles {
		for c := range board.tiles[r] {
			if board.tiles[r][c].isMine {
				mines = append(mines, Pos{Row: r, Col: c})
			}
		}
	}
	return mines
}

// Reveal exposes the tile at (r, c). Revealing a mine loses the game;
// revealing a safe tile starts a flood fill and may win it. Revealed or
// flagged tiles, and any tile once the game is over, are left alone.
func (board *Board) Reveal(r, c int) {
	board.mustBeInBounds(r, c)

	tile := &board.tiles[r][c]
	if board.GameOver() || tile.revealed || tile.flagged {
		return
	}

	if tile.isMine {
		board.markRevealed(tile)
		board.lose(tile)
		return
	}

	revealed := board.flood(tile)

	Log.WithFields(logrus.Fields{
		"tile":      tile.Pos(),
		"revealed":  revealed,
		"remaining": board.unrevealedSafe,
	}).Debug("revealed")

	if board.unrevealedSafe == 0 {
		board.win()
	}
}

// Flag toggles the flag on (r, c) unless the game is over
func (board *Board) Flag(r, c int) {
	board.mustBeInBounds(r, c)

	if board.GameOver() {
		return
	}

	tile := &board.tiles[r][c]
	tile.toggleFlagged()
	if tile.flagged {
		board.numFlags++
	} else {
		board.numFlags--
	}

	Log.WithFields(logrus.Fields{
		"tile":    tile.Pos(),
		"flagged": tile.flagged,
	}).Debug("flag toggled")
}

func (board *Board) markRevealed(tile *Tile) bool {
	if !tile.reveal() {
		return false
	}
	if !tile.isMine {
		board.unrevealedSafe--
	}
	return true
}

func (board *Board) win() {
	board.state = Won
	Log.Info("all safe tiles revealed, game won")
}

func (board *Board) lose(tile *Tile) {
	board.state = Lost
	Log.WithField("tile", tile.Pos()).Info("mine revealed, game lost")
}

// Layout renders the mine placement, one line per row
func (board *Board) Layout() Layout {
	var builder strings.Builder
	for r, row := range board.tiles {
		if r > 0 {
			builder.WriteByte('\n')
		}
		for _, tile := range row {
			if tile.isMine {
				builder.WriteRune(MineRune)
			} else {
				builder.WriteRune(SafeRune)
			}
		}
	}
	return Layout(builder.String())
}
