package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MineRune = '*'
	SafeRune = '.'
)

var ErrInvalidLayout = errors.New("invalid layout")

// Layout is a text picture of mine placement: one line per row, MineRune for
// a mine and SafeRune for a safe tile.
type Layout string

func (layout Layout) Lines() []string {
	lines := strings.Split(strings.TrimSpace(string(layout)), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r ")
	}
	return lines
}

func (layout Layout) Validate() error {
	lines := layout.Lines()
	width := len(lines[0])
	if width == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidLayout)
	}

	for r, line := range lines {
		if len(line) != width {
			return fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrInvalidLayout, r, len(line), width)
		}
		for c, char := range line {
			if char != MineRune && char != SafeRune {
				return fmt.Errorf("%w: unexpected %q at (%d, %d)", ErrInvalidLayout, char, r, c)
			}
		}
	}

	return nil
}

// NewBoardFromLayout builds a board with mines exactly where the layout has
// them.
func NewBoardFromLayout(layout Layout) (*Board, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	lines := layout.Lines()
	board := newEmptyBoard(len(lines), len(lines[0]))
	for r, line := range lines {
		for c, char := range line {
			if char == MineRune {
				board.placeMine(r, c)
			}
		}
	}

	if tiles := board.NumTiles(); tiles > 0 {
		board.mineProbability = float64(board.numMines) / float64(tiles)
	}

	return board, nil
}

func MustBoardFromLayout(layout Layout) *Board {
	board, err := NewBoardFromLayout(layout)
	if err != nil {
		panic(err)
	}
	return board
}
