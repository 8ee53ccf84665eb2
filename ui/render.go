package ui

import (
	"image/color"

	"github.com/they4kman/minesweep/game"
	"golang.org/x/image/colornames"
)

const (
	LostMessage = "Game over"
	WonMessage  = "You won!"
)

var (
	unrevealedEven = color.RGBA{R: 255, G: 255, B: 153, A: 255}
	unrevealedOdd  = colornames.Plum
	revealedEven   = colornames.Lightblue
	revealedOdd    = colornames.Lightgreen
	mineColor      = colornames.Red
)

// Surface is anything able to draw semantic tile states. Coordinates are
// grid positions; the surface decides where they land in pixels.
type Surface interface {
	FillTile(row, col int, fill color.Color)
	DrawCount(row, col, count int)
	DrawFlag(row, col int)
	DrawFlagButton(active bool)
	DrawMessage(message string)
}

func TileColor(tile *game.Tile) color.Color {
	even := (tile.Row()+tile.Col())%2 == 0

	switch {
	case tile.IsRevealed() && tile.IsMine():
		return mineColor
	case tile.IsRevealed() && even:
		return revealedEven
	case tile.IsRevealed():
		return revealedOdd
	case even:
		return unrevealedEven
	default:
		return unrevealedOdd
	}
}

// Render draws the board onto surface. Once the game is over only the
// result message is drawn, leaving whatever tiles the surface last showed.
func Render(board *game.Board, flagMode bool, surface Surface) {
	switch board.Status() {
	case game.Lost:
		surface.DrawMessage(LostMessage)
		return
	case game.Won:
		surface.DrawMessage(WonMessage)
		return
	}

	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			tile := board.Tile(r, c)
			surface.FillTile(r, c, TileColor(tile))

			if tile.IsRevealed() && !tile.IsMine() {
				if count := board.AdjacentMineCount(r, c); count > 0 {
					surface.DrawCount(r, c, count)
				}
			}
			if tile.IsFlagged() {
				surface.DrawFlag(r, c)
			}
		}
	}

	surface.DrawFlagButton(flagMode)
}
