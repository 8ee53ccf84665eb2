package game

import "fmt"

type Pos struct {
	Row, Col int
}

func (pos Pos) String() string {
	return fmt.Sprintf("(%d, %d)", pos.Row, pos.Col)
}

type Tile struct {
	row, col int

	isMine, revealed, flagged bool
}

func (tile *Tile) String() string {
	return fmt.Sprintf("Tile(%d, %d)", tile.row, tile.col)
}

func (tile *Tile) Row() int {
	return tile.row
}

func (tile *Tile) Col() int {
	return tile.col
}

func (tile *Tile) Pos() Pos {
	return Pos{Row: tile.row, Col: tile.col}
}

func (tile *Tile) IsMine() bool {
	return tile.isMine
}

func (tile *Tile) IsRevealed() bool {
	return tile.revealed
}

func (tile *Tile) IsFlagged() bool {
	return tile.flagged
}

func (tile *Tile) reveal() bool {
	if tile.revealed {
		return false
	}
	tile.revealed = true
	return true
}

func (tile *Tile) toggleFlagged() {
	tile.flagged = !tile.flagged
}
