package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/minesweep/util/collections"
)

// flood reveals seed and spreads breadth-first from every tile with no
// adjacent mines. A tile with at least one adjacent mine is revealed but
// does not enqueue its neighbours. Flags do not stop the fill.
// Returns the number of tiles newly revealed.
func (board *Board) flood(seed *Tile) int {
	visited := make(collections.Set[Pos])
	queued := make(collections.Set[Pos])

	var queue deque.Deque
	queue.PushBack(seed)
	queued.Add(seed.Pos())

	revealed := 0
	for queue.Len() > 0 {
		tile := queue.PopFront().(*Tile)
		pos := tile.Pos()
		queued.Remove(pos)

		if visited.Contains(pos) {
			continue
		}
		visited.Add(pos)

		if board.markRevealed(tile) {
			revealed++
		}

		if board.AdjacentMineCount(tile.row, tile.col) != 0 {
			continue
		}

		board.EachNeighbor(tile.row, tile.col, func(neighbor *Tile) {
			neighborPos := neighbor.Pos()
			if neighbor.isMine {
				return
			}
			if visited.Contains(neighborPos) || queued.Contains(neighborPos) {
				return
			}
			queued.Add(neighborPos)
			queue.PushBack(neighbor)
		})
	}

	return revealed
}
