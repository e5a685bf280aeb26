package engine

import "github.com/rocketscienceinc/nacbot/internal/entity"

// FindNearWin - returns the empty cell of the first line, in entity.Lines order,
// that holds exactly two of mark and one empty cell.
func FindNearWin(board entity.Board, mark entity.Mark) (entity.Coordinate, bool) {
	for _, line := range entity.Lines {
		used := 0
		unused, hasUnused := entity.Coordinate{}, false

		for _, cell := range line {
			switch board.At(cell) {
			case mark:
				used++
			case entity.Empty:
				unused, hasUnused = cell, true
			}
		}

		if used == 2 && hasUnused {
			return unused, true
		}
	}

	return entity.Coordinate{}, false
}

// findWin - a move that completes a line for mark.
func findWin(board entity.Board, mark entity.Mark) (entity.Coordinate, bool) {
	return FindNearWin(board, mark)
}

// findBlock - a move that stops the opponent of mark from completing a line.
func findBlock(board entity.Board, mark entity.Mark) (entity.Coordinate, bool) {
	return FindNearWin(board, mark.Opponent())
}
