package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/nacbot/internal/apperror"
)

const Size = 3

// Coordinate - a cell position, Row and Col are both in [0, Size).
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coordinate) Valid() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

// String - console notation, column letter then row number ("A1" is the top left cell).
func (that Coordinate) String() string {
	if !that.Valid() {
		return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
	}

	return fmt.Sprintf("%c%d", 'A'+that.Col, that.Row+1)
}

// Lines - the 8 winning triples: rows, then columns, then the two diagonals.
// Scanners rely on this order when several lines qualify.
var Lines = [8][3]Coordinate{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board - the 3x3 grid indexed as Board[row][col]. It is a value, copies never share cells.
type Board [Size][Size]Mark

// UnmarshalJSON - accepts exactly Size rows of Size cells, a short or long grid is an error.
func (that *Board) UnmarshalJSON(data []byte) error {
	var rows [][]Mark
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to decode board: %w", err)
	}

	if len(rows) != Size {
		return fmt.Errorf("%w: board has %d rows, want %d", apperror.ErrInvalidCell, len(rows), Size)
	}

	var board Board
	for row, cells := range rows {
		if len(cells) != Size {
			return fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrInvalidCell, row+1, len(cells), Size)
		}
		copy(board[row][:], cells)
	}

	*that = board

	return nil
}

// At - returns the mark at c. The coordinate must be valid.
func (that *Board) At(c Coordinate) Mark {
	return that[c.Row][c.Col]
}

// Place - commits mark at c. On error the board is left unmodified.
func (that *Board) Place(mark Mark, c Coordinate) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, c)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	if that[c.Row][c.Col] != Empty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, c)
	}

	that[c.Row][c.Col] = mark

	return nil
}

// EmptyCells - empty coordinates in row-major order.
func (that *Board) EmptyCells() []Coordinate {
	cells := make([]Coordinate, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				cells = append(cells, Coordinate{Row: row, Col: col})
			}
		}
	}

	return cells
}

func (that *Board) Count(mark Mark) int {
	count := 0
	for row := range Size {
		for col := range Size {
			if that[row][col] == mark {
				count++
			}
		}
	}

	return count
}

func (that *Board) IsFull() bool {
	return that.Count(Empty) == 0
}

// Verdict - classifies the board: a fully owned line wins, a full board without one is a tie.
func (that *Board) Verdict() Verdict {
	for _, line := range Lines {
		a, b, c := that.At(line[0]), that.At(line[1]), that.At(line[2])
		if a != Empty && a == b && b == c {
			return WinnerOf(a)
		}
	}

	// the game will continue until all the cells are full
	if !that.IsFull() {
		return NoWinner
	}

	return Tie
}
