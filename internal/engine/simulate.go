package engine

import "github.com/rocketscienceinc/nacbot/internal/entity"

// Tally - terminal leaves reached from one candidate move, seen from the engine's side.
type Tally struct {
	Wins   uint64 `json:"wins"`
	Losses uint64 `json:"losses"`
	Ties   uint64 `json:"ties"`
}

func (that Tally) Total() uint64 {
	return that.Wins + that.Losses + that.Ties
}

// Ratio - wins over all leaves. Ties dilute the ratio like losses do.
// ok is false when no leaf was counted, such a ratio never wins a comparison.
func (that Tally) Ratio() (ratio float64, ok bool) {
	total := that.Total()
	if total == 0 {
		return 0, false
	}

	return float64(that.Wins) / float64(total), true
}

func (that *Tally) record(verdict entity.Verdict, engineMark entity.Mark) {
	switch {
	case verdict == entity.Tie:
		that.Ties++
	case verdict.Winner() == engineMark:
		that.Wins++
	default:
		that.Losses++
	}
}

// Simulate - plays toMove at the given cell on a copy of board and enumerates every
// continuation, alternating marks, adding each terminal leaf to tally.
// board is taken by value, so the caller's board is never touched.
func Simulate(board entity.Board, tally *Tally, engineMark, toMove entity.Mark, at entity.Coordinate) {
	board[at.Row][at.Col] = toMove

	if verdict := board.Verdict(); verdict.IsFinal() {
		tally.record(verdict, engineMark)
		return
	}

	next := toMove.Opponent()
	for _, cell := range board.EmptyCells() {
		Simulate(board, tally, engineMark, next, cell)
	}
}
