package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/nacbot/internal/entity"
)

var ErrNoMovesLeft = errors.New("no empty cells left")

// Stage - which step of the selection produced the move.
type Stage uint8

const (
	StageWin Stage = iota + 1
	StageBlock
	StageSimulation
	StageFallback
)

func (that Stage) String() string {
	switch that {
	case StageWin:
		return "win"
	case StageBlock:
		return "block"
	case StageSimulation:
		return "simulation"
	case StageFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

func (that Stage) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// Candidate - simulation result for one empty cell.
// Defined is false when the tally is empty, Ratio is then meaningless.
type Candidate struct {
	Cell    entity.Coordinate `json:"cell"`
	Tally   Tally             `json:"tally"`
	Ratio   float64           `json:"ratio"`
	Defined bool              `json:"defined"`
}

// Decision - the chosen cell and how it was found. Candidates are only
// filled when the simulation ran.
type Decision struct {
	Cell       entity.Coordinate `json:"cell"`
	Stage      Stage             `json:"stage"`
	Candidates []Candidate       `json:"candidates,omitempty"`
}

type Options struct {
	// Heuristics enables the win and block short-circuits before the simulation.
	Heuristics bool
	// Workers bounds concurrent candidate simulations, 1 or less runs them in order.
	Workers int
}

// Engine - stateless move selector. It is safe for concurrent use.
type Engine struct {
	logger *slog.Logger

	heuristics bool
	workers    int
}

func New(logger *slog.Logger, opts Options) *Engine {
	return &Engine{
		logger:     logger.With("component", "engine"),
		heuristics: opts.Heuristics,
		workers:    opts.Workers,
	}
}

// Decide - picks a cell for mark: a winning move, else a blocking move, else the
// cell with the best simulated win ratio. ok is false when the board is full.
func (that *Engine) Decide(board entity.Board, mark entity.Mark) (Decision, bool) {
	log := that.logger.With("method", "Decide", "mark", mark.String())

	if board.IsFull() {
		return Decision{}, false
	}

	if that.heuristics {
		if cell, ok := findWin(board, mark); ok {
			log.Debug("completing a line", "cell", cell.String())
			return Decision{Cell: cell, Stage: StageWin}, true
		}

		if cell, ok := findBlock(board, mark); ok {
			log.Debug("blocking a line", "cell", cell.String())
			return Decision{Cell: cell, Stage: StageBlock}, true
		}
	}

	candidates := that.Evaluate(board, mark)
	best, stage := pickBest(candidates)

	log.Debug("simulation finished",
		"cell", candidates[best].Cell.String(),
		"stage", stage.String(),
		"ratio", candidates[best].Ratio,
		"candidates", len(candidates),
	)

	return Decision{Cell: candidates[best].Cell, Stage: stage, Candidates: candidates}, true
}

// Suggest - the cell Decide would choose, the board is not modified.
func (that *Engine) Suggest(board entity.Board, mark entity.Mark) (entity.Coordinate, bool) {
	decision, ok := that.Decide(board, mark)
	if !ok {
		return entity.Coordinate{}, false
	}

	return decision.Cell, true
}

// Play - decides a move for mark and writes it into board.
func (that *Engine) Play(board *entity.Board, mark entity.Mark) (entity.Coordinate, error) {
	decision, ok := that.Decide(*board, mark)
	if !ok {
		return entity.Coordinate{}, ErrNoMovesLeft
	}

	if err := board.Place(mark, decision.Cell); err != nil {
		return entity.Coordinate{}, fmt.Errorf("failed to place move: %w", err)
	}

	return decision.Cell, nil
}

// Evaluate - simulates every empty cell of board for mark, in row-major order.
func (that *Engine) Evaluate(board entity.Board, mark entity.Mark) []Candidate {
	cells := board.EmptyCells()
	tallies := make([]Tally, len(cells))

	if that.workers <= 1 {
		for i, cell := range cells {
			Simulate(board, &tallies[i], mark, mark, cell)
		}
	} else {
		var group errgroup.Group
		group.SetLimit(that.workers)

		// every goroutine owns its board copy and its tally slot
		for i, cell := range cells {
			group.Go(func() error {
				Simulate(board, &tallies[i], mark, mark, cell)
				return nil
			})
		}

		_ = group.Wait() // never returns error
	}

	candidates := make([]Candidate, len(cells))
	for i, cell := range cells {
		ratio, defined := tallies[i].Ratio()
		candidates[i] = Candidate{
			Cell:    cell,
			Tally:   tallies[i],
			Ratio:   ratio,
			Defined: defined,
		}
	}

	return candidates
}

// pickBest - index of the first candidate with the strictly greatest ratio above 0.
// Without one, the first candidate with a defined ratio, else the first candidate.
// candidates must not be empty.
func pickBest(candidates []Candidate) (int, Stage) {
	best, top := -1, 0.0
	for i, candidate := range candidates {
		if candidate.Defined && candidate.Ratio > top {
			best, top = i, candidate.Ratio
		}
	}

	if best >= 0 {
		return best, StageSimulation
	}

	for i, candidate := range candidates {
		if candidate.Defined {
			return i, StageFallback
		}
	}

	return 0, StageFallback
}
