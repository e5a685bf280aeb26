package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/nacbot/internal/entity"
)

type player interface {
	Suggest(board entity.Board, mark entity.Mark) (entity.Coordinate, bool)
	Play(board *entity.Board, mark entity.Mark) (entity.Coordinate, error)
}

// inputLine - one line read from the console, err is set on the last one.
type inputLine struct {
	text string
	err  error
}

type Options struct {
	HumanMark   entity.Mark
	Suggestions bool
}

// Loop - the turn loop of a console game, X always moves first.
type Loop struct {
	logger   *slog.Logger
	engine   player
	renderer *Renderer
	input    *bufio.Scanner
	opts     Options
}

func NewLoop(logger *slog.Logger, engine player, renderer *Renderer, in io.Reader, opts Options) *Loop {
	return &Loop{
		logger:   logger.With("component", "console"),
		engine:   engine,
		renderer: renderer,
		input:    bufio.NewScanner(in),
		opts:     opts,
	}
}

// Run - plays until the board has a verdict. Running out of input returns io.EOF,
// cancelling ctx returns ctx.Err() even while waiting for input.
func (that *Loop) Run(ctx context.Context) (entity.Verdict, error) {
	board := entity.Board{}
	active := entity.PlayerX

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := that.readLines(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return entity.NoWinner, err
		}

		that.renderer.Clear()
		that.renderer.Info()
		that.renderer.Board(board)

		if active == that.opts.HumanMark {
			placed, err := that.humanTurn(ctx, &board, lines)
			if err != nil {
				return entity.NoWinner, err
			}

			// an invalid move keeps the turn with the human
			if !placed {
				continue
			}
		} else {
			cell, err := that.engine.Play(&board, active)
			if err != nil {
				return entity.NoWinner, fmt.Errorf("bot failed to make turn: %w", err)
			}

			that.logger.Debug("bot made turn", "cell", cell.String())
		}

		if verdict := board.Verdict(); verdict.IsFinal() {
			that.renderer.Clear()
			that.renderer.Info()
			that.renderer.Board(board)
			that.renderer.Winner(verdict)

			return verdict, nil
		}

		active = active.Opponent()
	}
}

// readLines - scans input in the background. The scanner blocks in Read, so a
// cancelled game leaves it waiting until the reader returns.
func (that *Loop) readLines(ctx context.Context) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)

		for that.input.Scan() {
			select {
			case lines <- inputLine{text: that.input.Text()}:
			case <-ctx.Done():
				return
			}
		}

		err := that.input.Err()
		if err == nil {
			err = io.EOF
		} else {
			err = fmt.Errorf("failed to read input: %w", err)
		}

		select {
		case lines <- inputLine{err: err}:
		case <-ctx.Done():
		}
	}()

	return lines
}

func (that *Loop) humanTurn(ctx context.Context, board *entity.Board, lines <-chan inputLine) (bool, error) {
	if that.opts.Suggestions {
		if cell, ok := that.engine.Suggest(*board, that.opts.HumanMark); ok {
			that.renderer.Suggestion(cell)
		}
	}

	that.renderer.Prompt()

	var line inputLine
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case received, ok := <-lines:
		if !ok {
			return false, io.EOF
		}
		line = received
	}

	if line.err != nil {
		return false, line.err
	}

	cell, err := ParseCoordinate(line.text)
	if err != nil {
		that.renderer.Error(err)
		return false, nil
	}

	if err = board.Place(that.opts.HumanMark, cell); err != nil {
		that.renderer.Error(err)
		return false, nil
	}

	return true, nil
}
