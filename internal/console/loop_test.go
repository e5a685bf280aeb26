package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/nacbot/internal/apperror"
	"github.com/rocketscienceinc/nacbot/internal/engine"
	"github.com/rocketscienceinc/nacbot/internal/entity"
)

// firstEmpty - plays the first empty cell in row-major order.
type firstEmpty struct {
	suggested int
}

func (that *firstEmpty) Suggest(board entity.Board, _ entity.Mark) (entity.Coordinate, bool) {
	that.suggested++
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return entity.Coordinate{}, false
	}
	return cells[0], true
}

func (that *firstEmpty) Play(board *entity.Board, mark entity.Mark) (entity.Coordinate, error) {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return entity.Coordinate{}, engine.ErrNoMovesLeft
	}
	return cells[0], board.Place(mark, cells[0])
}

func newTestLoop(bot player, input string, opts Options) (*Loop, *bytes.Buffer) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewLoop(logger, bot, NewRenderer(&out, false), strings.NewReader(input), opts), &out
}

func TestLoop_Run(t *testing.T) {
	t.Run("Human wins a column", func(t *testing.T) {
		// Given: the human plays X down column A, the bot fills row 1
		bot := &firstEmpty{}
		loop, out := newTestLoop(bot, "A1\nA2\nA3\n", Options{HumanMark: entity.PlayerX})

		// When: the game is played out
		verdict, err := loop.Run(context.Background())

		// Then: X wins and no suggestion was asked for
		require.NoError(t, err)
		assert.Equal(t, entity.WinnerX, verdict)
		assert.Contains(t, out.String(), "Winner: X!")
		assert.Zero(t, bot.suggested)
	})

	t.Run("Invalid input keeps the turn", func(t *testing.T) {
		// Given: a typo before a valid move, then the input ends
		loop, out := newTestLoop(&firstEmpty{}, "Z9\nA1\n", Options{HumanMark: entity.PlayerX})

		// When: the loop runs out of input
		verdict, err := loop.Run(context.Background())

		// Then: the typo was reported and EOF ends the game undecided
		require.ErrorIs(t, err, io.EOF)
		assert.Equal(t, entity.NoWinner, verdict)
		assert.Contains(t, out.String(), ErrInvalidInput.Error())
	})

	t.Run("Occupied cell keeps the turn", func(t *testing.T) {
		// Given: the bot holds X and opens on A1, the human tries A1 too
		loop, out := newTestLoop(&firstEmpty{}, "a1\n", Options{HumanMark: entity.PlayerO, Suggestions: true})

		// When: the loop runs out of input
		_, err := loop.Run(context.Background())

		// Then: the occupied cell was reported along with a suggestion
		require.ErrorIs(t, err, io.EOF)
		assert.Contains(t, out.String(), apperror.ErrCellOccupied.Error())
		assert.Contains(t, out.String(), "Bot suggestion: B1")
	})

	t.Run("Cancelled context stops the loop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		loop, _ := newTestLoop(&firstEmpty{}, "A1\n", Options{HumanMark: entity.PlayerX})

		_, err := loop.Run(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Cancelling while waiting for input stops the loop", func(t *testing.T) {
		// Given: a human whose input never arrives
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		var out bytes.Buffer
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		loop := NewLoop(logger, &firstEmpty{}, NewRenderer(&out, false), reader, Options{HumanMark: entity.PlayerX})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			_, err := loop.Run(ctx)
			done <- err
		}()

		// When: the game is cancelled while the human is to move
		time.Sleep(100 * time.Millisecond)
		cancel()

		// Then: Run returns promptly with the cancellation
		select {
		case err := <-done:
			require.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("Run kept waiting for input after cancel")
		}
	})

	t.Run("Game against the engine always finishes", func(t *testing.T) {
		// Given: the human tries every cell in order against the real engine
		bot := engine.New(slog.New(slog.NewTextHandler(io.Discard, nil)), engine.Options{Heuristics: true, Workers: 1})
		input := "A1\nB1\nC1\nA2\nB2\nC2\nA3\nB3\nC3\n"
		loop, _ := newTestLoop(bot, input, Options{HumanMark: entity.PlayerO, Suggestions: true})

		// When: the game is played out
		verdict, err := loop.Run(context.Background())

		// Then: it ends with a verdict before the input is used up
		require.NoError(t, err)
		assert.True(t, verdict.IsFinal())
	})
}
