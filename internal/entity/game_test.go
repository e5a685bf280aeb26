package entity

import (
	"testing"

	"github.com/rocketscienceinc/nacbot/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Creates an ongoing game with X to move", func(t *testing.T) {
		// When: a human picks O
		game, err := NewGame("123", PlayerO)

		// Then: the bot holds X and moves first
		require.NoError(t, err)
		expectedGame := &Game{
			ID:        "123",
			Turn:      PlayerX,
			HumanMark: PlayerO,
			BotMark:   PlayerX,
			Verdict:   NoWinner,
			Status:    StatusOngoing,
		}
		require.Equal(t, expectedGame, game)
		assert.True(t, game.IsBotTurn())
	})

	t.Run("Error on empty human mark", func(t *testing.T) {
		// When: the human mark is not a player
		game, err := NewGame("123", Empty)

		// Then: ErrInvalidMark is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
		assert.Nil(t, game)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game, err := NewGame("123", PlayerX)
		require.NoError(t, err)

		// When: Player X makes a valid turn
		err = game.MakeTurn(PlayerX, Coordinate{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: The board reflects the turn and the turn passes to O
		assert.Equal(t, Board{{x, e, e}}, game.Board)
		assert.Equal(t, PlayerO, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game, err := NewGame("123", PlayerX)
		require.NoError(t, err)

		// When: Player O tries to make a move
		err = game.MakeTurn(PlayerO, Coordinate{Row: 0, Col: 1})

		// Then: ErrNotYourTurn is returned and the game is unchanged
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, Board{}, game.Board)
		assert.Equal(t, PlayerX, game.Turn)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell A1 is taken by X
		game, err := NewGame("123", PlayerX)
		require.NoError(t, err)
		require.NoError(t, game.MakeTurn(PlayerX, Coordinate{Row: 0, Col: 0}))

		// When: Player O tries the same cell
		err = game.MakeTurn(PlayerO, Coordinate{Row: 0, Col: 0})

		// Then: ErrCellOccupied is returned and it is still O's turn
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, PlayerO, game.Turn)
		assert.Equal(t, Board{{x, e, e}}, game.Board)
	})

	t.Run("Finishes the game on a win", func(t *testing.T) {
		// Given: X is one move away from the top row
		game, err := NewGame("123", PlayerX)
		require.NoError(t, err)
		game.Board = Board{
			{x, x, e},
			{o, o, e},
			{e, e, e},
		}

		// When: X completes the row
		err = game.MakeTurn(PlayerX, Coordinate{Row: 0, Col: 2})

		// Then: the game is finished with X as the winner
		require.NoError(t, err)
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, WinnerX, game.Verdict)
		assert.Equal(t, Empty, game.Turn)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a finished game
		game, err := NewGame("123", PlayerX)
		require.NoError(t, err)
		game.Status = StatusFinished

		// When: a player tries to move
		err = game.MakeTurn(PlayerX, Coordinate{Row: 1, Col: 1})

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestParseMark(t *testing.T) {
	mark, err := ParseMark("x")
	require.NoError(t, err)
	assert.Equal(t, PlayerX, mark)

	mark, err = ParseMark(" O ")
	require.NoError(t, err)
	assert.Equal(t, PlayerO, mark)

	_, err = ParseMark("")
	require.ErrorIs(t, err, apperror.ErrInvalidMark)

	assert.Equal(t, Empty, Empty.Opponent())
	assert.Equal(t, PlayerO, PlayerX.Opponent())
}
