package entity

import (
	"fmt"

	"github.com/rocketscienceinc/nacbot/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game - a session of one human against the bot.
type Game struct {
	ID        string  `json:"id"`
	Board     Board   `json:"board"`
	Turn      Mark    `json:"turn"`
	HumanMark Mark    `json:"human_mark"`
	BotMark   Mark    `json:"bot_mark"`
	Verdict   Verdict `json:"verdict"`
	Status    string  `json:"status"`
}

// NewGame - creates an ongoing game, X always moves first.
func NewGame(id string, humanMark Mark) (*Game, error) {
	if !humanMark.IsPlayer() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, humanMark)
	}

	return &Game{
		ID:        id,
		Turn:      PlayerX,
		HumanMark: humanMark,
		BotMark:   humanMark.Opponent(),
		Verdict:   NoWinner,
		Status:    StatusOngoing,
	}, nil
}

func (that *Game) UpdateGameState() {
	that.Verdict = that.Board.Verdict()

	if that.Verdict.IsFinal() {
		that.Status = StatusFinished
		that.Turn = Empty
		return
	}

	that.Status = StatusOngoing
}

// MakeTurn - places mark at c on behalf of the player whose turn it is.
func (that *Game) MakeTurn(mark Mark, c Coordinate) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Place(mark, c); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.Turn = mark.Opponent()
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsBotTurn() bool {
	return !that.IsFinished() && that.Turn == that.BotMark
}
