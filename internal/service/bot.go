package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/nacbot/internal/entity"
)

var (
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrNotBotTurn       = errors.New("it's not the bot's turn")
)

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Coordinate, error)
	Suggest(game *entity.Game) (entity.Coordinate, error)
}

type moveSelector interface {
	Suggest(board entity.Board, mark entity.Mark) (entity.Coordinate, bool)
}

type botService struct {
	logger   *slog.Logger
	selector moveSelector
}

func NewBotService(logger *slog.Logger, selector moveSelector) BotService {
	return &botService{
		logger:   logger,
		selector: selector,
	}
}

// MakeTurn - chooses the bot's move and commits it to the game.
func (that *botService) MakeTurn(game *entity.Game) (entity.Coordinate, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if !game.IsBotTurn() {
		return entity.Coordinate{}, ErrNotBotTurn
	}

	cell, ok := that.selector.Suggest(game.Board, game.BotMark)
	if !ok {
		return entity.Coordinate{}, ErrNoAvailableMoves
	}

	if err := game.MakeTurn(game.BotMark, cell); err != nil {
		return entity.Coordinate{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot made turn", "cell", cell.String(), "status", game.Status)

	return cell, nil
}

// Suggest - the move the bot would make in the human's place.
func (that *botService) Suggest(game *entity.Game) (entity.Coordinate, error) {
	if game.IsFinished() {
		return entity.Coordinate{}, ErrNoAvailableMoves
	}

	cell, ok := that.selector.Suggest(game.Board, game.HumanMark)
	if !ok {
		return entity.Coordinate{}, ErrNoAvailableMoves
	}

	return cell, nil
}
