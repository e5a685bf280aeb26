package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/nacbot/internal/entity"
	"github.com/rocketscienceinc/nacbot/internal/pkg"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	MakeTurn(game *entity.Game) (entity.Coordinate, error)
	Suggest(game *entity.Game) (entity.Coordinate, error)
}

// GameManager - runs sessions of a human against the bot.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	bot      botService
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, bot botService) *GameManager {
	return &GameManager{
		logger: logger,

		gameRepo: gameRepo,
		bot:      bot,
	}
}

// NewGame - starts a session, the bot opens when the human picked O.
func (that *GameManager) NewGame(ctx context.Context, humanMark entity.Mark) (*entity.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate game id: %w", err)
	}

	game, err := entity.NewGame(gameID, humanMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if game.IsBotTurn() {
		if _, err = that.bot.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game created", "gameID", game.ID, "humanMark", humanMark.String())

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - applies the human's move and the bot's reply. A finished game is
// returned once and removed from storage.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, cell entity.Coordinate) (*entity.Game, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(game.HumanMark, cell); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if _, err = that.bot.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if game.IsFinished() {
		that.deleteGame(ctx, game)
		return game, nil
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// Suggest - the bot's advice for the human's next move.
func (that *GameManager) Suggest(ctx context.Context, gameID string) (entity.Coordinate, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return entity.Coordinate{}, err
	}

	cell, err := that.bot.Suggest(game)
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("failed to suggest: %w", err)
	}

	return cell, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame", "gameID", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game finished", "verdict", game.Verdict.String())
}
