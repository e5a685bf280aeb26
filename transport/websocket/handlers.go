package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/nacbot/internal/apperror"
)

var (
	errGameIDRequired = errors.New("game_id is required")
	errCellRequired   = errors.New("cell is required")
)

func (that *Server) handleNewGame(ctx context.Context, req *RequestPayload) (*ResponsePayload, error) {
	if !req.Mark.IsPlayer() {
		return nil, apperror.ErrInvalidMark
	}

	game, err := that.games.NewGame(ctx, req.Mark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return &ResponsePayload{Game: game}, nil
}

func (that *Server) handleGetGame(ctx context.Context, req *RequestPayload) (*ResponsePayload, error) {
	if req.GameID == "" {
		return nil, errGameIDRequired
	}

	game, err := that.games.GetGame(ctx, req.GameID)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{Game: game}, nil
}

func (that *Server) handleGameTurn(ctx context.Context, req *RequestPayload) (*ResponsePayload, error) {
	if req.GameID == "" {
		return nil, errGameIDRequired
	}

	if req.Cell == nil {
		return nil, errCellRequired
	}

	game, err := that.games.MakeTurn(ctx, req.GameID, *req.Cell)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{Game: game}, nil
}

func (that *Server) handleSuggest(ctx context.Context, req *RequestPayload) (*ResponsePayload, error) {
	if req.GameID == "" {
		return nil, errGameIDRequired
	}

	cell, err := that.games.Suggest(ctx, req.GameID)
	if err != nil {
		return nil, err
	}

	return &ResponsePayload{Cell: &cell}, nil
}
