package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/nacbot/internal/apperror"
	"github.com/rocketscienceinc/nacbot/internal/engine"
	"github.com/rocketscienceinc/nacbot/internal/entity"
)

const maxBodyBytes = 1 << 12

var errFinishedBoard = errors.New("board is already decided")

type analyzer interface {
	Decide(board entity.Board, mark entity.Mark) (engine.Decision, bool)
	Evaluate(board entity.Board, mark entity.Mark) []engine.Candidate
}

type boardRequest struct {
	Board entity.Board `json:"board"`
	Mark  entity.Mark  `json:"mark"`
}

type verdictResponse struct {
	Verdict entity.Verdict `json:"verdict"`
}

type suggestionResponse struct {
	Cell     entity.Coordinate `json:"cell"`
	Notation string            `json:"notation"`
	Stage    engine.Stage      `json:"stage"`
}

type analysisResponse struct {
	Candidates []engine.Candidate `json:"candidates"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger   *slog.Logger
	analyzer analyzer
}

func newHandlers(logger *slog.Logger, analyzer analyzer) *handlers {
	return &handlers{
		logger:   logger.With("component", "rest"),
		analyzer: analyzer,
	}
}

func (that *handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// Verdict - classifies any board, finished ones included.
func (that *handlers) Verdict(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if err := decodeRequest(w, r, &req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	that.writeJSON(w, http.StatusOK, verdictResponse{Verdict: req.Board.Verdict()})
}

// Suggestion - the move the engine would make for mark.
func (that *handlers) Suggestion(w http.ResponseWriter, r *http.Request) {
	req, ok := that.decodePosition(w, r)
	if !ok {
		return
	}

	decision, ok := that.analyzer.Decide(req.Board, req.Mark)
	if !ok {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: engine.ErrNoMovesLeft.Error()})
		return
	}

	that.writeJSON(w, http.StatusOK, suggestionResponse{
		Cell:     decision.Cell,
		Notation: decision.Cell.String(),
		Stage:    decision.Stage,
	})
}

// Analysis - simulation tallies of every empty cell for mark.
func (that *handlers) Analysis(w http.ResponseWriter, r *http.Request) {
	req, ok := that.decodePosition(w, r)
	if !ok {
		return
	}

	that.writeJSON(w, http.StatusOK, analysisResponse{Candidates: that.analyzer.Evaluate(req.Board, req.Mark)})
}

// decodePosition - reads a playable position, writes the error response itself.
func (that *handlers) decodePosition(w http.ResponseWriter, r *http.Request) (boardRequest, bool) {
	var req boardRequest
	if err := decodeRequest(w, r, &req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return req, false
	}

	if !req.Mark.IsPlayer() {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: apperror.ErrInvalidMark.Error()})
		return req, false
	}

	if req.Board.Verdict().IsFinal() {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: errFinishedBoard.Error()})
		return req, false
	}

	return req, true
}

func decodeRequest(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	return decoder.Decode(v)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
