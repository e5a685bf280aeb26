package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/nacbot/internal/entity"
)

const (
	actionGameNew     = "game:new"
	actionGameGet     = "game:get"
	actionGameTurn    = "game:turn"
	actionGameSuggest = "game:suggest"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload - fields used by the client actions, each action reads its own subset.
type RequestPayload struct {
	GameID string             `json:"game_id,omitempty"`
	Mark   entity.Mark        `json:"mark,omitempty"`
	Cell   *entity.Coordinate `json:"cell,omitempty"`
}

type ResponsePayload struct {
	Game  *entity.Game       `json:"game,omitempty"`
	Cell  *entity.Coordinate `json:"cell,omitempty"`
	Error string             `json:"error,omitempty"`
}
