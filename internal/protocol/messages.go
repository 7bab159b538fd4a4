// Package protocol defines the JSON messages a simulation emits. Each
// message is one line of a JSON stream.
package protocol

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"cascadia/internal/game"
)

// MessageType identifies the type of message.
type MessageType string

// Game flow message types
const (
	TypeGameStarted MessageType = "game_started"
	TypeTurnPlayed  MessageType = "turn_played"
	TypeGameEnded   MessageType = "game_ended"
)

// System message types
const (
	TypeError MessageType = "error"
)

// Message is the envelope for all messages.
type Message struct {
	Type      MessageType     `json:"type"`
	ID        string          `json:"id"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// NewMessage creates a new message with the given type and payload.
func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		ID:        uuid.New().String(),
		Timestamp: time.Now().UnixMilli(),
		Payload:   data,
	}, nil
}

// ParsePayload unmarshals the payload into the given type.
func (m *Message) ParsePayload(v interface{}) error {
	return json.Unmarshal(m.Payload, v)
}

// ErrorCode represents an error type.
type ErrorCode string

const (
	ErrCodeNotYourTurn       ErrorCode = "not_your_turn"
	ErrCodeInvalidAction     ErrorCode = "invalid_action"
	ErrCodeGameOver          ErrorCode = "game_over"
	ErrCodeInvalidTile       ErrorCode = "invalid_tile"
	ErrCodeMarkerUnplaceable ErrorCode = "marker_unplaceable"
	ErrCodeOutOfBounds       ErrorCode = "out_of_bounds"
	ErrCodeCellOccupied      ErrorCode = "cell_occupied"
	ErrCodeNoAdjacentTile    ErrorCode = "no_adjacent_tile"
	ErrCodeEmptyCell         ErrorCode = "empty_cell"
	ErrCodeTileHasMarker     ErrorCode = "tile_has_marker"
	ErrCodeSpeciesNotAllowed ErrorCode = "species_not_allowed"
	ErrCodeInvalidConfig     ErrorCode = "invalid_config"
	ErrCodeInternalError     ErrorCode = "internal_error"
)

var errorCodes = []struct {
	err  error
	code ErrorCode
}{
	{game.ErrNotYourTurn, ErrCodeNotYourTurn},
	{game.ErrInvalidAction, ErrCodeInvalidAction},
	{game.ErrGameOver, ErrCodeGameOver},
	{game.ErrInvalidTileIndex, ErrCodeInvalidTile},
	{game.ErrMarkerUnplaceable, ErrCodeMarkerUnplaceable},
	{game.ErrOutOfBounds, ErrCodeOutOfBounds},
	{game.ErrCellOccupied, ErrCodeCellOccupied},
	{game.ErrNoAdjacentTile, ErrCodeNoAdjacentTile},
	{game.ErrEmptyCell, ErrCodeEmptyCell},
	{game.ErrTileHasMarker, ErrCodeTileHasMarker},
	{game.ErrSpeciesNotAllowed, ErrCodeSpeciesNotAllowed},
	{game.ErrUnknownVariant, ErrCodeInvalidConfig},
	{game.ErrUnknownTopology, ErrCodeInvalidConfig},
	{game.ErrTooFewPlayers, ErrCodeInvalidConfig},
	{game.ErrTooManyPlayers, ErrCodeInvalidConfig},
}

// CodeFor maps an error from the game package to its code. Wrapped
// errors are unwrapped; anything unknown is an internal error.
func CodeFor(err error) ErrorCode {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return ErrCodeInternalError
}

// ErrorPayload is the payload for error messages.
type ErrorPayload struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// NewErrorPayload builds an error payload for err.
func NewErrorPayload(err error) ErrorPayload {
	return ErrorPayload{Code: CodeFor(err), Message: err.Error()}
}
