package game

import "errors"

// Game errors
var (
	ErrNotYourTurn       = errors.New("not your turn")
	ErrInvalidAction     = errors.New("invalid action for current phase")
	ErrGameOver          = errors.New("game is over")
	ErrInvalidTileIndex  = errors.New("no tile at that batch index")
	ErrMarkerUnplaceable = errors.New("no tile on the grid accepts this wildlife")
	ErrOutOfBounds       = errors.New("position is outside the grid")
	ErrCellOccupied      = errors.New("cell already holds a tile")
	ErrNoAdjacentTile    = errors.New("tile must touch an existing tile")
	ErrEmptyCell         = errors.New("no tile at that position")
	ErrTileHasMarker     = errors.New("tile already holds a wildlife token")
	ErrSpeciesNotAllowed = errors.New("wildlife not allowed on this tile")
	ErrUnknownVariant    = errors.New("unknown scoring variant")
	ErrUnknownTopology   = errors.New("unknown grid topology")
	ErrTooFewPlayers     = errors.New("need at least 1 player")
	ErrTooManyPlayers    = errors.New("max 4 players")
)
