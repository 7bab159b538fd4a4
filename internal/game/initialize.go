package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// NewGame creates a game for human players with a freshly shuffled deck.
func NewGame(settings Settings, names []string, rng *rand.Rand) (*GameState, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(uuid.New().String(), name)
	}
	return InitializeGame(players, settings, NewDeck(settings.DeckSize, rng))
}

// InitializeGame creates a new game state from players and a tile supply.
// Each player gets a grid with the three starting tiles drawn from the
// deck, then the first batch is drawn for the first player.
func InitializeGame(players []*Player, settings Settings, deck *Deck) (*GameState, error) {
	if len(players) < 1 {
		return nil, ErrTooFewPlayers
	}
	if len(players) > MaxPlayers {
		return nil, ErrTooManyPlayers
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	scoring, err := NewScoring(settings.Variant)
	if err != nil {
		return nil, err
	}
	if len(settings.FamilyCurve) > 0 {
		scoring.Family = settings.FamilyCurve
	}

	state := &GameState{
		ID:       uuid.New().String(),
		Settings: settings,
		Round:    1,
		Phase:    PhaseChooseTile,
		Players:  make(map[string]*Player),
		Grids:    make(map[string]*Grid),
		Chosen:   -1,
		deck:     deck,
		scoring:  scoring,
	}

	state.PlayerOrder = make([]string, len(players))
	for i, p := range players {
		if _, dup := state.Players[p.ID]; dup {
			return nil, fmt.Errorf("duplicate player id %q", p.ID)
		}
		state.Players[p.ID] = p
		state.PlayerOrder[i] = p.ID

		grid, err := newStartingGrid(settings, p.ID, deck)
		if err != nil {
			return nil, err
		}
		state.Grids[p.ID] = grid
	}
	state.CurrentPlayerID = state.PlayerOrder[0]

	state.beginTurn()
	return state, nil
}

// newStartingGrid creates a grid holding the L-shaped starting tiles.
func newStartingGrid(settings Settings, owner string, deck *Deck) (*Grid, error) {
	grid := NewGrid(settings.GridSize, owner, settings.Topology)
	for _, pos := range StarterPositions {
		drawn := deck.Draw(1)
		if len(drawn) == 0 {
			return nil, fmt.Errorf("deck too small to deal starting tiles")
		}
		if _, err := grid.Place(drawn[0], pos.Col, pos.Row, true); err != nil {
			return nil, fmt.Errorf("place starting tile at (%d,%d): %w", pos.Col, pos.Row, err)
		}
	}
	return grid, nil
}

// Validate rejects settings no game can be played with.
func (s Settings) Validate() error {
	if !s.Variant.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownVariant, int(s.Variant))
	}
	if s.Topology != TopologySquare && s.Topology != TopologyHex {
		return fmt.Errorf("%w: %d", ErrUnknownTopology, int(s.Topology))
	}
	if s.GridSize < 2 {
		return fmt.Errorf("grid size must be at least 2, got %d", s.GridSize)
	}
	if s.DeckSize < 1 {
		return fmt.Errorf("deck size must be at least 1, got %d", s.DeckSize)
	}
	if s.MaxRounds < 1 {
		return fmt.Errorf("max rounds must be at least 1, got %d", s.MaxRounds)
	}
	return nil
}
