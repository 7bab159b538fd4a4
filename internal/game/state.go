// Package game contains the rules engine: grids, tiles, the tile supply,
// connected-region scoring and the turn loop. It performs no I/O so any
// presentation layer can drive it.
package game

// Game-wide constants.
const (
	BatchSize        = 4
	DefaultMaxRounds = 20
	MaxPlayers       = 4
)

// GameState represents the complete state of a game.
type GameState struct {
	ID              string             `json:"id"`
	Settings        Settings           `json:"settings"`
	Round           int                `json:"round"`
	Phase           Phase              `json:"phase"`
	CurrentPlayerID string             `json:"currentPlayerId"`
	PlayerOrder     []string           `json:"playerOrder"`
	Players         map[string]*Player `json:"players"`
	Grids           map[string]*Grid   `json:"grids"`         // Player ID -> grid
	Batch           []*Tile            `json:"batch"`         // Tiles on offer
	Chosen          int                `json:"chosen"`        // Batch index picked this turn, -1 if none
	PendingMarker   Wildlife           `json:"pendingMarker"` // Token detached from the placed tile
	EndReason       EndReason          `json:"endReason,omitempty"`

	deck    *Deck
	scoring Scoring
}

// Settings contains the configurable game parameters.
type Settings struct {
	Variant        Variant  `json:"variant"`
	Topology       Topology `json:"topology"`
	GridSize       int      `json:"gridSize"`
	DeckSize       int      `json:"deckSize"`
	MaxRounds      int      `json:"maxRounds"`
	RedrawOnTriple bool     `json:"redrawOnTriple"`
	FamilyCurve    Curve    `json:"familyCurve,omitempty"` // Overrides the family variant table
}

// DefaultSettings returns the standard game setup.
func DefaultSettings() Settings {
	return Settings{
		Variant:   VariantStandard,
		Topology:  TopologySquare,
		GridSize:  DefaultGridSize,
		DeckSize:  DefaultDeckSize,
		MaxRounds: DefaultMaxRounds,
	}
}

// Phase is the step of the current turn.
type Phase int

const (
	PhaseChooseTile Phase = iota
	PhasePlaceTile
	PhasePlaceMarker
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseChooseTile:
		return "Choose Tile"
	case PhasePlaceTile:
		return "Place Tile"
	case PhasePlaceMarker:
		return "Place Wildlife"
	case PhaseGameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}

// EndReason records why a game stopped.
type EndReason string

const (
	EndSupplyExhausted EndReason = "supply_exhausted"
	EndRoundLimit      EndReason = "round_limit"
	EndNoValidBatch    EndReason = "no_valid_batch"
	EndGridFull        EndReason = "grid_full"
)

// GetCurrentPlayer returns the player whose turn it is.
func (g *GameState) GetCurrentPlayer() *Player {
	return g.Players[g.CurrentPlayerID]
}

// GridFor returns a player's grid.
func (g *GameState) GridFor(playerID string) *Grid {
	return g.Grids[playerID]
}

// Scoring returns the scoring rules in use.
func (g *GameState) Scoring() Scoring {
	return g.scoring
}

// DeckRemaining returns the number of tiles left in the supply.
func (g *GameState) DeckRemaining() int {
	return g.deck.Remaining()
}

// ChosenTile returns the tile picked this turn, or nil.
func (g *GameState) ChosenTile() *Tile {
	if g.Chosen < 0 || g.Chosen >= len(g.Batch) {
		return nil
	}
	return g.Batch[g.Chosen]
}

// IsGameOver checks if the game has ended.
func (g *GameState) IsGameOver() bool {
	return g.Phase == PhaseGameOver
}

// CalculateAllScores recomputes every player's score. The majority bonus
// is compared against each opponent in turn and summed.
func (g *GameState) CalculateAllScores() {
	for _, id := range g.PlayerOrder {
		player := g.Players[id]
		grid := g.Grids[id]

		score := Score{
			Wildlife: g.scoring.WildlifeScore(grid),
			Habitat:  g.scoring.HabitatScore(grid),
		}
		for _, otherID := range g.PlayerOrder {
			if otherID == id {
				continue
			}
			score.Bonus += g.scoring.MajorityBonus(grid, g.Grids[otherID])[id]
		}
		player.Score = score
	}
}

// DetermineWinner returns the player with the strictly greatest total, or
// nil on a tie for the top score.
func (g *GameState) DetermineWinner() *Player {
	players := make([]*Player, 0, len(g.PlayerOrder))
	for _, id := range g.PlayerOrder {
		players = append(players, g.Players[id])
	}
	return DetermineWinner(players)
}

// DetermineWinner returns the player with the strictly greatest total, or
// nil if the top score is shared or there are no players.
func DetermineWinner(players []*Player) *Player {
	if len(players) == 0 {
		return nil
	}
	winner := players[0]
	tie := false
	for _, p := range players[1:] {
		switch {
		case p.Score.Total() > winner.Score.Total():
			winner = p
			tie = false
		case p.Score.Total() == winner.Score.Total():
			tie = true
		}
	}
	if tie {
		return nil
	}
	return winner
}
