package protocol

import "cascadia/internal/game"

// ==================== Game Flow Payloads ====================

// GameSettings describes the rules a game was played with.
type GameSettings struct {
	Variant        string `json:"variant"`
	Topology       string `json:"topology"`
	GridSize       int    `json:"grid_size"`
	MaxRounds      int    `json:"max_rounds"`
	RedrawOnTriple bool   `json:"redraw_on_triple"`
}

// PlayerInfo identifies a player taking part.
type PlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Bot  string `json:"bot,omitempty"` // Personality name for AI players
}

// GameStartedPayload is sent once the starting grids are dealt.
type GameStartedPayload struct {
	GameID   string       `json:"game_id"`
	Settings GameSettings `json:"settings"`
	Players  []PlayerInfo `json:"players"`
	Deck     int          `json:"deck"` // Tiles left after the deal
}

// TurnPlayedPayload is sent after each completed turn.
type TurnPlayedPayload struct {
	GameID   string        `json:"game_id"`
	Round    int           `json:"round"`
	PlayerID string        `json:"player_id"`
	Tile     string        `json:"tile"`
	TileAt   game.Position `json:"tile_at"`
	Wildlife string        `json:"wildlife"`
	MarkerAt game.Position `json:"marker_at"`
}

// PlayerResult is one player's final score breakdown.
type PlayerResult struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Wildlife int    `json:"wildlife"`
	Habitat  int    `json:"habitat"`
	Bonus    int    `json:"bonus"`
	Total    int    `json:"total"`
}

// GameEndedPayload is sent when the game concludes.
type GameEndedPayload struct {
	GameID   string         `json:"game_id"`
	Reason   string         `json:"reason"`
	Round    int            `json:"round"`
	WinnerID string         `json:"winner_id,omitempty"` // Empty on a tie
	Results  []PlayerResult `json:"results"`
}

// ==================== Builders ====================

func settingsInfo(s game.Settings) GameSettings {
	return GameSettings{
		Variant:        s.Variant.String(),
		Topology:       s.Topology.String(),
		GridSize:       s.GridSize,
		MaxRounds:      s.MaxRounds,
		RedrawOnTriple: s.RedrawOnTriple,
	}
}

// NewGameStarted describes a freshly initialized game.
func NewGameStarted(g *game.GameState) GameStartedPayload {
	players := make([]PlayerInfo, 0, len(g.PlayerOrder))
	for _, id := range g.PlayerOrder {
		p := g.Players[id]
		info := PlayerInfo{ID: p.ID, Name: p.Name}
		if p.IsAI {
			info.Bot = p.AIPersonality.String()
		}
		players = append(players, info)
	}
	return GameStartedPayload{
		GameID:   g.ID,
		Settings: settingsInfo(g.Settings),
		Players:  players,
		Deck:     g.DeckRemaining(),
	}
}

// NewGameEnded describes a finished game. Scores must already be final.
func NewGameEnded(g *game.GameState) GameEndedPayload {
	payload := GameEndedPayload{
		GameID: g.ID,
		Reason: string(g.EndReason),
		Round:  g.Round,
	}
	if w := g.DetermineWinner(); w != nil {
		payload.WinnerID = w.ID
	}
	for _, id := range g.PlayerOrder {
		p := g.Players[id]
		payload.Results = append(payload.Results, PlayerResult{
			ID:       p.ID,
			Name:     p.Name,
			Wildlife: p.Score.Wildlife,
			Habitat:  p.Score.Habitat,
			Bonus:    p.Score.Bonus,
			Total:    p.Score.Total(),
		})
	}
	return payload
}
