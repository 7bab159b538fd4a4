package autoplay

import (
	"fmt"
	"log/slog"

	"cascadia/internal/game"
)

// Turn records a completed turn.
type Turn struct {
	Round    int
	PlayerID string
	Tile     string // Tile as drawn, before its marker was taken
	Move     Move
	Wildlife game.Wildlife
}

// Runner plays a game to the end with one bot per player.
type Runner struct {
	Bots   map[string]Bot // Player ID -> bot
	Logger *slog.Logger
	OnTurn func(Turn) // Optional
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(bots map[string]Bot, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{Bots: bots, Logger: logger}
}

// Play runs turns until the game is over. Scores are final on return.
func (r *Runner) Play(g *game.GameState) error {
	for !g.IsGameOver() {
		if err := r.PlayTurn(g); err != nil {
			return err
		}
	}

	winner := g.DetermineWinner()
	attrs := []any{"game", g.ID, "round", g.Round, "reason", g.EndReason}
	if winner != nil {
		attrs = append(attrs, "winner", winner.Name, "score", winner.Score.Total())
	} else {
		attrs = append(attrs, "winner", "tie")
	}
	r.Logger.Info("game finished", attrs...)
	return nil
}

// PlayTurn lets the current player's bot take one complete turn.
func (r *Runner) PlayTurn(g *game.GameState) error {
	pid := g.CurrentPlayerID
	round := g.Round
	bot, ok := r.Bots[pid]
	if !ok {
		return fmt.Errorf("no bot for player %s", pid)
	}

	move, err := bot.Decide(g, pid)
	if err != nil {
		return fmt.Errorf("player %s: %w", pid, err)
	}

	tile := g.Batch[move.TileIndex].String()
	if err := g.ChooseTile(pid, move.TileIndex); err != nil {
		return fmt.Errorf("choose tile %d: %w", move.TileIndex, err)
	}
	if err := g.PlaceTile(pid, move.Tile.Col, move.Tile.Row); err != nil {
		return fmt.Errorf("place tile at (%d,%d): %w", move.Tile.Col, move.Tile.Row, err)
	}
	marker := g.PendingMarker
	if err := g.PlaceMarker(pid, move.Marker.Col, move.Marker.Row); err != nil {
		return fmt.Errorf("place %s at (%d,%d): %w", marker, move.Marker.Col, move.Marker.Row, err)
	}

	r.Logger.Debug("turn",
		"player", g.Players[pid].Name,
		"tile", tile,
		"at", move.Tile,
		"wildlife", marker.String(),
		"on", move.Marker,
	)
	if r.OnTurn != nil {
		r.OnTurn(Turn{Round: round, PlayerID: pid, Tile: tile, Move: move, Wildlife: marker})
	}
	return nil
}
