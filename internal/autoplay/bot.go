// Package autoplay drives games without a human at the keyboard. Bots pick
// their moves through the same turn API a presentation layer uses.
package autoplay

import (
	"errors"
	"math/rand"

	"cascadia/internal/game"
)

// ErrNoLegalMove is returned when a bot cannot find any complete move.
var ErrNoLegalMove = errors.New("no legal move")

// Move is one complete turn: a batch pick, a tile cell and a marker cell.
type Move struct {
	TileIndex int
	Tile      game.Position
	Marker    game.Position
}

// Bot chooses a move for a player.
type Bot interface {
	Decide(g *game.GameState, playerID string) (Move, error)
}

// NewBot returns a bot for the personality. Unknown personalities get a
// greedy bot.
func NewBot(p game.AIPersonality, rng *rand.Rand) Bot {
	if p == game.AIRandom {
		return &RandomBot{rng: rng}
	}
	return &GreedyBot{}
}

// candidate is a legal move together with the grid it would produce.
type candidate struct {
	move Move
	grid *game.Grid
}

// candidates enumerates every legal complete move for the player.
func candidates(g *game.GameState, playerID string) []candidate {
	grid := g.GridFor(playerID)
	var out []candidate

	for i, tile := range g.Batch {
		if tile == nil || !game.IsPlaceable(grid, tile) {
			continue
		}
		for _, cell := range grid.FreeCells() {
			placed := grid.Clone()
			marker, err := placed.Place(tile.Clone(), cell.Col, cell.Row, false)
			if err != nil {
				continue
			}
			for _, target := range placed.MarkerCells(marker) {
				final := placed.Clone()
				if err := final.PlaceMarker(target.Col, target.Row, marker); err != nil {
					continue
				}
				out = append(out, candidate{
					move: Move{TileIndex: i, Tile: cell, Marker: target},
					grid: final,
				})
			}
		}
	}
	return out
}

// RandomBot picks uniformly among legal moves.
type RandomBot struct {
	rng *rand.Rand
}

// Decide implements Bot.
func (b *RandomBot) Decide(g *game.GameState, playerID string) (Move, error) {
	moves := candidates(g, playerID)
	if len(moves) == 0 {
		return Move{}, ErrNoLegalMove
	}
	return moves[b.rng.Intn(len(moves))].move, nil
}

// GreedyBot picks the move that maximises its own wildlife and habitat
// score. Earlier moves win ties.
type GreedyBot struct{}

// Decide implements Bot.
func (b *GreedyBot) Decide(g *game.GameState, playerID string) (Move, error) {
	moves := candidates(g, playerID)
	if len(moves) == 0 {
		return Move{}, ErrNoLegalMove
	}

	scoring := g.Scoring()
	best := 0
	bestPoints := -1
	for i, c := range moves {
		points := scoring.WildlifeScore(c.grid) + scoring.HabitatScore(c.grid)
		if points > bestPoints {
			best = i
			bestPoints = points
		}
	}
	return moves[best].move, nil
}
