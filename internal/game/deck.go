package game

import "math/rand"

// DefaultDeckSize is the number of tiles generated for a game.
const DefaultDeckSize = 1000

// Deck is the shared tile supply. It is shuffled once and drained from
// the front; drawn tiles are never returned.
type Deck struct {
	tiles []*Tile
}

// NewDeck generates size random tiles and shuffles them. Each tile gets a
// random habitat, a random marker and two distinct allowed species.
// A negative size yields an empty deck.
func NewDeck(size int, rng *rand.Rand) *Deck {
	size = max(size, 0)
	habitats := AllHabitats()
	species := AllWildlife()

	d := &Deck{tiles: make([]*Tile, 0, size)}
	for i := 0; i < size; i++ {
		t := &Tile{
			Habitat: habitats[rng.Intn(len(habitats))],
			Marker:  species[rng.Intn(len(species))],
		}
		for len(t.Allowed) < 2 {
			t.Allow(species[rng.Intn(len(species))])
		}
		d.tiles = append(d.tiles, t)
	}

	rng.Shuffle(len(d.tiles), func(i, j int) {
		d.tiles[i], d.tiles[j] = d.tiles[j], d.tiles[i]
	})
	return d
}

// NewDeckFromTiles creates a deck that serves the given tiles in order.
func NewDeckFromTiles(tiles []*Tile) *Deck {
	d := &Deck{tiles: make([]*Tile, len(tiles))}
	copy(d.tiles, tiles)
	return d
}

// Draw removes up to n tiles from the front of the supply and returns
// copies of them. An exhausted supply yields fewer tiles, possibly none.
func (d *Deck) Draw(n int) []*Tile {
	if n > len(d.tiles) {
		n = len(d.tiles)
	}
	if n <= 0 {
		return []*Tile{}
	}
	drawn := make([]*Tile, n)
	for i, t := range d.tiles[:n] {
		drawn[i] = t.Clone()
		d.tiles[i] = nil
	}
	d.tiles = d.tiles[n:]
	return drawn
}

// Remaining returns the number of tiles left in the supply.
func (d *Deck) Remaining() int {
	return len(d.tiles)
}

// Empty returns true if the supply is exhausted.
func (d *Deck) Empty() bool {
	return len(d.tiles) == 0
}
