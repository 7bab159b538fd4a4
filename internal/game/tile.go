package game

import "fmt"

// Tile is a habitat tile. A drawn tile carries one wildlife marker which
// leaves the tile as soon as the tile is placed on a grid. Afterwards the
// tile can receive exactly one marker among its allowed species.
type Tile struct {
	Habitat Habitat    `json:"habitat"`
	Marker  Wildlife   `json:"marker"`
	Allowed []Wildlife `json:"allowed"`
}

// NewTile creates a tile with a pre-attached marker and its allowed species.
func NewTile(habitat Habitat, marker Wildlife, allowed ...Wildlife) *Tile {
	t := &Tile{Habitat: habitat, Marker: marker}
	for _, w := range allowed {
		t.Allow(w)
	}
	return t
}

// Clone returns an independent copy of the tile.
func (t *Tile) Clone() *Tile {
	c := &Tile{Habitat: t.Habitat, Marker: t.Marker}
	if len(t.Allowed) > 0 {
		c.Allowed = make([]Wildlife, len(t.Allowed))
		copy(c.Allowed, t.Allowed)
	}
	return c
}

// Allow adds a species to the allowed list, ignoring duplicates.
func (t *Tile) Allow(w Wildlife) {
	if w == WildlifeNone || t.Allows(w) {
		return
	}
	t.Allowed = append(t.Allowed, w)
}

// Allows returns true if the species may still be placed on this tile.
func (t *Tile) Allows(w Wildlife) bool {
	for _, a := range t.Allowed {
		if a == w {
			return true
		}
	}
	return false
}

// HasMarker returns true if a wildlife token sits on the tile.
func (t *Tile) HasMarker() bool {
	return t.Marker != WildlifeNone
}

// PlaceMarker puts a wildlife token on the tile. On success the allowed
// list is exhausted, whichever species was placed.
func (t *Tile) PlaceMarker(w Wildlife) error {
	if t.HasMarker() {
		return ErrTileHasMarker
	}
	if !t.Allows(w) {
		return ErrSpeciesNotAllowed
	}
	t.Marker = w
	t.Allowed = nil
	return nil
}

// detachMarker removes and returns the tile's marker.
func (t *Tile) detachMarker() Wildlife {
	w := t.Marker
	t.Marker = WildlifeNone
	return w
}

// String returns a short description of the tile.
func (t *Tile) String() string {
	if t.HasMarker() {
		return fmt.Sprintf("%s(%s)", t.Habitat, t.Marker)
	}
	return fmt.Sprintf("%s%v", t.Habitat, t.Allowed)
}

// IsPlaceable returns true if some tile on the grid still accepts the
// tile's marker. Habitat adjacency is not considered.
func IsPlaceable(g *Grid, t *Tile) bool {
	if t == nil || !t.HasMarker() {
		return false
	}
	return g.Accepts(t.Marker)
}

// maxSameMarker returns the highest number of tiles sharing one marker species.
func maxSameMarker(tiles []*Tile) int {
	counts := make(map[Wildlife]int)
	best := 0
	for _, t := range tiles {
		if t == nil {
			continue
		}
		counts[t.Marker]++
		if counts[t.Marker] > best {
			best = counts[t.Marker]
		}
	}
	return best
}
