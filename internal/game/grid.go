package game

import (
	"fmt"
	"strings"
)

// DefaultGridSize is the side length of a player's grid.
const DefaultGridSize = 5

// StarterPositions are the cells of the L-shaped starting tiles.
var StarterPositions = []Position{{0, 0}, {0, 1}, {1, 0}}

// Grid is one player's square matrix of optional tiles.
type Grid struct {
	Owner    string    `json:"owner"` // Player ID
	Size     int       `json:"size"`
	Topology Topology  `json:"topology"`
	Cells    [][]*Tile `json:"cells"` // Indexed [row][col], nil if empty
}

// NewGrid creates an empty grid.
func NewGrid(size int, owner string, topology Topology) *Grid {
	cells := make([][]*Tile, size)
	for row := range cells {
		cells[row] = make([]*Tile, size)
	}
	return &Grid{
		Owner:    owner,
		Size:     size,
		Topology: topology,
		Cells:    cells,
	}
}

// InBounds returns true if the position is on the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Size && row >= 0 && row < g.Size
}

// TileAt returns the tile at the position, or nil if empty or out of bounds.
func (g *Grid) TileAt(col, row int) *Tile {
	if !g.InBounds(col, row) {
		return nil
	}
	return g.Cells[row][col]
}

// neighbors returns the in-bounds neighbour positions of a cell.
func (g *Grid) neighbors(col, row int) []Position {
	offsets := Neighbors(g.Topology, col, row)
	out := make([]Position, 0, len(offsets))
	for _, o := range offsets {
		nc, nr := col+o.DCol, row+o.DRow
		if g.InBounds(nc, nr) {
			out = append(out, Position{nc, nr})
		}
	}
	return out
}

// HasOccupiedNeighbor returns true if any neighbour of the cell holds a tile.
func (g *Grid) HasOccupiedNeighbor(col, row int) bool {
	for _, p := range g.neighbors(col, row) {
		if g.Cells[p.Row][p.Col] != nil {
			return true
		}
	}
	return false
}

// CanPlace reports whether a non-starting tile could go at the position.
func (g *Grid) CanPlace(col, row int) error {
	if !g.InBounds(col, row) {
		return ErrOutOfBounds
	}
	if g.Cells[row][col] != nil {
		return ErrCellOccupied
	}
	if !g.HasOccupiedNeighbor(col, row) {
		return ErrNoAdjacentTile
	}
	return nil
}

// Place puts a tile on the grid. Starting tiles skip the adjacency rule.
// The tile's marker is detached and returned so the caller can place it
// separately; the tile itself keeps only its allowed species.
func (g *Grid) Place(t *Tile, col, row int, starting bool) (Wildlife, error) {
	if !g.InBounds(col, row) {
		return WildlifeNone, ErrOutOfBounds
	}
	if g.Cells[row][col] != nil {
		return WildlifeNone, ErrCellOccupied
	}
	if !starting && !g.HasOccupiedNeighbor(col, row) {
		return WildlifeNone, ErrNoAdjacentTile
	}
	marker := t.detachMarker()
	g.Cells[row][col] = t
	return marker, nil
}

// PlaceMarker puts a wildlife token on the tile at the position.
func (g *Grid) PlaceMarker(col, row int, w Wildlife) error {
	if !g.InBounds(col, row) {
		return ErrOutOfBounds
	}
	t := g.Cells[row][col]
	if t == nil {
		return ErrEmptyCell
	}
	return t.PlaceMarker(w)
}

// Accepts returns true if any tile on the grid still allows the species.
func (g *Grid) Accepts(w Wildlife) bool {
	for _, row := range g.Cells {
		for _, t := range row {
			if t != nil && t.Allows(w) {
				return true
			}
		}
	}
	return false
}

// FreeCells returns every empty cell a non-starting tile may occupy.
func (g *Grid) FreeCells() []Position {
	var out []Position
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			if g.CanPlace(col, row) == nil {
				out = append(out, Position{col, row})
			}
		}
	}
	return out
}

// MarkerCells returns every tile position that accepts the species.
func (g *Grid) MarkerCells(w Wildlife) []Position {
	var out []Position
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			if t := g.Cells[row][col]; t != nil && !t.HasMarker() && t.Allows(w) {
				out = append(out, Position{col, row})
			}
		}
	}
	return out
}

// TileCount returns the number of occupied cells.
func (g *Grid) TileCount() int {
	n := 0
	for _, row := range g.Cells {
		for _, t := range row {
			if t != nil {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Size, g.Owner, g.Topology)
	for row := range g.Cells {
		for col, t := range g.Cells[row] {
			if t != nil {
				c.Cells[row][col] = t.Clone()
			}
		}
	}
	return c
}

// SpeciesDiversityAround counts the distinct marker species on the
// neighbours of a cell.
func (g *Grid) SpeciesDiversityAround(col, row int) int {
	seen := make(map[Wildlife]bool)
	for _, p := range g.neighbors(col, row) {
		if t := g.Cells[p.Row][p.Col]; t != nil && t.HasMarker() {
			seen[t.Marker] = true
		}
	}
	return len(seen)
}

// Debug returns a text dump of the grid.
func (g *Grid) Debug() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Grid %s (%dx%d, %s)\n", g.Owner, g.Size, g.Size, g.Topology))
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			t := g.Cells[row][col]
			switch {
			case t == nil && g.HasOccupiedNeighbor(col, row):
				sb.WriteString(" <  >")
			case t == nil:
				sb.WriteString("  .  ")
			case t.HasMarker():
				sb.WriteString(fmt.Sprintf(" %c:%c ", t.Habitat.String()[0], t.Marker.String()[0]))
			default:
				sb.WriteString(fmt.Sprintf(" %c:_ ", t.Habitat.String()[0]))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
