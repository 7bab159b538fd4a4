package game

import (
	"strings"
	"testing"
)

var habitatLetters = map[byte]string{
	'F': "forest",
	'R': "river",
	'P': "prairie",
	'W': "wetland",
	'M': "mountain",
}

var wildlifeLetters = map[byte]string{
	'b': "bear",
	'h': "hawk",
	'e': "elk",
	'f': "fox",
	's': "salmon",
}

// buildGrid creates a grid from rows of space separated cells. A cell is
// "." for empty, a habitat letter, or a habitat letter followed by a
// wildlife letter, e.g. "Fb" for a forest holding a bear.
func buildGrid(t *testing.T, topology Topology, rows ...string) *Grid {
	t.Helper()
	g := NewGrid(len(rows), "owner", topology)
	for r, line := range rows {
		cells := strings.Fields(line)
		if len(cells) != len(rows) {
			t.Fatalf("row %d has %d cells, want %d", r, len(cells), len(rows))
		}
		for c, cell := range cells {
			if cell == "." {
				continue
			}
			h := ParseHabitat(habitatLetters[cell[0]])
			if h == HabitatNone {
				t.Fatalf("bad habitat in cell %q", cell)
			}
			tile := &Tile{Habitat: h}
			if len(cell) > 1 {
				w := ParseWildlife(wildlifeLetters[cell[1]])
				if w == WildlifeNone {
					t.Fatalf("bad wildlife in cell %q", cell)
				}
				tile.Marker = w
			}
			g.Cells[r][c] = tile
		}
	}
	return g
}

// newTile is shorthand for a drawn tile.
func newTile(h Habitat, marker Wildlife, allowed ...Wildlife) *Tile {
	return NewTile(h, marker, allowed...)
}
