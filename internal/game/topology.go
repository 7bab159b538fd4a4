package game

import "strings"

// Topology is the adjacency rule set of a grid.
type Topology int

const (
	TopologySquare Topology = iota // 8 neighbours
	TopologyHex                    // 6 neighbours, column-parity offsets
)

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case TopologyHex:
		return "hex"
	default:
		return "square"
	}
}

// ParseTopology converts a topology name to Topology.
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square", "":
		return TopologySquare, nil
	case "hex", "hexagon":
		return TopologyHex, nil
	default:
		return TopologySquare, ErrUnknownTopology
	}
}

// Position is a cell on a grid.
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Offset is a relative move from one cell to a neighbour.
type Offset struct {
	DCol int
	DRow int
}

var squareOffsets = []Offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Odd and even columns are vertically shifted against each other, so the
// parity of the queried column picks the table.
var hexOddOffsets = []Offset{
	{1, 1}, {1, 0},
	{0, -1}, {-1, 0},
	{-1, 1}, {0, 1},
}

var hexEvenOffsets = []Offset{
	{1, 0}, {1, -1},
	{0, -1}, {-1, -1},
	{-1, 0}, {0, 1},
}

// Neighbors returns the neighbour offsets of the cell at (col, row).
// Offsets are not clipped to any grid; callers check bounds.
// The returned slice is shared and must not be modified.
func Neighbors(t Topology, col, row int) []Offset {
	if t != TopologyHex {
		return squareOffsets
	}
	if col%2 != 0 {
		return hexOddOffsets
	}
	return hexEvenOffsets
}
