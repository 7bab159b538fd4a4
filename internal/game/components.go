package game

// KeyFunc extracts the grouping key of a tile. Tiles for which ok is false
// belong to no group.
type KeyFunc[K comparable] func(t *Tile) (key K, ok bool)

// HabitatKey groups tiles by habitat.
func HabitatKey(t *Tile) (Habitat, bool) {
	return t.Habitat, t.Habitat != HabitatNone
}

// WildlifeKey groups tiles by marker species. Tiles without a marker
// belong to no group.
func WildlifeKey(t *Tile) (Wildlife, bool) {
	return t.Marker, t.HasMarker()
}

// ConnectedComponents flood fills the grid and returns, for each key, the
// sizes of its connected groups. Two adjacent tiles share a group when
// both have a key and the keys are equal. Every tile is visited once.
func ConnectedComponents[K comparable](g *Grid, key KeyFunc[K]) map[K][]int {
	groups := make(map[K][]int)
	visited := make([][]bool, g.Size)
	for row := range visited {
		visited[row] = make([]bool, g.Size)
	}

	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			t := g.Cells[row][col]
			if t == nil || visited[row][col] {
				continue
			}
			k, ok := key(t)
			if !ok {
				visited[row][col] = true
				continue
			}
			groups[k] = append(groups[k], floodFill(g, col, row, k, key, visited))
		}
	}
	return groups
}

// floodFill counts the tiles connected to a start cell that share its key.
func floodFill[K comparable](g *Grid, startCol, startRow int, k K, key KeyFunc[K], visited [][]bool) int {
	size := 0
	stack := []Position{{startCol, startRow}}
	visited[startRow][startCol] = true

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++

		for _, p := range g.neighbors(current.Col, current.Row) {
			if visited[p.Row][p.Col] {
				continue
			}
			t := g.Cells[p.Row][p.Col]
			if t == nil {
				continue
			}
			if nk, ok := key(t); ok && nk == k {
				visited[p.Row][p.Col] = true
				stack = append(stack, p)
			}
		}
	}
	return size
}

// HabitatGroups returns the group sizes of every habitat on the grid.
func (g *Grid) HabitatGroups() map[Habitat][]int {
	return ConnectedComponents(g, HabitatKey)
}

// WildlifeGroups returns the group sizes of every species on the grid.
func (g *Grid) WildlifeGroups() map[Wildlife][]int {
	return ConnectedComponents(g, WildlifeKey)
}

// LargestHabitatGroups returns the largest group size of each habitat,
// 0 for habitats absent from the grid.
func (g *Grid) LargestHabitatGroups() map[Habitat]int {
	largest := make(map[Habitat]int, len(AllHabitats()))
	for _, h := range AllHabitats() {
		largest[h] = 0
	}
	for h, sizes := range g.HabitatGroups() {
		for _, s := range sizes {
			if s > largest[h] {
				largest[h] = s
			}
		}
	}
	return largest
}
