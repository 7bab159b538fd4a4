package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Variant selects the wildlife point curves used at game end.
type Variant int

const (
	VariantFamily       Variant = 1
	VariantIntermediate Variant = 2
	VariantStandard     Variant = 3
)

// AllVariants returns every scoring variant.
func AllVariants() []Variant {
	return []Variant{VariantFamily, VariantIntermediate, VariantStandard}
}

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantFamily:
		return "family"
	case VariantIntermediate:
		return "intermediate"
	case VariantStandard:
		return "standard"
	default:
		return "unknown"
	}
}

// Valid returns true for the three known variants.
func (v Variant) Valid() bool {
	return v >= VariantFamily && v <= VariantStandard
}

// VariantFromID maps a variant number (1, 2 or 3) to a Variant.
func VariantFromID(id int) (Variant, error) {
	v := Variant(id)
	if !v.Valid() {
		return 0, fmt.Errorf("%w: %d (must be between 1 and 3)", ErrUnknownVariant, id)
	}
	return v, nil
}

// ParseVariant accepts a variant number or name.
func ParseVariant(s string) (Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if id, err := strconv.Atoi(s); err == nil {
		return VariantFromID(id)
	}
	for _, v := range AllVariants() {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Curve maps a count to points. Counts past the end of the table score
// the last entry.
type Curve []int

// Points returns the points for n.
func (c Curve) Points(n int) int {
	if len(c) == 0 || n <= 0 {
		return 0
	}
	if n >= len(c) {
		return c[len(c)-1]
	}
	return c[n]
}

// Point curves, indexed by group size or count.
var (
	ElkCurve          = Curve{0, 2, 4, 7, 10, 14, 18, 23, 28}
	SalmonCurve       = Curve{0, 2, 5, 8, 12, 16, 20, 25}
	BearPairCurve     = Curve{0, 4, 11, 19, 27}
	HawkSingleCurve   = Curve{0, 2, 5, 8, 11, 14, 18, 22, 26}
	IntermediateCurve = Curve{0, 0, 5, 8, 12}
	FamilyCurve       = Curve{0, 2, 5, 9}
)

// foxCurve has one entry per possible count of distinct neighbour species.
var foxCurve = Curve{0, 1, 2, 3, 4, 5}

// Scoring computes end-of-game points for one variant.
type Scoring struct {
	Variant Variant
	Family  Curve // Group-size curve of the family variant
}

// NewScoring returns the scoring rules of a variant.
func NewScoring(v Variant) (Scoring, error) {
	if !v.Valid() {
		return Scoring{}, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	return Scoring{Variant: v, Family: FamilyCurve}, nil
}

// WildlifeScore returns the wildlife points of a grid.
func (s Scoring) WildlifeScore(g *Grid) int {
	switch s.Variant {
	case VariantFamily:
		family := s.Family
		if len(family) == 0 {
			family = FamilyCurve
		}
		return flatWildlifeScore(g, family)
	case VariantIntermediate:
		return flatWildlifeScore(g, IntermediateCurve)
	case VariantStandard:
		return standardWildlifeScore(g)
	default:
		panic(fmt.Sprintf("game: scoring with invalid variant %d", int(s.Variant)))
	}
}

// HabitatScore returns the sum of the largest group of each habitat.
func (s Scoring) HabitatScore(g *Grid) int {
	total := 0
	for _, size := range g.LargestHabitatGroups() {
		total += size
	}
	return total
}

// MajorityBonus compares the largest habitat groups of two grids. The
// strictly larger side gets 2 points per habitat, a tie gives 1 to each.
// The result is keyed by grid owner.
func (s Scoring) MajorityBonus(a, b *Grid) map[string]int {
	bonus := map[string]int{a.Owner: 0, b.Owner: 0}
	la, lb := a.LargestHabitatGroups(), b.LargestHabitatGroups()

	for _, h := range AllHabitats() {
		switch {
		case la[h] > lb[h]:
			bonus[a.Owner] += 2
		case lb[h] > la[h]:
			bonus[b.Owner] += 2
		default:
			bonus[a.Owner]++
			bonus[b.Owner]++
		}
	}
	return bonus
}

// flatWildlifeScore applies one group-size curve to every group.
func flatWildlifeScore(g *Grid, curve Curve) int {
	total := 0
	for _, sizes := range g.WildlifeGroups() {
		for _, size := range sizes {
			total += curve.Points(size)
		}
	}
	return total
}

func standardWildlifeScore(g *Grid) int {
	total := 0
	bearPairs := 0
	singleHawks := 0

	for w, sizes := range g.WildlifeGroups() {
		for _, size := range sizes {
			switch w {
			case WildlifeElk:
				total += ElkCurve.Points(size)
			case WildlifeSalmon:
				total += SalmonCurve.Points(size)
			case WildlifeBear:
				if size == 2 {
					bearPairs++
				}
			case WildlifeHawk:
				if size == 1 {
					singleHawks++
				}
			}
		}
	}

	total += BearPairCurve.Points(bearPairs)
	total += HawkSingleCurve.Points(singleHawks)
	total += foxScore(g)
	return total
}

// foxScore gives each fox one point per distinct species around it.
func foxScore(g *Grid) int {
	total := 0
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			t := g.Cells[row][col]
			if t == nil || t.Marker != WildlifeFox {
				continue
			}
			n := g.SpeciesDiversityAround(col, row)
			// The table holds one entry per species that exists.
			if n >= len(foxCurve) {
				panic(fmt.Sprintf("game: fox at (%d,%d) sees %d species, only %d exist", col, row, n, len(foxCurve)-1))
			}
			total += foxCurve[n]
		}
	}
	return total
}
