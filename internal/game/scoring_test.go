package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScoring(t *testing.T, v Variant) Scoring {
	t.Helper()
	s, err := NewScoring(v)
	require.NoError(t, err)
	return s
}

func TestVariantFromID(t *testing.T) {
	for id, want := range map[int]Variant{1: VariantFamily, 2: VariantIntermediate, 3: VariantStandard} {
		v, err := VariantFromID(id)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	for _, id := range []int{-1, 0, 4, 99} {
		_, err := VariantFromID(id)
		assert.ErrorIs(t, err, ErrUnknownVariant, "id %d", id)
	}
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("Standard")
	require.NoError(t, err)
	assert.Equal(t, VariantStandard, v)

	v, err = ParseVariant(" 2 ")
	require.NoError(t, err)
	assert.Equal(t, VariantIntermediate, v)

	_, err = ParseVariant("expert")
	assert.ErrorIs(t, err, ErrUnknownVariant)

	_, err = NewScoring(Variant(7))
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestCurvePoints(t *testing.T) {
	assert.Equal(t, 0, ElkCurve.Points(0))
	assert.Equal(t, 2, ElkCurve.Points(1))
	assert.Equal(t, 23, ElkCurve.Points(7))
	assert.Equal(t, 28, ElkCurve.Points(8))
	assert.Equal(t, 28, ElkCurve.Points(30))
	assert.Equal(t, 25, SalmonCurve.Points(7))
	assert.Equal(t, 25, SalmonCurve.Points(9))
	assert.Equal(t, 0, Curve(nil).Points(3))
}

func TestHabitatScore_StraightRun(t *testing.T) {
	g := buildGrid(t, TopologySquare,
		". . . . .",
		". . . . .",
		"F F F F .",
		". . . . .",
		". . . . .",
	)
	largest := g.LargestHabitatGroups()
	assert.Equal(t, 4, largest[HabitatForest])
	for _, h := range []Habitat{HabitatRiver, HabitatPrairie, HabitatWetland, HabitatMountain} {
		assert.Equal(t, 0, largest[h], h.String())
	}

	for _, v := range AllVariants() {
		assert.Equal(t, 4, mustScoring(t, v).HabitatScore(g), v.String())
	}
}

func TestHabitatScore_SumsLargestGroups(t *testing.T) {
	g := buildGrid(t, TopologySquare,
		"F F F . F",
		". . . . .",
		"R R . M .",
		". . . . .",
		"W . P P P",
	)
	// Forest 3 (the lone forest is ignored), river 2, mountain 1,
	// wetland 1, prairie 3.
	assert.Equal(t, 10, mustScoring(t, VariantStandard).HabitatScore(g))
}

func TestMajorityBonus_IdenticalGrids(t *testing.T) {
	rows := []string{
		"F F R",
		"M W P",
		". . .",
	}
	a := buildGrid(t, TopologySquare, rows...)
	b := buildGrid(t, TopologySquare, rows...)
	a.Owner, b.Owner = "a", "b"

	bonus := mustScoring(t, VariantStandard).MajorityBonus(a, b)
	assert.Equal(t, map[string]int{"a": 5, "b": 5}, bonus)
}

func TestMajorityBonus_EmptyGridsTie(t *testing.T) {
	a := NewGrid(3, "a", TopologyHex)
	b := NewGrid(3, "b", TopologyHex)
	assert.Equal(t, map[string]int{"a": 5, "b": 5}, mustScoring(t, VariantFamily).MajorityBonus(a, b))
}

func TestMajorityBonus_StrictlyLarger(t *testing.T) {
	a := buildGrid(t, TopologySquare,
		"F F F",
		". . .",
		"R . .",
	)
	b := buildGrid(t, TopologySquare,
		"F F .",
		". . .",
		"R R M",
	)
	a.Owner, b.Owner = "a", "b"

	// Forest to a (2), river to b (2), mountain to b (2), wetland and prairie tie.
	bonus := mustScoring(t, VariantIntermediate).MajorityBonus(a, b)
	assert.Equal(t, 4, bonus["a"])
	assert.Equal(t, 6, bonus["b"])
}

func TestStandardWildlife_BearPair(t *testing.T) {
	s := mustScoring(t, VariantStandard)

	pair := buildGrid(t, TopologySquare,
		"Fb Fb .",
		".  .  .",
		".  .  .",
	)
	assert.Equal(t, BearPairCurve.Points(1), s.WildlifeScore(pair))
	assert.Equal(t, 4, s.WildlifeScore(pair))

	triple := buildGrid(t, TopologySquare,
		"Fb Fb Fb",
		".  .  .",
		".  .  .",
	)
	assert.Equal(t, 0, s.WildlifeScore(triple))

	twoPairs := buildGrid(t, TopologySquare,
		"Fb Fb . .",
		".  .  . .",
		".  .  . .",
		"Fb Fb . .",
	)
	assert.Equal(t, 11, s.WildlifeScore(twoPairs))
}

func TestStandardWildlife_HawkSingles(t *testing.T) {
	s := mustScoring(t, VariantStandard)

	g := buildGrid(t, TopologySquare,
		"Fh .  Fh",
		".  .  .",
		"Fh Fh .",
	)
	// Two isolated hawks on top; the bottom pair is not isolated.
	assert.Equal(t, HawkSingleCurve.Points(2), s.WildlifeScore(g))
	assert.Equal(t, 5, s.WildlifeScore(g))
}

func TestStandardWildlife_ElkAndSalmonCurves(t *testing.T) {
	s := mustScoring(t, VariantStandard)

	g := buildGrid(t, TopologySquare,
		"Fe Fe Fe .  .",
		".  .  .  .  .",
		"Rs Rs Rs Rs Rs",
		"Rs Rs Rs .  .",
		".  .  .  .  .",
	)
	// Elk group of 3 = 7, salmon group of 8 caps at 25.
	assert.Equal(t, 32, s.WildlifeScore(g))
}

func TestFoxScore_DistinctNeighbours(t *testing.T) {
	g := buildGrid(t, TopologySquare,
		"Fb Fh .",
		"Fb Ff .",
		".  Fe Ff",
	)
	// Centre fox sees bear, hawk, elk and fox. Corner fox sees fox and elk.
	assert.Equal(t, 6, foxScore(g))
}

func TestFoxScore_PanicsOnImpossibleDiversity(t *testing.T) {
	g := buildGrid(t, TopologySquare,
		"Fb Fh Fe",
		"Fs Ff Fb",
		"F  F  F",
	)
	g.Cells[2][0].Marker = Wildlife(6)
	g.Cells[2][1].Marker = Wildlife(7)

	assert.Panics(t, func() { foxScore(g) })
}

func TestStandardWildlife_Combined(t *testing.T) {
	g := buildGrid(t, TopologySquare,
		"Fb Fb . .  .",
		".  .  . .  Mh",
		"Ff .  . .  .",
		".  .  . Re Re",
		".  .  . .  .",
	)
	// Bear pair 4, single hawk 2, elk pair 4, lone fox 0.
	assert.Equal(t, 10, mustScoring(t, VariantStandard).WildlifeScore(g))
}

func TestIntermediateWildlife(t *testing.T) {
	g := buildGrid(t, TopologySquare,
		"Fb .  Fh Fh .",
		".  .  .  .  .",
		"Fe Fe Fe .  Ff",
		".  .  .  .  Ff",
		"Rs Rs Rs Rs Ff",
	)
	// Groups: bear 1 -> 0, hawk 2 -> 5, elk 3 -> 8, salmon 4 -> 12, fox 3 -> 8.
	assert.Equal(t, 33, mustScoring(t, VariantIntermediate).WildlifeScore(g))
}

func TestFamilyWildlife(t *testing.T) {
	g := buildGrid(t, TopologySquare,
		"Fb .  Fh Fh",
		".  .  .  .",
		"Fe Fe Fe Fe",
		".  .  .  .",
	)
	s := mustScoring(t, VariantFamily)
	// 1 -> 2, 2 -> 5, 4 -> 9.
	assert.Equal(t, 16, s.WildlifeScore(g))

	s.Family = Curve{0, 1, 1, 1}
	assert.Equal(t, 3, s.WildlifeScore(g))
}
