package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTilePlaceMarker_ExhaustsAllowed(t *testing.T) {
	tile := newTile(HabitatForest, WildlifeNone, WildlifeBear, WildlifeHawk)

	require.NoError(t, tile.PlaceMarker(WildlifeHawk))
	assert.Equal(t, WildlifeHawk, tile.Marker)
	assert.Empty(t, tile.Allowed)

	for _, w := range AllWildlife() {
		assert.ErrorIs(t, tile.PlaceMarker(w), ErrTileHasMarker)
	}
	assert.Equal(t, WildlifeHawk, tile.Marker)
}

func TestTilePlaceMarker_NotAllowed(t *testing.T) {
	tile := newTile(HabitatRiver, WildlifeNone, WildlifeSalmon, WildlifeBear)

	assert.ErrorIs(t, tile.PlaceMarker(WildlifeFox), ErrSpeciesNotAllowed)
	assert.False(t, tile.HasMarker())
	assert.ElementsMatch(t, []Wildlife{WildlifeSalmon, WildlifeBear}, tile.Allowed)
}

func TestTileAllow_IgnoresDuplicates(t *testing.T) {
	tile := newTile(HabitatPrairie, WildlifeElk, WildlifeElk, WildlifeElk, WildlifeNone)
	assert.Equal(t, []Wildlife{WildlifeElk}, tile.Allowed)
}

func TestTileClone_Independent(t *testing.T) {
	orig := newTile(HabitatWetland, WildlifeFox, WildlifeFox, WildlifeSalmon)
	c := orig.Clone()
	require.NotSame(t, orig, c)
	assert.Equal(t, orig, c)

	assert.ErrorIs(t, c.PlaceMarker(WildlifeFox), ErrTileHasMarker)
	c.detachMarker()
	require.NoError(t, c.PlaceMarker(WildlifeSalmon))
	assert.Equal(t, WildlifeFox, orig.Marker)
	assert.ElementsMatch(t, []Wildlife{WildlifeFox, WildlifeSalmon}, orig.Allowed)
}

func TestIsPlaceable(t *testing.T) {
	g := NewGrid(3, "p", TopologySquare)
	g.Cells[0][0] = newTile(HabitatForest, WildlifeNone, WildlifeBear, WildlifeHawk)
	g.Cells[0][1] = newTile(HabitatForest, WildlifeElk)

	assert.True(t, IsPlaceable(g, newTile(HabitatRiver, WildlifeBear)))
	assert.True(t, IsPlaceable(g, newTile(HabitatRiver, WildlifeHawk)))
	assert.False(t, IsPlaceable(g, newTile(HabitatRiver, WildlifeElk)))
	assert.False(t, IsPlaceable(g, newTile(HabitatRiver, WildlifeNone)))

	require.NoError(t, g.PlaceMarker(0, 0, WildlifeBear))
	assert.False(t, IsPlaceable(g, newTile(HabitatRiver, WildlifeHawk)))
}

func TestNewDeck_TileShape(t *testing.T) {
	d := NewDeck(200, rand.New(rand.NewSource(7)))
	require.Equal(t, 200, d.Remaining())

	for _, tile := range d.Draw(200) {
		assert.Contains(t, AllHabitats(), tile.Habitat)
		assert.Contains(t, AllWildlife(), tile.Marker)
		require.Len(t, tile.Allowed, 2)
		assert.NotEqual(t, tile.Allowed[0], tile.Allowed[1])
	}
	assert.True(t, d.Empty())
}

func TestDeckDraw_CopiesAndDrains(t *testing.T) {
	src := []*Tile{
		newTile(HabitatForest, WildlifeBear, WildlifeBear, WildlifeHawk),
		newTile(HabitatRiver, WildlifeSalmon, WildlifeSalmon, WildlifeFox),
		newTile(HabitatMountain, WildlifeElk, WildlifeElk, WildlifeHawk),
	}
	d := NewDeckFromTiles(src)

	drawn := d.Draw(2)
	require.Len(t, drawn, 2)
	assert.Equal(t, 1, d.Remaining())
	for i := range drawn {
		assert.NotSame(t, src[i], drawn[i])
		assert.Equal(t, src[i], drawn[i])
	}

	drawn[0].detachMarker()
	assert.Equal(t, WildlifeBear, src[0].Marker)

	rest := d.Draw(5)
	require.Len(t, rest, 1)
	assert.Equal(t, HabitatMountain, rest[0].Habitat)

	empty := d.Draw(4)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
