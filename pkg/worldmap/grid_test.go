package worldmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinizer/adventure-of-textland/pkg/scene"
)

func TestBuildBoundingBox(t *testing.T) {
	locations := []scene.MapLocation{
		{ID: "cave", Name: "Cave", X: 2, Y: 5, Visited: true},
		{ID: "peak", Name: "Peak", X: 4, Y: 1},
	}

	g := Build(locations, "cave", nil)

	// Box spans x 2..4 and y 1..5, not 0..max.
	assert.Equal(t, 2, g.MinX)
	assert.Equal(t, 1, g.MinY)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 5, g.Height)

	// Absolute (2,5) is local (0,4); absolute (4,1) is local (2,0).
	cave := g.At(0, 4)
	require.NotNil(t, cave.Location)
	assert.Equal(t, "cave", cave.Location.ID)
	assert.Equal(t, GlyphCurrent, cave.Glyph)

	peak := g.At(2, 0)
	require.NotNil(t, peak.Location)
	assert.Equal(t, "peak", peak.Location.ID)
	assert.Equal(t, GlyphKnown, peak.Glyph)
}

func TestBuildGlyphPriority(t *testing.T) {
	locations := []scene.MapLocation{
		{ID: "a", X: 0, Y: 0, Visited: true},
		{ID: "b", X: 1, Y: 0, Visited: true},
		{ID: "c", X: 2, Y: 0},
	}

	g := Build(locations, "a", nil)

	assert.Equal(t, GlyphCurrent, g.At(0, 0).Glyph, "current wins over visited")
	assert.Equal(t, GlyphVisited, g.At(1, 0).Glyph)
	assert.Equal(t, GlyphKnown, g.At(2, 0).Glyph)
}

func TestBuildEmptyCells(t *testing.T) {
	locations := []scene.MapLocation{
		{ID: "a", X: 0, Y: 0},
		{ID: "b", X: 2, Y: 2},
	}

	g := Build(locations, "", nil)

	gap := g.At(1, 1)
	assert.Nil(t, gap.Location)
	assert.Equal(t, GlyphEmpty, gap.Glyph)
	assert.True(t, gap.Faint)
	assert.Equal(t, "(1,1)", gap.Title)
}

func TestBuildDeadEndBorders(t *testing.T) {
	locations := []scene.MapLocation{
		{ID: "cave", X: 0, Y: 0, Visited: true},
		{ID: "peak", X: 1, Y: 0}, // known but never stood in
	}
	deadEnd := func(id, dir string) bool {
		return id == "cave" && dir == North || id == "peak" && dir == South
	}

	g := Build(locations, "", deadEnd)

	cave := g.At(0, 0)
	assert.True(t, cave.Borders.North)
	assert.False(t, cave.Borders.East)
	assert.True(t, cave.Borders.Any())

	// Borders never appear on merely-known cells.
	peak := g.At(1, 0)
	assert.False(t, peak.Borders.Any())
}

func TestBuildEmptyInput(t *testing.T) {
	g := Build(nil, "anywhere", nil)
	assert.Zero(t, g.Width)
	assert.Zero(t, g.Height)
}

func TestCellTitleListsExitsSorted(t *testing.T) {
	locations := []scene.MapLocation{
		{ID: "a", Name: "Crossroads", X: 3, Y: 7, Exits: map[string]string{
			"south": "b", "east": "c", "north": "d",
		}},
	}

	g := Build(locations, "", nil)
	assert.Equal(t, "Crossroads (3,7) (Exits: east, north, south)", g.At(0, 0).Title)
}
