// Package worldmap builds the cell grids behind the world-map modal and
// the zone side panel. It is pure: callers supply the known locations and
// a dead-end lookup, and receive a grid of glyphs and border edges.
package worldmap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/akinizer/adventure-of-textland/pkg/scene"
)

// Cell glyphs, in selection priority order.
const (
	GlyphCurrent = "📍"
	GlyphVisited = "🟩"
	GlyphKnown   = "🟨"
	GlyphEmpty   = "⬜"
)

// Cardinal directions as they appear in exit lists and dead-end keys.
const (
	North = "north"
	East  = "east"
	South = "south"
	West  = "west"
)

// Directions lists the cardinals in vpad order.
var Directions = []string{North, East, South, West}

// DeadEndFunc reports whether a failed exit has been recorded for a
// location id and direction.
type DeadEndFunc func(locationID, direction string) bool

// Borders marks which edges of a cell should draw a blocked-exit border.
type Borders struct {
	North, East, South, West bool
}

// Any reports whether at least one edge is set.
func (b Borders) Any() bool {
	return b.North || b.East || b.South || b.West
}

// Cell is one grid position of a rendered map.
type Cell struct {
	Glyph    string
	Title    string // hover-style label: name, coordinate, exits
	Location *scene.MapLocation
	Borders  Borders
	Faint    bool // empty cell: draw a faint full border
}

// Grid is a bounding-box window over a set of map locations. Local (0,0)
// is the north-west corner; local coordinates map to absolute ones by
// adding (MinX, MinY).
type Grid struct {
	MinX, MinY    int
	Width, Height int
	Cells         [][]Cell // [y][x]
}

// At returns the cell at local coordinates.
func (g *Grid) At(x, y int) *Cell {
	return &g.Cells[y][x]
}

// Build computes the bounding box over all listed locations and fills a
// grid of that size. Glyph priority: current > visited > known > empty.
// Visited and current cells get a border edge per recorded dead end;
// empty cells get a faint full border.
func Build(locations []scene.MapLocation, currentID string, deadEnd DeadEndFunc) *Grid {
	if len(locations) == 0 {
		return &Grid{}
	}
	if deadEnd == nil {
		deadEnd = func(string, string) bool { return false }
	}

	minX, minY := locations[0].X, locations[0].Y
	maxX, maxY := minX, minY
	for _, loc := range locations[1:] {
		if loc.X < minX {
			minX = loc.X
		}
		if loc.X > maxX {
			maxX = loc.X
		}
		if loc.Y < minY {
			minY = loc.Y
		}
		if loc.Y > maxY {
			maxY = loc.Y
		}
	}

	g := &Grid{
		MinX:   minX,
		MinY:   minY,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
	}
	g.Cells = make([][]Cell, g.Height)
	for y := range g.Cells {
		g.Cells[y] = make([]Cell, g.Width)
	}

	byCoord := make(map[[2]int]*scene.MapLocation, len(locations))
	for i := range locations {
		loc := &locations[i]
		byCoord[[2]int{loc.X, loc.Y}] = loc
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			absX, absY := x+minX, y+minY
			cell := g.At(x, y)
			loc := byCoord[[2]int{absX, absY}]
			if loc == nil {
				cell.Glyph = GlyphEmpty
				cell.Title = fmt.Sprintf("(%d,%d)", absX, absY)
				cell.Faint = true
				continue
			}

			cell.Location = loc
			cell.Title = cellTitle(loc, absX, absY)
			switch {
			case loc.ID == currentID:
				cell.Glyph = GlyphCurrent
			case loc.Visited:
				cell.Glyph = GlyphVisited
			default:
				cell.Glyph = GlyphKnown
			}

			// Blocked-exit borders apply only to cells the player has
			// stood in.
			if loc.Visited || loc.ID == currentID {
				cell.Borders = Borders{
					North: deadEnd(loc.ID, North),
					East:  deadEnd(loc.ID, East),
					South: deadEnd(loc.ID, South),
					West:  deadEnd(loc.ID, West),
				}
			}
		}
	}
	return g
}

func cellTitle(loc *scene.MapLocation, x, y int) string {
	title := fmt.Sprintf("%s (%d,%d)", loc.Name, x, y)
	if len(loc.Exits) > 0 {
		dirs := make([]string, 0, len(loc.Exits))
		for d := range loc.Exits {
			dirs = append(dirs, d)
		}
		sort.Strings(dirs)
		title += fmt.Sprintf(" (Exits: %s)", strings.Join(dirs, ", "))
	}
	return title
}

// Legend is the one-line glyph key shown under world and zone maps.
func Legend() string {
	return fmt.Sprintf("Legend: %s Current, %s Visited, %s Known, %s Empty",
		GlyphCurrent, GlyphVisited, GlyphKnown, GlyphEmpty)
}
