// Package wallmesh merges a grid of wall tiles into a small set of
// axis-aligned rectangles, one per static collider. It has no dependencies on
// ebitengine, donburi, resolv or cp so both the game and tooling can use it.
package wallmesh

import "sort"

// GridCoord identifies one tile cell.
type GridCoord struct {
	X, Y int
}

// WallSet is the set of wall tiles belonging to one level.
type WallSet map[GridCoord]struct{}

// NewWallSet builds a set from the given coordinates.
func NewWallSet(coords ...GridCoord) WallSet {
	s := make(WallSet, len(coords))
	for _, c := range coords {
		s[c] = struct{}{}
	}
	return s
}

func (s WallSet) Add(c GridCoord) {
	s[c] = struct{}{}
}

func (s WallSet) Contains(c GridCoord) bool {
	_, ok := s[c]
	return ok
}

func (s WallSet) Len() int {
	return len(s)
}

// Coords returns the members sorted by row, then column.
func (s WallSet) Coords() []GridCoord {
	out := make([]GridCoord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Plate is a horizontal run of contiguous wall tiles within one row.
// Left and Right are inclusive column indices.
type Plate struct {
	Left, Right int
}

// Rect is a stack of identical plates across consecutive rows.
// Bottom is the row the rect was opened on and Top the last row it was
// extended to, so Top >= Bottom.
type Rect struct {
	Left, Right int
	Top, Bottom int
}

func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

func (r Rect) Height() int {
	return r.Top - r.Bottom + 1
}

// Contains reports whether the tile lies inside the rect.
func (r Rect) Contains(c GridCoord) bool {
	return c.X >= r.Left && c.X <= r.Right && c.Y >= r.Bottom && c.Y <= r.Top
}

// Tiles lists every tile covered by the rect.
func (r Rect) Tiles() []GridCoord {
	out := make([]GridCoord, 0, r.Width()*r.Height())
	for y := r.Bottom; y <= r.Top; y++ {
		for x := r.Left; x <= r.Right; x++ {
			out = append(out, GridCoord{X: x, Y: y})
		}
	}
	return out
}

// RectList is the builder output in finalization order. Callers must not rely
// on any spatial ordering.
type RectList []Rect

// TileCount returns the number of tiles covered by all rects.
func (l RectList) TileCount() int {
	n := 0
	for _, r := range l {
		n += r.Width() * r.Height()
	}
	return n
}
