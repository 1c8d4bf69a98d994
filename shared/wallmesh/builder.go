package wallmesh

// Grid is a read-only snapshot of one level's tile layer.
type Grid interface {
	Width() int
	Height() int
	IsWall(x, y int) bool
}

// setGrid adapts a WallSet with explicit bounds to Grid.
type setGrid struct {
	width, height int
	walls         WallSet
}

func (g setGrid) Width() int  { return g.width }
func (g setGrid) Height() int { return g.height }

func (g setGrid) IsWall(x, y int) bool {
	return g.walls.Contains(GridCoord{X: x, Y: y})
}

// BuildPlates merges the wall tiles of row y into plates, left to right.
// Column width is a sentinel that is never treated as a wall, which closes
// any plate touching the right edge.
func BuildPlates(y, width int, isWall func(x, y int) bool) []Plate {
	var plates []Plate
	start, inRun := 0, false

	for x := 0; x <= width; x++ {
		wall := x < width && isWall(x, y)
		switch {
		case inRun && !wall:
			plates = append(plates, Plate{Left: start, Right: x - 1})
			inRun = false
		case !inRun && wall:
			start, inRun = x, true
		}
	}

	return plates
}

// MergePlates stacks identical plates from consecutive rows into rects.
// rows[y] holds the plates of row y. A plate that does not reappear in the
// next row finalizes its rect; an extra empty row flushes rects touching the
// last row.
func MergePlates(rows [][]Plate) RectList {
	building := make(map[Plate]*Rect)
	var prev []Plate
	var rects RectList

	for y := 0; y <= len(rows); y++ {
		var current []Plate
		if y < len(rows) {
			current = rows[y]
		}

		for _, p := range prev {
			if containsPlate(current, p) {
				continue
			}
			// Remove it so the same plate further up starts a new rect.
			if r, ok := building[p]; ok {
				rects = append(rects, *r)
				delete(building, p)
			}
		}

		for _, p := range current {
			if r, ok := building[p]; ok {
				r.Top = y
				continue
			}
			building[p] = &Rect{Left: p.Left, Right: p.Right, Top: y, Bottom: y}
		}

		prev = current
	}

	return rects
}

// Build meshes the whole grid.
func Build(g Grid) RectList {
	width, height := g.Width(), g.Height()
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	rows := make([][]Plate, height)
	for y := 0; y < height; y++ {
		rows[y] = BuildPlates(y, width, g.IsWall)
	}
	return MergePlates(rows)
}

// BuildSet meshes a wall set bounded by width x height tiles. Walls outside
// the bounds are ignored.
func BuildSet(width, height int, walls WallSet) RectList {
	return Build(setGrid{width: width, height: height, walls: walls})
}

func containsPlate(plates []Plate, p Plate) bool {
	for _, q := range plates {
		if q == p {
			return true
		}
	}
	return false
}
