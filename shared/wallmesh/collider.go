package wallmesh

// Collider is a rect mapped to level-local pixel space as a box centered over
// whole tiles.
type Collider struct {
	CenterX, CenterY      float64
	HalfWidth, HalfHeight float64
}

// Collider maps the rect to pixel space for tiles of gridSize pixels. The +1
// terms account for the inclusive tile bounds.
func (r Rect) Collider(gridSize int) Collider {
	g := float64(gridSize)
	return Collider{
		HalfWidth:  float64(r.Right-r.Left+1) * g / 2,
		HalfHeight: float64(r.Top-r.Bottom+1) * g / 2,
		CenterX:    float64(r.Left+r.Right+1) * g / 2,
		CenterY:    float64(r.Bottom+r.Top+1) * g / 2,
	}
}

// Min returns the corner with the smallest coordinates.
func (c Collider) Min() (x, y float64) {
	return c.CenterX - c.HalfWidth, c.CenterY - c.HalfHeight
}

// Max returns the corner with the largest coordinates.
func (c Collider) Max() (x, y float64) {
	return c.CenterX + c.HalfWidth, c.CenterY + c.HalfHeight
}

func (c Collider) Size() (w, h float64) {
	return c.HalfWidth * 2, c.HalfHeight * 2
}
