package geometry

// Scale maps screen pixels onto a coarser grid, such as terminal cells.
// X and Y are the number of pixels per grid unit; non-positive values act as 1.
type Scale struct {
	X, Y int
}

// UnitScale maps pixels onto themselves.
func UnitScale() Scale {
	return Scale{X: 1, Y: 1}
}

func (s Scale) factors() (int, int) {
	return max(s.X, 1), max(s.Y, 1)
}

// PointToGrid converts a pixel position into grid units, rounding down.
func (s Scale) PointToGrid(p Point) Point {
	sx, sy := s.factors()
	return Point{X: floorDiv(p.X, sx), Y: floorDiv(p.Y, sy)}
}

// PointToScreen converts grid units back into pixels.
func (s Scale) PointToScreen(p Point) Point {
	sx, sy := s.factors()
	return Point{X: p.X * sx, Y: p.Y * sy}
}

// SizeToGrid converts a pixel size into grid units, rounding up so that a
// non-empty size stays non-empty.
func (s Scale) SizeToGrid(sz Size) Size {
	sx, sy := s.factors()
	return NewSize(ceilDiv(sz.Width, sx), ceilDiv(sz.Height, sy))
}

// SizeToScreen converts grid units back into pixels.
func (s Scale) SizeToScreen(sz Size) Size {
	sx, sy := s.factors()
	return NewSize(sz.Width*sx, sz.Height*sy)
}

// RectToGrid converts a pixel rectangle into grid units.
func (s Scale) RectToGrid(r Rect) Rect {
	return RectAt(s.PointToGrid(r.TopLeft()), s.SizeToGrid(r.Size()))
}

// RectToScreen converts a grid rectangle back into pixels.
func (s Scale) RectToScreen(r Rect) Rect {
	return RectAt(s.PointToScreen(r.TopLeft()), s.SizeToScreen(r.Size()))
}

// LengthToGrid converts a horizontal pixel length into grid units, rounding up.
func (s Scale) LengthToGrid(n int) int {
	sx, _ := s.factors()
	return ceilDiv(n, sx)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
