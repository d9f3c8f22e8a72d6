// Package geometry provides the screen-space primitives used by the docking engine.
package geometry

import "fmt"

// Point is a position in global screen coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a width/height pair. Negative values are treated as zero.
type Size struct {
	Width, Height int
}

// NewSize builds a Size, clamping negative extents to zero.
func NewSize(width, height int) Size {
	return Size{Width: max(width, 0), Height: max(height, 0)}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect builds a Rect, clamping negative extents to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// RectAt places a rectangle of the given size at pos.
func RectAt(pos Point, size Size) Rect {
	return NewRect(pos.X, pos.Y, size.Width, size.Height)
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.Height }

// TopLeft returns the rectangle origin.
func (r Rect) TopLeft() Point { return Point{X: r.X, Y: r.Y} }

// TopRight returns the top-right corner.
func (r Rect) TopRight() Point { return Point{X: r.Right(), Y: r.Y} }

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Point { return Point{X: r.X, Y: r.Bottom()} }

// Size returns the rectangle extent.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// IsEmpty reports whether the rectangle has zero or negative area.
// A minimized or hidden host window reports an empty rectangle.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Distance returns |a-b|.
func Distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// ClampPosition keeps a rectangle of the given size fully inside bounds.
// When the size exceeds the bounds on an axis, the position pins to the
// bounds' left or top edge on that axis. Empty bounds leave pos untouched.
func ClampPosition(pos Point, size Size, bounds Rect) Point {
	if bounds.IsEmpty() {
		return pos
	}
	return Point{
		X: clampAxis(pos.X, size.Width, bounds.Left(), bounds.Right()),
		Y: clampAxis(pos.Y, size.Height, bounds.Top(), bounds.Bottom()),
	}
}

func clampAxis(v, extent, lo, hi int) int {
	limit := hi - extent
	if v > limit {
		v = limit
	}
	if v < lo {
		v = lo
	}
	return v
}
