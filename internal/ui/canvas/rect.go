package canvas

// Rect is a rectangle of terminal cells. Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// NewRect creates a rectangle from an origin and a size
func NewRect(x, y, width, height int) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

// Width returns the horizontal extent, zero for inverted rectangles
func (r Rect) Width() int {
	return max(0, r.Right-r.Left)
}

// Height returns the vertical extent, zero for inverted rectangles
func (r Rect) Height() int {
	return max(0, r.Bottom-r.Top)
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains reports whether the cell (x, y) lies within the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// ContainsStrict reports whether (x, y) lies strictly inside the rectangle,
// excluding all four edges.
func (r Rect) ContainsStrict(x, y int) bool {
	return x > r.Left && x < r.Right && y > r.Top && y < r.Bottom
}

// Intersect returns the overlap of two rectangles. Disjoint rectangles yield
// an empty rectangle.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Left:   max(r.Left, o.Left),
		Top:    max(r.Top, o.Top),
		Right:  min(r.Right, o.Right),
		Bottom: min(r.Bottom, o.Bottom),
	}
	if out.Right < out.Left {
		out.Right = out.Left
	}
	if out.Bottom < out.Top {
		out.Bottom = out.Top
	}
	return out
}

// Offset returns the rectangle moved by (dx, dy)
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// MirrorX reflects the rectangle horizontally within a container of the given width
func (r Rect) MirrorX(width int) Rect {
	return Rect{Left: width - r.Right, Top: r.Top, Right: width - r.Left, Bottom: r.Bottom}
}
