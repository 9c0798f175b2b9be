package layout

import "math"

// Rect represents a rectangle in its parent's coordinate space.
// X and Y are the top-left corner; Width and Height are dimensions.
// Negative sizes are allowed and propagate through every operation unchanged.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFrom creates a Rect from an origin and a size.
func RectFrom(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// MinX returns the x-coordinate of the left edge.
func (r Rect) MinX() float64 { return r.X }

// MidX returns the x-coordinate of the horizontal center.
func (r Rect) MidX() float64 { return r.X + r.Width/2 }

// MaxX returns the x-coordinate of the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MinY returns the y-coordinate of the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MidY returns the y-coordinate of the vertical center.
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// MaxY returns the y-coordinate of the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the width/height pair.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// WithSize returns a copy of r with its size replaced.
func (r Rect) WithSize(s Size) Rect {
	r.Width, r.Height = s.Width, s.Height
	return r
}

// WithOrigin returns a copy of r with its origin replaced.
func (r Rect) WithOrigin(p Point) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.MaxX() && y >= r.Y && y < r.MaxY()
}

// Inset returns a new Rect inset by the given Edges.
// Positive values shrink the rectangle; negative values expand it.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  r.Width - edges.Left - edges.Right,
		Height: r.Height - edges.Top - edges.Bottom,
	}
}

// Outset returns a new Rect expanded outward by the given Edges.
func (r Rect) Outset(edges Edges) Rect {
	return Rect{
		X:      r.X - edges.Left,
		Y:      r.Y - edges.Top,
		Width:  r.Width + edges.Left + edges.Right,
		Height: r.Height + edges.Top + edges.Bottom,
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.MaxX(), other.MaxX())
	bottom := min(r.MaxY(), other.MaxY())

	if right-x <= 0 || bottom-y <= 0 {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	right := max(r.MaxX(), other.MaxX())
	bottom := max(r.MaxY(), other.MaxY())

	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Equal reports whether both rectangles match component-wise within eps.
func (r Rect) Equal(other Rect, eps float64) bool {
	return NearlyEqual(r.X, other.X, eps) &&
		NearlyEqual(r.Y, other.Y, eps) &&
		NearlyEqual(r.Width, other.Width, eps) &&
		NearlyEqual(r.Height, other.Height, eps)
}

// Snapped returns r with its edges snapped to a 1/scale pixel grid.
// Edges are snapped rather than the size so adjacent rects stay adjacent.
func (r Rect) Snapped(scale float64) Rect {
	x, y := Snap(r.X, scale), Snap(r.Y, scale)
	return Rect{
		X:      x,
		Y:      y,
		Width:  Snap(r.MaxX(), scale) - x,
		Height: Snap(r.MaxY(), scale) - y,
	}
}

// Snap rounds v to the nearest multiple of 1/scale. A non-positive scale
// leaves v untouched.
func Snap(v, scale float64) float64 {
	if scale <= 0 {
		return v
	}
	return math.Round(v*scale) / scale
}

// NearlyEqual reports whether a and b differ by no more than eps.
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
