package layout

// Axis selects the horizontal or vertical dimension of a Rect.
type Axis uint8

const (
	Horizontal Axis = iota // X / Width
	Vertical               // Y / Height
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Origin returns r's origin along the axis.
func (a Axis) Origin(r Rect) float64 {
	if a == Vertical {
		return r.Y
	}
	return r.X
}

// Extent returns r's size along the axis.
func (a Axis) Extent(r Rect) float64 {
	if a == Vertical {
		return r.Height
	}
	return r.Width
}

// Span returns r with its origin and extent along the axis replaced. The
// cross axis is left untouched.
func (a Axis) Span(r Rect, origin, extent float64) Rect {
	if a == Vertical {
		r.Y, r.Height = origin, extent
	} else {
		r.X, r.Width = origin, extent
	}
	return r
}
