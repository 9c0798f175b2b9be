package layout

// Anchor is the set of anchor value types. Follow is generic over it so a
// horizontal anchor can only follow another horizontal anchor, a vertical
// one a vertical one, and a size anchor a size anchor.
type Anchor interface {
	HorizontalAnchor | VerticalAnchor | SizeAnchor

	// View returns the element the anchor reads and writes.
	View() Layoutable
	// Value resolves the anchor against the element's current frame.
	Value() float64
	// Apply moves or resizes the element so that Value returns v.
	Apply(v float64)
}

type horizontalKind uint8

const (
	anchorLeft horizontalKind = iota
	anchorCenterX
	anchorRight
)

// HorizontalAnchor is a vertical line in an element's frame: its left edge,
// horizontal center or right edge. Insets move the line inward.
type HorizontalAnchor struct {
	view  Layoutable
	kind  horizontalKind
	inset float64
}

// Left anchors the left edge of v.
func Left(v Layoutable) HorizontalAnchor { return HorizontalAnchor{view: v, kind: anchorLeft} }

// CenterX anchors the horizontal center of v.
func CenterX(v Layoutable) HorizontalAnchor { return HorizontalAnchor{view: v, kind: anchorCenterX} }

// Right anchors the right edge of v.
func Right(v Layoutable) HorizontalAnchor { return HorizontalAnchor{view: v, kind: anchorRight} }

// Inset returns a copy of a with n added to its inset.
func (a HorizontalAnchor) Inset(n float64) HorizontalAnchor {
	a.inset += n
	return a
}

// View returns the anchored element.
func (a HorizontalAnchor) View() Layoutable { return a.view }

// Value resolves the anchor against the element's current frame.
func (a HorizontalAnchor) Value() float64 { return a.ValueIn(a.view.Frame()) }

// ValueIn resolves the anchor against r instead of the element's frame.
func (a HorizontalAnchor) ValueIn(r Rect) float64 {
	switch a.kind {
	case anchorCenterX:
		return r.MidX() + a.inset
	case anchorRight:
		return r.MaxX() - a.inset
	default:
		return r.MinX() + a.inset
	}
}

// ApplyTo returns r moved horizontally so that ValueIn returns v.
func (a HorizontalAnchor) ApplyTo(r Rect, v float64) Rect {
	switch a.kind {
	case anchorCenterX:
		r.X = v - a.inset - r.Width/2
	case anchorRight:
		r.X = v + a.inset - r.Width
	default:
		r.X = v - a.inset
	}
	return r
}

// Apply moves the element so that Value returns v.
func (a HorizontalAnchor) Apply(v float64) {
	a.view.SetFrame(a.ApplyTo(a.view.Frame(), v))
}

func (a HorizontalAnchor) String() string {
	return [...]string{"left", "centerX", "right"}[a.kind]
}

type verticalKind uint8

const (
	anchorTop verticalKind = iota
	anchorCenterY
	anchorBottom
	anchorBaseline
)

// VerticalAnchor is a horizontal line in an element's frame: its top edge,
// vertical center, bottom edge or a text baseline. Insets move the line
// inward (downward for top, center and baselines).
type VerticalAnchor struct {
	view     Layoutable
	baseline Baselinable
	which    BaselineKind
	kind     verticalKind
	inset    float64
}

// Top anchors the top edge of v.
func Top(v Layoutable) VerticalAnchor { return VerticalAnchor{view: v, kind: anchorTop} }

// CenterY anchors the vertical center of v.
func CenterY(v Layoutable) VerticalAnchor { return VerticalAnchor{view: v, kind: anchorCenterY} }

// Bottom anchors the bottom edge of v.
func Bottom(v Layoutable) VerticalAnchor { return VerticalAnchor{view: v, kind: anchorBottom} }

// FirstBaseline anchors the baseline of the first text line of b.
func FirstBaseline(b Baselinable) VerticalAnchor {
	return VerticalAnchor{view: b, baseline: b, which: BaselineFirst, kind: anchorBaseline}
}

// LastBaseline anchors the baseline of the last text line of b.
func LastBaseline(b Baselinable) VerticalAnchor {
	return VerticalAnchor{view: b, baseline: b, which: BaselineLast, kind: anchorBaseline}
}

// Inset returns a copy of a with n added to its inset.
func (a VerticalAnchor) Inset(n float64) VerticalAnchor {
	a.inset += n
	return a
}

// View returns the anchored element.
func (a VerticalAnchor) View() Layoutable { return a.view }

// Value resolves the anchor against the element's current frame.
func (a VerticalAnchor) Value() float64 { return a.ValueIn(a.view.Frame()) }

// ValueIn resolves the anchor against r instead of the element's frame.
// Baselines keep their offset from the element's top edge.
func (a VerticalAnchor) ValueIn(r Rect) float64 {
	switch a.kind {
	case anchorCenterY:
		return r.MidY() + a.inset
	case anchorBottom:
		return r.MaxY() - a.inset
	case anchorBaseline:
		return r.MinY() + a.baseline.Baseline(a.which) + a.inset
	default:
		return r.MinY() + a.inset
	}
}

// ApplyTo returns r moved vertically so that ValueIn returns v.
func (a VerticalAnchor) ApplyTo(r Rect, v float64) Rect {
	switch a.kind {
	case anchorCenterY:
		r.Y = v - a.inset - r.Height/2
	case anchorBottom:
		r.Y = v + a.inset - r.Height
	case anchorBaseline:
		r.Y = v - a.inset - a.baseline.Baseline(a.which)
	default:
		r.Y = v - a.inset
	}
	return r
}

// Apply moves the element so that Value returns v.
func (a VerticalAnchor) Apply(v float64) {
	a.view.SetFrame(a.ApplyTo(a.view.Frame(), v))
}

func (a VerticalAnchor) String() string {
	if a.kind == anchorBaseline {
		return a.which.String() + "Baseline"
	}
	return [...]string{"top", "centerY", "bottom"}[a.kind]
}

type sizeKind uint8

const (
	anchorWidth sizeKind = iota
	anchorHeight
)

// SizeAnchor is an element's width or height. An inset shrinks the extent
// on both sides, so the value is extent - 2*inset.
type SizeAnchor struct {
	view  Layoutable
	kind  sizeKind
	inset float64
}

// Width anchors the width of v.
func Width(v Layoutable) SizeAnchor { return SizeAnchor{view: v, kind: anchorWidth} }

// Height anchors the height of v.
func Height(v Layoutable) SizeAnchor { return SizeAnchor{view: v, kind: anchorHeight} }

// Inset returns a copy of a with n added to its inset.
func (a SizeAnchor) Inset(n float64) SizeAnchor {
	a.inset += n
	return a
}

// View returns the anchored element.
func (a SizeAnchor) View() Layoutable { return a.view }

// Value resolves the anchor against the element's current frame.
func (a SizeAnchor) Value() float64 { return a.ValueIn(a.view.Frame()) }

// ValueIn resolves the anchor against r instead of the element's frame.
func (a SizeAnchor) ValueIn(r Rect) float64 {
	if a.kind == anchorHeight {
		return r.Height - 2*a.inset
	}
	return r.Width - 2*a.inset
}

// ApplyTo returns r resized so that ValueIn returns v. The origin is kept.
func (a SizeAnchor) ApplyTo(r Rect, v float64) Rect {
	if a.kind == anchorHeight {
		r.Height = v + 2*a.inset
	} else {
		r.Width = v + 2*a.inset
	}
	return r
}

// Apply resizes the element so that Value returns v.
func (a SizeAnchor) Apply(v float64) {
	a.view.SetFrame(a.ApplyTo(a.view.Frame(), v))
}

func (a SizeAnchor) String() string {
	if a.kind == anchorHeight {
		return "height"
	}
	return "width"
}
