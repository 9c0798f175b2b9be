package layout

// Viewport redefines the container rectangle for the operations nested in a
// Combine. Each side comes from its anchor when set and from the enclosing
// rectangle otherwise, so the zero Viewport is the identity.
//
// Anchors may reference the container itself (resolved against its bounds)
// or any of its children (resolved against their frames).
type Viewport struct {
	top, bottom *VerticalAnchor
	left, right *HorizontalAnchor
}

// ViewportOption sets one side of a Viewport.
type ViewportOption func(*Viewport)

// ViewportTop bounds the viewport's top edge by a.
func ViewportTop(a VerticalAnchor) ViewportOption {
	return func(v *Viewport) { v.top = &a }
}

// ViewportBottom bounds the viewport's bottom edge by a.
func ViewportBottom(a VerticalAnchor) ViewportOption {
	return func(v *Viewport) { v.bottom = &a }
}

// ViewportLeft bounds the viewport's left edge by a.
func ViewportLeft(a HorizontalAnchor) ViewportOption {
	return func(v *Viewport) { v.left = &a }
}

// ViewportRight bounds the viewport's right edge by a.
func ViewportRight(a HorizontalAnchor) ViewportOption {
	return func(v *Viewport) { v.right = &a }
}

// NewViewport builds a viewport from the given sides.
func NewViewport(opts ...ViewportOption) Viewport {
	var v Viewport
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// IsIdentity reports whether no side is anchored.
func (v Viewport) IsIdentity() bool {
	return v.top == nil && v.bottom == nil && v.left == nil && v.right == nil
}

// Resolve returns the viewport rectangle for container, falling back to
// its bounds for unanchored sides.
func (v Viewport) Resolve(p *Pass, container Layoutable) Rect {
	return v.resolve(p, "Viewport", container, Bounds(container))
}

func (v Viewport) resolve(p *Pass, op string, container Layoutable, fallback Rect) Rect {
	if v.IsIdentity() {
		return fallback
	}

	left, right := fallback.MinX(), fallback.MaxX()
	top, bottom := fallback.MinY(), fallback.MaxY()

	if v.left != nil {
		left = anchorValueIn(p, op, container, *v.left)
	}
	if v.right != nil {
		right = anchorValueIn(p, op, container, *v.right)
	}
	if v.top != nil {
		top = anchorValueIn(p, op, container, *v.top)
	}
	if v.bottom != nil {
		bottom = anchorValueIn(p, op, container, *v.bottom)
	}

	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// viewportAnchor is implemented by the edge anchors a viewport can hold.
type viewportAnchor interface {
	View() Layoutable
	Value() float64
	ValueIn(Rect) float64
}

// anchorValueIn resolves a in the container's coordinate space.
func anchorValueIn(p *Pass, op string, container Layoutable, a viewportAnchor) float64 {
	view := a.View()
	if view == container {
		return a.ValueIn(Bounds(container))
	}
	if view.Parent() != container {
		p.Warn(ForeignViewportAnchor, op, "viewport anchor element is not a child of the container")
	}
	return a.Value()
}

type combine struct {
	viewport Viewport
	ops      []Operation
}

// Combine runs ops in order as a single operation.
func Combine(ops ...Operation) Operation {
	return combine{ops: ops}
}

// CombineIn runs ops in order with vp pushed as the innermost viewport, so
// every nested operation measures its container through vp.
func CombineIn(vp Viewport, ops ...Operation) Operation {
	return combine{viewport: vp, ops: ops}
}

func (c combine) Calculate(p *Pass) {
	if c.viewport.IsIdentity() {
		p.Run(c.ops...)
		return
	}
	p.pushViewport(c.viewport)
	defer p.popViewport()
	p.Run(c.ops...)
}
