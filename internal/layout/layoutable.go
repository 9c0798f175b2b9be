package layout

// Layoutable is the interface for anything that can be positioned by a layout
// operation. The engine works entirely with this interface; hosts supply the
// concrete element types.
//
// Frame is always expressed in the parent's coordinate space.
type Layoutable interface {
	// Frame returns the current geometry.
	Frame() Rect

	// SetFrame replaces the current geometry.
	SetFrame(Rect)

	// Parent returns the containing element, or nil at the root.
	// Implementations must return an untyped nil when there is no parent.
	Parent() Layoutable

	// Viewport returns the bounds override used when this element acts as a
	// container, or nil to use its own bounds.
	Viewport() *Rect

	// SizeThatFits returns the size the element would like to have when
	// constrained to the given box.
	SizeThatFits(constraint Size) Size
}

// BaselineKind selects which text baseline a Baselinable reports.
type BaselineKind uint8

const (
	BaselineFirst BaselineKind = iota // Baseline of the first line
	BaselineLast                      // Baseline of the last line
)

func (k BaselineKind) String() string {
	if k == BaselineLast {
		return "last"
	}
	return "first"
}

// Baselinable is a Layoutable that can report text baselines.
type Baselinable interface {
	Layoutable

	// Baseline returns the offset of the requested baseline from the
	// element's top edge.
	Baseline(kind BaselineKind) float64
}

// Bounds returns the rectangle an element exposes to its children: the
// viewport override if set, otherwise its own size at the origin.
func Bounds(l Layoutable) Rect {
	if vp := l.Viewport(); vp != nil {
		return *vp
	}
	f := l.Frame()
	return Rect{Width: f.Width, Height: f.Height}
}
