package view

import (
	"github.com/grindlemire/go-frame/internal/layout"
	"github.com/grindlemire/go-frame/internal/measure"
	"github.com/grindlemire/go-frame/internal/node"
)

var (
	_ node.Host          = (*View)(nil)
	_ layout.Baselinable = (*View)(nil)
)

// View is a headless element with a frame, children and optional text.
type View struct {
	tag      string
	frame    layout.Rect
	parent   *View
	children []*View
	viewport *layout.Rect

	// Visual properties
	border  Border
	title   string
	padding layout.Edges

	// Text properties
	text     string
	measurer measure.Measurer
	maxLines int

	sizeFn func(layout.Size) layout.Size
}

// New creates a View with the given options. Text is measured in terminal
// cells unless WithMeasurer says otherwise.
func New(opts ...Option) *View {
	v := &View{measurer: measure.Cells{}}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewLabel creates a View displaying text.
func NewLabel(text string, opts ...Option) *View {
	return New(append([]Option{WithText(text)}, opts...)...)
}

// Factory returns a node factory creating Views with opts.
func Factory(opts ...Option) func() node.Host {
	return func() node.Host { return New(opts...) }
}

// Frame returns the frame in the parent's coordinate space.
func (v *View) Frame() layout.Rect { return v.frame }

// SetFrame sets the frame.
func (v *View) SetFrame(r layout.Rect) { v.frame = r }

// Parent returns the parent view, or nil for a root view.
func (v *View) Parent() layout.Layoutable {
	if v.parent == nil {
		return nil
	}
	return v.parent
}

// Viewport returns the bounds override, or nil.
func (v *View) Viewport() *layout.Rect { return v.viewport }

// SetViewport sets or clears (nil) the bounds override.
func (v *View) SetViewport(r *layout.Rect) { v.viewport = r }

// SizeThatFits returns the size v wants within c. A size function takes
// precedence; a view with text measures it wrapped to the constraint's
// width minus padding; otherwise the current size is returned.
func (v *View) SizeThatFits(c layout.Size) layout.Size {
	switch {
	case v.sizeFn != nil:
		return v.sizeFn(c)
	case v.text != "":
		pad := v.padding
		s := measure.Measure(v.measurer, v.text, c.Width-pad.Horizontal(), v.maxLines)
		return layout.Size{Width: s.Width + pad.Horizontal(), Height: s.Height + pad.Vertical()}
	}
	return v.frame.Size()
}

// Baseline returns the offset of a text baseline from v's top edge, with
// text wrapped to the current content width. Views without text report
// their bottom edge.
func (v *View) Baseline(kind layout.BaselineKind) float64 {
	if v.text == "" {
		return v.frame.Height
	}
	first, last := measure.Baselines(v.measurer, v.text, v.ContentRect().Width, v.maxLines)
	if kind == layout.BaselineLast {
		return v.padding.Top + last
	}
	return v.padding.Top + first
}

// ContentRect returns the area inside the padding, in v's own coordinates.
func (v *View) ContentRect() layout.Rect {
	return layout.Bounds(v).Inset(v.padding)
}

// Lines returns the text wrapped to the current content width.
func (v *View) Lines() []string {
	lines := measure.Wrap(v.measurer, v.text, v.ContentRect().Width)
	if v.maxLines > 0 && len(lines) > v.maxLines {
		lines = lines[:v.maxLines]
	}
	return lines
}

// AbsoluteFrame returns v's frame in the coordinate space of its root.
// A parent's viewport override shifts its children by the override's
// origin.
func (v *View) AbsoluteFrame() layout.Rect {
	f := v.frame
	for p := v.parent; p != nil; p = p.parent {
		if p.viewport != nil {
			f = f.Translate(-p.viewport.X, -p.viewport.Y)
		}
		f = f.Translate(p.frame.X, p.frame.Y)
	}
	return f
}

// Walk calls fn for v and every descendant, parents first. When fn returns
// false for a view, that view's children are skipped and the walk goes on
// with its siblings.
func (v *View) Walk(fn func(*View) bool) {
	if !fn(v) {
		return
	}
	for _, c := range v.children {
		c.Walk(fn)
	}
}

// Reset clears the content a node tree binds on install, so the view can
// be recycled for a different model.
func (v *View) Reset() {
	v.text = ""
	v.title = ""
}
