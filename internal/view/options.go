package view

import (
	"github.com/grindlemire/go-frame/internal/layout"
	"github.com/grindlemire/go-frame/internal/measure"
)

// Option configures a View.
type Option func(*View)

// WithTag sets the tag the view is looked up by.
func WithTag(tag string) Option {
	return func(v *View) { v.tag = tag }
}

// WithFrame sets the initial frame.
func WithFrame(r layout.Rect) Option {
	return func(v *View) { v.frame = r }
}

// WithViewport sets the bounds override exposed to children.
func WithViewport(r layout.Rect) Option {
	return func(v *View) { v.viewport = &r }
}

// WithChildren appends children.
func WithChildren(children ...*View) Option {
	return func(v *View) { v.Append(children...) }
}

// --- Text Options ---

// WithText sets the displayed text.
func WithText(text string) Option {
	return func(v *View) { v.text = text }
}

// WithMeasurer sets how text is measured.
func WithMeasurer(m measure.Measurer) Option {
	return func(v *View) { v.measurer = m }
}

// WithMaxLines limits the number of text lines; 0 is unlimited.
func WithMaxLines(n int) Option {
	return func(v *View) { v.maxLines = n }
}

// WithSizeFunc sets the function SizeThatFits delegates to.
func WithSizeFunc(fn func(layout.Size) layout.Size) Option {
	return func(v *View) { v.sizeFn = fn }
}

// --- Visual Options ---

// WithBorder sets the border style.
func WithBorder(b Border) Option {
	return func(v *View) { v.border = b }
}

// WithTitle sets the title drawn in the top border.
func WithTitle(title string) Option {
	return func(v *View) { v.title = title }
}

// WithPadding sets the space between the frame and the content.
func WithPadding(e layout.Edges) Option {
	return func(v *View) { v.padding = e }
}
