package view

import (
	"github.com/grindlemire/go-frame/internal/layout"
	"github.com/grindlemire/go-frame/internal/measure"
)

// Text returns the displayed text.
func (v *View) Text() string { return v.text }

// SetText sets the displayed text.
func (v *View) SetText(text string) { v.text = text }

// Measurer returns the measurer used for the text.
func (v *View) Measurer() measure.Measurer { return v.measurer }

// MaxLines returns the line limit, 0 when unlimited.
func (v *View) MaxLines() int { return v.maxLines }

// Border returns the border style.
func (v *View) Border() Border { return v.border }

// SetBorder sets the border style.
func (v *View) SetBorder(b Border) { v.border = b }

// Title returns the title drawn in the top border.
func (v *View) Title() string { return v.title }

// SetTitle sets the title drawn in the top border.
func (v *View) SetTitle(title string) { v.title = title }

// Padding returns the space between the frame and the content.
func (v *View) Padding() layout.Edges { return v.padding }

// SetPadding sets the space between the frame and the content.
func (v *View) SetPadding(e layout.Edges) { v.padding = e }

// SetMaxLines sets the line limit; 0 is unlimited.
func (v *View) SetMaxLines(n int) { v.maxLines = n }

// SetMeasurer sets how text is measured.
func (v *View) SetMeasurer(m measure.Measurer) { v.measurer = m }
