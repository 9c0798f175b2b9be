package measure

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Face measures text rendered with a font face, in pixels.
type Face struct {
	face font.Face
}

// NewFace wraps f. A nil face uses basicfont.Face7x13.
func NewFace(f font.Face) *Face {
	if f == nil {
		f = basicfont.Face7x13
	}
	return &Face{face: f}
}

// Width returns the advance width of s in pixels.
func (f *Face) Width(s string) float64 {
	return fixedToFloat(font.MeasureString(f.face, s))
}

// LineHeight returns the face's recommended line height.
func (f *Face) LineHeight() float64 {
	return fixedToFloat(f.face.Metrics().Height)
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *Face) Ascent() float64 {
	return fixedToFloat(f.face.Metrics().Ascent)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
