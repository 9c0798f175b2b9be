package layout

import "math"

// MaxExtent is the constraint passed to SizeThatFits for an unbounded axis.
const MaxExtent = math.MaxFloat64

type fitKind uint8

const (
	fitValue fitKind = iota
	fitMax
	fitCurrent
	fitKeepCurrent
)

// Fit selects the constraint SizeToFit measures one axis with, and whether
// the measured extent is kept afterwards.
type Fit struct {
	kind  fitKind
	value float64
}

// FitValue measures with the axis constrained to n and keeps the measured extent.
func FitValue(n float64) Fit { return Fit{kind: fitValue, value: n} }

// FitMax measures with the axis unconstrained and keeps the measured extent.
func FitMax() Fit { return Fit{kind: fitMax} }

// FitCurrent measures with the axis constrained to the current extent and
// keeps the measured extent.
func FitCurrent() Fit { return Fit{kind: fitCurrent} }

// FitKeepCurrent measures with the axis constrained to the current extent
// but keeps the current extent afterwards.
func FitKeepCurrent() Fit { return Fit{kind: fitKeepCurrent} }

func (f Fit) constraint(current float64) float64 {
	switch f.kind {
	case fitValue:
		return f.value
	case fitMax:
		return MaxExtent
	default:
		return current
	}
}

func (f Fit) resolve(current, measured float64) float64 {
	if f.kind == fitKeepCurrent {
		return current
	}
	return measured
}

// Clamp bounds an extent computed by SizeToFit.
type Clamp struct {
	min, max       float64
	hasMin, hasMax bool
}

// NoClamp leaves the extent unbounded.
var NoClamp = Clamp{}

// ClampMin keeps the extent at least n.
func ClampMin(n float64) Clamp { return Clamp{min: n, hasMin: true} }

// ClampMax keeps the extent at most n.
func ClampMax(n float64) Clamp { return Clamp{max: n, hasMax: true} }

// ClampMinMax keeps the extent within [lo, hi]. If lo > hi, lo wins.
func ClampMinMax(lo, hi float64) Clamp {
	return Clamp{min: lo, max: hi, hasMin: true, hasMax: true}
}

// Apply bounds v.
func (c Clamp) Apply(v float64) float64 {
	if c.hasMax && v > c.max {
		v = c.max
	}
	if c.hasMin && v < c.min {
		v = c.min
	}
	return v
}

// FitOption configures SizeToFit.
type FitOption func(*sizeToFit)

// WidthClamp bounds the resulting width.
func WidthClamp(c Clamp) FitOption {
	return func(s *sizeToFit) { s.widthClamp = c }
}

// HeightClamp bounds the resulting height.
func HeightClamp(c Clamp) FitOption {
	return func(s *sizeToFit) { s.heightClamp = c }
}

type sizeToFit struct {
	view                    Layoutable
	width, height           Fit
	widthClamp, heightClamp Clamp
}

// SizeToFit resizes v to the size it reports from SizeThatFits, measured
// with the constraint box described by width and height. The origin is kept.
func SizeToFit(v Layoutable, width, height Fit, opts ...FitOption) Operation {
	op := sizeToFit{view: v, width: width, height: height}
	for _, opt := range opts {
		opt(&op)
	}
	return op
}

// SizeToFitWidth fits v's width to its content and keeps its height.
func SizeToFitWidth(v Layoutable, opts ...FitOption) Operation {
	return SizeToFit(v, FitMax(), FitKeepCurrent(), opts...)
}

// SizeToFitHeight fits v's height to its content at the current width and
// keeps the width.
func SizeToFitHeight(v Layoutable, opts ...FitOption) Operation {
	return SizeToFit(v, FitKeepCurrent(), FitMax(), opts...)
}

func (op sizeToFit) Calculate(*Pass) {
	f := op.view.Frame()
	measured := op.view.SizeThatFits(Size{
		Width:  op.width.constraint(f.Width),
		Height: op.height.constraint(f.Height),
	})
	f.Width = op.widthClamp.Apply(op.width.resolve(f.Width, measured.Width))
	f.Height = op.heightClamp.Apply(op.height.resolve(f.Height, measured.Height))
	op.view.SetFrame(f)
}
