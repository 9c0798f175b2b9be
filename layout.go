// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package frame

import "github.com/grindlemire/go-frame/internal/layout"

// Rect represents a rectangle with origin and size.
type Rect = layout.Rect

// Point is a position in the layout coordinate space.
type Point = layout.Point

// Size represents a width/height pair.
type Size = layout.Size

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Axis selects the horizontal or vertical dimension of a Rect.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// MaxExtent is the unbounded extent used for SizeThatFits constraints.
const MaxExtent = layout.MaxExtent

var (
	NewRect         = layout.NewRect
	RectFrom        = layout.RectFrom
	EdgeAll         = layout.EdgeAll
	EdgeSymmetric   = layout.EdgeSymmetric
	EdgeTRBL        = layout.EdgeTRBL
	Snap            = layout.Snap
	NearlyEqual     = layout.NearlyEqual
	Bounds          = layout.Bounds
	NewPass         = layout.NewPass
	Run             = layout.Run
	WithDiagnostics = layout.WithDiagnostics
)

// Layoutable is anything with a mutable frame that can take part in layout.
type Layoutable = layout.Layoutable

// Baselinable is a Layoutable that can report text baselines.
type Baselinable = layout.Baselinable

// BaselineKind selects which text baseline a Baselinable reports.
type BaselineKind = layout.BaselineKind

const (
	BaselineFirst = layout.BaselineFirst
	BaselineLast  = layout.BaselineLast
)

// Anchor is a named edge, center or size of an element.
type Anchor = layout.Anchor

// HorizontalAnchor resolves to an X coordinate.
type HorizontalAnchor = layout.HorizontalAnchor

// VerticalAnchor resolves to a Y coordinate.
type VerticalAnchor = layout.VerticalAnchor

// SizeAnchor resolves to a width or height.
type SizeAnchor = layout.SizeAnchor

var (
	Left          = layout.Left
	CenterX       = layout.CenterX
	Right         = layout.Right
	Top           = layout.Top
	CenterY       = layout.CenterY
	Bottom        = layout.Bottom
	FirstBaseline = layout.FirstBaseline
	LastBaseline  = layout.LastBaseline
	Width         = layout.Width
	Height        = layout.Height
)

// Operation computes new frames from current ones.
type Operation = layout.Operation

// OperationFunc adapts a function to the Operation interface.
type OperationFunc = layout.OperationFunc

// Pass carries the viewport stack and diagnostics for a run of operations.
type Pass = layout.Pass

// PassOption configures a Pass.
type PassOption = layout.PassOption

// Follow moves dst's element so that dst resolves to the value src resolves to.
func Follow[A Anchor](src, dst A) Operation { return layout.Follow(src, dst) }

// PutIntention is one segment of a box distribution.
type PutIntention = layout.PutIntention

// FixStrategy selects how a Fix intention measures its extent.
type FixStrategy = layout.FixStrategy

// Segment is the span computed for one intention.
type Segment = layout.Segment

// Distribution is the result of apportioning an axis among intentions.
type Distribution = layout.Distribution

var (
	Fix        = layout.Fix
	FixCurrent = layout.FixCurrent
	FixMin     = layout.FixMin
	FixMax     = layout.FixMax
	Flex       = layout.Flex
	Distribute = layout.Distribute
	HPut       = layout.HPut
	VPut       = layout.VPut
	Put        = layout.Put
)

// Option configures Align, Fill and Center operations.
type Option = layout.Option

var (
	Inset       = layout.Inset
	Insets      = layout.Insets
	Offset      = layout.Offset
	AlignLeft   = layout.AlignLeft
	AlignRight  = layout.AlignRight
	AlignTop    = layout.AlignTop
	AlignBottom = layout.AlignBottom
	HFill       = layout.HFill
	VFill       = layout.VFill
	Fill        = layout.Fill
	HCenter     = layout.HCenter
	VCenter     = layout.VCenter
	Center      = layout.Center
	SetLeft     = layout.SetLeft
	SetRight    = layout.SetRight
	SetTop      = layout.SetTop
	SetBottom   = layout.SetBottom
	SetWidth    = layout.SetWidth
	SetHeight   = layout.SetHeight
	SetSize     = layout.SetSize
	SetOrigin   = layout.SetOrigin
	SetFrame    = layout.SetFrame
)

// Fit selects how SizeToFit resolves one dimension.
type Fit = layout.Fit

// Clamp bounds a fitted dimension.
type Clamp = layout.Clamp

// FitOption configures SizeToFit.
type FitOption = layout.FitOption

var NoClamp = layout.NoClamp

var (
	FitValue        = layout.FitValue
	FitMax          = layout.FitMax
	FitCurrent      = layout.FitCurrent
	FitKeepCurrent  = layout.FitKeepCurrent
	ClampMin        = layout.ClampMin
	ClampMax        = layout.ClampMax
	ClampMinMax     = layout.ClampMinMax
	WidthClamp      = layout.WidthClamp
	HeightClamp     = layout.HeightClamp
	SizeToFit       = layout.SizeToFit
	SizeToFitWidth  = layout.SizeToFitWidth
	SizeToFitHeight = layout.SizeToFitHeight
)

// Viewport is a rectangle bounded by anchors that Combine lays out within.
type Viewport = layout.Viewport

// ViewportOption sets one edge of a Viewport.
type ViewportOption = layout.ViewportOption

var (
	ViewportTop    = layout.ViewportTop
	ViewportBottom = layout.ViewportBottom
	ViewportLeft   = layout.ViewportLeft
	ViewportRight  = layout.ViewportRight
	NewViewport    = layout.NewViewport
	Combine        = layout.Combine
	CombineIn      = layout.CombineIn
)

// Warning describes one fail-soft anomaly.
type Warning = layout.Warning

// WarningKind classifies a Warning.
type WarningKind = layout.WarningKind

const (
	MismatchedParent      = layout.MismatchedParent
	NoContainer           = layout.NoContainer
	ForeignViewportAnchor = layout.ForeignViewportAnchor
	DuplicateTag          = layout.DuplicateTag
	ZeroWeight            = layout.ZeroWeight
	NotMeasured           = layout.NotMeasured
)

// Diagnostics receives warnings produced during layout.
type Diagnostics = layout.Diagnostics

// DiagnosticsFunc adapts a function to the Diagnostics interface.
type DiagnosticsFunc = layout.DiagnosticsFunc

// Collector records warnings in memory.
type Collector = layout.Collector

var (
	DiscardDiagnostics    = layout.DiscardDiagnostics
	SetDefaultDiagnostics = layout.SetDefaultDiagnostics
	DefaultDiagnostics    = layout.DefaultDiagnostics
)
