package layout

type alignEdge uint8

const (
	alignLeft alignEdge = iota
	alignRight
	alignTop
	alignBottom
)

var alignNames = [...]string{"AlignLeft", "AlignRight", "AlignTop", "AlignBottom"}

type align struct {
	view Layoutable
	edge alignEdge
	opts opOptions
}

// AlignLeft moves v against the left edge of its container. The matching
// Inset or Insets option keeps it away from that edge.
func AlignLeft(v Layoutable, opts ...Option) Operation {
	return align{view: v, edge: alignLeft, opts: applyOptions(opts)}
}

// AlignRight moves v against the right edge of its container.
func AlignRight(v Layoutable, opts ...Option) Operation {
	return align{view: v, edge: alignRight, opts: applyOptions(opts)}
}

// AlignTop moves v against the top edge of its container.
func AlignTop(v Layoutable, opts ...Option) Operation {
	return align{view: v, edge: alignTop, opts: applyOptions(opts)}
}

// AlignBottom moves v against the bottom edge of its container.
func AlignBottom(v Layoutable, opts ...Option) Operation {
	return align{view: v, edge: alignBottom, opts: applyOptions(opts)}
}

func (op align) Calculate(p *Pass) {
	frame, ok := p.frame(alignNames[op.edge], op.view)
	if !ok {
		return
	}
	in := op.opts.insets
	switch op.edge {
	case alignLeft:
		Left(op.view).Apply(frame.MinX() + in.Left)
	case alignRight:
		Right(op.view).Apply(frame.MaxX() - in.Right)
	case alignTop:
		Top(op.view).Apply(frame.MinY() + in.Top)
	case alignBottom:
		Bottom(op.view).Apply(frame.MaxY() - in.Bottom)
	}
}

// HFill stretches v across the container's width, minus the left and right
// insets.
func HFill(v Layoutable, opts ...Option) Operation {
	in := applyOptions(opts).insets
	return HPut(Fix(in.Left), Flex(1, v), Fix(in.Right))
}

// VFill stretches v across the container's height, minus the top and bottom
// insets.
func VFill(v Layoutable, opts ...Option) Operation {
	in := applyOptions(opts).insets
	return VPut(Fix(in.Top), Flex(1, v), Fix(in.Bottom))
}

// Fill stretches v across the whole container, minus insets.
func Fill(v Layoutable, opts ...Option) Operation {
	return Combine(HFill(v, opts...), VFill(v, opts...))
}

type center struct {
	axis Axis
	view Layoutable
	opts opOptions
}

// HCenter centers v horizontally in the container, keeping its width.
// Insets narrow the region it is centered in; Offset shifts the result.
func HCenter(v Layoutable, opts ...Option) Operation {
	return center{axis: Horizontal, view: v, opts: applyOptions(opts)}
}

// VCenter centers v vertically in the container, keeping its height.
func VCenter(v Layoutable, opts ...Option) Operation {
	return center{axis: Vertical, view: v, opts: applyOptions(opts)}
}

// Center centers v on both axes.
func Center(v Layoutable, opts ...Option) Operation {
	return Combine(HCenter(v, opts...), VCenter(v, opts...))
}

func (op center) Calculate(p *Pass) {
	in := op.opts.insets
	lead, trail := in.Left, in.Right
	if op.axis == Vertical {
		lead, trail = in.Top, in.Bottom
	}
	Put(op.axis, Fix(lead), Flex(1), FixCurrent(op.view), Flex(1), Fix(trail)).Calculate(p)

	if op.opts.offset != 0 && op.view.Parent() != nil {
		f := op.view.Frame()
		op.view.SetFrame(op.axis.Span(f, op.axis.Origin(f)+op.opts.offset, op.axis.Extent(f)))
	}
}
