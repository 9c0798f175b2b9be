package scene

import (
	"fmt"
	"strconv"

	"github.com/grindlemire/go-frame/internal/layout"
)

// compiler turns op declarations into layout operations over elements
// looked up by tag.
type compiler struct {
	elements map[string]layout.Layoutable
}

func (c *compiler) element(tag string) (layout.Layoutable, error) {
	el, ok := c.elements[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, tag)
	}
	return el, nil
}

func (c *compiler) compileAll(ops []Op) ([]layout.Operation, error) {
	out := make([]layout.Operation, 0, len(ops))
	for i, op := range ops {
		compiled, err := c.compile(op)
		if err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
		out = append(out, compiled)
	}
	return out, nil
}

func (c *compiler) compile(op Op) (layout.Operation, error) {
	switch op.Op {
	case "hput", "vput":
		intentions, err := c.items(op.Items)
		if err != nil {
			return nil, err
		}
		if op.Op == "hput" {
			return layout.HPut(intentions...), nil
		}
		return layout.VPut(intentions...), nil
	case "follow":
		return c.follow(op.From, op.To)
	case "combine":
		return c.combine(op)
	}

	v, err := c.element(op.View)
	if err != nil {
		return nil, err
	}
	opts, err := options(op)
	if err != nil {
		return nil, err
	}

	switch op.Op {
	case "set":
		return set(v, op.Edge, op.Value)
	case "align":
		switch op.Edge {
		case "left":
			return layout.AlignLeft(v, opts...), nil
		case "right":
			return layout.AlignRight(v, opts...), nil
		case "top":
			return layout.AlignTop(v, opts...), nil
		case "bottom":
			return layout.AlignBottom(v, opts...), nil
		}
		return nil, fmt.Errorf("%w: cannot align to %q", ErrInvalid, op.Edge)
	case "fill":
		return layout.Fill(v, opts...), nil
	case "hfill":
		return layout.HFill(v, opts...), nil
	case "vfill":
		return layout.VFill(v, opts...), nil
	case "center":
		return layout.Center(v, opts...), nil
	case "hcenter":
		return layout.HCenter(v, opts...), nil
	case "vcenter":
		return layout.VCenter(v, opts...), nil
	case "sizetofit":
		return sizeToFit(v, op)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
}

func set(v layout.Layoutable, edge string, value float64) (layout.Operation, error) {
	switch edge {
	case "left":
		return layout.SetLeft(v, value), nil
	case "right":
		return layout.SetRight(v, value), nil
	case "top":
		return layout.SetTop(v, value), nil
	case "bottom":
		return layout.SetBottom(v, value), nil
	case "width":
		return layout.SetWidth(v, value), nil
	case "height":
		return layout.SetHeight(v, value), nil
	}
	return nil, fmt.Errorf("%w: cannot set %q", ErrInvalid, edge)
}

func options(op Op) ([]layout.Option, error) {
	var opts []layout.Option
	if op.Inset != 0 {
		opts = append(opts, layout.Inset(op.Inset))
	}
	if len(op.Insets) > 0 {
		e, err := edges(op.Insets)
		if err != nil {
			return nil, err
		}
		opts = append(opts, layout.Insets(e))
	}
	if op.Offset != 0 {
		opts = append(opts, layout.Offset(op.Offset))
	}
	return opts, nil
}

// edges reads one value for all sides or four in top, right, bottom,
// left order.
func edges(v []float64) (layout.Edges, error) {
	switch len(v) {
	case 0:
		return layout.Edges{}, nil
	case 1:
		return layout.EdgeAll(v[0]), nil
	case 2:
		return layout.EdgeSymmetric(v[0], v[1]), nil
	case 4:
		return layout.EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	}
	return layout.Edges{}, fmt.Errorf("%w: edges need 1, 2 or 4 values, got %d", ErrInvalid, len(v))
}

func rect(v []float64) (layout.Rect, error) {
	if len(v) != 4 {
		return layout.Rect{}, fmt.Errorf("%w: a rect needs 4 values, got %d", ErrInvalid, len(v))
	}
	return layout.NewRect(v[0], v[1], v[2], v[3]), nil
}

func (c *compiler) items(items []Item) ([]layout.PutIntention, error) {
	out := make([]layout.PutIntention, 0, len(items))
	for i, it := range items {
		views := make([]layout.Layoutable, 0, len(it.Views))
		for _, tag := range it.Views {
			v, err := c.element(tag)
			if err != nil {
				return nil, err
			}
			views = append(views, v)
		}

		n := 0
		for _, ok := range []bool{it.Fix != nil, it.Flex != nil, it.Fit != ""} {
			if ok {
				n++
			}
		}
		if n != 1 {
			return nil, fmt.Errorf("%w: item %d needs exactly one of fix, flex or fit", ErrInvalid, i)
		}

		switch {
		case it.Fix != nil:
			out = append(out, layout.Fix(*it.Fix, views...))
		case it.Flex != nil:
			out = append(out, layout.Flex(*it.Flex, views...))
		case it.Fit == "current":
			out = append(out, layout.FixCurrent(views...))
		case it.Fit == "min":
			out = append(out, layout.FixMin(views...))
		case it.Fit == "max":
			out = append(out, layout.FixMax(views...))
		default:
			return nil, fmt.Errorf("%w: item %d has unknown fit %q", ErrInvalid, i, it.Fit)
		}
	}
	return out, nil
}

func sizeToFit(v layout.Layoutable, op Op) (layout.Operation, error) {
	w, err := fit(op.FitWidth)
	if err != nil {
		return nil, err
	}
	h, err := fit(op.FitHeight)
	if err != nil {
		return nil, err
	}

	var opts []layout.FitOption
	if c, ok := clamp(op.MinWidth, op.MaxWidth); ok {
		opts = append(opts, layout.WidthClamp(c))
	}
	if c, ok := clamp(op.MinHeight, op.MaxHeight); ok {
		opts = append(opts, layout.HeightClamp(c))
	}
	return layout.SizeToFit(v, w, h, opts...), nil
}

// fit parses a Fit; the empty string keeps the current extent.
func fit(s string) (layout.Fit, error) {
	switch s {
	case "", "keep":
		return layout.FitKeepCurrent(), nil
	case "max":
		return layout.FitMax(), nil
	case "current":
		return layout.FitCurrent(), nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return layout.Fit{}, fmt.Errorf("%w: unknown fit %q", ErrInvalid, s)
	}
	return layout.FitValue(n), nil
}

func clamp(lo, hi *float64) (layout.Clamp, bool) {
	switch {
	case lo != nil && hi != nil:
		return layout.ClampMinMax(*lo, *hi), true
	case lo != nil:
		return layout.ClampMin(*lo), true
	case hi != nil:
		return layout.ClampMax(*hi), true
	}
	return layout.Clamp{}, false
}

func (c *compiler) combine(op Op) (layout.Operation, error) {
	ops, err := c.compileAll(op.Ops)
	if err != nil {
		return nil, err
	}
	if op.Viewport == nil {
		return layout.Combine(ops...), nil
	}

	var vpOpts []layout.ViewportOption
	for _, side := range []struct {
		ref        string
		vertical   bool
		horizontal func(layout.HorizontalAnchor) layout.ViewportOption
		vert       func(layout.VerticalAnchor) layout.ViewportOption
	}{
		{ref: op.Viewport.Top, vertical: true, vert: layout.ViewportTop},
		{ref: op.Viewport.Bottom, vertical: true, vert: layout.ViewportBottom},
		{ref: op.Viewport.Left, horizontal: layout.ViewportLeft},
		{ref: op.Viewport.Right, horizontal: layout.ViewportRight},
	} {
		if side.ref == "" {
			continue
		}
		if side.vertical {
			a, err := c.vertical(side.ref)
			if err != nil {
				return nil, err
			}
			vpOpts = append(vpOpts, side.vert(a))
			continue
		}
		a, err := c.horizontal(side.ref)
		if err != nil {
			return nil, err
		}
		vpOpts = append(vpOpts, side.horizontal(a))
	}
	return layout.CombineIn(layout.NewViewport(vpOpts...), ops...), nil
}
