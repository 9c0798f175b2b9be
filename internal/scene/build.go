package scene

import (
	"fmt"

	"github.com/grindlemire/go-frame/internal/layout"
	"github.com/grindlemire/go-frame/internal/measure"
	"github.com/grindlemire/go-frame/internal/node"
	"github.com/grindlemire/go-frame/internal/view"
)

func (s *Scene) measurer() (measure.Measurer, error) {
	switch s.Units {
	case "", "cells":
		return measure.Cells{}, nil
	case "pixels":
		return measure.NewFace(nil), nil
	}
	return nil, fmt.Errorf("%w: unknown units %q", ErrInvalid, s.Units)
}

// spec holds the decoded settings of one declared view.
type spec struct {
	View
	frame    layout.Rect
	viewport *layout.Rect
	padding  layout.Edges
	border   view.Border
}

func (s *Scene) specs() ([]spec, error) {
	out := make([]spec, 0, len(s.Views))
	for _, v := range s.Views {
		sp := spec{View: v}
		var err error
		if len(v.Frame) > 0 {
			if sp.frame, err = rect(v.Frame); err != nil {
				return nil, fmt.Errorf("view %q: %w", v.Tag, err)
			}
		}
		if len(v.Viewport) > 0 {
			r, err := rect(v.Viewport)
			if err != nil {
				return nil, fmt.Errorf("view %q: %w", v.Tag, err)
			}
			sp.viewport = &r
		}
		if sp.padding, err = edges(v.Padding); err != nil {
			return nil, fmt.Errorf("view %q: %w", v.Tag, err)
		}
		if sp.border, err = view.ParseBorder(v.Border); err != nil {
			return nil, fmt.Errorf("view %q: %w: %w", v.Tag, ErrInvalid, err)
		}
		out = append(out, sp)
	}
	return out, nil
}

func (sp spec) viewOptions(m measure.Measurer) []view.Option {
	opts := []view.Option{
		view.WithTag(sp.Tag),
		view.WithFrame(sp.frame),
		view.WithText(sp.Text),
		view.WithMeasurer(m),
		view.WithMaxLines(sp.MaxLines),
		view.WithPadding(sp.padding),
		view.WithBorder(sp.border),
		view.WithTitle(sp.Title),
	}
	if sp.viewport != nil {
		opts = append(opts, view.WithViewport(*sp.viewport))
	}
	return opts
}

// Build creates the scene's view tree and compiles its operations against
// it. The root view is sized to the scene.
func (s *Scene) Build() (*view.View, []layout.Operation, error) {
	m, err := s.measurer()
	if err != nil {
		return nil, nil, err
	}
	specs, err := s.specs()
	if err != nil {
		return nil, nil, err
	}

	root := view.New(view.WithTag(RootTag), view.WithFrame(layout.NewRect(0, 0, s.Width, s.Height)))
	views := map[string]*view.View{RootTag: root}
	for _, sp := range specs {
		views[sp.Tag] = view.New(sp.viewOptions(m)...)
	}
	for _, sp := range specs {
		parent, ok := views[parentTag(sp.Parent)]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q is the parent of %q", ErrUnknownView, sp.Parent, sp.Tag)
		}
		parent.Append(views[sp.Tag])
	}

	c := &compiler{elements: make(map[string]layout.Layoutable, len(views))}
	for tag, v := range views {
		c.elements[tag] = v
	}
	ops, err := c.compileAll(s.Ops)
	if err != nil {
		return nil, nil, err
	}
	return root, ops, nil
}

// Layout builds the view tree and runs the operations on it, reporting
// warnings to d (nil uses the default diagnostics).
func (s *Scene) Layout(d layout.Diagnostics) (*view.View, error) {
	root, ops, err := s.Build()
	if err != nil {
		return nil, err
	}
	var opts []layout.PassOption
	if d != nil {
		opts = append(opts, layout.WithDiagnostics(d))
	}
	layout.NewPass(opts...).Run(ops...)
	return root, nil
}

// Root builds the scene as a node tree for off-screen layout. Calculating
// the root for a size runs the operations and reports the target width
// and the height the top-level nodes extend to. Install it into a view
// to apply the result.
func (s *Scene) Root(opts ...node.RootOption) (*node.RootNode, error) {
	m, err := s.measurer()
	if err != nil {
		return nil, err
	}
	specs, err := s.specs()
	if err != nil {
		return nil, err
	}

	byParent := make(map[string][]spec)
	for _, sp := range specs {
		p := parentTag(sp.Parent)
		byParent[p] = append(byParent[p], sp)
	}

	nodes := make(map[string]layout.Layoutable, len(specs)+1)
	var build func(parent string) []*node.Node
	build = func(parent string) []*node.Node {
		var out []*node.Node
		for _, sp := range byParent[parent] {
			n := newNode(sp, m, build(sp.Tag))
			nodes[sp.Tag] = n
			out = append(out, n)
		}
		return out
	}
	top := build(RootTag)

	c := &compiler{elements: nodes}
	var ops []layout.Operation
	root := node.NewRoot(top, func(r *node.RootNode, p *layout.Pass) {
		p.Run(ops...)
		var height float64
		for _, n := range r.Children() {
			height = max(height, n.Frame().MaxY())
		}
		r.SetFrame(layout.NewRect(0, 0, r.Frame().Width, height))
	}, opts...)
	nodes[RootTag] = root

	if ops, err = c.compileAll(s.Ops); err != nil {
		return nil, err
	}
	return root, nil
}

func newNode(sp spec, m measure.Measurer, children []*node.Node) *node.Node {
	opts := []node.Option{
		node.WithFrame(sp.frame),
		node.WithChildren(children...),
		node.OnConfigure(func(v *view.View) {
			v.SetText(sp.Text)
			v.SetTitle(sp.Title)
			v.SetBorder(sp.border)
			v.SetPadding(sp.padding)
			v.SetMaxLines(sp.MaxLines)
			v.SetMeasurer(m)
		}),
		node.OnReset(func(v *view.View) { v.Reset() }),
	}
	if sp.viewport != nil {
		opts = append(opts, node.WithViewport(*sp.viewport))
	}
	if sp.Text != "" {
		opts = append(opts, node.MeasureWith("label", func(v *view.View) {
			v.SetText(sp.Text)
			v.SetPadding(sp.padding)
			v.SetMaxLines(sp.MaxLines)
			v.SetMeasurer(m)
		}))
	}
	return node.New(sp.Tag, view.Factory(), opts...)
}

func parentTag(p string) string {
	if p == "" {
		return RootTag
	}
	return p
}
