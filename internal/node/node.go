package node

import "github.com/grindlemire/go-frame/internal/layout"

var _ layout.Baselinable = (*Node)(nil)

// Node is a deferred layout element: a tag, a factory for the host element
// it becomes, and children. Its frame is computed off-screen by layout
// operations and applied to the host on install.
type Node struct {
	tag      string
	children []*Node
	parent   layout.Layoutable

	frame    layout.Rect
	initial  layout.Rect
	viewport *layout.Rect

	create    func() Host
	configure func(Host)
	reset     func(Host)

	measure      func(layout.Size) layout.Size
	baseline     func(layout.BaselineKind, layout.Size) float64
	scratchKind  string
	scratchSetup func(Host)
}

// Option configures a Node.
type Option func(*Node)

// New creates a node installed as a host made by create. Children passed
// through WithChildren are owned by the new node.
func New(tag string, create func() Host, opts ...Option) *Node {
	n := &Node{tag: tag, create: create}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// WithChildren appends children to the node.
func WithChildren(children ...*Node) Option {
	return func(n *Node) {
		for _, c := range children {
			c.parent = n
			n.children = append(n.children, c)
		}
	}
}

// WithFrame sets the frame the node starts every calculation from.
func WithFrame(r layout.Rect) Option {
	return func(n *Node) {
		n.initial = r
		n.frame = r
	}
}

// WithViewport sets the bounds override the node exposes to its children.
func WithViewport(r layout.Rect) Option {
	return func(n *Node) { n.viewport = &r }
}

// OnConfigure runs fn on the host every time the node is installed, after
// it is created or reused. Use it to bind content.
func OnConfigure[T Host](fn func(T)) Option {
	return func(n *Node) {
		n.configure = func(h Host) {
			if t, ok := h.(T); ok {
				fn(t)
			}
		}
	}
}

// OnReset runs fn on the host when the tree is prepared for reuse.
func OnReset[T Host](fn func(T)) Option {
	return func(n *Node) {
		n.reset = func(h Host) {
			if t, ok := h.(T); ok {
				fn(t)
			}
		}
	}
}

// WithMeasure sets the function SizeThatFits delegates to.
func WithMeasure(fn func(constraint layout.Size) layout.Size) Option {
	return func(n *Node) { n.measure = fn }
}

// WithBaseline sets the function Baseline delegates to. It receives the
// node's current size.
func WithBaseline(fn func(kind layout.BaselineKind, size layout.Size) float64) Option {
	return func(n *Node) { n.baseline = fn }
}

// MeasureWith measures the node with a pooled scratch host of the given
// kind: the scratch element is created with the node's factory, set up by
// fn, and asked for SizeThatFits.
func MeasureWith[T Host](kind string, fn func(T)) Option {
	return func(n *Node) {
		n.scratchKind = kind
		n.scratchSetup = func(h Host) {
			if t, ok := h.(T); ok {
				fn(t)
			}
		}
	}
}

// Tag returns the node's tag.
func (n *Node) Tag() string { return n.tag }

// Children returns the node's children.
func (n *Node) Children() []*Node { return n.children }

// Frame returns the computed frame in the parent's coordinate space.
func (n *Node) Frame() layout.Rect { return n.frame }

// SetFrame sets the computed frame.
func (n *Node) SetFrame(r layout.Rect) { n.frame = r }

// Parent returns the parent node or root, or nil for a detached node.
func (n *Node) Parent() layout.Layoutable {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Viewport returns the bounds override, or nil.
func (n *Node) Viewport() *layout.Rect { return n.viewport }

// SetViewport sets or clears (nil) the bounds override.
func (n *Node) SetViewport(r *layout.Rect) { n.viewport = r }

// SizeThatFits measures the node. Without a measurement strategy it reports
// its current size.
func (n *Node) SizeThatFits(c layout.Size) layout.Size {
	switch {
	case n.measure != nil:
		return n.measure(c)
	case n.scratchSetup != nil && n.create != nil:
		h := n.scratch().Get(n.scratchKind, n.create)
		n.scratchSetup(h)
		return h.SizeThatFits(c)
	}
	return n.frame.Size()
}

// Baseline returns the offset of a baseline from the node's top edge. A
// scratch-measured node asks its scratch host, sized to the node's frame,
// when the host is Baselinable. Otherwise the bottom edge is used.
func (n *Node) Baseline(kind layout.BaselineKind) float64 {
	switch {
	case n.baseline != nil:
		return n.baseline(kind, n.frame.Size())
	case n.scratchSetup != nil && n.create != nil:
		h := n.scratch().Get(n.scratchKind, n.create)
		if b, ok := h.(layout.Baselinable); ok {
			n.scratchSetup(h)
			h.SetFrame(layout.Rect{Width: n.frame.Width, Height: n.frame.Height})
			return b.Baseline(kind)
		}
	}
	return n.frame.Height
}

// scratch returns the pool of the root being calculated, or a fresh pool
// for a detached node.
func (n *Node) scratch() *Scratch {
	for p := n.parent; p != nil; {
		switch v := p.(type) {
		case *Node:
			p = v.parent
		case *RootNode:
			return v.scratchPool()
		default:
			p = nil
		}
	}
	return NewScratch()
}

// walk calls fn for n and every descendant, parents first.
func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}

func (n *Node) viewportCopy() *layout.Rect {
	if n.viewport == nil {
		return nil
	}
	r := *n.viewport
	return &r
}
