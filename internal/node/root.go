package node

import (
	"fmt"

	"github.com/grindlemire/go-frame/internal/layout"
)

// Epsilon is the tolerance within which two target sizes are considered the
// same for measurement caching.
const Epsilon = 1e-3

// State is the lifecycle stage of a RootNode.
type State uint8

const (
	Unmeasured State = iota // Never calculated
	Measured                // Calculated for some target size
	Installed               // Installed into a host after calculation
)

func (s State) String() string {
	switch s {
	case Unmeasured:
		return "unmeasured"
	case Measured:
		return "measured"
	case Installed:
		return "installed"
	}
	return fmt.Sprintf("state(%d)", s)
}

// LayoutFunc computes the frames of a root's nodes. The root's frame is set
// to the target size before the call; the function may resize it to report
// a different size (e.g. the height its content needs).
type LayoutFunc func(root *RootNode, p *layout.Pass)

// RootNode is the top of a node tree. It is measured with Calculate and
// applied to a real container with Install.
//
// A RootNode must not be calculated and installed concurrently.
type RootNode struct {
	children []*Node
	frame    layout.Rect
	viewport *layout.Rect
	layoutFn LayoutFunc

	state      State
	measuredAt layout.Size

	diag    layout.Diagnostics
	scratch *Scratch
}

// RootOption configures a RootNode.
type RootOption func(*RootNode)

// WithDiagnostics routes the root's layout and install warnings to d.
func WithDiagnostics(d layout.Diagnostics) RootOption {
	return func(r *RootNode) { r.diag = d }
}

// WithScratch makes the root measure leaf nodes with pool s.
func WithScratch(s *Scratch) RootOption {
	return func(r *RootNode) { r.scratch = s }
}

// NewRoot creates a root owning children, laid out by fn.
func NewRoot(children []*Node, fn LayoutFunc, opts ...RootOption) *RootNode {
	r := &RootNode{layoutFn: fn}
	for _, c := range children {
		c.parent = r
	}
	r.children = children
	for _, opt := range opts {
		opt(r)
	}
	if r.diag == nil {
		r.diag = layout.DefaultDiagnostics()
	}
	return r
}

// Frame returns the root's frame; its size is the last calculated size.
func (r *RootNode) Frame() layout.Rect { return r.frame }

// SetFrame sets the root's frame.
func (r *RootNode) SetFrame(f layout.Rect) { r.frame = f }

// Parent returns nil; a root has no parent.
func (r *RootNode) Parent() layout.Layoutable { return nil }

// Viewport returns the bounds override, or nil.
func (r *RootNode) Viewport() *layout.Rect { return r.viewport }

// SetViewport sets or clears (nil) the bounds override.
func (r *RootNode) SetViewport(v *layout.Rect) { r.viewport = v }

// SizeThatFits calculates the root for the constraint and returns the
// resulting size.
func (r *RootNode) SizeThatFits(c layout.Size) layout.Size {
	return r.Calculate(c)
}

// Children returns the root's top-level nodes.
func (r *RootNode) Children() []*Node { return r.children }

// State returns the lifecycle stage.
func (r *RootNode) State() State { return r.state }

// Find returns the first node with tag in depth-first order, or nil.
func (r *RootNode) Find(tag string) *Node {
	var found *Node
	for _, c := range r.children {
		c.walk(func(n *Node) {
			if found == nil && n.tag == tag {
				found = n
			}
		})
		if found != nil {
			break
		}
	}
	return found
}

// Calculate runs the layout function for size and returns the resulting
// root size. If the root was already calculated for a size within Epsilon
// of size, the cached result is returned without running the function.
func (r *RootNode) Calculate(size layout.Size) layout.Size {
	return r.calculate(size, nil)
}

// CalculateWith is Calculate measuring leaf nodes with the pool s instead
// of the root's own.
func (r *RootNode) CalculateWith(size layout.Size, s *Scratch) layout.Size {
	return r.calculate(size, s)
}

func (r *RootNode) calculate(size layout.Size, s *Scratch) layout.Size {
	if r.state != Unmeasured && r.measuredAt.Equal(size, Epsilon) {
		return r.frame.Size()
	}

	if s != nil {
		prev := r.scratch
		r.scratch = s
		defer func() { r.scratch = prev }()
	}

	r.frame = layout.Rect{Width: size.Width, Height: size.Height}
	for _, c := range r.children {
		c.walk(func(n *Node) { n.frame = n.initial })
	}

	if r.layoutFn != nil {
		r.layoutFn(r, layout.NewPass(layout.WithDiagnostics(r.diag)))
	}

	r.measuredAt = size
	r.state = Measured
	return r.frame.Size()
}

// Invalidate drops the cached measurement so the next Calculate runs the
// layout function regardless of size.
func (r *RootNode) Invalidate() {
	r.state = Unmeasured
}

func (r *RootNode) scratchPool() *Scratch {
	if r.scratch == nil {
		r.scratch = NewScratch()
	}
	return r.scratch
}

// Install applies the computed tree to container. Each node's host is
// looked up among the parent host's children by tag and created with the
// node's factory when missing; the node's configure callback runs and its
// frame and viewport override are copied. Children install into their node's host.
//
// Duplicate sibling tags are reported and the later node reuses the host
// installed by the earlier one.
func (r *RootNode) Install(container Host) {
	if r.state == Unmeasured {
		r.warn(layout.NotMeasured, "installing a root that was never calculated")
	}
	r.install(r.children, container)
	r.state = Installed
}

func (r *RootNode) install(nodes []*Node, container Host) {
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if seen[n.tag] {
			r.warn(layout.DuplicateTag, "duplicate sibling tag %q", n.tag)
		}
		seen[n.tag] = true

		h := container.ChildWithTag(n.tag)
		if h == nil {
			if n.create == nil {
				continue
			}
			h = n.create()
			h.SetTag(n.tag)
			container.AddChild(h)
		}
		if n.configure != nil {
			n.configure(h)
		}
		h.SetFrame(n.frame)
		h.SetViewport(n.viewportCopy())
		r.install(n.children, h)
	}
}

// PrepareForReuse runs every node's reset callback on the host installed
// for it in container, so a container's elements can be recycled for a
// different model before the next Install.
func (r *RootNode) PrepareForReuse(container Host) {
	prepare(r.children, container)
}

func prepare(nodes []*Node, container Host) {
	for _, n := range nodes {
		h := container.ChildWithTag(n.tag)
		if h == nil {
			continue
		}
		if n.reset != nil {
			n.reset(h)
		}
		prepare(n.children, h)
	}
}

func (r *RootNode) warn(kind layout.WarningKind, format string, args ...any) {
	r.diag.Report(layout.Warning{Kind: kind, Op: "Install", Message: fmt.Sprintf(format, args...)})
}
