package layout

import (
	"fmt"
	"sync/atomic"
)

// Operation computes new frames for the elements it references.
type Operation interface {
	Calculate(p *Pass)
}

// OperationFunc adapts a function to the Operation interface.
type OperationFunc func(p *Pass)

// Calculate calls f(p).
func (f OperationFunc) Calculate(p *Pass) { f(p) }

// Pass is the state of one synchronous layout run: the diagnostics sink and
// the stack of viewports pushed by enclosing Combine operations.
//
// A Pass is not safe for concurrent use. Independent passes may run on
// different goroutines as long as they touch disjoint element trees.
type Pass struct {
	diag      Diagnostics
	viewports []Viewport
}

// PassOption configures a Pass.
type PassOption func(*Pass)

// WithDiagnostics routes warnings to d instead of the default sink.
func WithDiagnostics(d Diagnostics) PassOption {
	return func(p *Pass) {
		if d != nil {
			p.diag = d
		}
	}
}

var defaultDiagnostics atomic.Value // holds diagnosticsHolder

type diagnosticsHolder struct{ d Diagnostics }

// SetDefaultDiagnostics sets the sink used by passes created without
// WithDiagnostics. Passing nil restores DiscardDiagnostics.
func SetDefaultDiagnostics(d Diagnostics) {
	if d == nil {
		d = DiscardDiagnostics
	}
	defaultDiagnostics.Store(diagnosticsHolder{d: d})
}

// DefaultDiagnostics returns the sink used by passes created without
// WithDiagnostics.
func DefaultDiagnostics() Diagnostics {
	if h, ok := defaultDiagnostics.Load().(diagnosticsHolder); ok {
		return h.d
	}
	return DiscardDiagnostics
}

// NewPass creates a pass with an empty viewport stack.
func NewPass(opts ...PassOption) *Pass {
	p := &Pass{diag: DefaultDiagnostics()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run calculates each operation in order on a fresh default pass.
func Run(ops ...Operation) {
	NewPass().Run(ops...)
}

// Run calculates each operation in order.
func (p *Pass) Run(ops ...Operation) {
	for _, op := range ops {
		if op != nil {
			op.Calculate(p)
		}
	}
}

// Diagnostics returns the sink this pass reports to.
func (p *Pass) Diagnostics() Diagnostics {
	return p.diag
}

// Warn reports a warning through the pass's diagnostics sink.
func (p *Pass) Warn(kind WarningKind, op, format string, args ...any) {
	p.diag.Report(Warning{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)})
}

// pushViewport makes vp the innermost active viewport until popViewport.
func (p *Pass) pushViewport(vp Viewport) {
	p.viewports = append(p.viewports, vp)
}

func (p *Pass) popViewport() {
	if len(p.viewports) > 0 {
		p.viewports = p.viewports[:len(p.viewports)-1]
	}
}

// container returns the common parent of views. Views with a different
// parent than the first are reported and otherwise ignored for the purpose
// of picking the container.
func (p *Pass) container(op string, views []Layoutable) (Layoutable, bool) {
	var parent Layoutable
	found := false
	for _, v := range views {
		if v == nil {
			continue
		}
		vp := v.Parent()
		if !found {
			parent, found = vp, true
			continue
		}
		if vp != parent {
			p.Warn(MismatchedParent, op, "elements do not share a parent")
		}
	}
	if !found || parent == nil {
		p.Warn(NoContainer, op, "cannot determine container for %d element(s)", len(views))
		return nil, false
	}
	return parent, true
}

// ContainerRect returns the rectangle operations on container's children
// measure against: its bounds narrowed by every active viewport, outermost
// first.
func (p *Pass) ContainerRect(op string, container Layoutable) Rect {
	r := Bounds(container)
	for _, vp := range p.viewports {
		r = vp.resolve(p, op, container, r)
	}
	return r
}

// frame resolves the container of views and its effective rectangle.
func (p *Pass) frame(op string, views ...Layoutable) (Rect, bool) {
	c, ok := p.container(op, views)
	if !ok {
		return Rect{}, false
	}
	return p.ContainerRect(op, c), true
}
