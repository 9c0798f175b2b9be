package layout

import "testing"

// testView is a minimal Layoutable used across the package tests.
type testView struct {
	frame    Rect
	parent   *testView
	viewport *Rect
	fits     func(Size) Size
	baseline [2]float64
}

func newTestView(parent *testView, frame Rect) *testView {
	return &testView{frame: frame, parent: parent}
}

func (v *testView) Frame() Rect     { return v.frame }
func (v *testView) SetFrame(r Rect) { v.frame = r }
func (v *testView) Viewport() *Rect { return v.viewport }
func (v *testView) Parent() Layoutable {
	if v.parent == nil {
		return nil
	}
	return v.parent
}

func (v *testView) SizeThatFits(c Size) Size {
	if v.fits == nil {
		return v.frame.Size()
	}
	return v.fits(c)
}

func (v *testView) Baseline(kind BaselineKind) float64 {
	return v.baseline[kind]
}

// newContainer returns a root of the given size and n children with zero frames.
func newContainer(width, height float64, n int) (*testView, []*testView) {
	root := newTestView(nil, NewRect(0, 0, width, height))
	children := make([]*testView, n)
	for i := range children {
		children[i] = newTestView(root, Rect{})
	}
	return root, children
}

func assertFrame(t *testing.T, name string, v Layoutable, want Rect) {
	t.Helper()
	if got := v.Frame(); !got.Equal(want, 1e-9) {
		t.Errorf("%s.Frame() = %+v, want %+v", name, got, want)
	}
}

func collectingPass() (*Pass, *Collector) {
	c := &Collector{}
	return NewPass(WithDiagnostics(c)), c
}
