package node

import (
	"testing"

	"github.com/grindlemire/go-frame/internal/layout"
)

func TestRootNode_CalculateCaches(t *testing.T) {
	calls := 0
	root := NewRoot(nil, func(r *RootNode, p *layout.Pass) {
		calls++
		r.SetFrame(layout.NewRect(0, 0, 120, 80))
	})

	if root.State() != Unmeasured {
		t.Fatalf("State() = %v, want unmeasured", root.State())
	}

	want := layout.Size{Width: 120, Height: 80}
	if got := root.Calculate(layout.Size{Width: 100, Height: 100}); got != want {
		t.Errorf("Calculate() = %+v, want %+v", got, want)
	}
	if got := root.Calculate(layout.Size{Width: 100, Height: 100}); got != want {
		t.Errorf("second Calculate() = %+v, want %+v", got, want)
	}
	if calls != 1 {
		t.Errorf("layout calls = %d after same size twice, want 1", calls)
	}

	root.Calculate(layout.Size{Width: 100.0004, Height: 100})
	if calls != 1 {
		t.Errorf("layout calls = %d within epsilon, want 1", calls)
	}

	root.Calculate(layout.Size{Width: 50, Height: 50})
	if calls != 2 {
		t.Errorf("layout calls = %d after new size, want 2", calls)
	}
	if root.State() != Measured {
		t.Errorf("State() = %v, want measured", root.State())
	}

	root.Invalidate()
	root.Calculate(layout.Size{Width: 50, Height: 50})
	if calls != 3 {
		t.Errorf("layout calls = %d after Invalidate, want 3", calls)
	}
}

func TestRootNode_CalculateStartsFromInitialFrames(t *testing.T) {
	a := New("a", fakeFactory("view", nil), WithFrame(layout.NewRect(0, 0, 10, 10)))
	root := NewRoot([]*Node{a}, func(r *RootNode, p *layout.Pass) {
		// Grows a on every run; a pure pass must not accumulate.
		p.Run(layout.SetWidth(a, a.Frame().Width+5), layout.AlignRight(a))
	})

	root.Calculate(layout.Size{Width: 100, Height: 20})
	first := a.Frame()
	root.Calculate(layout.Size{Width: 200, Height: 20})
	root.Calculate(layout.Size{Width: 100, Height: 20})

	if a.Frame() != first {
		t.Errorf("Frame() = %+v after recalculating, want %+v", a.Frame(), first)
	}
	if want := layout.NewRect(85, 0, 15, 10); first != want {
		t.Errorf("first Frame() = %+v, want %+v", first, want)
	}
}

func TestRootNode_LayoutAgainstNodes(t *testing.T) {
	title := New("title", fakeFactory("label", nil), WithMeasure(func(c layout.Size) layout.Size {
		return layout.Size{Width: min(c.Width, 300), Height: 20}
	}))
	icon := New("icon", fakeFactory("view", nil), WithFrame(layout.NewRect(0, 0, 16, 16)))
	row := New("row", fakeFactory("view", nil), WithChildren(icon, title))

	root := NewRoot([]*Node{row}, func(r *RootNode, p *layout.Pass) {
		p.Run(
			layout.HFill(row),
			layout.HPut(layout.Fix(8), layout.FixCurrent(icon), layout.Fix(4), layout.Flex(1, title), layout.Fix(8)),
			layout.SizeToFitHeight(title),
		)
		// Arguments are read when the operation is built, so the row's
		// height depends on a second run.
		p.Run(
			layout.SetHeight(row, title.Frame().Height+10),
			layout.VCenter(icon),
			layout.VCenter(title),
		)
		r.SetFrame(r.Frame().WithSize(layout.Size{Width: r.Frame().Width, Height: row.Frame().Height}))
	})

	got := root.Calculate(layout.Size{Width: 200, Height: layout.MaxExtent})
	if want := (layout.Size{Width: 200, Height: 30}); got != want {
		t.Errorf("Calculate() = %+v, want %+v", got, want)
	}
	if want := layout.NewRect(8, 7, 16, 16); icon.Frame() != want {
		t.Errorf("icon.Frame() = %+v, want %+v", icon.Frame(), want)
	}
	if want := layout.NewRect(28, 5, 164, 20); title.Frame() != want {
		t.Errorf("title.Frame() = %+v, want %+v", title.Frame(), want)
	}
}

func TestRootNode_Install(t *testing.T) {
	created := 0
	var configured []string

	label := New("label", fakeFactory("label", &created),
		WithFrame(layout.NewRect(1, 2, 3, 4)),
		OnConfigure(func(h *fakeHost) { configured = append(configured, h.tag); h.text = "hi" }),
	)
	box := New("box", fakeFactory("view", &created),
		WithFrame(layout.NewRect(10, 10, 50, 50)),
		WithChildren(label),
	)
	root := NewRoot([]*Node{box}, nil)
	root.Calculate(layout.Size{Width: 100, Height: 100})

	container := newFakeHost("container")
	root.Install(container)

	if root.State() != Installed {
		t.Errorf("State() = %v, want installed", root.State())
	}
	if created != 2 {
		t.Errorf("created = %d, want 2", created)
	}
	boxHost, ok := container.ChildWithTag("box").(*fakeHost)
	if !ok {
		t.Fatalf("box host not installed")
	}
	if boxHost.frame != layout.NewRect(10, 10, 50, 50) {
		t.Errorf("box frame = %+v", boxHost.frame)
	}
	labelHost, ok := boxHost.ChildWithTag("label").(*fakeHost)
	if !ok {
		t.Fatalf("label host not installed inside box")
	}
	if labelHost.frame != layout.NewRect(1, 2, 3, 4) || labelHost.text != "hi" {
		t.Errorf("label host = %+v", labelHost)
	}

	// Second install reuses hosts by tag.
	root.Install(container)
	if created != 2 {
		t.Errorf("created = %d after reinstall, want 2", created)
	}
	if len(container.children) != 1 || len(boxHost.children) != 1 {
		t.Errorf("reinstall added hosts: container=%d box=%d", len(container.children), len(boxHost.children))
	}
	if len(configured) != 2 {
		t.Errorf("configure calls = %d, want 2", len(configured))
	}
}

func TestRootNode_InstallCopiesViewport(t *testing.T) {
	scroll := New("scroll", fakeFactory("view", nil),
		WithFrame(layout.NewRect(0, 0, 40, 10)),
		WithViewport(layout.NewRect(0, 20, 40, 10)),
	)
	plain := New("plain", fakeFactory("view", nil), WithFrame(layout.NewRect(0, 10, 40, 10)))
	root := NewRoot([]*Node{scroll, plain}, nil)
	root.Calculate(layout.Size{Width: 40, Height: 20})

	container := newFakeHost("container")
	stale := newFakeHost("view")
	stale.tag = "plain"
	stale.viewport = &layout.Rect{Width: 1, Height: 1}
	container.AddChild(stale)
	root.Install(container)

	scrollHost := container.ChildWithTag("scroll").(*fakeHost)
	if scrollHost.viewport == nil || *scrollHost.viewport != layout.NewRect(0, 20, 40, 10) {
		t.Errorf("scroll viewport = %v, want %+v", scrollHost.viewport, layout.NewRect(0, 20, 40, 10))
	}
	if got := layout.Bounds(scrollHost); got != layout.NewRect(0, 20, 40, 10) {
		t.Errorf("Bounds(scroll) = %+v", got)
	}
	if stale.viewport != nil {
		t.Errorf("reused host kept viewport %+v, want nil", *stale.viewport)
	}

	scrollHost.viewport.Y = 99
	if scroll.Viewport().Y != 20 {
		t.Errorf("host shares the node's viewport")
	}
}

func TestRootNode_InstallRecyclesAcrossModels(t *testing.T) {
	created := 0
	build := func(text string, width float64) *RootNode {
		label := New("label", fakeFactory("label", &created),
			OnConfigure(func(h *fakeHost) { h.text = text }),
			OnReset(func(h *fakeHost) { h.text = ""; h.resets++ }),
			MeasureWith("label", func(h *fakeHost) { h.text = text }),
		)
		return NewRoot([]*Node{label}, func(r *RootNode, p *layout.Pass) {
			p.Run(layout.SizeToFitWidth(label))
			p.Run(layout.SetWidth(label, label.Frame().Width*width))
		})
	}

	container := newFakeHost("cell")
	first := build("hello", 1)
	first.Calculate(layout.Size{Width: 100, Height: 10})
	first.Install(container)

	second := build("hi", 2)
	second.Calculate(layout.Size{Width: 100, Height: 10})
	first.PrepareForReuse(container)
	second.Install(container)

	h := container.ChildWithTag("label").(*fakeHost)
	if created != 3 {
		// Two scratch hosts (one per root) plus one installed host.
		t.Errorf("created = %d, want 3", created)
	}
	if h.resets != 1 {
		t.Errorf("resets = %d, want 1", h.resets)
	}
	if h.text != "hi" {
		t.Errorf("text = %q, want hi", h.text)
	}
	if h.frame.Width != 4 {
		t.Errorf("frame width = %v, want 4", h.frame.Width)
	}
}

func TestRootNode_InstallWarnings(t *testing.T) {
	diag := &layout.Collector{}
	a := New("dup", fakeFactory("view", nil), WithFrame(layout.NewRect(0, 0, 1, 1)))
	b := New("dup", fakeFactory("view", nil), WithFrame(layout.NewRect(5, 5, 2, 2)))
	root := NewRoot([]*Node{a, b}, nil, WithDiagnostics(diag))

	container := newFakeHost("container")
	root.Install(container)

	if diag.Count(layout.NotMeasured) != 1 {
		t.Errorf("NotMeasured = %d, want 1", diag.Count(layout.NotMeasured))
	}
	if diag.Count(layout.DuplicateTag) != 1 {
		t.Errorf("DuplicateTag = %d, want 1", diag.Count(layout.DuplicateTag))
	}
	// The later node wins the shared host.
	if len(container.children) != 1 {
		t.Fatalf("children = %d, want 1", len(container.children))
	}
	if got := container.children[0].frame; got != layout.NewRect(5, 5, 2, 2) {
		t.Errorf("frame = %+v, want later node's frame", got)
	}
}

func TestRootNode_Find(t *testing.T) {
	leaf := New("leaf", nil)
	root := NewRoot([]*Node{
		New("a", nil),
		New("b", nil, WithChildren(leaf)),
	}, nil)

	if got := root.Find("leaf"); got != leaf {
		t.Errorf("Find(leaf) = %p, want %p", got, leaf)
	}
	if got := root.Find("missing"); got != nil {
		t.Errorf("Find(missing) = %p, want nil", got)
	}
	if leaf.Parent().(*Node).Tag() != "b" {
		t.Errorf("leaf parent tag = %q, want b", leaf.Parent().(*Node).Tag())
	}
	if root.Find("a").Parent() != layout.Layoutable(root) {
		t.Errorf("top-level parent is not the root")
	}
}

func TestState_String(t *testing.T) {
	tests := map[State]string{
		Unmeasured: "unmeasured",
		Measured:   "measured",
		Installed:  "installed",
		State(9):   "state(9)",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func BenchmarkRootNode_Calculate(b *testing.B) {
	nodes := make([]*Node, 10)
	for i := range nodes {
		nodes[i] = New("n", nil, WithFrame(layout.NewRect(0, 0, 10, 10)))
	}
	root := NewRoot(nodes, func(r *RootNode, p *layout.Pass) {
		intentions := make([]layout.PutIntention, 0, len(nodes))
		for _, n := range nodes {
			intentions = append(intentions, layout.Flex(1, n))
		}
		p.Run(layout.HPut(intentions...))
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root.Invalidate()
		root.Calculate(layout.Size{Width: 320, Height: 44})
	}
}
