package view

import (
	"strings"
	"testing"

	"github.com/grindlemire/go-frame/internal/layout"
	"github.com/grindlemire/go-frame/internal/node"
)

func TestView_SizeThatFits(t *testing.T) {
	tests := map[string]struct {
		view       *View
		constraint layout.Size
		want       layout.Size
	}{
		"single line": {
			view:       NewLabel("hello"),
			constraint: layout.Size{Width: layout.MaxExtent, Height: layout.MaxExtent},
			want:       layout.Size{Width: 5, Height: 1},
		},
		"wraps at constraint": {
			view:       NewLabel("aaa bbb ccc"),
			constraint: layout.Size{Width: 7, Height: layout.MaxExtent},
			want:       layout.Size{Width: 7, Height: 2},
		},
		"max lines": {
			view:       NewLabel("aaa bbb ccc", WithMaxLines(1)),
			constraint: layout.Size{Width: 3, Height: layout.MaxExtent},
			want:       layout.Size{Width: 3, Height: 1},
		},
		"padding": {
			view:       NewLabel("hi", WithPadding(layout.EdgeSymmetric(1, 2))),
			constraint: layout.Size{Width: 40, Height: 40},
			want:       layout.Size{Width: 6, Height: 3},
		},
		"size func": {
			view: New(WithSizeFunc(func(c layout.Size) layout.Size {
				return layout.Size{Width: c.Width, Height: 4}
			})),
			constraint: layout.Size{Width: 9, Height: 9},
			want:       layout.Size{Width: 9, Height: 4},
		},
		"no content": {
			view:       New(WithFrame(layout.NewRect(3, 3, 8, 2))),
			constraint: layout.Size{Width: 100, Height: 100},
			want:       layout.Size{Width: 8, Height: 2},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.view.SizeThatFits(tc.constraint); got != tc.want {
				t.Errorf("SizeThatFits() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestView_Baseline(t *testing.T) {
	v := NewLabel("aaa bbb ccc", WithFrame(layout.NewRect(0, 0, 7, 2)))
	if got := v.Baseline(layout.BaselineFirst); got != 1 {
		t.Errorf("Baseline(first) = %v, want 1", got)
	}
	if got := v.Baseline(layout.BaselineLast); got != 2 {
		t.Errorf("Baseline(last) = %v, want 2", got)
	}

	box := New(WithFrame(layout.NewRect(0, 0, 10, 4)))
	if got := box.Baseline(layout.BaselineFirst); got != 4 {
		t.Errorf("Baseline() without text = %v, want 4", got)
	}
}

func TestView_FollowBaselines(t *testing.T) {
	a := NewLabel("hello", WithPadding(layout.EdgeTRBL(2, 0, 0, 0)))
	b := NewLabel("world")
	New(WithFrame(layout.NewRect(0, 0, 100, 20)), WithChildren(a, b))

	layout.Run(
		layout.SizeToFit(a, layout.FitMax(), layout.FitMax()),
		layout.SizeToFit(b, layout.FitMax(), layout.FitMax()),
		layout.Follow(layout.FirstBaseline(a), layout.FirstBaseline(b)),
	)

	if want := layout.NewRect(0, 0, 5, 3); a.Frame() != want {
		t.Errorf("a.Frame() = %+v, want %+v", a.Frame(), want)
	}
	if want := layout.NewRect(0, 2, 5, 1); b.Frame() != want {
		t.Errorf("b.Frame() = %+v, want %+v", b.Frame(), want)
	}
}

func TestView_Tree(t *testing.T) {
	a := New(WithTag("a"))
	b := New(WithTag("b"))
	leaf := New(WithTag("leaf"))
	root := New(WithTag("root"), WithChildren(a, b))
	a.Append(leaf)

	if root.Find("leaf") != leaf {
		t.Errorf("Find(leaf) did not return leaf")
	}
	if root.ChildWithTag("leaf") != nil {
		t.Errorf("ChildWithTag(leaf) found a grandchild")
	}
	if leaf.Root() != root {
		t.Errorf("Root() is not the root")
	}
	if root.Parent() != nil {
		t.Errorf("root.Parent() = %v, want nil", root.Parent())
	}

	b.Append(leaf)
	if len(a.Children()) != 0 || leaf.Parent() != layout.Layoutable(b) {
		t.Errorf("Append did not move leaf from a to b")
	}

	if !root.RemoveChild(a) || root.RemoveChild(a) {
		t.Errorf("RemoveChild() should succeed once")
	}
	if got := root.Children(); len(got) != 1 || got[0] != b {
		t.Errorf("Children() = %v, want [b]", got)
	}
}

func TestView_WalkSkipsChildren(t *testing.T) {
	root := New(WithTag("root"), WithChildren(
		New(WithTag("a"), WithChildren(New(WithTag("a1")))),
		New(WithTag("b"), WithChildren(New(WithTag("b1")))),
	))

	var visited []string
	root.Walk(func(v *View) bool {
		visited = append(visited, v.Tag())
		return v.Tag() != "a"
	})

	want := []string{"root", "a", "b", "b1"}
	if strings.Join(visited, ",") != strings.Join(want, ",") {
		t.Errorf("Walk visited %v, want %v", visited, want)
	}
}

func TestView_AbsoluteFrame(t *testing.T) {
	leaf := New(WithFrame(layout.NewRect(1, 6, 2, 2)))
	scroller := New(
		WithFrame(layout.NewRect(10, 10, 20, 5)),
		WithViewport(layout.NewRect(0, 5, 20, 5)),
		WithChildren(leaf),
	)
	New(WithFrame(layout.NewRect(3, 0, 100, 100)), WithChildren(scroller))

	if want := layout.NewRect(14, 11, 2, 2); leaf.AbsoluteFrame() != want {
		t.Errorf("AbsoluteFrame() = %+v, want %+v", leaf.AbsoluteFrame(), want)
	}
}

func TestView_InstallNodeTree(t *testing.T) {
	build := func(text string) *node.RootNode {
		title := node.New("title", Factory(WithBorder(BorderSingle)),
			node.OnConfigure(func(v *View) { v.SetText(text) }),
			node.OnReset(func(v *View) { v.Reset() }),
			node.MeasureWith("label", func(v *View) { v.SetText(text) }),
		)
		return node.NewRoot([]*node.Node{title}, func(r *node.RootNode, p *layout.Pass) {
			p.Run(
				layout.HPut(layout.Fix(2), layout.Flex(1, title), layout.Fix(2)),
				layout.SizeToFitHeight(title),
			)
			p.Run(layout.SetHeight(r, title.Frame().Height))
		})
	}

	cell := New(WithFrame(layout.NewRect(0, 0, 20, 10)))
	first := build("Hello world")
	if got := first.Calculate(layout.Size{Width: 20, Height: 10}); got != (layout.Size{Width: 20, Height: 1}) {
		t.Errorf("Calculate() = %+v, want 20x1", got)
	}
	first.Install(cell)

	title := cell.Child("title")
	if title == nil {
		t.Fatalf("title not installed")
	}
	if title.Text() != "Hello world" || title.Border() != BorderSingle {
		t.Errorf("title = %q border %v", title.Text(), title.Border())
	}
	if want := layout.NewRect(2, 0, 16, 1); title.Frame() != want {
		t.Errorf("title.Frame() = %+v, want %+v", title.Frame(), want)
	}

	second := build("a much longer title that wraps")
	got := second.Calculate(layout.Size{Width: 20, Height: 10})
	if got.Height != 2 {
		t.Errorf("second Calculate() height = %v, want 2", got.Height)
	}
	first.PrepareForReuse(cell)
	if title.Text() != "" {
		t.Errorf("Text() after reuse = %q, want empty", title.Text())
	}
	second.Install(cell)
	if cell.Child("title") != title || len(cell.Children()) != 1 {
		t.Errorf("install did not recycle the title view")
	}
	if title.Frame().Height != 2 {
		t.Errorf("title height = %v, want 2", title.Frame().Height)
	}
}

func TestView_NodeBaseline(t *testing.T) {
	a := node.New("a", Factory(), node.MeasureWith("label", func(v *View) { v.SetText("aaa bbb") }),
		node.WithFrame(layout.NewRect(0, 0, 3, 2)))
	if got := a.Baseline(layout.BaselineLast); got != 2 {
		t.Errorf("Baseline(last) = %v, want 2", got)
	}
	plain := node.New("p", nil, node.WithFrame(layout.NewRect(0, 0, 3, 7)))
	if got := plain.Baseline(layout.BaselineFirst); got != 7 {
		t.Errorf("Baseline() = %v, want 7", got)
	}
}

func TestParseBorder(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    Border
		wantErr bool
	}{
		"empty":   {in: "", want: BorderNone},
		"rounded": {in: "rounded", want: BorderRounded},
		"thick":   {in: "thick", want: BorderThick},
		"unknown": {in: "dotted", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseBorder(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseBorder(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseBorder(%q) = %v, want %v", tc.in, got, tc.want)
			}
			if !tc.wantErr && got.String() != tc.in && tc.in != "" {
				t.Errorf("String() = %q, want %q", got.String(), tc.in)
			}
		})
	}
}
