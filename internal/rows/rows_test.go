package rows

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/grindlemire/go-frame/internal/layout"
	"github.com/grindlemire/go-frame/internal/node"
)

// textRow lays out a label of n characters wrapped to the row width, with
// one unit of padding above and below. calls counts layout runs.
func textRow(n int, calls *atomic.Int32) *node.RootNode {
	label := node.New("label", nil, node.WithMeasure(func(c layout.Size) layout.Size {
		return layout.Size{Width: c.Width, Height: math.Ceil(float64(n) / c.Width)}
	}))
	return node.NewRoot([]*node.Node{label}, func(r *node.RootNode, p *layout.Pass) {
		calls.Add(1)
		p.Run(layout.HFill(label), layout.SizeToFitHeight(label))
		p.Run(layout.SetHeight(r, label.Frame().Height+2))
	})
}

func TestCache_Height(t *testing.T) {
	var calls atomic.Int32
	c := New[int]()
	c.Put(1, textRow(25, &calls))

	tests := []struct {
		width float64
		want  float64
		calls int32
	}{
		{width: 10, want: 5, calls: 1},
		{width: 10, want: 5, calls: 1},
		{width: 10.0001, want: 5, calls: 1},
		{width: 5, want: 7, calls: 2},
		{width: 30, want: 3, calls: 3},
	}
	for _, tc := range tests {
		got, ok := c.Height(1, tc.width)
		if !ok || got != tc.want {
			t.Errorf("Height(1, %v) = %v, %v; want %v, true", tc.width, got, ok, tc.want)
		}
		if calls.Load() != tc.calls {
			t.Errorf("after width %v: layout calls = %d, want %d", tc.width, calls.Load(), tc.calls)
		}
	}

	if _, ok := c.Height(2, 10); ok {
		t.Errorf("Height(2) ok for unknown key")
	}
}

func TestCache_InvalidateAndPut(t *testing.T) {
	var calls atomic.Int32
	c := New[string]()
	c.Put("a", textRow(10, &calls))

	c.Height("a", 10)
	c.Invalidate("a")
	c.Height("a", 10)
	if calls.Load() != 2 {
		t.Errorf("layout calls = %d after Invalidate, want 2", calls.Load())
	}

	c.Put("a", textRow(30, &calls))
	if got, _ := c.Height("a", 10); got != 5 {
		t.Errorf("Height() after Put = %v, want 5", got)
	}

	c.Remove("a")
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Remove, want 0", c.Len())
	}
	c.Put("b", textRow(1, &calls))
	c.Reset()
	if _, ok := c.Root("b"); ok {
		t.Errorf("Root(b) found after Reset")
	}
}

func TestCache_Heights(t *testing.T) {
	var calls atomic.Int32
	c := New[int](WithWorkers(3))
	for i := range 20 {
		c.Put(i, textRow(i*10, &calls))
	}
	c.Height(0, 10)

	keys := []int{5, 0, 19, 5, 42}
	got, err := c.Heights(context.Background(), keys, 10)
	if err != nil {
		t.Fatalf("Heights() error = %v", err)
	}
	want := []float64{7, 2, 21, 7, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Heights()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	// Row 0 was already measured and row 5 is listed twice.
	if calls.Load() != 3 {
		t.Errorf("layout calls = %d, want 3", calls.Load())
	}

	if h, _ := c.Height(19, 10); h != 21 || calls.Load() != 3 {
		t.Errorf("Height(19) = %v with %d calls, want cached 21", h, calls.Load())
	}
}

func TestCache_HeightsCancelled(t *testing.T) {
	var calls atomic.Int32
	c := New[int]()
	for i := range 10 {
		c.Put(i, textRow(i, &calls))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Heights(ctx, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 10); !errors.Is(err, context.Canceled) {
		t.Errorf("Heights() error = %v, want context.Canceled", err)
	}
}

func TestCache_ConcurrentHeightAndHeights(t *testing.T) {
	var calls atomic.Int32
	c := New[int](WithWorkers(4))
	keys := make([]int, 50)
	for i := range keys {
		keys[i] = i
		c.Put(i, textRow(i*10+1, &calls))
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for _, w := range []float64{100, 10, 100} {
			if _, err := c.Heights(context.Background(), keys, w); err != nil {
				t.Errorf("Heights() error = %v", err)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for range 3 {
			for _, k := range keys {
				c.Height(k, 100)
				c.Height(k, 10)
			}
		}
	}()
	wg.Wait()

	for _, k := range keys {
		want := math.Ceil(float64(k*10+1)/100) + 2
		if got, _ := c.Height(k, 100); got != want {
			t.Errorf("Height(%d, 100) = %v, want %v", k, got, want)
		}
	}
}

func TestCache_HeightsWithConcurrentPut(t *testing.T) {
	var calls atomic.Int32
	c := New[int](WithWorkers(2))
	keys := make([]int, 30)
	for i := range keys {
		keys[i] = i
		c.Put(i, textRow(25, &calls))
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, k := range keys {
			c.Put(k, textRow(25, &calls))
		}
	}()

	got, err := c.Heights(context.Background(), keys, 10)
	<-done
	if err != nil {
		t.Fatalf("Heights() error = %v", err)
	}
	for i, h := range got {
		if h != 5 {
			t.Errorf("Heights()[%d] = %v, want 5", i, h)
		}
	}
}
