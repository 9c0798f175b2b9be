package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-frame/internal/layout"
)

// anchorRef is a parsed "tag.edge+inset" reference.
type anchorRef struct {
	tag   string
	edge  string
	inset float64
}

func parseAnchorRef(s string) (anchorRef, error) {
	tag, rest, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok || tag == "" || rest == "" {
		return anchorRef{}, fmt.Errorf("%w: %q is not tag.edge", ErrBadAnchor, s)
	}
	ref := anchorRef{tag: tag, edge: rest}
	if i := strings.IndexAny(rest, "+-"); i >= 0 {
		n, err := strconv.ParseFloat(rest[i:], 64)
		if err != nil {
			return anchorRef{}, fmt.Errorf("%w: %q has a bad inset", ErrBadAnchor, s)
		}
		ref.edge, ref.inset = rest[:i], n
	}
	return ref, nil
}

// anchor resolves ref to a HorizontalAnchor, VerticalAnchor or SizeAnchor.
func (c *compiler) anchor(s string) (any, error) {
	ref, err := parseAnchorRef(s)
	if err != nil {
		return nil, err
	}
	el, err := c.element(ref.tag)
	if err != nil {
		return nil, err
	}

	baselinable := func() (layout.Baselinable, error) {
		b, ok := el.(layout.Baselinable)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no baselines", ErrBadAnchor, ref.tag)
		}
		return b, nil
	}

	switch ref.edge {
	case "left":
		return layout.Left(el).Inset(ref.inset), nil
	case "centerx":
		return layout.CenterX(el).Inset(ref.inset), nil
	case "right":
		return layout.Right(el).Inset(ref.inset), nil
	case "top":
		return layout.Top(el).Inset(ref.inset), nil
	case "centery":
		return layout.CenterY(el).Inset(ref.inset), nil
	case "bottom":
		return layout.Bottom(el).Inset(ref.inset), nil
	case "firstbaseline", "lastbaseline":
		b, err := baselinable()
		if err != nil {
			return nil, err
		}
		if ref.edge == "firstbaseline" {
			return layout.FirstBaseline(b).Inset(ref.inset), nil
		}
		return layout.LastBaseline(b).Inset(ref.inset), nil
	case "width":
		return layout.Width(el).Inset(ref.inset), nil
	case "height":
		return layout.Height(el).Inset(ref.inset), nil
	}
	return nil, fmt.Errorf("%w: unknown edge %q in %q", ErrBadAnchor, ref.edge, s)
}

func (c *compiler) horizontal(s string) (layout.HorizontalAnchor, error) {
	a, err := c.anchor(s)
	if err != nil {
		return layout.HorizontalAnchor{}, err
	}
	h, ok := a.(layout.HorizontalAnchor)
	if !ok {
		return layout.HorizontalAnchor{}, fmt.Errorf("%w: %q is not horizontal", ErrBadAnchor, s)
	}
	return h, nil
}

func (c *compiler) vertical(s string) (layout.VerticalAnchor, error) {
	a, err := c.anchor(s)
	if err != nil {
		return layout.VerticalAnchor{}, err
	}
	v, ok := a.(layout.VerticalAnchor)
	if !ok {
		return layout.VerticalAnchor{}, fmt.Errorf("%w: %q is not vertical", ErrBadAnchor, s)
	}
	return v, nil
}

// follow pairs two anchors of the same kind.
func (c *compiler) follow(from, to string) (layout.Operation, error) {
	src, err := c.anchor(from)
	if err != nil {
		return nil, err
	}
	dst, err := c.anchor(to)
	if err != nil {
		return nil, err
	}

	switch s := src.(type) {
	case layout.HorizontalAnchor:
		if d, ok := dst.(layout.HorizontalAnchor); ok {
			return layout.Follow(s, d), nil
		}
	case layout.VerticalAnchor:
		if d, ok := dst.(layout.VerticalAnchor); ok {
			return layout.Follow(s, d), nil
		}
	case layout.SizeAnchor:
		if d, ok := dst.(layout.SizeAnchor); ok {
			return layout.Follow(s, d), nil
		}
	}
	return nil, fmt.Errorf("%w: cannot follow %q with %q", ErrBadAnchor, from, to)
}
