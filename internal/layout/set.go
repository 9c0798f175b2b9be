package layout

// SetLeft moves v so that its left edge is at x.
func SetLeft(v Layoutable, x float64) Operation { return set(Left(v), x) }

// SetRight moves v so that its right edge is at x. The width is kept.
func SetRight(v Layoutable, x float64) Operation { return set(Right(v), x) }

// SetTop moves v so that its top edge is at y.
func SetTop(v Layoutable, y float64) Operation { return set(Top(v), y) }

// SetBottom moves v so that its bottom edge is at y. The height is kept.
func SetBottom(v Layoutable, y float64) Operation { return set(Bottom(v), y) }

// SetWidth resizes v to width w, keeping its origin.
func SetWidth(v Layoutable, w float64) Operation { return set(Width(v), w) }

// SetHeight resizes v to height h, keeping its origin.
func SetHeight(v Layoutable, h float64) Operation { return set(Height(v), h) }

// SetSize resizes v, keeping its origin.
func SetSize(v Layoutable, s Size) Operation {
	return OperationFunc(func(*Pass) {
		v.SetFrame(v.Frame().WithSize(s))
	})
}

// SetOrigin moves v, keeping its size.
func SetOrigin(v Layoutable, o Point) Operation {
	return OperationFunc(func(*Pass) {
		v.SetFrame(v.Frame().WithOrigin(o))
	})
}

// SetFrame replaces v's frame.
func SetFrame(v Layoutable, r Rect) Operation {
	return OperationFunc(func(*Pass) {
		v.SetFrame(r)
	})
}

func set[A Anchor](a A, value float64) Operation {
	return OperationFunc(func(*Pass) {
		a.Apply(value)
	})
}
