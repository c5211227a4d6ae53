package game

// Box is an axis-aligned bounding box, always derived from a position
type Box struct {
	XMin, XMax float64
	YMin, YMax float64
}

func boxAround(center Vector2, width, height float64) Box {
	return Box{
		XMin: center.X - width/2,
		XMax: center.X + width/2,
		YMin: center.Y - height/2,
		YMax: center.Y + height/2,
	}
}

// BallBox returns the box of a ball centred at position
func BallBox(position Vector2) Box {
	return boxAround(position, BallSize, BallSize)
}

// PaddleBox returns the box of a paddle centred at position
func PaddleBox(position Vector2) Box {
	return boxAround(position, PaddleWidth, PaddleHeight)
}

// Overlaps reports whether the two boxes touch or intersect.
// Shared edges count as overlapping.
func (b Box) Overlaps(o Box) bool {
	x := b.XMax >= o.XMin && b.XMin <= o.XMax
	y := b.YMax >= o.YMin && b.YMin <= o.YMax
	return x && y
}

// OutLeft reports whether the box crosses the left edge of the court
func (b Box) OutLeft() bool {
	return b.XMin < 0
}

// OutRight reports whether the box crosses the right edge of the court
func (b Box) OutRight() bool {
	return b.XMax > ScreenWidth
}

// OutVertical reports whether the box crosses the top or bottom wall
func (b Box) OutVertical() bool {
	return b.YMin < 0 || b.YMax > ScreenHeight
}
