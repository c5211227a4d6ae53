package game

// Paddle has a fixed column; only Y changes
type Paddle struct {
	Position Vector2
}

func newPaddle(x float64) Paddle {
	return Paddle{Position: Vector2{X: x, Y: Center.Y}}
}

// Box returns the paddle's bounding box
func (p *Paddle) Box() Box {
	return PaddleBox(p.Position)
}

// Move shifts the paddle vertically by dy without clamping
func (p *Paddle) Move(dy float64) {
	p.Position.Y += dy
}

// Clamp keeps the whole paddle inside the court
func (p *Paddle) Clamp() {
	half := PaddleHeight / 2
	switch {
	case p.Position.Y < half:
		p.Position.Y = half
	case p.Position.Y > ScreenHeight-half:
		p.Position.Y = ScreenHeight - half
	}
}
