package game

import "math"

const (
	MaxServeAngle = 50.0 // degrees either side of the horizontal
)

// Ball carries position and a direction of length ~1.
// Speed is applied per step, not stored in the direction.
type Ball struct {
	Position  Vector2
	Direction Vector2
}

// Box returns the ball's bounding box at its current position
func (b *Ball) Box() Box {
	return BallBox(b.Position)
}

// Next returns the tentative position after travelling distance
func (b *Ball) Next(distance float64) Vector2 {
	return b.Position.Add(b.Direction.Scale(distance))
}

// Advance commits a move of distance along the current direction
func (b *Ball) Advance(distance float64) {
	b.Position = b.Next(distance)
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.Direction.Y = -b.Direction.Y
}

// BounceHorizontal reverses horizontal direction (paddle bounce)
func (b *Ball) BounceHorizontal() {
	b.Direction.X = -b.Direction.X
}

// Reset places the ball at the centre and serves it towards a random side
// at a random angle within MaxServeAngle.
func (b *Ball) Reset(rng RandomSource) {
	b.Position = Center

	dir := Vector2{X: 1}
	if rng.Uniform(0, 1) < 0.5 {
		dir.X = -1
	}
	angle := rng.Uniform(-MaxServeAngle, MaxServeAngle) * math.Pi / 180
	b.Direction = dir.Rotate(angle)
}
