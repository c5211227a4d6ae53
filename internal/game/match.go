package game

import "math"

// Court and physics constants. Speeds are in units per second.
const (
	ScreenWidth  = 1200.0
	ScreenHeight = 800.0

	BallSpeed = ScreenWidth * 0.5
	BallSize  = 40.0

	PaddleSpeed  = ScreenHeight * 0.5
	PaddleWidth  = 40.0
	PaddleHeight = 80.0

	WinScore = 5
)

// Center of the court, where the ball is served from
var Center = Vector2{X: ScreenWidth * 0.5, Y: ScreenHeight * 0.5}

// Input is the held state of paddle 1's keys for one frame
type Input struct {
	Up   bool
	Down bool
}

// Match owns the whole simulation state.
// It is not safe for concurrent use; the frame loop owns it.
type Match struct {
	Ball    Ball
	Paddle1 Paddle
	Paddle2 Paddle
	Score1  int
	Score2  int
	Win1    bool
	Win2    bool

	rng RandomSource
}

// NewMatch creates a match with a served ball, centred paddles and zero scores
func NewMatch(rng RandomSource) *Match {
	m := &Match{rng: rng}
	m.Restart()
	return m
}

// Restart puts the match back in its initial state
func (m *Match) Restart() {
	m.Ball.Reset(m.rng)
	m.Paddle1 = newPaddle(ScreenWidth * 0.05)
	m.Paddle2 = newPaddle(ScreenWidth * 0.95)
	m.Score1, m.Score2 = 0, 0
	m.Win1, m.Win2 = false, false
}

// Step advances the match by dt seconds and returns what happened, in order.
//
// Collisions are tested against the ball's tentative next box, while the
// committed move uses the direction as it stands after any bounce this
// frame. A frame with dt <= 0, NaN or infinite is a no-op.
func (m *Match) Step(dt float64, in Input) Events {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return nil
	}
	var events Events

	// Paddle 2 mirrors paddle 1
	before := m.Paddle1.Position.Y
	paddleDelta := PaddleSpeed * dt
	if in.Up {
		m.Paddle1.Move(-paddleDelta)
	}
	if in.Down {
		m.Paddle1.Move(paddleDelta)
	}
	m.Paddle2.Position.Y = m.Paddle1.Position.Y
	m.Paddle1.Clamp()
	m.Paddle2.Clamp()
	if m.Paddle1.Position.Y != before {
		events = append(events, Event{Kind: PaddleMoved})
	}

	ballDelta := BallSpeed * dt
	ballBox := BallBox(m.Ball.Next(ballDelta))
	paddle1Box := m.Paddle1.Box()
	paddle2Box := m.Paddle2.Box()

	if ballBox.OutLeft() {
		m.Score2++
		events = append(events, Event{Kind: PointScored, Player: Player2})
	}
	if ballBox.OutRight() {
		m.Score1++
		events = append(events, Event{Kind: PointScored, Player: Player1})
	}

	reset := ballBox.OutLeft() || ballBox.OutRight()
	if reset {
		m.Ball.Reset(m.rng)
		events = append(events, Event{Kind: BallReset})
	}
	if ballBox.OutVertical() {
		m.Ball.BounceVertical()
		events = append(events, Event{Kind: WallBounce})
	}
	if ballBox.Overlaps(paddle1Box) || ballBox.Overlaps(paddle2Box) {
		m.Ball.BounceHorizontal()
		events = append(events, Event{Kind: PaddleBounce})
	}

	m.Win1 = m.Score1 >= WinScore
	m.Win2 = m.Score2 >= WinScore
	if m.Win1 {
		events = append(events, Event{Kind: PlayerWon, Player: Player1})
	}
	if m.Win2 {
		events = append(events, Event{Kind: PlayerWon, Player: Player2})
	}

	// A fresh serve stays on the centre spot until the next frame
	if !reset {
		m.Ball.Advance(ballDelta)
	}

	return events
}

// GameOver reports whether either player has reached WinScore
func (m *Match) GameOver() bool {
	return m.Score1 >= WinScore || m.Score2 >= WinScore
}

// Winner returns the winning player, or NoPlayer while play goes on.
// Player 1 is reported if both have somehow reached WinScore.
func (m *Match) Winner() Player {
	switch {
	case m.Score1 >= WinScore:
		return Player1
	case m.Score2 >= WinScore:
		return Player2
	}
	return NoPlayer
}
