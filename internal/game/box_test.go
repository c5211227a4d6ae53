package game

import "testing"

func TestBallBox(t *testing.T) {
	box := BallBox(Vector2{X: 100, Y: 50})

	want := Box{XMin: 80, XMax: 120, YMin: 30, YMax: 70}
	if box != want {
		t.Errorf("expected %+v, got %+v", want, box)
	}
}

func TestPaddleBox(t *testing.T) {
	box := PaddleBox(Vector2{X: 60, Y: 400})

	want := Box{XMin: 40, XMax: 80, YMin: 360, YMax: 440}
	if box != want {
		t.Errorf("expected %+v, got %+v", want, box)
	}
}

func TestBox_Overlaps(t *testing.T) {
	base := Box{XMin: 0, XMax: 10, YMin: 0, YMax: 10}

	tests := []struct {
		name  string
		other Box
		want  bool
	}{
		{"inside", Box{XMin: 2, XMax: 8, YMin: 2, YMax: 8}, true},
		{"partial", Box{XMin: 5, XMax: 15, YMin: 5, YMax: 15}, true},
		{"shared vertical edge", Box{XMin: 10, XMax: 20, YMin: 0, YMax: 10}, true},
		{"shared corner", Box{XMin: 10, XMax: 20, YMin: 10, YMax: 20}, true},
		{"left of", Box{XMin: -20, XMax: -1, YMin: 0, YMax: 10}, false},
		{"below", Box{XMin: 0, XMax: 10, YMin: 11, YMax: 20}, false},
		{"x overlap only", Box{XMin: 5, XMax: 15, YMin: 30, YMax: 40}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("overlap should be symmetric for %+v", tt.other)
			}
		})
	}
}

func TestBox_Bounds(t *testing.T) {
	if !BallBox(Vector2{X: 19, Y: 400}).OutLeft() {
		t.Error("expected ball at x=19 to cross the left edge")
	}
	if BallBox(Vector2{X: 20, Y: 400}).OutLeft() {
		t.Error("ball touching the left edge should not count as out")
	}
	if !BallBox(Vector2{X: ScreenWidth - 19, Y: 400}).OutRight() {
		t.Error("expected ball to cross the right edge")
	}
	if !BallBox(Vector2{X: 600, Y: 19}).OutVertical() {
		t.Error("expected ball to cross the top wall")
	}
	if !BallBox(Vector2{X: 600, Y: ScreenHeight - 19}).OutVertical() {
		t.Error("expected ball to cross the bottom wall")
	}
	if BallBox(Center).OutVertical() {
		t.Error("centred ball should be inside the court")
	}
}
