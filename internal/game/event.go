package game

import "fmt"

// Player identifies a side of the court
type Player int

const (
	NoPlayer Player = 0
	Player1  Player = 1 // left
	Player2  Player = 2 // right
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	}
	return "none"
}

// EventKind identifies something that happened during a step
type EventKind int

const (
	PaddleMoved EventKind = iota
	WallBounce
	PaddleBounce
	PointScored
	BallReset
	PlayerWon
)

var eventNames = map[EventKind]string{
	PaddleMoved:  "PaddleMoved",
	WallBounce:   "WallBounce",
	PaddleBounce: "PaddleBounce",
	PointScored:  "PointScored",
	BallReset:    "BallReset",
	PlayerWon:    "PlayerWon",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is emitted by Match.Step. Player is set for PointScored and PlayerWon.
type Event struct {
	Kind   EventKind
	Player Player
}

func (e Event) String() string {
	if e.Player == NoPlayer {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s{%s}", e.Kind, e.Player)
}

// Events is the ordered list produced by one step
type Events []Event

// Has reports whether an event of kind occurred
func (ev Events) Has(kind EventKind) bool {
	for _, e := range ev {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// HasFor reports whether an event of kind occurred for player
func (ev Events) HasFor(kind EventKind, p Player) bool {
	for _, e := range ev {
		if e.Kind == kind && e.Player == p {
			return true
		}
	}
	return false
}
