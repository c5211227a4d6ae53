package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duopong/internal/game"
)

// Direction is the paddle movement a key asks for
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

// HoldFrames is how long a key press counts as held (~133ms at 60fps).
// Terminals only report presses, so key repeat keeps refreshing it.
const HoldFrames = 8

// KeyToDirection converts a key event to a movement direction
func KeyToDirection(key tcell.Key, r rune) Direction {
	switch key {
	case tcell.KeyUp:
		return DirUp
	case tcell.KeyDown:
		return DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return DirUp
		case 's', 'S':
			return DirDown
		}
	}
	return DirNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsRestartKey returns true if the key should start a new match
func IsRestartKey(key tcell.Key, r rune) bool {
	return key == tcell.KeyRune && (r == 'r' || r == 'R')
}

// KeyState turns discrete key presses into held up/down state
type KeyState struct {
	dir   Direction
	ticks int
}

// Press marks dir as held for the next HoldFrames frames.
// A new direction replaces the one being held.
func (k *KeyState) Press(dir Direction) {
	if dir == DirNone {
		return
	}
	k.dir = dir
	k.ticks = HoldFrames
}

// Input returns the held keys as simulator input
func (k *KeyState) Input() game.Input {
	if k.ticks <= 0 {
		return game.Input{}
	}
	return game.Input{Up: k.dir == DirUp, Down: k.dir == DirDown}
}

// Tick counts down one frame of hold time
func (k *KeyState) Tick() {
	if k.ticks > 0 {
		k.ticks--
		if k.ticks == 0 {
			k.dir = DirNone
		}
	}
}

// Release drops any held key
func (k *KeyState) Release() {
	k.dir = DirNone
	k.ticks = 0
}
