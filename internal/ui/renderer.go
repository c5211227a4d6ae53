package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/duopong/internal/game"
)

const (
	// Ball hue cycling speed, degrees per second
	BallHueSpeed = 500.0

	// Score labels sit at these x positions in court units
	score1X = 125.0
	score2X = 875.0

	winnerText = "WINNER"
	restartHint = "Press R to play again"

	netChar = '|'
)

// Renderer draws the match onto a Screen
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// BallColor cycles through the hue wheel as time passes
func BallColor(elapsed time.Duration) tcell.Color {
	hue := math.Mod(elapsed.Seconds()*BallHueSpeed, 360)
	r, g, b := colorful.Hsv(hue, 1, 1).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// courtRect maps a box in court units onto terminal cells. Row 0 is the
// score bar, so the court starts at row 1 and is courtH rows tall.
func courtRect(b game.Box, screenW, courtH int) (x, y, w, h int) {
	sx := float64(screenW) / game.ScreenWidth
	sy := float64(courtH) / game.ScreenHeight

	x0 := int(math.Floor(b.XMin * sx))
	x1 := int(math.Ceil(b.XMax * sx))
	y0 := int(math.Floor(b.YMin * sy))
	y1 := int(math.Ceil(b.YMax * sy))

	// Anything on the court covers at least one cell
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0, x1 = max(x0, 0), min(x1, screenW)
	y0, y1 = max(y0, 0), min(y1, courtH)
	return x0, y0 + 1, x1 - x0, y1 - y0
}

// RenderMatch draws one frame: the court while play goes on, the winner
// banner once either player has won.
func (r *Renderer) RenderMatch(m *game.Match, elapsed time.Duration) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	courtH := screenH - 2

	if courtH < 1 || screenW < len(winnerText) {
		r.screen.DrawText(0, 0, "Terminal too small", tcell.StyleDefault)
		r.screen.Show()
		return
	}

	if winner := m.Winner(); winner != game.NoPlayer {
		r.renderWinner(winner, screenW, screenH)
	} else {
		r.renderCourt(m, elapsed, screenW, courtH)
	}

	r.renderStatus(screenW, screenH)
	r.screen.Show()
}

func (r *Renderer) renderCourt(m *game.Match, elapsed time.Duration, screenW, courtH int) {
	scoreStyle := func(p game.Player) tcell.Style {
		return tcell.StyleDefault.Foreground(GetPlayerColor(p)).Bold(true)
	}
	r.screen.DrawText(int(score1X/game.ScreenWidth*float64(screenW)), 0,
		fmt.Sprintf("Player 1:  %d", m.Score1), scoreStyle(game.Player1))
	r.screen.DrawText(int(score2X/game.ScreenWidth*float64(screenW)), 0,
		fmt.Sprintf("Player 2:  %d", m.Score2), scoreStyle(game.Player2))

	// Dashed net down the middle
	netStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 1; y <= courtH; y += 2 {
		r.screen.SetCell(screenW/2, y, netStyle, netChar)
	}

	r.fillBox(m.Paddle1.Box(), GetPlayerColor(game.Player1), screenW, courtH)
	r.fillBox(m.Paddle2.Box(), GetPlayerColor(game.Player2), screenW, courtH)
	r.fillBox(m.Ball.Box(), BallColor(elapsed), screenW, courtH)
}

func (r *Renderer) fillBox(b game.Box, color tcell.Color, screenW, courtH int) {
	x, y, w, h := courtRect(b, screenW, courtH)
	r.screen.FillRect(x, y, w, h, tcell.StyleDefault.Background(color), ' ')
}

func (r *Renderer) renderWinner(winner game.Player, screenW, screenH int) {
	color := GetPlayerColor(winner)
	textY := screenH / 2

	// Frame the banner when there is room for it
	boxW := len(restartHint) + 4
	boxH := 5
	if boxW <= screenW && boxH <= screenH-1 {
		boxX := (screenW - boxW) / 2
		boxY := textY - 1
		if boxY+boxH > screenH-1 {
			boxY = screenH - 1 - boxH
		}
		r.screen.DrawBox(boxX, boxY, boxW, boxH, tcell.StyleDefault.Foreground(color))
		textY = boxY + 1
	}

	style := tcell.StyleDefault.Foreground(color).Bold(true)
	r.screen.DrawText((screenW-len(winnerText))/2, textY, winnerText, style)

	if len(restartHint) <= screenW {
		r.screen.DrawText((screenW-len(restartHint))/2, textY+2, restartHint,
			tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
}

func (r *Renderer) renderStatus(screenW, screenH int) {
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, statusY, screenW, 1, statusStyle, ' ')
	statusText := fmt.Sprintf(" W/S or arrows to move | Q to quit | First to %d wins", game.WinScore)
	r.screen.DrawText(0, statusY, statusText, statusStyle)
}
