package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duopong/internal/audio"
	"github.com/diegok/duopong/internal/config"
	"github.com/diegok/duopong/internal/game"
	"github.com/diegok/duopong/internal/ui"
)

// sounds is the part of the audio provider the loop needs
type sounds interface {
	PlayImpact()
	PlayWinner()
}

type silent struct{}

func (silent) PlayImpact() {}
func (silent) PlayWinner() {}

// App is the main application controller that owns the frame loop.
type App struct {
	cfg      *config.Config
	logger   *log.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	clips    *audio.Clips
	sounds   sounds

	match   *game.Match
	keys    ui.KeyState
	wasOver bool
	start   time.Time
	last    time.Time

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, logger *log.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
		sounds: silent{},
		match:  game.NewMatch(game.NewRandSource(cfg.Seed)),
		quit:   make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes audio and the screen, then runs frames until quit.
// Everything acquired here is released on every return path.
func (a *App) Run() error {
	defer a.cleanup()

	a.setupAudio()

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if _, ok := <-a.sigChan; ok {
			a.logger.Info("received signal, quitting")
			close(a.quit)
		}
	}()

	return a.mainLoop()
}

// setupAudio opens the speaker and loads the clips. Audio is optional:
// any failure leaves the game running silently.
func (a *App) setupAudio() {
	if a.cfg.Mute {
		a.logger.Debug("audio muted")
		return
	}
	if err := audio.Init(); err != nil {
		a.logger.Warn("audio unavailable, playing silently", "error", err)
		return
	}

	clips, err := audio.LoadClips(a.cfg.AudioDir, a.cfg.Volume)
	if err != nil {
		a.logger.Warn("using synthesized sounds", "dir", a.cfg.AudioDir,
			"impact", clips.ImpactSynthesized, "winner", clips.WinnerSynthesized, "error", err)
	}
	a.clips = clips
	a.sounds = clips
}

// mainLoop is the main event loop that handles input and frame ticks.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	a.start = time.Now()
	a.last = a.start
	a.logger.Info("match started", "fps", a.cfg.FPS, "seed", a.cfg.Seed)

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			a.frame(now)
		}
	}
}

// frame advances the match by the real time since the previous frame and
// draws the result.
func (a *App) frame(now time.Time) {
	dt := now.Sub(a.last).Seconds()
	a.last = now

	a.update(dt)
	a.renderer.RenderMatch(a.match, now.Sub(a.start))
}

// update runs one simulation step and reacts to what happened
func (a *App) update(dt float64) game.Events {
	events := a.match.Step(dt, a.keys.Input())
	a.keys.Tick()

	// Both bounces in one frame share a single impact sound
	if events.Has(game.WallBounce) || events.Has(game.PaddleBounce) {
		a.sounds.PlayImpact()
	}
	for _, e := range events {
		if e.Kind == game.PointScored {
			a.logger.Debug("point scored", "player", e.Player,
				"score1", a.match.Score1, "score2", a.match.Score2)
		}
	}

	over := a.match.GameOver()
	if over && !a.wasOver {
		a.logger.Info("match won", "winner", a.match.Winner(),
			"score1", a.match.Score1, "score2", a.match.Score2)
		a.sounds.PlayWinner()
	}
	a.wasOver = over

	return events
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventResize:
		a.screen.Clear()
		a.renderer.RenderMatch(a.match, time.Since(a.start))
	}

	return false
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	if ui.IsQuitKey(key, r) {
		return true
	}

	if ui.IsRestartKey(key, r) && a.match.GameOver() {
		a.logger.Info("match restarted")
		a.match.Restart()
		a.keys.Release()
		a.wasOver = false
		return false
	}

	a.keys.Press(ui.KeyToDirection(key, r))
	return false
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	if a.clips != nil && !a.clips.Released() {
		a.clips.Close()
	}
	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	if a.sigChan != nil {
		signal.Stop(a.sigChan)
		close(a.sigChan)
	}
}
