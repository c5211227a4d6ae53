package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// Clip file names looked up in the audio directory
const (
	ImpactFile = "PongBall.wav"
	WinnerFile = "PongWinner.wav"
)

// resampleQuality is passed to beep.Resample for clips not at 44.1kHz
const resampleQuality = 4

// Clips holds the two sounds the game plays. Clips are decoded fully into
// memory so no file handle stays open after LoadClips returns.
type Clips struct {
	Volume float64

	impact *beep.Buffer
	winner *beep.Buffer

	// Set when a clip could not be loaded and a synthesized one was used
	ImpactSynthesized bool
	WinnerSynthesized bool
}

// LoadClips decodes the impact and winner clips from dir. A clip that is
// missing or unreadable is replaced with a synthesized one, so the returned
// Clips is always usable; the error reports what was replaced.
func LoadClips(dir string, volume float64) (*Clips, error) {
	c := &Clips{Volume: volume}
	var errs []error

	var err error
	c.impact, err = loadClip(filepath.Join(dir, ImpactFile))
	if err != nil {
		errs = append(errs, err)
		c.impact = bufferOf(synthImpact())
		c.ImpactSynthesized = true
	}

	c.winner, err = loadClip(filepath.Join(dir, WinnerFile))
	if err != nil {
		errs = append(errs, err)
		c.winner = bufferOf(synthWinner())
		c.WinnerSynthesized = true
	}

	return c, errors.Join(errs...)
}

func loadClip(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open clip: %w", err)
	}
	// On success f is closed together with the streamer
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, sampleRate, s)
	}

	buf := bufferOf(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return buf, nil
}

func bufferOf(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(Format)
	buf.Append(s)
	return buf
}

// impactLen and winnerLen return clip lengths in samples
func (c *Clips) impactLen() int {
	if c.impact == nil {
		return 0
	}
	return c.impact.Len()
}

func (c *Clips) winnerLen() int {
	if c.winner == nil {
		return 0
	}
	return c.winner.Len()
}

// PlayImpact plays the sound for the ball hitting a wall or paddle
func (c *Clips) PlayImpact() {
	c.play(c.impact)
}

// PlayWinner plays the game over sound
func (c *Clips) PlayWinner() {
	c.play(c.winner)
}

func (c *Clips) play(buf *beep.Buffer) {
	if !initialized || buf == nil || !(c.Volume > 0) {
		return
	}
	speaker.Play(withVolume(buf.Streamer(0, buf.Len()), c.Volume))
}

// Released reports whether Close has dropped the clips
func (c *Clips) Released() bool {
	return c.impact == nil && c.winner == nil
}

// Close stops anything still playing and drops the decoded clips.
// It is safe to call more than once.
func (c *Clips) Close() {
	if initialized {
		speaker.Clear()
	}
	c.impact = nil
	c.winner = nil
}
