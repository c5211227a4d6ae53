package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Format is what every clip is converted to before buffering
var Format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// tone generates a sine wave tone at the given frequency for the given duration
func tone(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := 2 * math.Pi * freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := math.Sin(phase) * 0.3
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := 0.2
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// synthImpact is the fallback for a missing impact clip
func synthImpact() beep.Streamer {
	return squareWave(660, 50*time.Millisecond)
}

// synthWinner is the fallback for a missing winner clip: a rising arpeggio
func synthWinner() beep.Streamer {
	return beep.Seq(
		squareWave(523, 120*time.Millisecond),
		squareWave(659, 120*time.Millisecond),
		squareWave(784, 120*time.Millisecond),
		tone(1046, 400*time.Millisecond),
	)
}

// withVolume scales amplitude linearly; 1 leaves the clip untouched
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: volume - 1}
}
