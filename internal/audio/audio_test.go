package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

func TestSquareWave_Length(t *testing.T) {
	buf := bufferOf(squareWave(440, 50*time.Millisecond))

	want := sampleRate.N(50 * time.Millisecond)
	if buf.Len() != want {
		t.Errorf("expected %d samples, got %d", want, buf.Len())
	}
}

func TestSquareWave_Amplitude(t *testing.T) {
	s := squareWave(440, 20*time.Millisecond)
	samples := make([][2]float64, 512)

	n, ok := s.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("expected full read, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		v := samples[i][0]
		if v != 0.2 && v != -0.2 {
			t.Fatalf("sample %d: expected +/-0.2, got %f", i, v)
		}
		if samples[i][1] != v {
			t.Fatalf("sample %d: channels differ", i)
		}
	}
}

func TestSynthWinner_Length(t *testing.T) {
	buf := bufferOf(synthWinner())

	want := 3*sampleRate.N(120*time.Millisecond) + sampleRate.N(400*time.Millisecond)
	if buf.Len() != want {
		t.Errorf("expected %d samples, got %d", want, buf.Len())
	}
}

func TestWithVolume(t *testing.T) {
	s := withVolume(squareWave(440, 10*time.Millisecond), 0.5)
	samples := make([][2]float64, 16)

	n, _ := s.Stream(samples)
	for i := 0; i < n; i++ {
		v := samples[i][0]
		if v != 0.1 && v != -0.1 {
			t.Fatalf("sample %d: expected +/-0.1, got %f", i, v)
		}
	}
}

func TestLoadClips_MissingFilesFallBack(t *testing.T) {
	clips, err := LoadClips(t.TempDir(), 0.75)
	if err == nil {
		t.Error("expected error describing missing clips")
	}
	if clips == nil {
		t.Fatal("expected usable clips")
	}
	if !clips.ImpactSynthesized || !clips.WinnerSynthesized {
		t.Error("expected both clips to be synthesized")
	}
	if clips.impactLen() == 0 || clips.winnerLen() == 0 {
		t.Error("expected synthesized clips to have samples")
	}
}

func writeWav(t *testing.T, path string, format beep.Format, duration time.Duration) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	s := beep.Take(format.SampleRate.N(duration), squareWave(440, time.Second))
	if err := wav.Encode(f, s, format); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestLoadClips_FromDir(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, filepath.Join(dir, ImpactFile), Format, 100*time.Millisecond)
	writeWav(t, filepath.Join(dir, WinnerFile), Format, 300*time.Millisecond)

	clips, err := LoadClips(dir, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clips.ImpactSynthesized || clips.WinnerSynthesized {
		t.Error("expected clips loaded from disk")
	}
	if want := sampleRate.N(100 * time.Millisecond); clips.impactLen() != want {
		t.Errorf("expected impact of %d samples, got %d", want, clips.impactLen())
	}
	if want := sampleRate.N(300 * time.Millisecond); clips.winnerLen() != want {
		t.Errorf("expected winner of %d samples, got %d", want, clips.winnerLen())
	}
}

func TestLoadClips_Resamples(t *testing.T) {
	dir := t.TempDir()
	low := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	writeWav(t, filepath.Join(dir, ImpactFile), low, 200*time.Millisecond)

	clips, err := LoadClips(dir, 1)
	if err == nil {
		t.Error("expected error for the missing winner clip")
	}
	if clips.ImpactSynthesized {
		t.Fatal("expected impact clip loaded from disk")
	}
	if !clips.WinnerSynthesized {
		t.Error("expected winner clip synthesized")
	}

	// 22.05kHz doubled to 44.1kHz, give or take the resampler's edges
	want := sampleRate.N(200 * time.Millisecond)
	if got := clips.impactLen(); got < want*95/100 || got > want*105/100 {
		t.Errorf("expected about %d samples, got %d", want, got)
	}
}

func TestLoadClips_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ImpactFile), []byte("not a wav file"), 0o644); err != nil {
		t.Fatal(err)
	}

	clips, err := LoadClips(dir, 1)
	if err == nil {
		t.Error("expected decode error")
	}
	if !clips.ImpactSynthesized {
		t.Error("expected corrupt clip to be replaced")
	}
}

func TestClips_PlayWithoutSpeaker(t *testing.T) {
	clips, _ := LoadClips(t.TempDir(), 0.75)

	// Speaker never initialized: playing is a no-op
	clips.PlayImpact()
	clips.PlayWinner()

	clips.Close()
	clips.Close()
	if !clips.Released() || clips.impactLen() != 0 || clips.winnerLen() != 0 {
		t.Error("expected clips released after Close")
	}
	clips.PlayImpact()
}
