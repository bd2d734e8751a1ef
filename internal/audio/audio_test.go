package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"github.com/carchrae/hogs/internal/game"
)

func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if a := math.Abs(buf[i][0]); a > peak {
				peak = a
			}
			if buf[i][0] != buf[i][1] {
				t.Fatalf("expected mono samples, got %v", buf[i])
			}
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestSqueal_LengthAndLevel(t *testing.T) {
	n, peak := drain(t, squeal(sampleRate, squealPitches[0], 1))
	if want := sampleRate.N(squealLength); n != want {
		t.Fatalf("expected %d samples, got %d", want, n)
	}
	if peak == 0 || peak > 1 {
		t.Fatalf("peak %.3f should be audible and not clip", peak)
	}
}

func TestCrunch_LengthAndLevel(t *testing.T) {
	n, peak := drain(t, crunch(sampleRate, 1, 1))
	if want := sampleRate.N(crunchLength); n != want {
		t.Fatalf("expected %d samples, got %d", want, n)
	}
	if peak == 0 || peak > 1 {
		t.Fatalf("peak %.3f should be audible and not clip", peak)
	}
}

func TestWithVolume_ZeroIsSilent(t *testing.T) {
	_, peak := drain(t, squeal(sampleRate, squealPitches[1], 0))
	if peak != 0 {
		t.Fatalf("muted squeal should be silent, peak %.4f", peak)
	}
}

func TestPlayer_SilentUntilInit(t *testing.T) {
	p := NewPlayer(0.5, zerolog.Nop())
	p.DeathSound()
	p.CaptureSound()
	if p.mixer.Len() != 0 {
		t.Fatalf("uninitialized player should not queue sounds, got %d", p.mixer.Len())
	}
}

func TestPlayer_QueuesEffects(t *testing.T) {
	p := NewPlayer(0.5, zerolog.Nop())
	p.initialized = true // skip the real speaker

	p.DeathSound()
	p.CaptureSound()
	p.MeleeFlash(game.Vec3{})
	if p.mixer.Len() != 2 {
		t.Fatalf("expected 2 queued sounds, got %d", p.mixer.Len())
	}
}
