package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// squealGenerator is a pig squeal: a fast upward chirp with vibrato, sine
// and saw layered.
type squealGenerator struct {
	sr    beep.SampleRate
	pos   int
	base  float64 // Hz
	phase float64
}

func newSquealGenerator(sr beep.SampleRate, base float64) *squealGenerator {
	return &squealGenerator{sr: sr, base: base}
}

func (g *squealGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Chirp up over the first 80ms then wobble.
		sweep := 1 + 0.8*math.Min(t/0.08, 1)
		vibrato := 1 + 0.06*math.Sin(2*math.Pi*28*t)
		freq := g.base * sweep * vibrato

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		sine := math.Sin(2 * math.Pi * g.phase)
		saw := 2 * (g.phase - 0.5)
		attack := math.Min(t/0.01, 1)
		env := attack * math.Exp(-t*5)
		sample := env * (0.6*sine + 0.25*saw) * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *squealGenerator) Err() error { return nil }

// crunchGenerator is a short wet crunch: filtered noise over a low thump.
type crunchGenerator struct {
	sr   beep.SampleRate
	pos  int
	rng  *rand.Rand
	prev float64
}

func newCrunchGenerator(sr beep.SampleRate, seed int64) *crunchGenerator {
	return &crunchGenerator{sr: sr, rng: rand.New(rand.NewSource(seed))} // #nosec G404 -- audio noise
}

func (g *crunchGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 9)

		noise := g.rng.Float64()*2 - 1
		g.prev += (noise - g.prev) * 0.35 // one-pole low-pass
		thump := 0.5 * math.Sin(2*math.Pi*(70-30*math.Min(t/0.2, 1))*t)

		sample := env * (0.45*g.prev + thump) * 0.6

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *crunchGenerator) Err() error { return nil }

// squealPitches mirrors having a few recorded squeals to pick from.
var squealPitches = []float64{520, 610, 700}

const (
	squealLength = 450 * time.Millisecond
	crunchLength = 350 * time.Millisecond
)

func squeal(sr beep.SampleRate, pitch float64, vol float64) beep.Streamer {
	return withVolume(beep.Take(sr.N(squealLength), newSquealGenerator(sr, pitch)), vol)
}

func crunch(sr beep.SampleRate, seed int64, vol float64) beep.Streamer {
	return withVolume(beep.Take(sr.N(crunchLength), newCrunchGenerator(sr, seed)), vol)
}

// withVolume scales linearly; zero mutes since log2(0) is -Inf.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
