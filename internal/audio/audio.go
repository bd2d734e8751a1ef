// Package audio plays the synthesized game sounds through the system
// speaker. A Player satisfies game.EffectSink for the sound half of the
// effect requests; the visual requests are ignored here.
package audio

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/carchrae/hogs/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes one-shot sound effects into a single speaker stream.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	rng         *rand.Rand
	logger      zerolog.Logger
	initialized bool
}

var _ game.EffectSink = (*Player)(nil)

// NewPlayer creates a player at the given linear volume in [0,1]. It stays
// silent until Init succeeds.
func NewPlayer(volume float64, logger zerolog.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- sound variety
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug().Int("sample_rate", int(sampleRate)).Msg("audio ready")
	return nil
}

// Close drops any sounds still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// play adds s to the mixer. The speaker goroutine reads the mixer, so the
// add happens under the speaker lock.
func (p *Player) play(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// DeathSound plays a random squeal.
func (p *Player) DeathSound() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	pitch := squealPitches[p.rng.Intn(len(squealPitches))]
	p.play(squeal(sampleRate, pitch, p.volume))
}

// CaptureSound plays the crunch.
func (p *Player) CaptureSound() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	p.play(crunch(sampleRate, p.rng.Int63(), p.volume))
}

func (p *Player) MeleeFlash(game.Vec3) {}
func (p *Player) BonePile(game.Vec3)   {}
