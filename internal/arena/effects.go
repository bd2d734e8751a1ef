package arena

import (
	"math/rand"

	"github.com/carchrae/hogs/internal/game"
)

const (
	flashFrames = 9 // ~150ms at 60 TPS
	flashRadius = 0.8
)

// flash is a short red burst where a hog was clubbed.
type flash struct {
	at  game.Vec3
	ttl int
}

// bonePiece is one fragment of a bone pile, offset from the pile centre.
type bonePiece struct {
	dx, dy float64
	size   float64
	long   bool // long bone vs fragment
}

type bonePile struct {
	at     game.Vec3
	pieces []bonePiece
}

// visuals is the on-screen half of the effect sink. Sound requests are left
// to the audio player.
type visuals struct {
	rng     *rand.Rand
	flashes []flash
	piles   []bonePile
}

var _ game.EffectSink = (*visuals)(nil)

func newVisuals(seed int64) *visuals {
	return &visuals{rng: rand.New(rand.NewSource(seed))} // #nosec G404 -- cosmetic only
}

func (v *visuals) DeathSound()   {}
func (v *visuals) CaptureSound() {}

func (v *visuals) MeleeFlash(at game.Vec3) {
	v.flashes = append(v.flashes, flash{at: at, ttl: flashFrames})
}

// BonePile scatters a skull, four long bones, three ribs and six fragments
// around at. Piles stay for the rest of the session.
func (v *visuals) BonePile(at game.Vec3) {
	p := bonePile{at: at}
	add := func(n int, spread, size float64, long bool) {
		for i := 0; i < n; i++ {
			p.pieces = append(p.pieces, bonePiece{
				dx:   (v.rng.Float64() - 0.5) * spread,
				dy:   (v.rng.Float64() - 0.5) * spread,
				size: size,
				long: long,
			})
		}
	}
	add(1, 0.2, 0.08, false)
	add(4, 0.3, 0.2, true)
	add(3, 0.25, 0.06, false)
	add(6, 0.4, 0.04, false)
	v.piles = append(v.piles, p)
}

// tick ages the flashes and drops the spent ones.
func (v *visuals) tick() {
	live := v.flashes[:0]
	for _, f := range v.flashes {
		f.ttl--
		if f.ttl > 0 {
			live = append(live, f)
		}
	}
	v.flashes = live
}

func (v *visuals) reset() {
	v.flashes = v.flashes[:0]
	v.piles = v.piles[:0]
}
