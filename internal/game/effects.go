package game

//go:generate go tool mockgen -destination=./mocks/effects_mock.go -package=mocks . EffectSink

// EffectSink receives fire-and-forget presentation requests from the
// simulation. Implementations must not call back into the simulation.
type EffectSink interface {
	// DeathSound plays when a hog is killed by bullet or melee.
	DeathSound()
	// CaptureSound plays when a hog catches a child.
	CaptureSound()
	// MeleeFlash shows the short red flash of a melee kill.
	MeleeFlash(at Vec3)
	// BonePile leaves remains where a child was caught.
	BonePile(at Vec3)
}

// NopEffects discards every request.
type NopEffects struct{}

func (NopEffects) DeathSound()     {}
func (NopEffects) CaptureSound()   {}
func (NopEffects) MeleeFlash(Vec3) {}
func (NopEffects) BonePile(Vec3)   {}

// Effects fans every request out to each sink in order.
type Effects []EffectSink

func (fx Effects) DeathSound() {
	for _, s := range fx {
		s.DeathSound()
	}
}

func (fx Effects) CaptureSound() {
	for _, s := range fx {
		s.CaptureSound()
	}
}

func (fx Effects) MeleeFlash(at Vec3) {
	for _, s := range fx {
		s.MeleeFlash(at)
	}
}

func (fx Effects) BonePile(at Vec3) {
	for _, s := range fx {
		s.BonePile(at)
	}
}
