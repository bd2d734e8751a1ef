package game_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/carchrae/hogs/internal/game"
	"github.com/carchrae/hogs/internal/game/mocks"
)

func frozen(h *game.Hog) { h.ArrivalDelay = 100 }

func TestEffects_MeleeKill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := mocks.NewMockEffectSink(ctrl)
	fx.EXPECT().DeathSound().Times(1)
	fx.EXPECT().MeleeFlash(game.Vec3{X: 0, Y: -3}).Times(1)

	ts := game.NewTestSim(
		game.WithTestEffects(fx),
		game.WithChild(-6, -4),
		game.WithHog(game.HogStragler, 0, -3, frozen),
		game.WithHog(game.HogStragler, 6, 5, frozen),
	)
	ts.Fire()
}

func TestEffects_ShotRequestsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := mocks.NewMockEffectSink(ctrl)

	ts := game.NewTestSim(
		game.WithTestEffects(fx),
		game.WithChild(-6, -4),
		game.WithHog(game.HogStragler, 6, 5, frozen),
	)
	ts.Fire()
}

func TestEffects_CaptureLeavesBonePile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := mocks.NewMockEffectSink(ctrl)
	gomock.InOrder(
		fx.EXPECT().BonePile(gomock.Any()).Times(1),
		fx.EXPECT().CaptureSound().Times(1),
	)

	ts := game.NewTestSim(
		game.WithTestEffects(fx),
		game.WithChild(0, 0),
		game.WithChild(-6, -4),
		game.WithHog(game.HogStragler, 0, 0, frozen),
	)
	ts.RunTicks(1)
	if ts.State.Stats.Captures != 1 {
		t.Fatalf("expected a capture, got %d", ts.State.Stats.Captures)
	}
}

func TestEffects_BulletKill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fx := mocks.NewMockEffectSink(ctrl)
	fx.EXPECT().DeathSound().Times(1)

	ts := game.NewTestSim(
		game.WithTestEffects(fx),
		game.WithChild(-6, -4),
		game.WithHog(game.HogStragler, 0, 2, frozen),
		game.WithHog(game.HogStragler, 7, 5, frozen),
	)
	ts.Fire()
	ts.RunTicks(40)
	if ts.State.Stats.BulletKills != 1 {
		t.Fatalf("expected a bullet kill, got %d", ts.State.Stats.BulletKills)
	}
}

func TestEffects_FanOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := mocks.NewMockEffectSink(ctrl)
	b := mocks.NewMockEffectSink(ctrl)
	at := game.Vec3{X: 1, Y: 2}
	a.EXPECT().BonePile(at)
	b.EXPECT().BonePile(at)
	a.EXPECT().DeathSound()
	b.EXPECT().DeathSound()

	fx := game.Effects{a, b}
	fx.BonePile(at)
	fx.DeathSound()
}
