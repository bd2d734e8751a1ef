package game

import (
	"math"
	"testing"
)

func TestBulletHitsHog_TranslationInvariant(t *testing.T) {
	offsets := []struct {
		off Vec3
		hit bool
	}{
		{Vec3{}, true},
		{Vec3{X: 0.8}, true},
		{Vec3{X: 0.95}, false},
		{Vec3{Y: 0.3}, true},
		{Vec3{Y: 0.45}, false},
		{Vec3{Z: -0.35}, true},
		{Vec3{Z: 0.5}, false},
		{Vec3{X: 0.5, Y: 0.25, Z: 0.1}, true},
		{Vec3{X: 0.7, Y: 0.3}, false},
	}
	shifts := []Vec3{{}, {X: 5, Y: -3}, {X: -7.25, Y: 4.5, Z: 1}, {Y: 100}}
	for _, s := range shifts {
		for _, o := range offsets {
			h := s
			b := s.Add(o.off)
			if got := bulletHitsHog(b, h); got != o.hit {
				t.Fatalf("offset %+v shifted by %+v: hit=%v, want %v", o.off, s, got, o.hit)
			}
		}
	}
}

func TestFire_MeleeNeverSpawnsBullet(t *testing.T) {
	ts := NewTestSim(
		WithChild(-6, -4),
		WithHog(HogStragler, 0, -3, func(h *Hog) { h.ArrivalDelay = 100 }),
		WithHog(HogStragler, 6, 5, func(h *Hog) { h.ArrivalDelay = 100 }),
	)
	ts.Fire()
	if len(ts.State.Reg.Bullets) != 0 {
		t.Fatalf("melee kill should not spawn a bullet, got %d", len(ts.State.Reg.Bullets))
	}
	if ts.State.Stats.MeleeKills != 1 || ts.State.Score != killScore {
		t.Fatalf("expected one melee kill worth %d, got kills=%d score=%d",
			killScore, ts.State.Stats.MeleeKills, ts.State.Score)
	}
	if ts.State.Stats.ShotsFired != 0 {
		t.Fatalf("melee should not count as a shot, got %d", ts.State.Stats.ShotsFired)
	}
}

func TestFire_MeleePicksNearest(t *testing.T) {
	ts := NewTestSim(
		WithChild(-6, -4),
		WithHog(HogStragler, 1.2, -4, func(h *Hog) { h.ArrivalDelay = 100 }),
		WithHog(HogStragler, 0.5, -4, func(h *Hog) { h.ArrivalDelay = 100 }),
	)
	ts.Fire()
	if len(ts.State.Reg.Hogs) != 1 {
		t.Fatalf("expected one hog left, got %d", len(ts.State.Reg.Hogs))
	}
	if left := ts.State.Reg.Hogs[0]; left.Pos.X != 1.2 {
		t.Fatalf("the nearer hog should have died, survivor at x=%.2f", left.Pos.X)
	}
}

func TestFire_SpawnsBulletAboveMuzzle(t *testing.T) {
	ts := NewTestSim(
		WithChild(-6, -4),
		WithHog(HogStragler, 6, 5, func(h *Hog) { h.ArrivalDelay = 100 }),
	)
	ts.Fire()
	if len(ts.State.Reg.Bullets) != 1 {
		t.Fatalf("expected one bullet, got %d", len(ts.State.Reg.Bullets))
	}
	b := ts.State.Reg.Bullets[0]
	// Spawned at -4+0.5 and lifted once in the same tick.
	if math.Abs(b.Pos.Y-(-3.5+bulletRise)) > 1e-9 {
		t.Fatalf("expected bullet at y=%.2f, got %.4f", -3.5+bulletRise, b.Pos.Y)
	}
}

func TestBullet_KillScoresTen(t *testing.T) {
	ts := NewTestSim(
		WithChild(-6, -4),
		WithHog(HogStragler, 0, 2, func(h *Hog) { h.ArrivalDelay = 100 }),
		WithHog(HogStragler, 7, 5, func(h *Hog) { h.ArrivalDelay = 100 }),
	)
	ts.Fire()
	ts.RunUntil(func(ts *TestSim) bool { return ts.State.Stats.BulletKills > 0 }, 60)

	if ts.State.Stats.BulletKills != 1 {
		t.Fatalf("expected one bullet kill, got %d\n%s", ts.State.Stats.BulletKills, ts.SimLog.Format())
	}
	if ts.State.Score != 10 {
		t.Fatalf("expected score 10, got %d", ts.State.Score)
	}
	if len(ts.State.Reg.Bullets) != 0 {
		t.Fatalf("the bullet should be consumed, %d left", len(ts.State.Reg.Bullets))
	}
	if !ts.SimLog.HasEntry("combat", "kill", "bullet") {
		t.Fatalf("expected a bullet kill entry\n%s", ts.SimLog.Format())
	}
}

func TestBullet_DespawnsAboveCeiling(t *testing.T) {
	ts := NewTestSim(
		WithChild(-6, -4),
		WithHog(HogStragler, 7, 5, func(h *Hog) { h.ArrivalDelay = 100 }),
	)
	ts.Fire()
	ts.RunTicks(60)
	if len(ts.State.Reg.Bullets) != 0 {
		t.Fatalf("bullet should be gone after passing y=%.0f", bulletCeiling)
	}
}

func TestCapture_OnePairPerHog(t *testing.T) {
	ts := NewTestSim(
		WithChild(0, 0),
		WithChild(-6, -4),
		WithHog(HogStragler, 0, 0, func(h *Hog) { h.ArrivalDelay = 100 }),
		WithHog(HogStragler, 0.1, 0, func(h *Hog) { h.ArrivalDelay = 100 }),
	)
	ts.RunTicks(1)

	st := ts.State
	if st.Stats.Captures != 1 {
		t.Fatalf("expected one capture, got %d\n%s", st.Stats.Captures, ts.SimLog.Format())
	}
	if len(st.Reg.Hogs) != 1 || len(st.Reg.Children) != 1 {
		t.Fatalf("capture removes exactly one hog and one child, got hogs=%d children=%d",
			len(st.Reg.Hogs), len(st.Reg.Children))
	}
	if st.ChildrenRemaining != 1 {
		t.Fatalf("children counter should drop to 1, got %d", st.ChildrenRemaining)
	}
	if ts.Ended {
		t.Fatalf("session should continue, got %+v", ts.Event)
	}
}

func TestEscape_DespawnsWithoutScore(t *testing.T) {
	ts := NewTestSim(
		WithChild(-6, -4),
		WithHog(HogStragler, 6, -4.9, func(h *Hog) { h.ArrivalDelay = 100 }),
		WithHog(HogStragler, 7, 5, func(h *Hog) { h.ArrivalDelay = 100 }),
	)
	ts.RunTicks(1)
	if ts.State.Stats.Escapes != 1 || len(ts.State.Reg.Hogs) != 1 {
		t.Fatalf("expected one escape, got escapes=%d hogs=%d", ts.State.Stats.Escapes, len(ts.State.Reg.Hogs))
	}
	if ts.State.Score != 0 {
		t.Fatalf("escapes are not scored, got %d", ts.State.Score)
	}
}
