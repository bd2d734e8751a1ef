package game

import (
	"math"
	"testing"
)

func frozenHog(h *Hog) { h.ArrivalDelay = 1000 }

// quietSim is an arena that never ends on its own: one child tucked in a
// corner and one stragler that never arrives.
func quietSim(opts ...SimOption) *TestSim {
	base := []SimOption{
		WithChild(-7, 5, func(c *Child) { c.ChangeTimer = 1000 }),
		WithHog(HogStragler, 7, 5, frozenHog),
	}
	return NewTestSim(append(base, opts...)...)
}

func TestPlayer_MovesWithinBounds(t *testing.T) {
	ts := quietSim()
	ts.Intent = Intent{Move: Vec2{X: 1, Y: 1}}
	ts.RunTicks(200)

	p := ts.State.Player
	if p.Pos.X < playerMaxX || p.Pos.X > playerMaxX+playerSpeed {
		t.Fatalf("player should stop at the right edge, x=%.3f", p.Pos.X)
	}
	if p.Pos.Y < playerMaxY || p.Pos.Y > playerMaxY+playerSpeed {
		t.Fatalf("player should stop just past y=%.1f, y=%.3f", playerMaxY, p.Pos.Y)
	}
	if p.Yaw != -playerLean {
		t.Fatalf("moving right should lean by %.3f, got %.3f", -playerLean, p.Yaw)
	}

	ts.Intent = Intent{Move: Vec2{X: -1, Y: -1}}
	ts.RunTicks(400)
	p = ts.State.Player
	if p.Pos.X > -playerMaxX || p.Pos.X < -playerMaxX-playerSpeed {
		t.Fatalf("player should stop at the left edge, x=%.3f", p.Pos.X)
	}
	if p.Pos.Y > playerMinY || p.Pos.Y < playerMinY-playerSpeed {
		t.Fatalf("player should stop at the bottom, y=%.3f", p.Pos.Y)
	}
	if p.Yaw != playerLean {
		t.Fatalf("moving left should lean by %.3f, got %.3f", playerLean, p.Yaw)
	}

	ts.Intent = Intent{}
	ts.RunTicks(1)
	if ts.State.Player.Yaw != 0 {
		t.Fatalf("standing still should face forward, got %.3f", ts.State.Player.Yaw)
	}
}

func TestPlayer_SingleStep(t *testing.T) {
	ts := quietSim()
	ts.Step(Intent{Move: Vec2{X: -0.3}})
	if math.Abs(ts.State.Player.Pos.X+playerSpeed) > 1e-9 {
		t.Fatalf("move is by sign, expected x=%.2f, got %.4f", -playerSpeed, ts.State.Player.Pos.X)
	}
}

func TestStep_NoOpAfterTerminal(t *testing.T) {
	ts := NewTestSim(
		WithChild(0, 0),
		WithHog(HogSwarm, 0, 0),
	)
	if !ts.Step(Intent{}) {
		t.Fatal("capture of the only child should end the session")
	}
	tick := ts.State.Tick

	ev, done := ts.Sim.Step(Intent{Fire: true, Move: Vec2{X: 1}}, 5)
	if done || ev.Outcome != OutcomeNone {
		t.Fatalf("step after the end should not raise another event, got %+v", ev)
	}
	if ts.State.Tick != tick {
		t.Fatalf("tick should not advance after the end, %d → %d", tick, ts.State.Tick)
	}
	if ts.State.Player.Pos != playerSpawn || len(ts.State.Reg.Bullets) != 0 {
		t.Fatal("intent should be ignored after the end")
	}
	if res, ok := ts.Sim.Result(); !ok || res.Outcome != OutcomeLose {
		t.Fatalf("Result should keep the lose event, got %+v ok=%v", res, ok)
	}
}

func TestSimulation_DefaultArena(t *testing.T) {
	sim := NewSimulation(WithSeed(9))
	st := sim.State()
	if len(st.Reg.Children) != 5 || sim.ChildrenRemaining() != 5 {
		t.Fatalf("expected 5 children, got %d (counter %d)", len(st.Reg.Children), sim.ChildrenRemaining())
	}
	if len(st.Reg.Hogs) != DefaultWave().Total() {
		t.Fatalf("expected %d hogs, got %d", DefaultWave().Total(), len(st.Reg.Hogs))
	}
	if len(st.Reg.Obstacles) != DefaultScatter().Total() {
		t.Fatalf("expected %d obstacles, got %d", DefaultScatter().Total(), len(st.Reg.Obstacles))
	}
	counts := map[HogVariant]int{}
	for _, h := range st.Reg.Hogs {
		counts[h.Variant]++
		if h.Variant == HogElite && h.Scale != 1.3 {
			t.Fatalf("elite scale should be 1.3, got %.2f", h.Scale)
		}
		if h.Variant == HogElite && h.Aggressiveness < 0.8 {
			t.Fatalf("elite aggressiveness should be >= 0.8, got %.2f", h.Aggressiveness)
		}
		if h.Variant == HogStragler && (h.ArrivalDelay < 0 || h.ArrivalDelay > 5) {
			t.Fatalf("stragler delay should be in [0,5], got %.2f", h.ArrivalDelay)
		}
	}
	if counts[HogSwarm] != 25 || counts[HogStragler] != 12 || counts[HogElite] != 8 {
		t.Fatalf("unexpected wave mix: %v", counts)
	}
	if sim.Score() != 0 || sim.Over() {
		t.Fatal("fresh session should be scoreless and running")
	}
}

func TestSimulation_ScoreAndChildrenMonotone(t *testing.T) {
	ts := NewTestSim(WithTestSeed(3), WithFullArena(DefaultWave()))
	prevScore := ts.Sim.Score()
	prevChildren := ts.Sim.ChildrenRemaining()
	for i := 0; i < 3000 && !ts.Ended; i++ {
		in := Intent{Fire: i%6 == 0}
		if hs := ts.State.Reg.Hogs; len(hs) > 0 {
			in.Move.X = hs[0].Pos.X - ts.State.Player.Pos.X
		}
		ts.Step(in)
		if s := ts.Sim.Score(); s < prevScore {
			t.Fatalf("tick %d: score fell %d → %d", ts.State.Tick, prevScore, s)
		} else {
			prevScore = s
		}
		if c := ts.Sim.ChildrenRemaining(); c > prevChildren {
			t.Fatalf("tick %d: children rose %d → %d", ts.State.Tick, prevChildren, c)
		} else {
			prevChildren = c
		}
		if ts.Sim.ChildrenRemaining() != len(ts.State.Reg.Children) {
			t.Fatalf("tick %d: counter %d disagrees with registry %d",
				ts.State.Tick, ts.Sim.ChildrenRemaining(), len(ts.State.Reg.Children))
		}
		if ts.Sim.Score() != killScore*ts.State.Stats.Kills() {
			t.Fatalf("tick %d: score %d is not %d per kill (%d kills)",
				ts.State.Tick, ts.Sim.Score(), killScore, ts.State.Stats.Kills())
		}
	}
}

func TestSimulation_SameSeedSameRun(t *testing.T) {
	run := func() []HogSnapshot {
		ts := NewTestSim(WithTestSeed(11), WithFullArena(DefaultWave()))
		ts.RunTicks(300)
		return ts.Snapshot()
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("hog counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("hog %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
