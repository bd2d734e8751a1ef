package game

import (
	"strings"
	"testing"
)

// dumpLog prints the full SimLog to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, ts *TestSim) {
	t.Helper()
	entries := ts.SimLog.Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// dumpSummary prints the scenario summary block.
func dumpSummary(t *testing.T, ts *TestSim) {
	t.Helper()
	t.Log(ts.SimLog.Summary(ts.CurrentTick(), ts.State.Reg))
	t.Log(ts.Sim.Report().Format())
}

// --- Scenario A: hog on top of the last child ---

func TestScenario_LastChildCaught(t *testing.T) {
	t.Log("=== TestScenario_LastChildCaught ===")
	t.Log("--- Setup: 1 child and 1 swarm hog on the same spot ---")

	ts := NewTestSim(
		WithChild(0, 0),
		WithHog(HogSwarm, 0, 0),
	)
	ts.RunTicks(1)
	dumpLog(t, ts)
	dumpSummary(t, ts)

	if !ts.Ended {
		t.Fatal("session should end on the first tick")
	}
	if ts.Event.Outcome != OutcomeLose || ts.Event.Title != "All Children Eaten!" {
		t.Fatalf("expected lose, got %+v", ts.Event)
	}
	if ts.Sim.ChildrenRemaining() != 0 {
		t.Fatalf("children counter should be 0, got %d", ts.Sim.ChildrenRemaining())
	}
	if _, ok := ts.SimLog.LastOf("outcome", "lose"); !ok {
		t.Fatal("expected an outcome entry")
	}
}

// --- Scenario B: last hog clubbed ---

func TestScenario_LastHogClubbed(t *testing.T) {
	t.Log("=== TestScenario_LastHogClubbed ===")
	t.Log("--- Setup: 1 child in the corner, 1 hog next to the player ---")

	ts := NewTestSim(
		WithChild(-7, 5),
		WithHog(HogSwarm, 0.5, -3.5),
	)
	ts.Fire()
	dumpLog(t, ts)
	dumpSummary(t, ts)

	if !ts.Ended || ts.Event.Outcome != OutcomeWin {
		t.Fatalf("expected win, got ended=%v %+v", ts.Ended, ts.Event)
	}
	if ts.Event.FinalScore != 10 || ts.Event.Message != "Score: 10" {
		t.Fatalf("expected final score 10, got %+v", ts.Event)
	}
	if ts.EndTick != 1 {
		t.Fatalf("expected the session to end on tick 1, got %d", ts.EndTick)
	}
}

// --- Scenario: straglers arrive late ---

func TestScenario_StraglersArriveLate(t *testing.T) {
	t.Log("=== TestScenario_StraglersArriveLate ===")
	t.Log("--- Setup: 3 children, 2 straglers with 0.5s and 1.5s delays ---")

	ts := NewTestSim(
		WithTestSeed(5),
		WithChild(-2, -3.5),
		WithChild(0, -3.5),
		WithChild(2, -3.5),
		WithHog(HogStragler, -9, 4, func(h *Hog) { h.ArrivalDelay = 0.5 }),
		WithHog(HogStragler, 9, 4, func(h *Hog) { h.ArrivalDelay = 1.5 }),
	)
	early, late := ts.State.Reg.Hogs[0], ts.State.Reg.Hogs[1]
	before := snapshotByID(ts)

	ts.RunTicks(40)
	if !early.Arrived() || late.Arrived() {
		t.Fatalf("after 40 ticks only the first stragler should be in, delays=%.3f,%.3f",
			early.ArrivalDelay, late.ArrivalDelay)
	}
	mid := snapshotByID(ts)
	if mid[late.ID] != before[late.ID] {
		t.Fatalf("waiting stragler changed: before=%+v now=%+v", before[late.ID], mid[late.ID])
	}
	if e := mid[early.ID]; e.Pos == before[early.ID].Pos || e.Target == 0 {
		t.Fatalf("arrived stragler should be moving on a target, got %+v", e)
	}

	ts.RunTicks(60)
	if !late.Arrived() || late.TargetID == 0 {
		dumpLog(t, ts)
		t.Fatalf("second stragler should be in and hunting, delay=%.3f target=%d", late.ArrivalDelay, late.TargetID)
	}
	if n := ts.SimLog.CountCategory("target", "acquire"); n < 2 {
		t.Fatalf("expected both straglers to acquire targets, got %d entries", n)
	}

	// 1.5s of fixed ticks is ~94 ticks, so the late acquire falls in this window.
	window := ts.SimLog.FormatRange(85, 100)
	t.Log(window)
	if !strings.Contains(window, hogLabel(late)) || !strings.Contains(window, "acquire") {
		t.Fatalf("expected the late stragler's acquire between T=85 and T=100, got:\n%s", window)
	}
	if strings.Contains(window, hogLabel(early)) {
		t.Fatalf("early stragler already had its target, got:\n%s", window)
	}
}

// snapshotByID indexes the current hog snapshot by hog ID.
func snapshotByID(ts *TestSim) map[int]HogSnapshot {
	out := map[int]HogSnapshot{}
	for _, s := range ts.Snapshot() {
		out[s.ID] = s
	}
	return out
}

// --- Scenario: full wave, idle player ---

func TestScenario_IdlePlayerScoresNothing(t *testing.T) {
	t.Log("=== TestScenario_IdlePlayerScoresNothing ===")
	t.Log("--- Setup: stock arena, no input ---")

	wave := DefaultWave()
	ts := NewTestSim(WithTestSeed(42), WithFullArena(wave))
	ts.RunTicks(20000)
	dumpSummary(t, ts)

	st := ts.State
	if st.Score != 0 || st.Stats.Kills() != 0 {
		t.Fatalf("nobody fired, expected no kills, got score=%d kills=%d", st.Score, st.Stats.Kills())
	}
	if st.Stats.Captures+len(st.Reg.Children) != len(childSpawnPoints) {
		t.Fatalf("children unaccounted for: captured=%d alive=%d", st.Stats.Captures, len(st.Reg.Children))
	}
	if st.Stats.Captures+st.Stats.Escapes+len(st.Reg.Hogs) != wave.Total() {
		t.Fatalf("hogs unaccounted for: captures=%d escapes=%d alive=%d",
			st.Stats.Captures, st.Stats.Escapes, len(st.Reg.Hogs))
	}
	if ts.Ended {
		switch ts.Event.Outcome {
		case OutcomeLose:
			if st.ChildrenRemaining != 0 {
				t.Fatalf("lose with %d children left", st.ChildrenRemaining)
			}
		case OutcomeWin:
			if len(st.Reg.Hogs) != 0 {
				t.Fatalf("win with %d hogs left", len(st.Reg.Hogs))
			}
		default:
			t.Fatalf("ended without an outcome: %+v", ts.Event)
		}
	}
}
