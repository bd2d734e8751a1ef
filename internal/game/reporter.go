package game

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// SessionReport is a snapshot of one session, live or finished.
type SessionReport struct {
	SessionID uuid.UUID
	Seed      int64
	Tick      int
	Outcome   Outcome

	Score             int
	ChildrenRemaining int
	HogsRemaining     int
	HogsWaiting       int // straglers still on their arrival delay
	Stats             Stats

	FirstKillTick    int // -1 if none
	FirstCaptureTick int // -1 if none
}

// Report builds a SessionReport from the current state.
func (s *Simulation) Report() SessionReport {
	st := s.st
	r := SessionReport{
		SessionID:         s.sessionID,
		Seed:              s.seed,
		Tick:              st.Tick,
		Score:             st.Score,
		ChildrenRemaining: st.ChildrenRemaining,
		HogsRemaining:     len(st.Reg.Hogs),
		Stats:             st.Stats,
		FirstKillTick:     firstTickOf(st.Log, "combat", "kill"),
		FirstCaptureTick:  firstTickOf(st.Log, "combat", "capture"),
	}
	if ev, ok := s.Result(); ok {
		r.Outcome = ev.Outcome
	}
	for _, h := range st.Reg.Hogs {
		if !h.Arrived() {
			r.HogsWaiting++
		}
	}
	return r
}

func firstTickOf(sl *SimLog, category, key string) int {
	for _, e := range sl.Entries() {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

// Accuracy is bullet kills per shot fired, in [0,1]. Zero when nothing was
// fired.
func (r SessionReport) Accuracy() float64 {
	if r.Stats.ShotsFired == 0 {
		return 0
	}
	return float64(r.Stats.BulletKills) / float64(r.Stats.ShotsFired)
}

// Elapsed is the fixed-step game time covered by the report, in seconds.
func (r SessionReport) Elapsed() float64 {
	return float64(r.Tick) * TickDelta
}

// Format renders the report as plain text for the clipboard and the
// headless runner.
func (r SessionReport) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Session %s ===\n", r.SessionID)
	fmt.Fprintf(&sb, "seed=%d tick=%s elapsed=%ss outcome=%s\n",
		r.Seed, humanize.Comma(int64(r.Tick)), humanize.CommafWithDigits(r.Elapsed(), 1), r.Outcome)
	fmt.Fprintf(&sb, "score=%s children=%d/%d hogs=%d (waiting %d)\n",
		humanize.Comma(int64(r.Score)), r.ChildrenRemaining, len(childSpawnPoints), r.HogsRemaining, r.HogsWaiting)
	fmt.Fprintf(&sb, "kills: bullet=%d melee=%d  shots=%s accuracy=%s%%\n",
		r.Stats.BulletKills, r.Stats.MeleeKills,
		humanize.Comma(int64(r.Stats.ShotsFired)), humanize.FtoaWithDigits(r.Accuracy()*100, 1))
	fmt.Fprintf(&sb, "captures=%d escapes=%d\n", r.Stats.Captures, r.Stats.Escapes)
	fmt.Fprintf(&sb, "first_kill=%s first_capture=%s\n", tickString(r.FirstKillTick), tickString(r.FirstCaptureTick))
	return sb.String()
}

func tickString(t int) string {
	if t < 0 {
		return "n/a"
	}
	return "T" + humanize.Comma(int64(t))
}
