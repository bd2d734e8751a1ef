package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/carchrae/hogs/internal/game"
	"github.com/carchrae/hogs/internal/logging"
)

type runStats struct {
	runIndex int
	seed     int64

	report  game.SessionReport
	ended   bool
	endTick int

	escapeTicks []int
	lost        map[string]struct{} // labels of captured children
}

// autopilot is a simple scripted player used to exercise full sessions.
type autopilot struct {
	fireEvery int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var workers int
	var fireEvery int
	var logLevel string

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.IntVar(&ticks, "ticks", 6000, "tick cap per session")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "sessions simulated in parallel")
	flag.IntVar(&fireEvery, "fire-every", 8, "autopilot pulls the trigger every N ticks (0 = never)")
	flag.StringVar(&logLevel, "log-level", "warn", "simulation log level (written to stderr)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if workers <= 0 {
		workers = 1
	}

	logger := logging.New(os.Stderr, logLevel, true)
	pilot := autopilot{fireEvery: fireEvery}

	fmt.Printf("=== Headless Session Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d workers=%d fire_every=%d\n\n",
		runs, ticks, seedBase, seedStep, workers, fireEvery)

	all := make([]runStats, runs)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			all[i] = runSession(i+1, seed, ticks, pilot, game.WithTestLogger(logger))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("headless run aborted")
		os.Exit(1)
	}

	for _, rs := range all {
		printRun(rs)
	}
	printAggregate(all)
}

func runSession(runIndex int, seed int64, ticks int, pilot autopilot, extra ...game.SimOption) runStats {
	opts := append([]game.SimOption{
		game.WithTestSeed(seed),
		game.WithFullArena(game.DefaultWave()),
	}, extra...)
	ts := game.NewTestSim(opts...)
	for i := 0; i < ticks && !ts.Ended; i++ {
		ts.Step(pilot.intent(ts.State))
	}

	lost := map[string]struct{}{}
	for _, e := range ts.SimLog.Filter("combat", "capture") {
		lost[e.Value] = struct{}{}
	}
	var escapes []int
	for _, e := range ts.SimLog.Filter("combat", "escape") {
		escapes = append(escapes, e.Tick)
	}

	return runStats{
		runIndex:    runIndex,
		seed:        seed,
		report:      ts.Sim.Report(),
		ended:       ts.Ended,
		endTick:     ts.EndTick,
		escapeTicks: escapes,
		lost:        lost,
	}
}

// intent steers toward the nearest arrived hog along X and pulls the
// trigger on a fixed cadence.
func (p autopilot) intent(st *game.SimulationState) game.Intent {
	var in game.Intent
	var target *game.Hog
	best := math.Inf(1)
	for _, h := range st.Reg.Hogs {
		if !h.Arrived() {
			continue
		}
		if d := st.Player.Pos.PlanarDistanceTo(h.Pos); d < best {
			best = d
			target = h
		}
	}
	if target != nil {
		switch dx := target.Pos.X - st.Player.Pos.X; {
		case dx > 0.2:
			in.Move.X = 1
		case dx < -0.2:
			in.Move.X = -1
		}
	}
	in.Fire = target != nil && p.fireEvery > 0 && st.Tick%p.fireEvery == 0
	return in
}

// classifyRun labels a session for the report.
func classifyRun(rs runStats) (string, string) {
	r := rs.report
	switch {
	case !rs.ended:
		return "timeout", fmt.Sprintf("hogs_left=%d children=%d", r.HogsRemaining, r.ChildrenRemaining)
	case r.Outcome == game.OutcomeLose:
		return "lost", fmt.Sprintf("kills=%d before the last capture", r.Stats.Kills())
	case r.Stats.Captures == 0:
		return "flawless", "no child caught"
	default:
		return "won", fmt.Sprintf("children_lost=%d", r.Stats.Captures)
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Print(rs.report.Format())
	verdict, reason := classifyRun(rs)
	fmt.Printf("verdict=%s (%s)\n", verdict, reason)
	fmt.Printf("escapes=%d first_escape=%s lost=%s\n", len(rs.escapeTicks), firstTickString(rs.escapeTicks), joinSet(rs.lost))
	fmt.Println()
}

type aggregate struct {
	runs      int
	verdicts  map[string]int
	score     int
	kills     int
	shots     int
	captures  int
	escapes   int
	endTicks  []int
	killTicks []int
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all), verdicts: map[string]int{}}
	for _, rs := range all {
		v, _ := classifyRun(rs)
		agg.verdicts[v]++
		agg.score += rs.report.Score
		agg.kills += rs.report.Stats.Kills()
		agg.shots += rs.report.Stats.ShotsFired
		agg.captures += rs.report.Stats.Captures
		agg.escapes += rs.report.Stats.Escapes
		if rs.ended {
			agg.endTicks = append(agg.endTicks, rs.endTick)
		}
		if rs.report.FirstKillTick >= 0 {
			agg.killTicks = append(agg.killTicks, rs.report.FirstKillTick)
		}
	}
	return agg
}

func printAggregate(all []runStats) {
	agg := summarize(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d verdicts=[%s]\n", agg.runs, formatCounts(agg.verdicts))
	fmt.Printf("avg_per_run: score=%s kills=%.1f shots=%.1f captures=%.1f escapes=%.1f\n",
		humanize.CommafWithDigits(avg(agg.score, agg.runs), 1),
		avg(agg.kills, agg.runs), avg(agg.shots, agg.runs), avg(agg.captures, agg.runs), avg(agg.escapes, agg.runs))
	fmt.Printf("total_score=%s accuracy=%s%%\n",
		humanize.Comma(int64(agg.score)), humanize.FtoaWithDigits(avg(agg.kills, agg.shots)*100, 1))
	fmt.Printf("phase_marker_avg_ticks: first_kill=%s session_end=%s\n",
		avgTickString(agg.killTicks), avgTickString(agg.endTicks))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func firstTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d", vals[0])
}

func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}

func joinSet(s map[string]struct{}) string {
	if len(s) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(s))
	for k := range s {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}
