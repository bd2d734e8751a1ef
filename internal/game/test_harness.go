package game

import "github.com/rs/zerolog"

// TestSim is a headless simulation harness used by tests and the headless
// report. It drives a Simulation with a deterministic clock (now =
// tick*TickDelta) and lets callers place entities by hand.
type TestSim struct {
	Sim    *Simulation
	State  *SimulationState
	SimLog *SimLog

	// Intent is applied on every tick run through RunTicks/RunUntil.
	Intent Intent

	Ended   bool
	Event   TerminalEvent
	EndTick int

	simOpts  []Option
	populate bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // seed, verbose, effects, logger: applied before the simulation exists
	simOptEntity                      // children, hogs, player: applied to the built registry
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithTestSeed sets the RNG seed for deterministic runs.
func WithTestSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.simOpts = append(ts.simOpts, WithSeed(seed))
	}}
}

// WithVerbose enables per-shot logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.simOpts = append(ts.simOpts, WithVerboseLog(v))
	}}
}

// WithTestEffects routes effect requests to e.
func WithTestEffects(e EffectSink) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.simOpts = append(ts.simOpts, WithEffects(e))
	}}
}

// WithTestLogger routes simulation logs to l.
func WithTestLogger(l zerolog.Logger) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.simOpts = append(ts.simOpts, WithLogger(l))
	}}
}

// WithFullArena spawns the stock obstacles, children and the given wave
// instead of starting empty.
func WithFullArena(wc WaveConfig) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.populate = true
		ts.simOpts = append(ts.simOpts, WithWave(wc))
	}}
}

// WithChild adds a child at (x,y) whose target is its own position.
// mods run after the defaults are filled in.
func WithChild(x, y float64, mods ...func(*Child)) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		c := &Child{
			Pos:         Vec3{X: x, Y: y},
			Target:      Vec2{X: x, Y: y},
			LastSafe:    Vec2{X: 0, Y: -1},
			RunSpeed:    0.02,
			ChangeTimer: 2,
		}
		for _, m := range mods {
			m(c)
		}
		ts.State.Reg.AddChild(c)
	}}
}

// WithHog adds a hog of variant v at (x,y) with a modest speed.
func WithHog(v HogVariant, x, y float64, mods ...func(*Hog)) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		h := &Hog{
			Variant:        v,
			Pos:            Vec3{X: x, Y: y},
			Speed:          0.02,
			Aggressiveness: 0.5,
			Scale:          1,
		}
		if v == HogElite {
			h.Scale = 1.3
		}
		for _, m := range mods {
			m(h)
		}
		ts.State.Reg.AddHog(h)
	}}
}

// WithPlayerAt moves the player before the first tick.
func WithPlayerAt(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.State.Player.Pos = Vec3{X: x, Y: y}
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered
// passes:
//  1. Infrastructure (seed, verbose, effects, logger, arena)
//  2. Entities
//
// The children counter is taken from the registry after both passes.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		simOpts: []Option{WithSeed(1)},
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	if !ts.populate {
		ts.simOpts = append(ts.simOpts, withEmptyArena())
	}
	ts.Sim = NewSimulation(ts.simOpts...)
	ts.State = ts.Sim.State()
	ts.SimLog = ts.State.Log
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	ts.State.ChildrenRemaining = len(ts.State.Reg.Children)
	return ts
}

// Now is the deterministic wall clock the harness feeds to Step.
func (ts *TestSim) Now() float64 {
	return float64(ts.State.Tick) * TickDelta
}

// Step runs a single tick with the given intent. It reports whether the
// session ended on this tick.
func (ts *TestSim) Step(in Intent) bool {
	if ts.Ended {
		return false
	}
	ev, done := ts.Sim.Step(in, ts.Now())
	if done {
		ts.Ended = true
		ts.Event = ev
		ts.EndTick = ts.State.Tick
	}
	return done
}

// Fire runs one tick with the trigger pulled and the current Intent's movement.
func (ts *TestSim) Fire() bool {
	in := ts.Intent
	in.Fire = true
	return ts.Step(in)
}

// RunTicks advances the simulation n ticks or until it ends.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n && !ts.Ended; i++ {
		ts.Step(ts.Intent)
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step(ts.Intent)
		if predicate(ts) {
			return ts.State.Tick
		}
		if ts.Ended {
			return -1
		}
	}
	return -1
}

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int {
	return ts.State.Tick
}

// HogSnapshot is a lightweight copy of a hog's state at a tick.
type HogSnapshot struct {
	ID      int
	Variant HogVariant
	Pos     Vec3
	Heading float64
	Target  int
}

// Snapshot returns the current state of all hogs.
func (ts *TestSim) Snapshot() []HogSnapshot {
	out := make([]HogSnapshot, 0, len(ts.State.Reg.Hogs))
	for _, h := range ts.State.Reg.Hogs {
		out = append(out, HogSnapshot{
			ID:      h.ID,
			Variant: h.Variant,
			Pos:     h.Pos,
			Heading: h.Heading,
			Target:  h.TargetID,
		})
	}
	return out
}
