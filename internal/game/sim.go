package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TickDelta is the fixed seconds-per-tick used by gameplay timers (the child
// re-roll timer and the stragler arrival delay). Cosmetic phases use the
// wall-clock now passed to Step instead.
const TickDelta = 0.016

const (
	playerSpeed = 0.15
	playerMaxX  = 10.0
	playerMinY  = -5.0
	playerMaxY  = -2.0 // the player can't walk up into the field
	playerLean  = math.Pi / 8
)

// Player is the shooter at the bottom of the field.
type Player struct {
	Pos Vec3
	Yaw float64
}

// Intent is one tick of player input. Move components are read by sign
// only. Fire is already debounced: true means "the trigger went down".
type Intent struct {
	Move Vec2
	Fire bool
}

// Stats counts what happened during a session.
type Stats struct {
	ShotsFired  int
	BulletKills int
	MeleeKills  int
	Captures    int
	Escapes     int
}

// Kills returns bullet and melee kills together.
func (s Stats) Kills() int {
	return s.BulletKills + s.MeleeKills
}

// SimulationState is everything one session owns. Renderers may read it
// between steps; only the simulation writes it.
type SimulationState struct {
	Reg               *Registry
	Player            Player
	Score             int
	ChildrenRemaining int
	Stats             Stats
	Tick              int

	Effects EffectSink
	Log     *SimLog
	Feed    *EventFeed

	rng    *rand.Rand
	logger zerolog.Logger
}

// Simulation drives a SimulationState one tick at a time.
type Simulation struct {
	st        *SimulationState
	sessionID uuid.UUID
	seed      int64
	ended     *TerminalEvent
}

type simSettings struct {
	seed    int64
	seeded  bool
	logger  zerolog.Logger
	effects EffectSink
	wave    WaveConfig
	scatter ScatterConfig
	verbose bool
	empty   bool
}

// Option configures a Simulation.
type Option func(*simSettings)

// WithSeed fixes the RNG seed. Without it the seed comes from the clock.
func WithSeed(seed int64) Option {
	return func(s *simSettings) {
		s.seed = seed
		s.seeded = true
	}
}

// WithLogger routes simulation events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(s *simSettings) { s.logger = l }
}

// WithEffects sets the sink for sounds and visual effects.
func WithEffects(e EffectSink) Option {
	return func(s *simSettings) {
		if e != nil {
			s.effects = e
		}
	}
}

// WithWave overrides the hog wave.
func WithWave(wc WaveConfig) Option {
	return func(s *simSettings) { s.wave = wc }
}

// WithScatter overrides the obstacle counts.
func WithScatter(sc ScatterConfig) Option {
	return func(s *simSettings) { s.scatter = sc }
}

// WithVerboseLog also records individual shots in the SimLog.
func WithVerboseLog(v bool) Option {
	return func(s *simSettings) { s.verbose = v }
}

// withEmptyArena skips spawning so the harness can place entities by hand.
func withEmptyArena() Option {
	return func(s *simSettings) { s.empty = true }
}

// NewSimulation builds a session: obstacles, then the five children, then
// the hog wave.
func NewSimulation(opts ...Option) *Simulation {
	set := simSettings{
		logger:  zerolog.Nop(),
		effects: NopEffects{},
		wave:    DefaultWave(),
		scatter: DefaultScatter(),
	}
	for _, o := range opts {
		o(&set)
	}
	if !set.seeded {
		set.seed = time.Now().UnixNano()
	}

	id := uuid.New()
	st := &SimulationState{
		Reg:     NewRegistry(),
		Player:  Player{Pos: playerSpawn},
		Effects: set.effects,
		Log:     NewSimLog(set.verbose),
		Feed:    NewEventFeed(),
		rng:     rand.New(rand.NewSource(set.seed)), // #nosec G404 -- gameplay randomness, not security
		logger:  set.logger.With().Str("session", id.String()).Logger(),
	}
	if !set.empty {
		ScatterObstacles(st.rng, st.Reg, set.scatter)
		SpawnChildren(st.rng, st.Reg)
		SpawnWave(st.rng, st.Reg, set.wave)
	}
	st.ChildrenRemaining = len(st.Reg.Children)

	st.logger.Info().
		Int64("seed", set.seed).
		Int("hogs", len(st.Reg.Hogs)).
		Int("children", st.ChildrenRemaining).
		Int("obstacles", len(st.Reg.Obstacles)).
		Msg("session started")

	return &Simulation{st: st, sessionID: id, seed: set.seed}
}

// Step advances one tick. It returns the terminal event on the tick the
// session ends; every Step after that is a no-op.
func (s *Simulation) Step(in Intent, now float64) (TerminalEvent, bool) {
	if s.ended != nil {
		return TerminalEvent{}, false
	}
	st := s.st
	st.Tick++

	st.applyIntent(in)
	if in.Fire {
		st.fire()
	}
	st.advanceBullets()
	st.updateHogs()
	st.updateChildren(now)
	st.resolveBulletHits()
	st.resolveCaptures()
	st.despawnEscaped()

	ev, done := EvaluateOutcome(st.ChildrenRemaining, len(st.Reg.Hogs), st.Score)
	if !done {
		return ev, false
	}
	s.ended = &ev
	st.Log.Add(st.Tick, "--", "outcome", ev.Outcome.String(), ev.Message, float64(ev.FinalScore))
	st.Feed.Add(st.Tick, "--", ev.Title)
	st.logger.Info().
		Int("tick", st.Tick).
		Str("outcome", ev.Outcome.String()).
		Int("score", ev.FinalScore).
		Int("children_remaining", st.ChildrenRemaining).
		Msg("session over")
	return ev, true
}

// applyIntent moves the player. Each axis only moves while the player is
// still inside the bound in that direction.
func (st *SimulationState) applyIntent(in Intent) {
	p := &st.Player
	switch {
	case in.Move.X < 0 && p.Pos.X > -playerMaxX:
		p.Pos.X -= playerSpeed
	case in.Move.X > 0 && p.Pos.X < playerMaxX:
		p.Pos.X += playerSpeed
	}
	switch {
	case in.Move.Y > 0 && p.Pos.Y < playerMaxY:
		p.Pos.Y += playerSpeed
	case in.Move.Y < 0 && p.Pos.Y > playerMinY:
		p.Pos.Y -= playerSpeed
	}
	switch {
	case in.Move.X < 0:
		p.Yaw = playerLean
	case in.Move.X > 0:
		p.Yaw = -playerLean
	default:
		p.Yaw = 0
	}
}

// Over reports whether the session has ended.
func (s *Simulation) Over() bool { return s.ended != nil }

// Result returns the terminal event once the session has ended.
func (s *Simulation) Result() (TerminalEvent, bool) {
	if s.ended == nil {
		return TerminalEvent{}, false
	}
	return *s.ended, true
}

// Score is the running score. It never decreases.
func (s *Simulation) Score() int { return s.st.Score }

// ChildrenRemaining never increases.
func (s *Simulation) ChildrenRemaining() int { return s.st.ChildrenRemaining }

// State exposes the session for renderers and reports.
func (s *Simulation) State() *SimulationState { return s.st }

// SessionID identifies this session in logs and reports.
func (s *Simulation) SessionID() uuid.UUID { return s.sessionID }

// Seed is the seed the session's RNG was built from.
func (s *Simulation) Seed() int64 { return s.seed }
