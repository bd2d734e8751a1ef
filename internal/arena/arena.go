// Package arena is the ebiten front end: it reads the keyboard, steps the
// simulation once per frame and draws the field top-down.
package arena

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ojrac/opensimplex-go"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"github.com/carchrae/hogs/internal/game"
)

// statusFrames is how long a status line stays on the HUD.
const statusFrames = 120

// Options configures a Game.
type Options struct {
	Width  int
	Height int

	// SimOptions are passed to every new session. Effects are added by the
	// arena itself.
	SimOptions []game.Option

	// Sound receives the audio half of the effect requests. Nil means silent.
	Sound game.EffectSink

	Logger zerolog.Logger

	// Clipboard writes the session report. Defaults to the system clipboard.
	Clipboard func(string) error
}

// Game implements ebiten.Game.
type Game struct {
	opts    Options
	logger  zerolog.Logger
	sim     *game.Simulation
	visuals *visuals
	start   time.Time
	view    view

	paused    bool
	showHUD   bool
	status    string
	statusTTL int

	// Ground texture, rendered once per session from noise.
	ground *ebiten.Image
	noise  opensimplex.Noise
	face   text.Face
}

// New builds the arena and starts the first session.
func New(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = 1280
	}
	if opts.Height <= 0 {
		opts.Height = 720
	}
	if opts.Sound == nil {
		opts.Sound = game.NopEffects{}
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	g := &Game{
		opts:    opts,
		logger:  opts.Logger,
		view:    newView(opts.Width, opts.Height),
		showHUD: true,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
	g.restart()
	return g
}

// restart throws the current session away and begins a fresh one.
func (g *Game) restart() {
	if g.sim != nil {
		g.logger.Info().Str("session", g.sim.SessionID().String()).Msg("restarting")
	}
	if g.visuals == nil {
		g.visuals = newVisuals(time.Now().UnixNano())
	}
	g.visuals.reset()

	simOpts := append([]game.Option{}, g.opts.SimOptions...)
	simOpts = append(simOpts,
		game.WithLogger(g.logger),
		game.WithEffects(game.Effects{g.visuals, g.opts.Sound}),
	)
	g.sim = game.NewSimulation(simOpts...)
	g.noise = opensimplex.NewNormalized(g.sim.Seed())
	if g.ground != nil {
		g.ground.Deallocate()
		g.ground = nil
	}
	g.start = time.Now()
	g.paused = false
}

// Update handles input and advances the simulation one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}
	g.step(readIntent())
	return nil
}

// step ages the on-screen effects and runs one simulation tick unless the
// session is paused or over.
func (g *Game) step(in game.Intent) {
	if g.statusTTL > 0 {
		g.statusTTL--
	}
	if g.paused {
		return
	}
	g.visuals.tick()
	if g.sim.Over() {
		return
	}
	g.sim.Step(in, g.elapsed())
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		g.setStatus("paused")
	} else {
		g.setStatus("resumed")
	}
}

// copyReport puts the session report on the clipboard.
func (g *Game) copyReport() {
	if err := g.opts.Clipboard(g.sim.Report().Format()); err != nil {
		g.logger.Warn().Err(err).Msg("clipboard write failed")
		g.setStatus("clipboard unavailable")
		return
	}
	g.setStatus("report copied to clipboard")
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusTTL = statusFrames
}

// Layout keeps a fixed logical screen and lets ebiten scale it.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// Simulation exposes the running session.
func (g *Game) Simulation() *game.Simulation {
	return g.sim
}
