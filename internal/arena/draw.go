package arena

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/carchrae/hogs/internal/game"
)

const groundCell = 8 // pixels per ground noise sample

var (
	colBackdrop = color.RGBA{R: 12, G: 14, B: 12, A: 255}
	colBorder   = color.RGBA{R: 65, G: 90, B: 65, A: 255}

	colBush       = color.RGBA{R: 40, G: 110, B: 45, A: 255}
	colTrunk      = color.RGBA{R: 100, G: 70, B: 40, A: 255}
	colCanopy     = color.RGBA{R: 30, G: 90, B: 35, A: 220}
	colCar        = color.RGBA{R: 150, G: 40, B: 40, A: 255}
	colCarGlass   = color.RGBA{R: 120, G: 160, B: 190, A: 255}
	colCrate      = color.RGBA{R: 160, G: 120, B: 70, A: 255}
	colCrateEdge  = color.RGBA{R: 100, G: 70, B: 40, A: 255}
	colHog        = color.RGBA{R: 240, G: 170, B: 180, A: 255}
	colStragler   = color.RGBA{R: 220, G: 160, B: 150, A: 255}
	colSnout      = color.RGBA{R: 200, G: 120, B: 130, A: 255}
	colChild      = color.RGBA{R: 250, G: 220, B: 90, A: 255}
	colChildPanic = color.RGBA{R: 250, G: 80, B: 60, A: 255}
	colBullet     = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	colPlayer     = color.RGBA{R: 70, G: 110, B: 210, A: 255}
	colBarrel     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colFlash      = color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xcc}
	colBone       = color.RGBA{R: 0xf5, G: 0xf5, B: 0xdc, A: 255}
)

// Draw renders the field, the entities, then the panels on top.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackdrop)
	g.drawGround(screen)

	st := g.sim.State()
	g.drawObstacles(screen, st.Reg.Obstacles)
	g.drawBonePiles(screen)
	for _, c := range st.Reg.Children {
		g.drawChild(screen, c)
	}
	for _, h := range st.Reg.Hogs {
		g.drawHog(screen, h)
	}
	for _, b := range st.Reg.Bullets {
		x, y := g.view.toScreen(b.Pos.X, b.Pos.Y)
		vector.FillCircle(screen, x, y, g.view.px(0.08), colBullet, true)
	}
	g.drawPlayer(screen, st.Player)
	g.drawFlashes(screen)

	fx, fy, fw, fh := g.view.fieldRect()
	vector.StrokeRect(screen, fx-1, fy-1, fw+2, fh+2, 2.0, colBorder, false)

	g.drawFeed(screen)
	if g.showHUD {
		g.drawHUD(screen)
	}
	if ev, ok := g.sim.Result(); ok {
		g.drawGameOver(screen, ev)
	}
}

// drawGround blits the noise texture, building it on first use.
func (g *Game) drawGround(screen *ebiten.Image) {
	fx, fy, fw, fh := g.view.fieldRect()
	if g.ground == nil {
		g.ground = g.renderGround(int(fw), int(fh))
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(fx), float64(fy))
	screen.DrawImage(g.ground, op)
}

func (g *Game) renderGround(w, h int) *ebiten.Image {
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	for py := 0; py < h; py += groundCell {
		for px := 0; px < w; px += groundCell {
			wx := float64(px) / g.view.scale
			wy := float64(py) / g.view.scale
			shade := groundShade(g.noise.Eval2(wx*0.35, wy*0.35), g.noise.Eval2(wx*1.7, wy*1.7))
			vector.FillRect(img, float32(px), float32(py), groundCell, groundCell, shade, false)
		}
	}
	return img
}

// groundShade mixes a broad and a fine noise sample (both in [0,1]) into a
// grass colour.
func groundShade(broad, fine float64) color.RGBA {
	n := broad*0.75 + fine*0.25
	return color.RGBA{
		R: uint8(38 + n*22),
		G: uint8(78 + n*40),
		B: uint8(34 + n*16),
		A: 255,
	}
}

func (g *Game) drawObstacles(screen *ebiten.Image, obs []*game.Obstacle) {
	for _, o := range obs {
		x, y := g.view.toScreen(o.Pos.X, o.Pos.Y)
		r := g.view.px(o.Radius)
		switch o.Kind {
		case game.ObstacleBush:
			vector.FillCircle(screen, x, y, r, colBush, true)
			vector.FillCircle(screen, x+r*0.4, y-r*0.3, r*0.6, colBush, true)
		case game.ObstacleTree:
			vector.FillCircle(screen, x, y, r*0.3, colTrunk, true)
			vector.FillCircle(screen, x, y, r, colCanopy, true)
		case game.ObstacleCar:
			// Screen Y is flipped, so the yaw turns the other way.
			dx := float32(math.Cos(o.Yaw)) * r
			dy := -float32(math.Sin(o.Yaw)) * r
			vector.StrokeLine(screen, x-dx, y-dy, x+dx, y+dy, r, colCar, true)
			vector.StrokeLine(screen, x-dx*0.2, y-dy*0.2, x+dx*0.35, y+dy*0.35, r*0.7, colCarGlass, true)
		case game.ObstacleCrate:
			vector.FillRect(screen, x-r, y-r, 2*r, 2*r, colCrate, false)
			vector.StrokeRect(screen, x-r, y-r, 2*r, 2*r, 1.5, colCrateEdge, false)
		}
	}
}

func (g *Game) drawChild(screen *ebiten.Image, c *game.Child) {
	x, y := g.view.toScreen(c.Pos.X, c.Pos.Y)
	col := lerpColor(colChild, colChildPanic, c.Panic)
	vector.FillCircle(screen, x, y, g.view.px(0.2), col, true)
}

// drawHog draws the body with its snout toward the heading. Elites are
// bigger and darker; straglers still waiting to arrive are faded.
func (g *Game) drawHog(screen *ebiten.Image, h *game.Hog) {
	x, y := g.view.toScreen(h.Pos.X, h.Pos.Y+h.Bob(g.elapsed()))
	r := g.view.px(0.35 * h.Scale)

	body := colHog
	switch h.Variant {
	case game.HogStragler:
		body = colStragler
	case game.HogElite:
		body = darken(colHog, 0.6)
	}
	snout := colSnout
	if h.Variant == game.HogElite {
		snout = darken(colSnout, 0.6)
	}
	if !h.Arrived() {
		body.A = 110
		snout.A = 110
	}

	sx := x + float32(math.Cos(h.Heading))*r*0.9
	sy := y - float32(math.Sin(h.Heading))*r*0.9
	vector.FillCircle(screen, x, y, r, body, true)
	vector.FillCircle(screen, sx, sy, r*0.45, snout, true)
}

// drawPlayer draws the shooter with the barrel leaning with the yaw.
func (g *Game) drawPlayer(screen *ebiten.Image, p game.Player) {
	x, y := g.view.toScreen(p.Pos.X, p.Pos.Y)
	r := g.view.px(0.3)
	bx := x - float32(math.Sin(p.Yaw))*r*2
	by := y - float32(math.Cos(p.Yaw))*r*2
	vector.StrokeLine(screen, x, y, bx, by, r*0.35, colBarrel, true)
	vector.FillCircle(screen, x, y, r, colPlayer, true)
}

func (g *Game) drawFlashes(screen *ebiten.Image) {
	for _, f := range g.visuals.flashes {
		x, y := g.view.toScreen(f.at.X, f.at.Y)
		col := colFlash
		col.A = uint8(float64(colFlash.A) * float64(f.ttl) / flashFrames)
		vector.FillCircle(screen, x, y, g.view.px(flashRadius), col, true)
	}
}

func (g *Game) drawBonePiles(screen *ebiten.Image) {
	for _, p := range g.visuals.piles {
		for _, pc := range p.pieces {
			x, y := g.view.toScreen(p.at.X+pc.dx, p.at.Y+pc.dy)
			s := g.view.px(pc.size)
			if pc.long {
				vector.StrokeLine(screen, x-s/2, y-s/4, x+s/2, y+s/4, g.view.px(0.04), colBone, true)
				continue
			}
			vector.FillCircle(screen, x, y, s, colBone, true)
		}
	}
}

// elapsed is the wall-clock session time, the same clock Step sees.
func (g *Game) elapsed() float64 {
	return time.Since(g.start).Seconds()
}

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: c.A}
}

// lerpColor blends a toward b by t in [0,1].
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
