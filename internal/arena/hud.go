package arena

import (
	"fmt"
	"image/color"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/carchrae/hogs/internal/game"
)

const (
	feedLineHeight = 14
	hudLineHeight  = 12 // debug font line height
	hudCharWidth   = 6  // debug font char width
	hudPad         = 5
)

var (
	colPanel      = color.RGBA{R: 6, G: 10, B: 6, A: 210}
	colPanelEdge  = color.RGBA{R: 60, G: 100, B: 60, A: 180}
	colPanelTitle = color.RGBA{R: 20, G: 30, B: 20, A: 255}
	colFeedBg     = color.RGBA{R: 10, G: 12, B: 10, A: 248}
	colFeedRecent = color.RGBA{R: 30, G: 40, B: 30, A: 160}
	colSeparator  = color.RGBA{R: 50, G: 70, B: 50, A: 255}
	colDim        = color.RGBA{A: 170}
	colWin        = color.RGBA{R: 120, G: 230, B: 120, A: 255}
	colLose       = color.RGBA{R: 240, G: 90, B: 80, A: 255}
	colText       = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// hudLines builds the stats panel text.
func (g *Game) hudLines() []string {
	r := g.sim.Report()
	lines := []string{
		fmt.Sprintf("SCORE %s", humanize.Comma(int64(r.Score))),
		fmt.Sprintf("Children %d", r.ChildrenRemaining),
		fmt.Sprintf("Hogs %d  (waiting %d)", r.HogsRemaining, r.HogsWaiting),
		fmt.Sprintf("Shots %d  kills %d", r.Stats.ShotsFired, r.Stats.Kills()),
		"",
		"WASD/arrows=move  SPACE=fire",
		"P=pause  R=restart  C=copy report",
		"H=toggle HUD  ESC=quit",
	}
	if g.paused {
		lines = append(lines, "", "PAUSED")
	}
	if g.statusTTL > 0 && g.status != "" {
		lines = append(lines, g.status)
	}
	return lines
}

// drawHUD draws the stats panel in the top-left corner of the field.
func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := g.hudLines()
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	fx, fy, _, _ := g.view.fieldRect()
	bx := fx + 6
	by := fy + 6
	boxW := float32(maxLen*hudCharWidth + hudPad*2)
	boxH := float32(len(lines)*hudLineHeight + hudPad*2)

	vector.FillRect(screen, bx, by, boxW, boxH, colPanel, false)
	vector.StrokeRect(screen, bx, by, boxW, boxH, 1.0, colPanelEdge, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(bx)+hudPad, int(by)+hudPad+i*hudLineHeight)
	}
}

// drawFeed draws the event feed down the right edge, newest at the bottom.
func (g *Game) drawFeed(screen *ebiten.Image) {
	panelX := float32(g.opts.Width - feedPanelWidth)
	panelH := float32(g.opts.Height)
	vector.FillRect(screen, panelX, 0, feedPanelWidth, panelH, colFeedBg, false)
	vector.StrokeLine(screen, panelX, 0, panelX, panelH, 1.0, colSeparator, false)

	vector.FillRect(screen, panelX, 0, feedPanelWidth, 16, colPanelTitle, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", int(panelX)+8, 2)
	vector.StrokeLine(screen, panelX, 16, panelX+feedPanelWidth, 16, 1.0, colSeparator, false)

	entries := g.sim.State().Feed.Recent()
	maxVisible := (g.opts.Height - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	const recent = 3
	y := 20
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, panelX+2, float32(y), feedPanelWidth-4, feedLineHeight, colFeedRecent, false)
		}
		ebitenutil.DebugPrintAt(screen, feedLine(e), int(panelX)+8, y)
		y += feedLineHeight
	}
}

func feedLine(e game.FeedEntry) string {
	return fmt.Sprintf("%4d [%s] %s", e.Tick, e.Label, e.Message)
}

// drawGameOver dims the field and shows the result in the centre.
func (g *Game) drawGameOver(screen *ebiten.Image, ev game.TerminalEvent) {
	fx, fy, fw, fh := g.view.fieldRect()
	vector.FillRect(screen, fx, fy, fw, fh, colDim, false)

	titleCol := colWin
	if ev.Outcome == game.OutcomeLose {
		titleCol = colLose
	}
	cx := float64(fx + fw/2)
	cy := float64(fy + fh/2)
	g.drawCentered(screen, ev.Title, cx, cy-60, 4, titleCol)
	g.drawCentered(screen, ev.Message, cx, cy+10, 2, colText)
	g.drawCentered(screen, "Final score: "+humanize.Comma(int64(ev.FinalScore)), cx, cy+50, 2, colText)
	g.drawCentered(screen, "R = play again   C = copy report", cx, cy+90, 1.5, colText)
}

// drawCentered draws s scaled by scale with its top edge at y, centred on cx.
func (g *Game) drawCentered(screen *ebiten.Image, s string, cx, y, scale float64, col color.Color) {
	w := text.Advance(s, g.face) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-w/2, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, g.face, op)
}
