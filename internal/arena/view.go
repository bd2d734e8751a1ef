package arena

import "math"

// World extents drawn on screen. Straglers start just outside the child
// bounds, so the view is a little wider than the playable area.
const (
	worldMinX = -11.0
	worldMaxX = 11.0
	worldMinY = -5.5
	worldMaxY = 9.5

	feedPanelWidth = 300
)

// view maps world units to screen pixels. World +Y is up the field, screen
// +Y is down.
type view struct {
	scale   float64 // pixels per world unit
	originX float64 // screen X of world X=0
	bottom  float64 // screen Y of worldMinY
}

func newView(w, h int) view {
	fieldW := float64(w - feedPanelWidth)
	scale := math.Min(fieldW/(worldMaxX-worldMinX), float64(h)/(worldMaxY-worldMinY))
	return view{
		scale:   scale,
		originX: fieldW / 2,
		bottom:  float64(h) - (float64(h)-(worldMaxY-worldMinY)*scale)/2,
	}
}

// toScreen projects a world position.
func (v view) toScreen(x, y float64) (float32, float32) {
	sx := v.originX + x*v.scale
	sy := v.bottom - (y-worldMinY)*v.scale
	return float32(sx), float32(sy)
}

// px converts a world length to pixels.
func (v view) px(d float64) float32 {
	return float32(d * v.scale)
}

// fieldRect returns the on-screen rectangle covered by the world.
func (v view) fieldRect() (x, y, w, h float32) {
	x0, y1 := v.toScreen(worldMinX, worldMinY)
	x1, y0 := v.toScreen(worldMaxX, worldMaxY)
	return x0, y0, x1 - x0, y1 - y0
}
