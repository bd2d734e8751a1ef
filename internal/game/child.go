package game

import "math"

const (
	panicRange     = 5.0 // no panic at or beyond this distance
	fleeRange      = 4.0
	fleeReachX     = 3.0
	fleeReachY     = 2.0
	panicRerollAt  = 0.3
	childArrive    = 0.1
	childFacingLag = 0.1
	childMaxDepth  = 1.5
)

// Arena bounds children are held inside.
const (
	childMinX = -8.0
	childMaxX = 8.0
	childMinY = -5.0
	childMaxY = 6.0
)

// childSpawnPoints is the row the children start on, left to right.
var childSpawnPoints = []Vec2{
	{X: -2, Y: -3.5},
	{X: -1, Y: -3.5},
	{X: 0, Y: -3.5},
	{X: 1, Y: -3.5},
	{X: 2, Y: -3.5},
}

// Child is one of the entities the player defends. There is no latched
// flee/wander mode: the branch is chosen fresh every tick.
type Child struct {
	ID          int
	Pos         Vec3
	Target      Vec2
	Panic       float64 // re-derived every tick, in [0,1]
	Flee        Vec2    // unit vector away from the nearest hog
	LastSafe    Vec2
	ChangeTimer float64 // seconds of fixed tick time until the next re-roll
	RunSpeed    float64
	Facing      float64

	BobPhase   float64
	AnimOffset float64
}

// panicLevel is the strongest single-hog threat: 0 at panicRange or beyond,
// 1 when touching.
func panicLevel(c *Child, hogs []*Hog) float64 {
	level := 0.0
	for _, h := range hogs {
		threat := clamp01((panicRange - c.Pos.DistanceTo(h.Pos)) / panicRange)
		if threat > level {
			level = threat
		}
	}
	return level
}

// nearestHog returns the closest hog and its distance, or nil when there are
// no hogs.
func nearestHog(c *Child, hogs []*Hog) (*Hog, float64) {
	var best *Hog
	bestDist := math.Inf(1)
	for _, h := range hogs {
		if d := c.Pos.DistanceTo(h.Pos); d < bestDist {
			bestDist = d
			best = h
		}
	}
	return best, bestDist
}

// updateChildren runs one tick of child AI. now is wall-clock seconds and
// only drives cosmetic phase (facing jitter, depth drift, bob); the re-roll
// timer runs on the fixed TickDelta.
func (st *SimulationState) updateChildren(now float64) {
	hogs := st.Reg.Hogs
	for _, c := range st.Reg.Children {
		c.Panic = panicLevel(c, hogs)
		near, dist := nearestHog(c, hogs)

		c.ChangeTimer -= TickDelta
		switch {
		case near != nil && dist < fleeRange:
			fx := c.Pos.X - near.Pos.X
			fy := c.Pos.Y - near.Pos.Y
			if d := math.Hypot(fx, fy); d > 0 {
				c.Flee = Vec2{X: fx / d, Y: fy / d}
				c.LastSafe = c.Flee
			}
			c.Target = Vec2{
				X: c.Pos.X + c.Flee.X*fleeReachX,
				Y: c.Pos.Y + c.Flee.Y*fleeReachY,
			}
		case c.ChangeTimer <= 0 || c.Panic > panicRerollAt:
			angle := st.rng.Float64() * math.Pi * 2
			reach := 1 + st.rng.Float64()*3
			c.Target = Vec2{
				X: c.Pos.X + math.Cos(angle)*reach,
				Y: c.Pos.Y + math.Sin(angle)*reach,
			}
			c.ChangeTimer = 0.5 + st.rng.Float64()*1.5
		}

		c.Target.X = clamp(c.Target.X, childMinX, childMaxX)
		c.Target.Y = clamp(c.Target.Y, childMinY, childMaxY)

		dx := c.Target.X - c.Pos.X
		dy := c.Target.Y - c.Pos.Y
		if d := math.Hypot(dx, dy); d > childArrive {
			speed := c.RunSpeed * (1 + c.Panic)
			c.Pos.X += dx / d * speed
			c.Pos.Y += dy / d * speed
			c.Facing += (math.Atan2(dx, dy)-c.Facing)*childFacingLag +
				math.Sin(now*3)*c.Panic*0.1
		}

		c.Pos.X = clamp(c.Pos.X, childMinX, childMaxX)
		c.Pos.Y = clamp(c.Pos.Y, childMinY, childMaxY)

		targetZ := math.Sin(now*0.5+c.AnimOffset) * c.Panic * 0.8
		c.Pos.Z += (targetZ - c.Pos.Z) * 0.1
		c.Pos.Z = clamp(c.Pos.Z, -childMaxDepth, childMaxDepth)

		// Bob lands after the clamp, so a child can sit a hair outside the
		// y bounds for a tick.
		bobAmount := 0.08 + c.Panic*0.1
		bobSpeed := 8 + c.Panic*4
		c.Pos.Y += math.Sin(now*bobSpeed+c.BobPhase) * bobAmount
	}
}
