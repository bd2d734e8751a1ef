package game

import "math"

const (
	hogArriveDist = 0.1 // closer than this to the target counts as arrived

	swarmTurnRate    = 0.05
	straglerTurnRate = 0.08
	eliteTurnRate    = 0.1
	idleTurnRate     = 0.02 // swarm drift once no children are left

	separationRadius = 0.8
	separationRate   = 0.02

	zigzagStep      = 0.1
	zigzagAmplitude = 0.3

	chargeRange    = 3.0
	chargeGain     = 1.01
	chargeMaxSpeed = 0.08

	swarmWanderJitter    = 0.1
	swarmWanderGain      = 0.02
	straglerWanderJitter = 0.05
	straglerWanderGain   = 0.01
)

// HogVariant selects the movement and targeting rules a hog follows.
type HogVariant int

const (
	HogSwarm HogVariant = iota
	HogStragler
	HogElite
)

func (v HogVariant) String() string {
	switch v {
	case HogSwarm:
		return "swarm"
	case HogStragler:
		return "stragler"
	case HogElite:
		return "elite"
	default:
		return "unknown"
	}
}

// TurnRate is the fraction of the angular error closed per tick.
func (v HogVariant) TurnRate() float64 {
	switch v {
	case HogStragler:
		return straglerTurnRate
	case HogElite:
		return eliteTurnRate
	default:
		return swarmTurnRate
	}
}

// Hog is an enemy pursuing the children.
type Hog struct {
	ID             int
	Variant        HogVariant
	Pos            Vec3
	Heading        float64 // radians, 0 = +X
	Speed          float64 // units per tick
	Aggressiveness float64
	TargetID       int // child ID, 0 = none
	WanderAngle    float64
	ZigzagPhase    float64
	ArrivalDelay   float64 // seconds of fixed tick time before a stragler engages

	// Cosmetic only; never read by the AI.
	WalkPhase  float64
	AnimOffset float64
	Scale      float64
}

// Arrived reports whether the hog is on the field and acting.
func (h *Hog) Arrived() bool {
	return h.Variant != HogStragler || h.ArrivalDelay <= 0
}

// Bob is the wall-clock walk bob for renderers. It is not applied to Pos.
func (h *Hog) Bob(now float64) float64 {
	amount := 0.02
	if h.Variant == HogElite {
		amount = 0.03
	}
	return math.Sin((now*10+h.WalkPhase)*2) * amount
}

func (h *Hog) step() {
	h.Pos.X += math.Cos(h.Heading) * h.Speed
	h.Pos.Y += math.Sin(h.Heading) * h.Speed
}

// seek turns toward the target and steps forward. It returns false when the
// hog is already within hogArriveDist and nothing changed.
func (h *Hog) seek(target *Child) bool {
	dx := target.Pos.X - h.Pos.X
	dy := target.Pos.Y - h.Pos.Y
	if math.Hypot(dx, dy) <= hogArriveDist {
		return false
	}
	desired := math.Atan2(dy, dx)
	if h.Variant == HogElite {
		h.ZigzagPhase += zigzagStep
		desired += math.Sin(h.ZigzagPhase) * zigzagAmplitude
	}
	h.Heading = turnToward(h.Heading, desired, h.Variant.TurnRate())
	h.step()
	return true
}

// updateHogs runs one tick of hog AI. It never removes hogs.
func (st *SimulationState) updateHogs() {
	for _, h := range st.Reg.Hogs {
		if !h.Arrived() {
			h.ArrivalDelay -= TickDelta
			continue
		}
		target := st.resolveTarget(h)
		switch h.Variant {
		case HogSwarm:
			st.updateSwarmHog(h, target)
		case HogStragler:
			st.updateStraglerHog(h, target)
		case HogElite:
			st.updateEliteHog(h, target)
		}
	}
}

// resolveTarget looks the hog's target up by ID, dropping a stale reference
// and picking a new one when children remain.
func (st *SimulationState) resolveTarget(h *Hog) *Child {
	if c := st.Reg.ChildByID(h.TargetID); c != nil {
		return c
	}
	h.TargetID = 0
	children := st.Reg.Children
	if len(children) == 0 {
		return nil
	}
	var pick *Child
	if h.Variant == HogElite {
		best := math.Inf(1)
		for _, c := range children {
			if d := h.Pos.DistanceTo(c.Pos); d < best {
				best = d
				pick = c
			}
		}
	} else {
		pick = children[st.rng.Intn(len(children))]
	}
	h.TargetID = pick.ID
	st.Log.Add(st.Tick, hogLabel(h), "target", "acquire", childLabel(pick), float64(pick.ID))
	return pick
}

func (st *SimulationState) updateSwarmHog(h *Hog, target *Child) {
	if target != nil {
		if h.seek(target) {
			h.WanderAngle += (st.rng.Float64() - 0.5) * swarmWanderJitter
			h.Heading += h.WanderAngle * swarmWanderGain
		}
	} else {
		h.Heading = turnToward(h.Heading, 0, idleTurnRate)
		h.Pos.Y -= h.Speed
	}
	forEachNeighbor(st.Reg.Hogs, h, separationRadius, func(_ *Hog, away Vec2) {
		h.Heading = turnToward(h.Heading, math.Atan2(away.Y, away.X), separationRate)
	})
}

func (st *SimulationState) updateStraglerHog(h *Hog, target *Child) {
	if target == nil {
		return
	}
	h.seek(target)
	h.WanderAngle += (st.rng.Float64() - 0.5) * straglerWanderJitter
	h.Heading += h.WanderAngle * straglerWanderGain
}

func (st *SimulationState) updateEliteHog(h *Hog, target *Child) {
	if target == nil {
		return
	}
	h.seek(target)
	if h.Pos.DistanceTo(target.Pos) < chargeRange {
		h.Speed = math.Min(h.Speed*chargeGain, chargeMaxSpeed)
	}
}

// forEachNeighbor calls fn for every other hog within radius of h on the
// floor plane, passing the vector pointing from the neighbour to h. This is a
// plain O(n²) scan; swap in a spatial index here if wave sizes grow.
func forEachNeighbor(hogs []*Hog, h *Hog, radius float64, fn func(other *Hog, away Vec2)) {
	for _, o := range hogs {
		if o == h {
			continue
		}
		away := Vec2{X: h.Pos.X - o.Pos.X, Y: h.Pos.Y - o.Pos.Y}
		d := away.Len()
		if d > 0 && d < radius {
			fn(o, away)
		}
	}
}
