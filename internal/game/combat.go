package game

import (
	"fmt"
	"math"
)

// --- Combat constants ---

const (
	meleeRange    = 1.5 // fire within this of a hog clubs it instead of shooting
	bulletRise    = 0.2 // units per tick
	bulletCeiling = 6.0 // bullets above this are gone
	bulletMuzzle  = 0.5 // spawn height above the player position

	// Hog hitbox half-extents: long along X, squat on Y and Z.
	hitboxLength = 0.9
	hitboxHeight = 0.4
	hitboxDepth  = 0.4

	captureRange = 0.6
	escapeLine   = -4.8 // hogs below this have given up and left

	killScore = 10
)

// Bullet is a shotgun slug rising up the field.
type Bullet struct {
	Pos  Vec3
	Rise float64
}

// KillCause records how a hog died.
type KillCause int

const (
	KillBullet KillCause = iota
	KillMelee
)

func (k KillCause) String() string {
	if k == KillMelee {
		return "melee"
	}
	return "bullet"
}

// bulletHitsHog is the ellipsoid hit test. It depends only on the offset
// between the two positions.
func bulletHitsHog(b, h Vec3) bool {
	dx := (b.X - h.X) / hitboxLength
	dy := (b.Y - h.Y) / hitboxHeight
	dz := (b.Z - h.Z) / hitboxDepth
	return dx*dx+dy*dy+dz*dz < 1
}

// fire handles the trigger: a hog in melee range is clubbed, otherwise a
// bullet leaves the muzzle. Melee never spawns a bullet.
func (st *SimulationState) fire() {
	best := -1
	bestDist := math.Inf(1)
	for i, h := range st.Reg.Hogs {
		if d := st.Player.Pos.DistanceTo(h.Pos); d <= meleeRange && d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best >= 0 {
		h := st.Reg.RemoveHogAt(best)
		st.killHog(h, KillMelee)
		st.Effects.MeleeFlash(h.Pos)
		return
	}
	pos := st.Player.Pos
	pos.Y += bulletMuzzle
	st.Reg.AddBullet(&Bullet{Pos: pos, Rise: bulletRise})
	st.Stats.ShotsFired++
	st.Log.AddVerbose(st.Tick, "player", "combat", "shot", fmt.Sprintf("(%.2f,%.2f)", pos.X, pos.Y), pos.Y)
}

// killHog scores a hog that has already been removed from the registry.
func (st *SimulationState) killHog(h *Hog, cause KillCause) {
	st.Score += killScore
	switch cause {
	case KillMelee:
		st.Stats.MeleeKills++
	default:
		st.Stats.BulletKills++
	}
	st.Effects.DeathSound()
	st.Log.Add(st.Tick, hogLabel(h), "combat", "kill", cause.String(), float64(st.Score))
	st.Feed.Add(st.Tick, hogLabel(h), fmt.Sprintf("%s kill +%d", cause, killScore))
	st.logger.Debug().
		Int("tick", st.Tick).
		Int("hog", h.ID).
		Str("variant", h.Variant.String()).
		Str("cause", cause.String()).
		Int("score", st.Score).
		Msg("hog killed")
}

// advanceBullets lifts every bullet and drops those past the ceiling.
func (st *SimulationState) advanceBullets() {
	for i := len(st.Reg.Bullets) - 1; i >= 0; i-- {
		b := st.Reg.Bullets[i]
		b.Pos.Y += b.Rise
		if b.Pos.Y > bulletCeiling {
			st.Reg.RemoveBulletAt(i)
		}
	}
}

// resolveBulletHits kills at most one hog per bullet, the first match in
// reverse registry order.
func (st *SimulationState) resolveBulletHits() {
	reg := st.Reg
	for i := len(reg.Bullets) - 1; i >= 0; i-- {
		b := reg.Bullets[i]
		for j := len(reg.Hogs) - 1; j >= 0; j-- {
			if !bulletHitsHog(b.Pos, reg.Hogs[j].Pos) {
				continue
			}
			reg.RemoveBulletAt(i)
			st.killHog(reg.RemoveHogAt(j), KillBullet)
			break
		}
	}
}

// resolveCaptures pairs each hog with at most one child inside captureRange.
// Both are removed and the children counter drops by one per pair.
func (st *SimulationState) resolveCaptures() {
	reg := st.Reg
	for i := len(reg.Hogs) - 1; i >= 0; i-- {
		h := reg.Hogs[i]
		for j := len(reg.Children) - 1; j >= 0; j-- {
			c := reg.Children[j]
			if h.Pos.DistanceTo(c.Pos) >= captureRange {
				continue
			}
			reg.RemoveChildAt(j)
			reg.RemoveHogAt(i)
			st.ChildrenRemaining--
			st.Stats.Captures++
			st.Effects.BonePile(c.Pos)
			st.Effects.CaptureSound()
			st.Log.Add(st.Tick, hogLabel(h), "combat", "capture", childLabel(c), float64(st.ChildrenRemaining))
			st.Feed.Add(st.Tick, hogLabel(h), "caught "+childLabel(c))
			st.logger.Debug().
				Int("tick", st.Tick).
				Int("hog", h.ID).
				Int("child", c.ID).
				Int("children_remaining", st.ChildrenRemaining).
				Msg("child captured")
			break
		}
	}
}

// despawnEscaped removes hogs that wandered off the bottom of the field.
// No score either way.
func (st *SimulationState) despawnEscaped() {
	for i := len(st.Reg.Hogs) - 1; i >= 0; i-- {
		h := st.Reg.Hogs[i]
		if h.Pos.Y >= escapeLine {
			continue
		}
		st.Reg.RemoveHogAt(i)
		st.Stats.Escapes++
		st.Log.Add(st.Tick, hogLabel(h), "combat", "escape", fmt.Sprintf("y=%.2f", h.Pos.Y), h.Pos.Y)
	}
}

func hogLabel(h *Hog) string {
	return fmt.Sprintf("H%d", h.ID)
}

func childLabel(c *Child) string {
	return fmt.Sprintf("C%d", c.ID)
}
