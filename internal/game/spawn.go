package game

import (
	"math"
	"math/rand"
)

// playerSpawn is where the player starts, below the children row.
var playerSpawn = Vec3{X: 0, Y: -4}

// WaveConfig sets how many hogs of each variant the wave brings.
type WaveConfig struct {
	Swarm    int
	Stragler int
	Elite    int
}

// DefaultWave is the stock wave: 25 swarm, 12 straglers, 8 elites.
func DefaultWave() WaveConfig {
	return WaveConfig{Swarm: 25, Stragler: 12, Elite: 8}
}

// Total returns the wave size.
func (wc WaveConfig) Total() int {
	return wc.Swarm + wc.Stragler + wc.Elite
}

// SpawnChildren places one child on each spawn point.
func SpawnChildren(rng *rand.Rand, reg *Registry) {
	for _, p := range childSpawnPoints {
		reg.AddChild(&Child{
			Pos:         Vec3{X: p.X, Y: p.Y},
			Target:      p,
			LastSafe:    Vec2{X: 0, Y: -1},
			RunSpeed:    0.02 + rng.Float64()*0.03,
			BobPhase:    rng.Float64() * math.Pi * 2,
			AnimOffset:  rng.Float64() * math.Pi * 2,
			ChangeTimer: rng.Float64() * 2,
		})
	}
}

// SpawnWave adds the whole wave to the registry: the swarm first, then the
// straglers, then the elites.
func SpawnWave(rng *rand.Rand, reg *Registry, wc WaveConfig) {
	spawnSwarm(rng, reg, wc.Swarm)
	spawnStraglers(rng, reg, wc.Stragler)
	spawnElites(rng, reg, wc.Elite)
}

// newHog fills the fields every variant shares.
func newHog(rng *rand.Rand, v HogVariant) *Hog {
	return &Hog{
		Variant:     v,
		WalkPhase:   rng.Float64() * math.Pi * 2,
		AnimOffset:  rng.Float64() * math.Pi * 2,
		WanderAngle: rng.Float64() * math.Pi * 2,
		Scale:       1,
	}
}

// spawnSwarm rings the swarm around a point above the children.
func spawnSwarm(rng *rand.Rand, reg *Registry, n int) {
	const (
		centerY = 4.0
		spreadY = 3.0
	)
	for i := 0; i < n; i++ {
		h := newHog(rng, HogSwarm)
		angle := float64(i)/float64(n)*math.Pi*2 + rng.Float64()*0.5
		radius := 2 + rng.Float64()*3
		h.Pos = Vec3{
			X: math.Cos(angle)*radius + (rng.Float64()-0.5)*2,
			Y: centerY + math.Sin(angle)*radius*0.5 + (rng.Float64()-0.5)*spreadY,
			Z: (rng.Float64() - 0.5) * 2,
		}
		h.Speed = 0.015 + rng.Float64()*0.02
		h.Aggressiveness = rng.Float64()
		reg.AddHog(h)
	}
}

// spawnStraglers brings hogs in from the left, right or top edge, each with
// its own arrival delay.
func spawnStraglers(rng *rand.Rand, reg *Registry, n int) {
	for i := 0; i < n; i++ {
		h := newHog(rng, HogStragler)
		switch rng.Intn(3) {
		case 0: // left
			h.Pos.X = -8 - rng.Float64()*3
			h.Pos.Y = 2 + rng.Float64()*4
		case 1: // right
			h.Pos.X = 8 + rng.Float64()*3
			h.Pos.Y = 2 + rng.Float64()*4
		default: // top
			h.Pos.X = (rng.Float64() - 0.5) * 12
			h.Pos.Y = 7 + rng.Float64()*2
		}
		h.Pos.Z = (rng.Float64() - 0.5) * 3
		h.Speed = 0.01 + rng.Float64()*0.015
		h.Aggressiveness = 0.3 + rng.Float64()*0.7
		h.ArrivalDelay = rng.Float64() * 5
		reg.AddHog(h)
	}
}

// spawnElites drops the big dark hogs in from the top.
func spawnElites(rng *rand.Rand, reg *Registry, n int) {
	for i := 0; i < n; i++ {
		h := newHog(rng, HogElite)
		h.Scale = 1.3
		h.Pos = Vec3{
			X: (rng.Float64() - 0.5) * 10,
			Y: 6 + rng.Float64()*2,
			Z: (rng.Float64() - 0.5) * 2,
		}
		h.Speed = 0.025 + rng.Float64()*0.02
		h.Aggressiveness = 0.8 + rng.Float64()*0.2
		h.ZigzagPhase = rng.Float64() * math.Pi * 2
		reg.AddHog(h)
	}
}
