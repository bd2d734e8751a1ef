package game

import (
	"math"
	"math/rand"
)

// ObstacleKind identifies a piece of static scenery.
type ObstacleKind int

const (
	ObstacleBush ObstacleKind = iota
	ObstacleTree
	ObstacleCar
	ObstacleCrate
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleBush:
		return "bush"
	case ObstacleTree:
		return "tree"
	case ObstacleCar:
		return "car"
	case ObstacleCrate:
		return "crate"
	default:
		return "unknown"
	}
}

// Radius returns the footprint radius of the kind.
func (k ObstacleKind) Radius() float64 {
	switch k {
	case ObstacleBush:
		return 0.5
	case ObstacleTree:
		return 0.8
	case ObstacleCar:
		return 1.2
	case ObstacleCrate:
		return 0.4
	default:
		return 0.5
	}
}

// Obstacle is placed once at setup and never moves. Nothing collides with it
// during play; it only exists as a registered spatial fact.
type Obstacle struct {
	ID       int
	Kind     ObstacleKind
	Pos      Vec3
	Radius   float64
	Yaw      float64
	Fallback bool // placed in the relaxed fallback box; may overlap
}

const (
	placementAttempts    = 50
	placementZoneClear   = 2.0 // min distance to a spawn point
	placementObstacleGap = 2.5 // min distance to another obstacle
)

// Placement is the result of a single PlaceRandomly call.
type Placement struct {
	Pos      Vec3
	Yaw      float64
	Fallback bool
}

// SpawnExclusionZones returns the fixed points obstacles must keep clear of:
// the five child spawns followed by the player spawn.
func SpawnExclusionZones() []Vec2 {
	zones := make([]Vec2, 0, len(childSpawnPoints)+1)
	zones = append(zones, childSpawnPoints...)
	return append(zones, playerSpawn.XY())
}

// PlaceRandomly rejection-samples a position in the upper field that is clear
// of every exclusion zone and every already placed obstacle. After
// placementAttempts misses it drops into a smaller box without any checks.
func PlaceRandomly(rng *rand.Rand, existing []*Obstacle, zones []Vec2) Placement {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		c := Vec3{
			X: (rng.Float64() - 0.5) * 18,
			Y: rng.Float64()*5 + 0.5,
		}
		if !placementClear(c, existing, zones) {
			continue
		}
		return Placement{Pos: c, Yaw: rng.Float64() * math.Pi * 2}
	}
	return Placement{
		Pos: Vec3{
			X: (rng.Float64() - 0.5) * 8,
			Y: 2,
			Z: (rng.Float64() - 0.5) * 6,
		},
		Fallback: true,
	}
}

func placementClear(c Vec3, existing []*Obstacle, zones []Vec2) bool {
	for _, z := range zones {
		if math.Hypot(c.X-z.X, c.Y-z.Y) < placementZoneClear {
			return false
		}
	}
	for _, o := range existing {
		if c.DistanceTo(o.Pos) < placementObstacleGap {
			return false
		}
	}
	return true
}

// ScatterConfig holds how many of each obstacle kind to scatter.
type ScatterConfig struct {
	Bushes int
	Trees  int
	Cars   int
	Crates int
}

// DefaultScatter is the stock arena dressing.
func DefaultScatter() ScatterConfig {
	return ScatterConfig{Bushes: 8, Trees: 4, Cars: 3, Crates: 6}
}

// Total returns the number of obstacles the config asks for.
func (sc ScatterConfig) Total() int {
	return sc.Bushes + sc.Trees + sc.Cars + sc.Crates
}

func (sc ScatterConfig) kinds() []ObstacleKind {
	out := make([]ObstacleKind, 0, sc.Total())
	for _, e := range []struct {
		kind ObstacleKind
		n    int
	}{
		{ObstacleBush, sc.Bushes},
		{ObstacleTree, sc.Trees},
		{ObstacleCar, sc.Cars},
		{ObstacleCrate, sc.Crates},
	} {
		for i := 0; i < e.n; i++ {
			out = append(out, e.kind)
		}
	}
	return out
}

// ScatterObstacles places every obstacle the config asks for into the
// registry, in kind order. It always places exactly sc.Total() obstacles.
func ScatterObstacles(rng *rand.Rand, reg *Registry, sc ScatterConfig) {
	zones := SpawnExclusionZones()
	for _, kind := range sc.kinds() {
		p := PlaceRandomly(rng, reg.Obstacles, zones)
		reg.AddObstacle(&Obstacle{
			Kind:     kind,
			Pos:      p.Pos,
			Radius:   kind.Radius(),
			Yaw:      p.Yaw,
			Fallback: p.Fallback,
		})
	}
}
