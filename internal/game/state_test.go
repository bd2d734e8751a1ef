package game

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// newBareState builds a SimulationState without a Simulation around it, for
// driving single AI passes directly.
func newBareState(seed int64) *SimulationState {
	return &SimulationState{
		Reg:     NewRegistry(),
		Player:  Player{Pos: playerSpawn},
		Effects: NopEffects{},
		Log:     NewSimLog(false),
		Feed:    NewEventFeed(),
		rng:     rand.New(rand.NewSource(seed)), // #nosec G404 -- test
		logger:  zerolog.Nop(),
	}
}
