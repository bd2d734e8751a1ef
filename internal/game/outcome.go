package game

import "fmt"

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeNone:
		return "none"
	default:
		return "unknown"
	}
}

// TerminalEvent is raised once, on the tick a session ends.
type TerminalEvent struct {
	Outcome    Outcome
	FinalScore int
	Title      string
	Message    string
}

// EvaluateOutcome checks the end conditions. Losing every child takes
// precedence over clearing every hog on the same tick.
func EvaluateOutcome(childrenRemaining, hogsAlive, score int) (TerminalEvent, bool) {
	if childrenRemaining <= 0 {
		return TerminalEvent{
			Outcome:    OutcomeLose,
			FinalScore: score,
			Title:      "All Children Eaten!",
			Message:    fmt.Sprintf("The hogs have won! Score: %d", score),
		}, true
	}
	if hogsAlive == 0 {
		return TerminalEvent{
			Outcome:    OutcomeWin,
			FinalScore: score,
			Title:      "You Win!",
			Message:    fmt.Sprintf("Score: %d", score),
		}, true
	}
	return TerminalEvent{Outcome: OutcomeNone}, false
}
