package tycoon

import "github.com/vovakirdan/tui-tycoon/internal/events"

// EventCycleComplete is published on the game bus every time a venture
// finishes a production cycle. The bank subscribes and credits the
// profit; publisher and subscriber never reference each other.
const EventCycleComplete events.Kind = "cycle_complete"

// CycleResult is the payload of EventCycleComplete.
type CycleResult struct {
	Business string
	Profit   float64
}
