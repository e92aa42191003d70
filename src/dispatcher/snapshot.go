package dispatcher

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"liftdispatch/src/elev"
	"liftdispatch/src/types"
)

// Snapshot is a detached copy of the dispatcher's shared state. Renderers
// and scorers read snapshots instead of the live registry, which only the
// event handlers may touch.
type Snapshot struct {
	WaitingUp   []int
	WaitingDown []int
	Elevators   []*elev.State
}

func (d *Dispatcher) Snapshot() (Snapshot, error) {
	var elevators []*elev.State
	if err := deepcopy.Copy(&elevators, &d.elevators); err != nil {
		return Snapshot{}, fmt.Errorf("copy elevator states: %w", err)
	}
	return Snapshot{
		WaitingUp:   d.waiting.Floors(types.Up),
		WaitingDown: d.waiting.Floors(types.Down),
		Elevators:   elevators,
	}, nil
}
