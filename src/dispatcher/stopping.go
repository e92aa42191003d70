package dispatcher

import (
	"liftdispatch/src/elev"
	"liftdispatch/src/types"
)

// stoppingAction decides what an elevator does about a non-terminal floor
// it is approaching. Rules are ordered, first match wins:
//  1. a passenger aboard requested the floor: stop
//  2. no room for one more passenger: pass
//  3. someone waits here for our direction and nobody else claimed them: stop
//  4. pending stops, or needed beyond this floor: pass
//  5. someone waits here for the other direction, unclaimed: stop
//  6. nothing ahead justifies the trip: reverse without stopping
func (d *Dispatcher) stoppingAction(e *elev.State, floor int) types.Action {
	dir := e.Heading.Dir()

	switch {
	case e.HasStop(floor):
		return types.Stop
	case d.motion.ResidualCapacity(e.ID) < 1:
		return types.Pass
	case d.waiting.HasWaiting(floor, dir) && !d.otherCommittedTo(e, floor, dir):
		return types.Stop
	case e.StopCount() > 0 || d.neededBeyond(e, floor):
		return types.Pass
	case d.waiting.HasWaiting(floor, dir.Opposite()) && !d.otherCommittedTo(e, floor, dir.Opposite()):
		return types.Stop
	default:
		return types.Turn
	}
}

// otherCommittedTo reports whether another elevator has already claimed a
// pickup at floor for passengers traveling dir: the floor is in its stop
// set while its finalized heading is dir.
func (d *Dispatcher) otherCommittedTo(self *elev.State, floor int, dir types.Direction) bool {
	for _, other := range d.elevators {
		if other.ID == self.ID {
			continue
		}
		if other.Heading.Is(dir) && other.HasStop(floor) {
			return true
		}
	}
	return false
}
