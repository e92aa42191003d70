package dispatcher

import (
	"liftdispatch/src/elev"
	"liftdispatch/src/types"
)

// departureDirection finalizes the direction an elevator leaves floor in.
// Rules are ordered, first match wins:
//  1. bottom floor: up
//  2. top floor: down
//  3. pending stops besides this floor: keep going
//  4. someone waits here for the current direction: keep going
//  5. not needed beyond this floor, and reversing would not mirror another
//     elevator's claim on this floor: reverse
//  6. otherwise keep going
//
// The terminal-floor rules come first so an idle elevator, which is always
// at the bottom, gets a direction without ever reading its heading.
func (d *Dispatcher) departureDirection(e *elev.State, floor int) types.Direction {
	switch floor {
	case d.bottom:
		return types.Up
	case d.top:
		return types.Down
	}

	dir := e.Heading.Dir()
	switch {
	case e.HasStopsBesides(floor):
		return dir
	case d.waiting.HasWaiting(floor, dir):
		return dir
	case !d.neededBeyond(e, floor) && !d.mirrorsCommitment(e, floor):
		return dir.Opposite()
	default:
		return dir
	}
}

// mirrorsCommitment guards the commit-time reversal: while the approach
// commit still holds floor in the elevator's own stop set, reversing would
// leave two elevators holding the same floor with the same finalized
// direction if another elevator already claimed it going the other way.
// Hold course instead; the arrival run decides again with the floor removed
// from the stop set, where no duplicate can arise.
func (d *Dispatcher) mirrorsCommitment(e *elev.State, floor int) bool {
	return e.HasStop(floor) && d.otherCommittedTo(e, floor, e.Heading.Dir().Opposite())
}
