package dispatcher

import (
	"liftdispatch/src/elev"
	"liftdispatch/src/types"
)

// neededBeyond decides whether an elevator should continue past floor in
// its current direction rather than turn back. Rules are ordered, first
// match wins:
//  1. nobody waits anywhere past the floor in our direction of travel: no
//  2. heading down: yes (downward coverage is never pruned)
//  3. someone above waits to go up: yes
//  4. a higher elevator is already heading up, it will reach them first: no
//  5. the highest downward elevator covers every down-waiter at or above
//     its own floor: no
//  6. otherwise: yes
func (d *Dispatcher) neededBeyond(e *elev.State, floor int) bool {
	dir := e.Heading.Dir()

	switch {
	case !d.waiting.HasWaitingPast(floor, dir):
		return false
	case dir == types.Down:
		return true
	case d.waiting.HasWaitingAbove(floor, types.Up):
		return true
	case d.highestHeading(types.Up) != e:
		return false
	}

	if h := d.highestHeading(types.Down); h != nil &&
		!d.waiting.HasWaitingAbove(d.motion.CurrentFloor(h.ID)-1, types.Down) {
		return false
	}
	return true
}

// highestHeading returns the elevator at the strictly greatest floor among
// those heading dir, or nil. The comparison starts at the bottom floor, so
// an elevator sitting exactly at the bottom never qualifies, and the first
// elevator scanned keeps the title on floor ties.
func (d *Dispatcher) highestHeading(dir types.Direction) *elev.State {
	best := d.bottom
	var found *elev.State
	for _, e := range d.elevators {
		if !e.Heading.Is(dir) {
			continue
		}
		if f := d.motion.CurrentFloor(e.ID); f > best {
			best = f
			found = e
		}
	}
	return found
}
