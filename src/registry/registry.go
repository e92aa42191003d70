// Package registry tracks, per direction, the floors where at least one
// passenger is waiting and has not yet been claimed by an elevator.
package registry

import (
	"sort"

	"liftdispatch/src/types"
)

type Waiting struct {
	up   map[int]bool
	down map[int]bool
}

func New() *Waiting {
	return &Waiting{
		up:   make(map[int]bool),
		down: make(map[int]bool),
	}
}

func (w *Waiting) set(dir types.Direction) map[int]bool {
	if dir == types.Up {
		return w.up
	}
	return w.down
}

// SetWaiting records a waiting passenger at floor wanting to travel dir.
// Repeated calls are no-ops.
func (w *Waiting) SetWaiting(floor int, dir types.Direction) {
	w.set(dir)[floor] = true
}

// ClearWaiting removes the entry. Clearing an absent entry is a no-op.
func (w *Waiting) ClearWaiting(floor int, dir types.Direction) {
	delete(w.set(dir), floor)
}

func (w *Waiting) HasWaiting(floor int, dir types.Direction) bool {
	return w.set(dir)[floor]
}

// HasWaitingAbove reports whether some floor strictly above floor has a
// waiting passenger for dir. An empty set means false, there is no sentinel
// floor value.
func (w *Waiting) HasWaitingAbove(floor int, dir types.Direction) bool {
	for f := range w.set(dir) {
		if f > floor {
			return true
		}
	}
	return false
}

// HasWaitingPast reports whether anyone, in either direction, waits beyond
// floor as seen from a dir-bound elevator: strictly above for up, strictly
// below for down.
func (w *Waiting) HasWaitingPast(floor int, dir types.Direction) bool {
	past := func(f int) bool {
		if dir == types.Up {
			return f > floor
		}
		return f < floor
	}
	for f := range w.up {
		if past(f) {
			return true
		}
	}
	for f := range w.down {
		if past(f) {
			return true
		}
	}
	return false
}

// Floors returns the waiting floors for dir in ascending order, for
// observers and tests.
func (w *Waiting) Floors(dir types.Direction) []int {
	floors := make([]int, 0, len(w.set(dir)))
	for f := range w.set(dir) {
		floors = append(floors, f)
	}
	sort.Ints(floors)
	return floors
}
