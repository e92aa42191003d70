// Package elev holds the dispatcher-owned attributes of one elevator: its
// committed heading and the floors requested from inside the cabin. Position
// and load live with the motion collaborator and are read through its port.
package elev

import "liftdispatch/src/types"

type State struct {
	ID      int
	Heading types.Heading
	Stops   map[int]bool
}

func NewState(id int) *State {
	return &State{
		ID:      id,
		Heading: types.IdleHeading(),
		Stops:   make(map[int]bool),
	}
}

// AddStop records a requested floor. Duplicates are no-ops.
func (s *State) AddStop(floor int) {
	s.Stops[floor] = true
}

// RemoveStop forgets a floor. Removing an absent floor is a no-op.
func (s *State) RemoveStop(floor int) {
	delete(s.Stops, floor)
}

func (s *State) HasStop(floor int) bool {
	return s.Stops[floor]
}

// HasStopsBesides reports whether any floor other than the given one is
// requested. The floor currently being served does not count as pending.
func (s *State) HasStopsBesides(floor int) bool {
	for f := range s.Stops {
		if f != floor {
			return true
		}
	}
	return false
}

func (s *State) StopCount() int {
	return len(s.Stops)
}
