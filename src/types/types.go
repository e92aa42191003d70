package types

// Direction is a travel direction, used both for elevator movement and for
// the direction a waiting passenger wants to go.
type Direction int

const (
	Up   Direction = 1
	Down Direction = -1
)

func (d Direction) Opposite() Direction {
	return -d
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "undefined"
	}
}

// Action is the outcome of the stopping decision for an approached floor.
type Action int

const (
	Pass Action = iota
	Stop
	Turn
)

func (a Action) String() string {
	switch a {
	case Pass:
		return "pass"
	case Stop:
		return "stop"
	case Turn:
		return "turn"
	default:
		return "undefined"
	}
}

// Heading is an elevator's committed travel direction. The zero value is
// idle, meaning the elevator has never been dispatched. Once dispatched a
// heading only flips between up and down, it never becomes idle again.
type Heading struct {
	Moving    bool
	Direction Direction
}

func IdleHeading() Heading {
	return Heading{}
}

func MovingIn(dir Direction) Heading {
	return Heading{Moving: true, Direction: dir}
}

func (h Heading) Idle() bool {
	return !h.Moving
}

// Dir returns the travel direction. Only meaningful when not idle.
func (h Heading) Dir() Direction {
	return h.Direction
}

func (h Heading) Is(dir Direction) bool {
	return h.Moving && h.Direction == dir
}

func (h Heading) String() string {
	if !h.Moving {
		return "idle"
	}
	return h.Direction.String()
}
