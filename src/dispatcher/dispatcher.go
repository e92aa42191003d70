// Package dispatcher routes button and motion events to the dispatch
// policies and issues movement commands back to the fleet. All shared state
// (the waiting registry and every elevator's heading and stop set) is owned
// here and mutated only inside the event handlers, which the motion
// collaborator must invoke synchronously, one event at a time.
package dispatcher

import (
	"github.com/rs/zerolog"

	"liftdispatch/src/config"
	"liftdispatch/src/elev"
	"liftdispatch/src/logger"
	"liftdispatch/src/registry"
	"liftdispatch/src/types"
)

// MotionPort is the command-and-query surface of the motion collaborator
// (hardware or simulator). The dispatcher never blocks on it.
type MotionPort interface {
	CurrentFloor(id int) int
	ResidualCapacity(id int) int
	SetIndicators(id int, up, down bool)
	SetDestination(id int, floor int)
	CommitStop(id int, floor int)
}

// Events is the callback surface the motion collaborator drives.
type Events interface {
	CallButtonPressed(floor int, dir types.Direction)
	DestinationButtonPressed(id, floor int)
	ApproachingFloor(id, floor int)
	StoppedAtFloor(id, floor int)
}

type Dispatcher struct {
	motion    MotionPort
	waiting   *registry.Waiting
	elevators []*elev.State
	bottom    int
	top       int
	log       *zerolog.Logger
}

var _ Events = (*Dispatcher)(nil)

func New(cfg config.Config, motion MotionPort) *Dispatcher {
	elevators := make([]*elev.State, cfg.NumElevators)
	for i := range elevators {
		elevators[i] = elev.NewState(i)
	}
	return &Dispatcher{
		motion:    motion,
		waiting:   registry.New(),
		elevators: elevators,
		bottom:    cfg.BottomFloor(),
		top:       cfg.TopFloor(),
		log:       logger.Get(),
	}
}

func (d *Dispatcher) elevator(id int) *elev.State {
	return d.elevators[id]
}

// CallButtonPressed registers a waiting passenger and, for calls above the
// bottom floor, starts the first idle elevator. Idle elevators all sit at
// the bottom, so the pick among them does not matter; ascending ID keeps it
// deterministic.
func (d *Dispatcher) CallButtonPressed(floor int, dir types.Direction) {
	d.waiting.SetWaiting(floor, dir)
	d.log.Debug().Int("floor", floor).Stringer("dir", dir).Msg("call button")

	if floor == d.bottom {
		return
	}
	for _, e := range d.elevators {
		if e.Heading.Idle() {
			d.log.Info().Int("elevator", e.ID).Int("floor", floor).Msg("starting idle elevator")
			d.departFrom(e, d.bottom)
			return
		}
	}
}

// DestinationButtonPressed records a cabin request. An idle elevator is
// necessarily resting at the bottom floor, so its first request is handled
// through the ordinary stopped-at-bottom path, which heads it up.
func (d *Dispatcher) DestinationButtonPressed(id, floor int) {
	e := d.elevator(id)
	e.AddStop(floor)
	d.log.Debug().Int("elevator", id).Int("floor", floor).Msg("destination button")

	if e.Heading.Idle() {
		d.departFrom(e, d.bottom)
	}
}

// ApproachingFloor runs the stopping policy for a non-terminal floor. A
// Stop commits irrevocably: the floor joins the elevator's stop set and the
// departure direction is finalized before the cabin arrives, so every other
// elevator evaluating this floor afterwards already sees the claim.
func (d *Dispatcher) ApproachingFloor(id, floor int) {
	e := d.elevator(id)
	if e.Heading.Idle() {
		return
	}

	action := d.stoppingAction(e, floor)
	d.log.Debug().Int("elevator", id).Int("floor", floor).Stringer("action", action).Msg("approach")

	switch action {
	case types.Stop:
		e.AddStop(floor)
		d.finalizeDeparture(e, floor)
		d.motion.CommitStop(e.ID, floor)
	case types.Turn:
		e.Heading = types.MovingIn(e.Heading.Dir().Opposite())
		d.emitCommands(e)
	case types.Pass:
	}
}

// StoppedAtFloor is fired for every physical stop, terminal floors
// included. The served floor leaves the stop set and the departure
// direction is decided anew, now without the served floor holding it.
func (d *Dispatcher) StoppedAtFloor(id, floor int) {
	d.departFrom(d.elevator(id), floor)
}

// departFrom is the stop/turn sequence for a floor the elevator is at: the
// floor no longer counts as a stop, the turning policy fixes the departure
// direction, the waiting claim for that direction is consumed, and the
// shuttle command goes out. Starting an idle elevator reuses this with the
// bottom floor.
func (d *Dispatcher) departFrom(e *elev.State, floor int) {
	e.RemoveStop(floor)
	d.finalizeDeparture(e, floor)
}

func (d *Dispatcher) finalizeDeparture(e *elev.State, floor int) {
	dir := d.departureDirection(e, floor)
	e.Heading = types.MovingIn(dir)
	d.waiting.ClearWaiting(floor, dir)
	d.emitCommands(e)
	d.log.Debug().Int("elevator", e.ID).Int("floor", floor).Stringer("dir", dir).Msg("departure finalized")
}

// emitCommands keeps the shuttle contract: exactly one indicator lit and
// the destination queue replaced by the extreme floor for the heading. Real
// stops along the way are inserted only by the approach interception.
func (d *Dispatcher) emitCommands(e *elev.State) {
	dir := e.Heading.Dir()
	d.motion.SetIndicators(e.ID, dir == types.Up, dir == types.Down)
	if dir == types.Up {
		d.motion.SetDestination(e.ID, d.top)
	} else {
		d.motion.SetDestination(e.ID, d.bottom)
	}
}
