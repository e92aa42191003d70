// Package sim is the motion collaborator: it owns cabin positions, door
// timing and passenger movement, drives the dispatcher's event surface one
// event at a time, and obeys the commands coming back through the motion
// port. It makes no dispatch decisions of its own.
package sim

import (
	"sort"

	"github.com/rs/zerolog"

	"liftdispatch/src/config"
	"liftdispatch/src/dispatcher"
	"liftdispatch/src/logger"
	"liftdispatch/src/types"
)

type cabin struct {
	id        int
	at        int // index into floors of the floor last reached
	next      int // index being traveled toward, == at when not between floors
	progress  int // ticks spent toward next
	target    int // floor id commanded through SetDestination
	hasTarget bool
	committed map[int]bool
	doorTicks int
	upLamp    bool
	downLamp  bool
	riders    []*passenger
}

type passenger struct {
	origin    int
	dest      int
	dir       types.Direction
	spawnTick int
	boardTick int
}

type Sim struct {
	cfg       config.Config
	events    dispatcher.Events
	floors    []int // ascending
	bottom    int
	top       int
	cabins    []*cabin
	waitingAt map[int][]*passenger
	pending   []Arrival
	spawned   int
	tick      int
	stats     Stats
	log       *zerolog.Logger
}

var _ dispatcher.MotionPort = (*Sim)(nil)

func New(cfg config.Config) *Sim {
	floors := append([]int(nil), cfg.Floors...)
	sort.Ints(floors)

	cabins := make([]*cabin, cfg.NumElevators)
	for i := range cabins {
		cabins[i] = &cabin{id: i, committed: make(map[int]bool)}
	}
	return &Sim{
		cfg:       cfg,
		floors:    floors,
		bottom:    floors[0],
		top:       floors[len(floors)-1],
		cabins:    cabins,
		waitingAt: make(map[int][]*passenger),
		log:       logger.Get(),
	}
}

// Bind attaches the event consumer. Events are delivered synchronously from
// the tick loop, one at a time.
func (s *Sim) Bind(events dispatcher.Events) {
	s.events = events
}

// Load queues scripted passenger arrivals. Arrivals fire in queue order
// once their tick is reached.
func (s *Sim) Load(arrivals []Arrival) {
	s.pending = append(s.pending, arrivals...)
	sort.SliceStable(s.pending, func(i, j int) bool { return s.pending[i].Tick < s.pending[j].Tick })
}

// MotionPort implementation.

func (s *Sim) CurrentFloor(id int) int { return s.floors[s.cabins[id].at] }

func (s *Sim) ResidualCapacity(id int) int {
	return s.cfg.MaxCapacity - len(s.cabins[id].riders)
}

func (s *Sim) SetIndicators(id int, up, down bool) {
	c := s.cabins[id]
	c.upLamp, c.downLamp = up, down
}

func (s *Sim) SetDestination(id, floor int) {
	c := s.cabins[id]
	c.target = floor
	c.hasTarget = true
}

func (s *Sim) CommitStop(id, floor int) {
	s.cabins[id].committed[floor] = true
}

// Run advances the simulation until every scripted passenger is delivered,
// or maxTicks elapse. It returns the collected statistics.
func (s *Sim) Run(maxTicks int) Stats {
	for t := 0; t < maxTicks; t++ {
		s.Tick()
		if s.done() {
			break
		}
	}
	return s.stats
}

// Tick advances the world by one step: scripted arrivals spawn, then every
// cabin moves, stops or dwells. All dispatcher callbacks happen inside.
func (s *Sim) Tick() {
	s.tick++
	for len(s.pending) > 0 && s.pending[0].Tick <= s.tick {
		a := s.pending[0]
		s.pending = s.pending[1:]
		s.Spawn(a.Floor, a.Dest)
	}
	for _, c := range s.cabins {
		s.tickCabin(c)
	}
}

// Spawn puts a passenger on a floor and presses the call button. A cabin
// resting at that floor is boarded directly, the way a passenger walks into
// an open elevator instead of waiting for it to be sent around.
func (s *Sim) Spawn(origin, dest int) {
	if origin == dest {
		return
	}
	dir := types.Up
	if dest < origin {
		dir = types.Down
	}
	p := &passenger{origin: origin, dest: dest, dir: dir, spawnTick: s.tick}
	s.waitingAt[origin] = append(s.waitingAt[origin], p)
	s.spawned++
	s.log.Debug().Int("floor", origin).Int("dest", dest).Msg("passenger arrives")

	s.events.CallButtonPressed(origin, dir)
	for _, c := range s.cabins {
		if !c.hasTarget && s.floors[c.at] == origin {
			s.boardAt(c, origin)
			break
		}
	}
}

func (s *Sim) tickCabin(c *cabin) {
	if c.doorTicks > 0 {
		c.doorTicks--
		return
	}
	if !c.hasTarget || (c.at == c.next && s.floors[c.at] == c.target) {
		return
	}
	if c.next == c.at {
		if c.target > s.floors[c.at] {
			c.next = c.at + 1
		} else {
			c.next = c.at - 1
		}
		c.progress = 0
	}
	c.progress++
	if c.progress < s.cfg.TravelTicks {
		return
	}

	// The next floor is reached. Position updates before the approach event
	// so position queries during the decision see the floor being reached.
	c.at = c.next
	c.progress = 0
	floor := s.floors[c.at]
	if floor != s.bottom && floor != s.top {
		s.events.ApproachingFloor(c.id, floor)
	}
	if c.committed[floor] || floor == c.target {
		delete(c.committed, floor)
		s.stopAt(c, floor)
	}
}

// stopAt is a physical stop: doors open, riders for this floor leave,
// waiting passengers board and press their destinations, and the stop event
// fires. At a non-terminal floor the departure direction was finalized at
// the approach commit, so boarding reads correct indicators and the stop
// event then decides with the new destinations known. At a terminal floor
// the stop event itself finalizes the direction, so it must run first or
// boarders would read the stale arrival indicators. Passengers left behind
// press the call button again.
func (s *Sim) stopAt(c *cabin, floor int) {
	c.doorTicks = s.cfg.DoorTicks

	kept := c.riders[:0]
	for _, p := range c.riders {
		if p.dest == floor {
			s.deliver(p)
		} else {
			kept = append(kept, p)
		}
	}
	c.riders = kept

	var left []*passenger
	if floor == s.bottom || floor == s.top {
		s.events.StoppedAtFloor(c.id, floor)
		left = s.boardAt(c, floor)
	} else {
		left = s.boardAt(c, floor)
		s.events.StoppedAtFloor(c.id, floor)
	}
	for _, p := range left {
		s.events.CallButtonPressed(floor, p.dir)
	}
}

// boardAt moves waiting passengers into the cabin and returns the ones left
// behind. A passenger boards when the indicator for their direction is lit,
// or when both indicators are off (a cabin nobody has dispatched yet).
func (s *Sim) boardAt(c *cabin, floor int) []*passenger {
	var left []*passenger
	for _, p := range s.waitingAt[floor] {
		lampOK := (p.dir == types.Up && c.upLamp) ||
			(p.dir == types.Down && c.downLamp) ||
			(!c.upLamp && !c.downLamp)
		if !lampOK || len(c.riders) >= s.cfg.MaxCapacity {
			left = append(left, p)
			continue
		}
		p.boardTick = s.tick
		c.riders = append(c.riders, p)
		s.log.Debug().Int("elevator", c.id).Int("floor", floor).Int("dest", p.dest).Msg("passenger boards")
		s.events.DestinationButtonPressed(c.id, p.dest)
	}
	if left == nil {
		delete(s.waitingAt, floor)
	} else {
		s.waitingAt[floor] = left
	}
	return left
}

func (s *Sim) deliver(p *passenger) {
	wait := p.boardTick - p.spawnTick
	s.stats.record(wait)
	s.log.Info().Int("floor", p.dest).Int("waitTicks", wait).Msg("passenger delivered")
}

// done reports whether every spawned passenger has been delivered and no
// scripted arrival is still pending. Cabins may well still be moving.
func (s *Sim) done() bool {
	if len(s.pending) > 0 || s.stats.Delivered < s.spawned {
		return false
	}
	return true
}

// Stats returns the statistics collected so far.
func (s *Sim) Stats() Stats { return s.stats }
