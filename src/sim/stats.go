package sim

import (
	"math/rand"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"liftdispatch/src/config"
)

// Arrival is a scripted passenger: at Tick, someone shows up at Floor
// wanting to reach Dest.
type Arrival struct {
	Tick  int
	Floor int
	Dest  int
}

// RandomArrivals builds a reproducible arrival script: n passengers with
// distinct origin/destination floors, spread over roughly n*spread ticks.
func RandomArrivals(seed int64, n, spread int, cfg config.Config) []Arrival {
	rng := rand.New(rand.NewSource(seed))
	arrivals := make([]Arrival, 0, n)
	tick := 0
	for i := 0; i < n; i++ {
		tick += rng.Intn(spread) + 1
		origin := cfg.Floors[rng.Intn(len(cfg.Floors))]
		dest := origin
		for dest == origin {
			dest = cfg.Floors[rng.Intn(len(cfg.Floors))]
		}
		arrivals = append(arrivals, Arrival{Tick: tick, Floor: origin, Dest: dest})
	}
	return arrivals
}

// Stats accumulates per-passenger wait times, measured in ticks from
// arrival at the floor to boarding.
type Stats struct {
	Delivered int
	TotalWait int
	MaxWait   int
}

func (st *Stats) record(wait int) {
	st.Delivered++
	st.TotalWait += wait
	if wait > st.MaxWait {
		st.MaxWait = wait
	}
}

func (st Stats) AverageWait() float64 {
	if st.Delivered == 0 {
		return 0
	}
	return float64(st.TotalWait) / float64(st.Delivered)
}

func (st Stats) Summary() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("delivered %d passengers, average wait %.1f ticks, max wait %d ticks",
		st.Delivered, st.AverageWait(), st.MaxWait)
}
