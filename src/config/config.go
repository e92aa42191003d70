package config

import (
	"fmt"
	"os"

	"github.com/go-yaml/yaml"
)

const (
	DefaultNumElevators = 3
	DefaultNumFloors    = 9
	DefaultMaxCapacity  = 8

	// Simulator timings, in ticks.
	DefaultTravelTicks = 4
	DefaultDoorTicks   = 3
)

// Config describes the fleet and the simulated building. Floors lists the
// floor identifiers the controller knows about; they need not be contiguous
// or sorted, only distinct.
type Config struct {
	Floors       []int `yaml:"Floors"`
	NumElevators int   `yaml:"NumElevators"`
	MaxCapacity  int   `yaml:"MaxCapacity"`
	TravelTicks  int   `yaml:"TravelTicks"`
	DoorTicks    int   `yaml:"DoorTicks"`
}

func Default() Config {
	floors := make([]int, DefaultNumFloors)
	for i := range floors {
		floors[i] = i
	}
	return Config{
		Floors:       floors,
		NumElevators: DefaultNumElevators,
		MaxCapacity:  DefaultMaxCapacity,
		TravelTicks:  DefaultTravelTicks,
		DoorTicks:    DefaultDoorTicks,
	}
}

// Load reads a YAML fleet description. Fields left out of the file keep
// their defaults.
func Load(path string) (Config, error) {
	c := Default()

	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if len(c.Floors) < 2 {
		return fmt.Errorf("config: need at least 2 floors, got %d", len(c.Floors))
	}
	seen := make(map[int]bool, len(c.Floors))
	for _, f := range c.Floors {
		if seen[f] {
			return fmt.Errorf("config: duplicate floor identifier %d", f)
		}
		seen[f] = true
	}
	if c.NumElevators < 1 {
		return fmt.Errorf("config: need at least 1 elevator, got %d", c.NumElevators)
	}
	if c.MaxCapacity < 1 {
		return fmt.Errorf("config: capacity must be positive, got %d", c.MaxCapacity)
	}
	return nil
}

// BottomFloor returns the smallest floor identifier. Derived by scanning,
// identifiers are not assumed contiguous.
func (c Config) BottomFloor() int {
	bottom := c.Floors[0]
	for _, f := range c.Floors[1:] {
		if f < bottom {
			bottom = f
		}
	}
	return bottom
}

// TopFloor returns the largest floor identifier.
func (c Config) TopFloor() int {
	top := c.Floors[0]
	for _, f := range c.Floors[1:] {
		if f > top {
			top = f
		}
	}
	return top
}
