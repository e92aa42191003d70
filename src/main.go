package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"liftdispatch/src/config"
	"liftdispatch/src/dispatcher"
	"liftdispatch/src/logger"
	"liftdispatch/src/sim"
)

const interactiveTick = 100 * time.Millisecond

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("LIFT_CONFIG"), "fleet config YAML, compiled-in defaults when empty")
	levelName := flag.String("level", envOr("LIFT_LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
	seed := flag.Int64("seed", envInt64("LIFT_SEED", 1), "arrival script seed")
	passengers := flag.Int("passengers", 50, "number of scripted passengers")
	spread := flag.Int("spread", 4, "average ticks between arrivals")
	maxTicks := flag.Int("ticks", 10000, "tick budget for the scripted run")
	interactive := flag.Bool("interactive", false, "spawn passengers with digit keys instead of a script")
	flag.Parse()

	level, err := zerolog.ParseLevel(*levelName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad log level %q: %v\n", *levelName, err)
		os.Exit(2)
	}
	log := logger.GetConfigured(level)

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("loading config")
		}
	}

	world := sim.New(cfg)
	ctl := dispatcher.New(cfg, world)
	world.Bind(ctl)

	if *interactive {
		if err := runInteractive(world, ctl, cfg, *seed); err != nil {
			log.Fatal().Err(err).Msg("interactive mode")
		}
		return
	}

	world.Load(sim.RandomArrivals(*seed, *passengers, *spread, cfg))
	stats := world.Run(*maxTicks)
	if stats.Delivered < *passengers {
		log.Warn().Int("delivered", stats.Delivered).Int("scripted", *passengers).
			Msg("tick budget exhausted before every passenger was delivered")
	}
	fmt.Println(stats.Summary())
}

// runInteractive ticks the world on a timer and turns digit key presses
// into passengers: the digit is the origin floor, the destination is drawn
// at random. Esc or q quits.
func runInteractive(world *sim.Sim, ctl *dispatcher.Dispatcher, cfg config.Config, seed int64) error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	keys := make(chan rune)
	go func() {
		defer close(keys)
		for {
			char, key, err := keyboard.GetKey()
			if err != nil || key == keyboard.KeyEsc || char == 'q' {
				return
			}
			keys <- char
		}
	}()

	known := make(map[int]bool, len(cfg.Floors))
	for _, f := range cfg.Floors {
		known[f] = true
	}
	rng := rand.New(rand.NewSource(seed))

	fmt.Println("digit keys spawn a passenger at that floor; esc or q quits")
	ticker := time.NewTicker(interactiveTick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			world.Tick()
			render(ctl, world)
		case char, ok := <-keys:
			if !ok {
				fmt.Println(world.Stats().Summary())
				return nil
			}
			origin, err := strconv.Atoi(string(char))
			if err != nil || !known[origin] {
				continue
			}
			dest := origin
			for dest == origin {
				dest = cfg.Floors[rng.Intn(len(cfg.Floors))]
			}
			world.Spawn(origin, dest)
		}
	}
}

func render(ctl *dispatcher.Dispatcher, world *sim.Sim) {
	snap, err := ctl.Snapshot()
	if err != nil {
		return
	}
	fmt.Printf("\rwaiting up=%v down=%v |", snap.WaitingUp, snap.WaitingDown)
	for _, e := range snap.Elevators {
		stops := make([]int, 0, len(e.Stops))
		for f := range e.Stops {
			stops = append(stops, f)
		}
		fmt.Printf(" #%d@%d %s stops=%v", e.ID, world.CurrentFloor(e.ID), e.Heading, stops)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ignoring %s=%q: %v\n", key, v, err)
		return fallback
	}
	return n
}
