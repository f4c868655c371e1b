package app

import (
	"flag"
	"fmt"
	"time"

	"psyca/internal/core"
	"psyca/internal/sims/psychedelic"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width       int
	Height      int
	Scale       int
	Interval    time.Duration
	Temperature int
	Brush       int
	Seed        int64
	HUD         bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:       200,
		Height:      200,
		Scale:       4,
		Interval:    core.DefaultTickInterval,
		Temperature: 2,
		HUD:         true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel size of one cell")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "simulation tick interval")
	fs.IntVar(&c.Temperature, "temperature", c.Temperature, "initial temperature")
	fs.IntVar(&c.Brush, "brush", c.Brush, "initial brush radius")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomisation (0 picks one from the clock)")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status panel")
}

// Validate reports the first setting that cannot drive a window.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("board size %dx%d must be positive", c.Width, c.Height)
	case c.Scale <= 0:
		return fmt.Errorf("scale %d must be positive", c.Scale)
	case c.Interval <= 0:
		return fmt.Errorf("interval %s must be positive", c.Interval)
	}
	return nil
}

// ResolveSeed replaces a zero seed with one derived from now.
func (c *Config) ResolveSeed(now time.Time) int64 {
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c.Seed
}

// Board converts the flags into the simulation's own configuration.
func (c *Config) Board() psychedelic.Config {
	return psychedelic.Config{
		Width:       c.Width,
		Height:      c.Height,
		Seed:        c.Seed,
		Temperature: psychedelic.ClampTemperature(c.Temperature),
		BrushRadius: psychedelic.ClampBrush(c.Brush),
	}
}
