package psychedelic

import "strconv"

const (
	// MaxBrushRadius bounds the paint brush half-width.
	MaxBrushRadius = 100
)

// Config controls the board dimensions and the initial tunables.
type Config struct {
	Width  int
	Height int

	// Seed drives randomisation. Zero means "pick one from the clock" and is
	// resolved by the caller.
	Seed int64

	Temperature int
	BrushRadius int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 200, Height: 200, Temperature: 2}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["temperature"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Temperature = ClampTemperature(parsed)
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.BrushRadius = ClampBrush(parsed)
		}
	}
	return c
}

// ClampTemperature limits t to [0, ColourCount].
func ClampTemperature(t int) int {
	return min(max(t, 0), ColourCount)
}

// ClampBrush limits r to [0, MaxBrushRadius].
func ClampBrush(r int) int {
	return min(max(r, 0), MaxBrushRadius)
}
