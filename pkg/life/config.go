package life

import "strconv"

// Config controls engine construction.
type Config struct {
	Rows int
	Cols int

	Rule Rule

	// InitFill is the probability in [0,1] that a cell starts alive.
	InitFill float64

	Seed int64
}

// DefaultConfig returns the standard configuration: classic Life on a
// half-filled 100×100 grid.
func DefaultConfig() Config {
	return Config{Rows: 100, Cols: 100, Rule: Conway, InitFill: 0.5, Seed: 1337}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.InitFill = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if preset, found := Preset(v); found {
			c.Rule = preset
		} else if parsed, err := ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	return c
}
