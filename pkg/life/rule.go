package life

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule holds the four inclusive neighbor-count thresholds governing a
// generation. A live cell survives when its live-neighbor count lies in
// [MinAlive, MaxAlive]; a dead cell is born when the count lies in
// [MinDead, MaxDead]. Every other cell is dead in the next generation.
type Rule struct {
	MinAlive int
	MaxAlive int
	MinDead  int
	MaxDead  int
}

// Conway is the classic B3/S23 Game of Life rule.
var Conway = Rule{MinAlive: 2, MaxAlive: 3, MinDead: 3, MaxDead: 3}

// Validate checks that every threshold lies in [0,8] and that the survival and
// birth intervals are ordered.
func (r Rule) Validate() error {
	for _, v := range [4]int{r.MinAlive, r.MaxAlive, r.MinDead, r.MaxDead} {
		if v < 0 || v > 8 {
			return fmt.Errorf("%w: rule threshold %d outside [0,8]", ErrInvalidParameter, v)
		}
	}
	if r.MinAlive > r.MaxAlive {
		return fmt.Errorf("%w: rule min_alive %d > max_alive %d", ErrInvalidParameter, r.MinAlive, r.MaxAlive)
	}
	if r.MinDead > r.MaxDead {
		return fmt.Errorf("%w: rule min_dead %d > max_dead %d", ErrInvalidParameter, r.MinDead, r.MaxDead)
	}
	return nil
}

// String renders the rule in the form ParseRule accepts.
func (r Rule) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.MinAlive, r.MaxAlive, r.MinDead, r.MaxDead)
}

// ParseRule reads a rule from its "min_alive,max_alive,min_dead,max_dead" form.
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Rule{}, fmt.Errorf("%w: rule %q must have four comma-separated thresholds", ErrInvalidParameter, s)
	}
	var vals [4]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Rule{}, fmt.Errorf("%w: rule threshold %q is not an integer", ErrInvalidParameter, part)
		}
		vals[i] = v
	}
	r := Rule{MinAlive: vals[0], MaxAlive: vals[1], MinDead: vals[2], MaxDead: vals[3]}
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

var presets = map[string]Rule{}

// RegisterPreset adds a named rule to the preset registry. Empty names and
// invalid rules are ignored.
func RegisterPreset(name string, r Rule) {
	if name == "" || r.Validate() != nil {
		return
	}
	presets[name] = r
}

// Preset looks up a registered rule by name.
func Preset(name string) (Rule, bool) {
	r, ok := presets[name]
	return r, ok
}

// Presets exposes the registry of named rules.
func Presets() map[string]Rule { return presets }

// Only variants whose birth and survival sets form contiguous intervals are
// expressible with this rule shape.
func init() {
	RegisterPreset("life", Conway)
	RegisterPreset("34life", Rule{MinAlive: 3, MaxAlive: 4, MinDead: 3, MaxDead: 4})
	RegisterPreset("maze", Rule{MinAlive: 1, MaxAlive: 5, MinDead: 3, MaxDead: 3})
	RegisterPreset("mazectric", Rule{MinAlive: 1, MaxAlive: 4, MinDead: 3, MaxDead: 3})
	RegisterPreset("coral", Rule{MinAlive: 4, MaxAlive: 8, MinDead: 3, MaxDead: 3})
	RegisterPreset("vote", Rule{MinAlive: 4, MaxAlive: 8, MinDead: 5, MaxDead: 8})
}
