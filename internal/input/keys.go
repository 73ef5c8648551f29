package input

import (
	"time"

	"github.com/vovakirdan/fuego-arcade/internal/core"
)

// Binding lists every physical key that drives one action. K is the host's
// key type.
type Binding[K comparable] struct {
	Action core.Action
	Keys   []K
}

// Repeat is a synthetic autorepeat schedule in host ticks: the first repeat
// fires once a key has been down longer than Delay, then every Every ticks.
type Repeat struct {
	Delay int
	Every int
}

// Feed turns per-key press durations into transitions on d. duration
// reports how many host ticks a key has been down, 0 when it is up. An
// action stays held while any of its keys is down and is released only
// once they all are up.
func Feed[K comparable](d *Dispatcher, bindings []Binding[K], duration func(K) int, rep Repeat, now time.Time) {
	for _, b := range bindings {
		longest := 0
		for _, k := range b.Keys {
			longest = max(longest, duration(k))
		}

		held := d.Held(b.Action)
		switch {
		case longest > 0 && !held:
			d.KeyDown(b.Action, now)
		case longest == 0 && held:
			d.KeyUp(b.Action, now)
		case rep.Every > 0 && longest > rep.Delay && longest%rep.Every == 0:
			d.KeyDown(b.Action, now)
		}
	}
}
