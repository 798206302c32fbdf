// Package scoring is the decision core of zerolag. It turns a Snapshot and
// a threshold Profile into a bounded 0-100 performance score with a penalty
// breakdown, and an ordered list of prioritized recommendations.
//
// Both entry points are pure functions: they never fail, never mutate the
// snapshot, and treat every absent metric as "no penalty" rather than an
// error. Callers may invoke them concurrently against independent snapshots
// without coordination.
package scoring

import "github.com/zerolag/zerolag/pkg/zerolag/types"

// Cutoff is a warn/bad threshold pair for one metric category.
// Whether crossing means "above" or "below" depends on the category:
// RAM, startup and CPU trigger at or above the cutoff, disk free space
// triggers at or below it.
type Cutoff struct {
	Warn float64
	Bad  float64
}

// Profile holds the per-mode warn/bad cutoffs for every metric category.
// It is constructed once per mode by ProfileFor and passed explicitly to
// Score and Recommend; nothing in this package reads ambient state.
type Profile struct {
	Mode    types.Mode
	RAM     Cutoff // used percent, higher is worse
	Disk    Cutoff // free percent, lower is worse
	Startup Cutoff // item count, higher is worse
	CPU     Cutoff // load percent, higher is worse
}

// ProfileFor returns the threshold profile for the given mode.
// The gaming profile is uniformly tighter: it expects more free disk
// space and triggers on lower RAM/CPU load and fewer startup items.
func ProfileFor(mode types.Mode) Profile {
	if mode == types.ModeGaming {
		return Profile{
			Mode:    types.ModeGaming,
			RAM:     Cutoff{Warn: 60, Bad: 75},
			Disk:    Cutoff{Warn: 30, Bad: 20},
			Startup: Cutoff{Warn: 6, Bad: 10},
			CPU:     Cutoff{Warn: 50, Bad: 75},
		}
	}
	return Profile{
		Mode:    types.ModeGeneral,
		RAM:     Cutoff{Warn: 70, Bad: 85},
		Disk:    Cutoff{Warn: 25, Bad: 15},
		Startup: Cutoff{Warn: 7, Bad: 12},
		CPU:     Cutoff{Warn: 60, Bad: 85},
	}
}
