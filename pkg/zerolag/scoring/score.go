package scoring

import (
	"fmt"
	"math"

	"github.com/zerolag/zerolag/pkg/zerolag/types"
)

// Band is a coarse qualitative label derived from the numeric score.
type Band string

// Score bands, from best to worst.
const (
	BandExcellent Band = "Excellent"
	BandGood      Band = "Good"
	BandFair      Band = "Fair"
	BandPoor      Band = "Poor"
)

// maxPenalty caps how much any single category can subtract from the score.
const maxPenalty = 40.0

// Penalty is one scored deduction in the breakdown. The JSON field names
// are a compatibility contract with existing renderers.
type Penalty struct {
	// Tag is the category label: "RAM", "Disk", "Startup" or "CPU".
	Tag string `json:"tag"`

	// Penalty is the deduction applied, clamped to [0,40] and rounded
	// to one decimal.
	Penalty float64 `json:"penalty"`

	// Reason is a human-readable explanation with the metric reading.
	Reason string `json:"reason"`
}

// Inputs summarizes the raw metrics the scorer actually used.
type Inputs struct {
	CPUPct         float64 `json:"cpu_pct"`
	RAMUsedPct     float64 `json:"ram_used_pct"`
	DiskFreePctMin float64 `json:"disk_free_pct_min"`
	StartupItems   int     `json:"startup_items"`
}

// Result is the scorer output: a 0-100 score, its band, the inputs that
// produced it, and an ordered penalty breakdown. Breakdown entries appear
// in the fixed order RAM, Disk, Startup, CPU for the categories that fired.
type Result struct {
	Mode      types.Mode `json:"mode"`
	Score     int        `json:"score"`
	Band      Band       `json:"band"`
	Inputs    Inputs     `json:"inputs"`
	Breakdown []Penalty  `json:"breakdown"`
}

// Score computes the performance score for a snapshot under a profile.
// It never fails: absent metrics simply contribute no penalty. Each
// category rule yields at most one Penalty; the entries are folded into
// a total deduction and the score is clamp(100 - total, 0, 100).
func Score(snap *types.Snapshot, p Profile) Result {
	cpuPct := snap.CPUPct()
	ramUsed := snap.RAMUsedPct()
	diskFree := snap.DiskFreePctMin()
	startupN := snap.StartupCount()

	rules := []func() (deduction, bool){
		func() (deduction, bool) { return ramPenalty(ramUsed, p.RAM) },
		func() (deduction, bool) { return diskPenalty(diskFree, p.Disk) },
		func() (deduction, bool) { return startupPenalty(startupN, p.Startup) },
		func() (deduction, bool) { return cpuPenalty(cpuPct, p.CPU) },
	}

	breakdown := make([]Penalty, 0, len(rules))
	total := 0.0
	for _, rule := range rules {
		if d, ok := rule(); ok {
			breakdown = append(breakdown, Penalty{
				Tag:     d.tag,
				Penalty: round1(d.amount),
				Reason:  d.reason,
			})
			total += d.amount
		}
	}

	score := clamp(100-total, 0, 100)
	return Result{
		Mode:  p.Mode,
		Score: int(math.Round(score)),
		Band:  bandFor(score),
		Inputs: Inputs{
			CPUPct:         round1(cpuPct),
			RAMUsedPct:     round1(ramUsed),
			DiskFreePctMin: round1(diskFree),
			StartupItems:   startupN,
		},
		Breakdown: breakdown,
	}
}

// deduction is one category rule outcome before display rounding.
// The amount is already clamped to [0,maxPenalty].
type deduction struct {
	tag    string
	amount float64
	reason string
}

func ramPenalty(used float64, c Cutoff) (deduction, bool) {
	switch {
	case used >= c.Bad:
		return deduct("RAM", 25+(used-c.Bad)*0.6,
			fmt.Sprintf("High RAM pressure (%.0f%%).", used)), true
	case used >= c.Warn:
		return deduct("RAM", 10+(used-c.Warn)*0.4,
			fmt.Sprintf("Moderate RAM pressure (%.0f%%).", used)), true
	}
	return deduction{}, false
}

func diskPenalty(free float64, c Cutoff) (deduction, bool) {
	// Lower free space is worse, so the distance runs cutoff - metric.
	switch {
	case free <= c.Bad:
		return deduct("Disk", 25+(c.Bad-free)*0.8,
			fmt.Sprintf("Very low free disk space (%.0f%%).", free)), true
	case free <= c.Warn:
		return deduct("Disk", 10+(c.Warn-free)*0.5,
			fmt.Sprintf("Low free disk space (%.0f%%).", free)), true
	}
	return deduction{}, false
}

func startupPenalty(n int, c Cutoff) (deduction, bool) {
	count := float64(n)
	switch {
	case count >= c.Bad:
		return deduct("Startup", 18+(count-c.Bad)*0.7,
			fmt.Sprintf("Too many startup items (%d).", n)), true
	case count >= c.Warn:
		return deduct("Startup", 8+(count-c.Warn)*0.8,
			fmt.Sprintf("Several startup items (%d).", n)), true
	}
	return deduction{}, false
}

func cpuPenalty(load float64, c Cutoff) (deduction, bool) {
	switch {
	case load >= c.Bad:
		return deduct("CPU", 18+(load-c.Bad)*0.5,
			fmt.Sprintf("High CPU load at scan time (%.0f%%).", load)), true
	case load >= c.Warn:
		return deduct("CPU", 7+(load-c.Warn)*0.4,
			fmt.Sprintf("CPU moderately loaded (%.0f%%).", load)), true
	}
	return deduction{}, false
}

func deduct(tag string, amount float64, reason string) deduction {
	return deduction{
		tag:    tag,
		amount: clamp(amount, 0, maxPenalty),
		reason: reason,
	}
}

func bandFor(score float64) Band {
	switch {
	case score >= 85:
		return BandExcellent
	case score >= 70:
		return BandGood
	case score >= 55:
		return BandFair
	default:
		return BandPoor
	}
}

func clamp(n, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, n))
}

func round1(n float64) float64 {
	return math.Round(n*10) / 10
}
