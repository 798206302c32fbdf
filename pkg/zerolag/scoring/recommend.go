package scoring

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/zerolag/zerolag/pkg/zerolag/types"
)

// Priority ranks a recommendation. Lower ordinals sort first.
type Priority int

// Priority levels in sort order.
const (
	PriorityHigh Priority = iota
	PriorityMedium
	PriorityLow
)

// String returns the display form of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// MarshalJSON encodes the priority as its display string, which is the
// form persisted reports and renderers expect.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a priority from its display string. Unknown
// strings decode as PriorityLow.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "High":
		*p = PriorityHigh
	case "Medium":
		*p = PriorityMedium
	default:
		*p = PriorityLow
	}
	return nil
}

// Recommendation is one prioritized, human-readable remediation
// suggestion. It is independent of the numeric score.
type Recommendation struct {
	Priority Priority `json:"priority"`
	Title    string   `json:"title"`
	Why      string   `json:"why"`
	Action   string   `json:"action"`
}

// Recommend produces the ordered recommendation list for a snapshot
// under a profile. It never fails and never returns an empty list: two
// Low-priority baseline tips are always present, preceded in gaming mode
// by a gaming checklist tip.
//
// Unlike Score, which only looks at the single worst disk, Recommend
// emits one entry per disk that crosses a cutoff. Generation order is
// disks (snapshot order), RAM, startup items, CPU, gaming tip, baselines;
// the final list is stably sorted by priority so ties keep that order.
func Recommend(snap *types.Snapshot, p Profile) []Recommendation {
	var recs []Recommendation

	for _, d := range snap.Disks {
		if d.FreePct == nil {
			continue
		}
		switch free := *d.FreePct; {
		case free < p.Disk.Bad:
			recs = append(recs, Recommendation{
				Priority: PriorityHigh,
				Title:    fmt.Sprintf("Low free space on %s", d.Mountpoint),
				Why:      "Low disk free space can slow down the OS, updates, and games.",
				Action:   "Uninstall unused apps/games, move large files, empty the trash, clear temp files.",
			})
		case free < p.Disk.Warn:
			recs = append(recs, Recommendation{
				Priority: PriorityMedium,
				Title:    fmt.Sprintf("Free space getting tight on %s", d.Mountpoint),
				Why:      "Keeping comfortable free space helps performance and stability.",
				Action:   "Plan cleanup: remove large downloads, clear temp files, move archives.",
			})
		}
	}

	if snap.RAM != nil && snap.RAM.UsedPct != nil {
		switch used := *snap.RAM.UsedPct; {
		case used >= p.RAM.Bad:
			recs = append(recs, Recommendation{
				Priority: PriorityHigh,
				Title:    "High RAM usage",
				Why:      "When RAM is near full, the OS swaps to disk, causing stutter and slowdowns.",
				Action:   "Close heavy apps/tabs, disable background apps, consider a RAM upgrade if persistent.",
			})
		case used >= p.RAM.Warn:
			recs = append(recs, Recommendation{
				Priority: PriorityMedium,
				Title:    "RAM pressure",
				Why:      "Background apps and browsers can degrade gaming/productivity over time.",
				Action:   "Reduce startup apps, keep fewer browser tabs, monitor RAM-hungry processes.",
			})
		}
	}

	switch n := float64(snap.StartupCount()); {
	case n >= p.Startup.Bad:
		recs = append(recs, Recommendation{
			Priority: PriorityHigh,
			Title:    "Many startup items",
			Why:      "Too many startup apps slow boot and keep background CPU/RAM usage high.",
			Action:   "Disable non-essential startup entries, or uninstall unused software.",
		})
	case n >= p.Startup.Warn:
		recs = append(recs, Recommendation{
			Priority: PriorityMedium,
			Title:    "Several startup items",
			Why:      "Startup apps can silently reduce performance.",
			Action:   "Review the startup list and keep only essentials (GPU driver, audio, security).",
		})
	}

	if snap.CPU != nil && snap.CPU.Pct != nil {
		switch load := *snap.CPU.Pct; {
		case load >= p.CPU.Bad:
			recs = append(recs, Recommendation{
				Priority: PriorityHigh,
				Title:    "High CPU usage at scan time",
				Why:      "High CPU load can cause FPS drops and system lag.",
				Action:   "Check the top processes list; close runaway apps; scan for unwanted background tools.",
			})
		case load >= p.CPU.Warn:
			recs = append(recs, Recommendation{
				Priority: PriorityLow,
				Title:    "CPU moderately loaded",
				Why:      "Could be normal, but worth monitoring during gaming or heavy work.",
				Action:   "If performance issues exist, review top processes and background tasks.",
			})
		}
	}

	if p.Mode == types.ModeGaming {
		recs = append(recs, Recommendation{
			Priority: PriorityLow,
			Title:    "Gaming mode checklist",
			Why:      "Small settings can reduce stutter/latency.",
			Action:   "Use exclusive fullscreen where applicable, disable overlays you don't need, keep GPU drivers updated.",
		})
	}

	recs = append(recs,
		Recommendation{
			Priority: PriorityLow,
			Title:    "Keep drivers and the OS updated",
			Why:      "GPU drivers and system updates often improve stability and performance.",
			Action:   "Update GPU drivers from the official vendor, and run system updates regularly.",
		},
		Recommendation{
			Priority: PriorityLow,
			Title:    "Storage hygiene",
			Why:      "Large temp folders and downloads build up over time.",
			Action:   "Clear temp files regularly and keep downloads organized.",
		},
	)

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})
	return recs
}
