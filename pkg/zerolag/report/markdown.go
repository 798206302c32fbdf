package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// startupItemRows caps how many startup items the markdown table lists.
const startupItemRows = 20

// MarkdownFormatter renders the report as a Markdown document with the
// same section layout existing report consumers expect: header, score
// breakdown, snapshot, storage, startup items, top processes and
// recommendations.
type MarkdownFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *MarkdownFormatter) Format(w *bytes.Buffer, r *Report) error {
	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add("# ZeroLag Diagnostic Report")
	add("")
	add("**Mode:** %s  ", r.Mode)
	add("**Performance Score:** **%d / 100** (%s)  ", r.Score.Score, r.Score.Band)
	add("")
	add("**Generated:** %s  ", r.System.Timestamp)
	add("**OS:** %s  ", r.System.OS)
	add("**Machine:** %s  ", r.System.Machine)
	processor := r.System.Processor
	if processor == "" {
		processor = "Unknown"
	}
	add("**CPU:** %s  ", mdEscape(processor))
	add("")

	add("## Score breakdown")
	add("")
	if len(r.Score.Breakdown) > 0 {
		add("| Area | Penalty | Reason |")
		add("|---|---:|---|")
		for _, b := range r.Score.Breakdown {
			add("| %s | %.1f | %s |", b.Tag, b.Penalty, mdEscape(b.Reason))
		}
	} else {
		add("_No major issues detected by the heuristic scoring._")
	}
	add("")

	add("## Snapshot")
	add("")
	add("| Metric | Value |")
	add("|---|---|")
	add("| CPU load (scan time) | %s%% |", optFloat(cpuPct(r)))
	add("| RAM used | %s%% |", optFloat(ramUsedPct(r)))
	if r.RAM != nil {
		add("| RAM total | %s |", gbString(r.RAM.TotalGB))
	}
	if r.CPU != nil {
		add("| Cores | %d physical / %d logical |", r.CPU.PhysicalCores, r.CPU.LogicalCores)
		if r.CPU.CurrentMHz != nil {
			add("| CPU freq | %.0f MHz (current) |", *r.CPU.CurrentMHz)
		}
	}
	add("")

	add("## Storage")
	add("")
	if len(r.Disks) > 0 {
		add("| Mount | Total (GB) | Free (GB) | Free (%%) | FS |")
		add("|---|---:|---:|---:|---|")
		for _, d := range r.Disks {
			add("| %s | %.2f | %.2f | %s | %s |",
				mdEscape(d.Mountpoint), d.TotalGB, d.FreeGB, optFloat(d.FreePct), d.Fstype)
		}
	} else {
		add("_No disk info available._")
	}
	add("")

	add("## Startup items")
	add("")
	add("Total items found: **%d**", len(r.StartupItems))
	if len(r.StartupItems) > 0 {
		add("")
		add("| Scope | Name | Command |")
		add("|---|---|---|")
		shown := r.StartupItems
		if len(shown) > startupItemRows {
			shown = shown[:startupItemRows]
		}
		for _, item := range shown {
			add("| %s | %s | %s |", item.Scope, mdEscape(item.Name), mdEscape(item.Command))
		}
		if len(r.StartupItems) > startupItemRows {
			add("")
			add("_Showing first %d of %d items._", startupItemRows, len(r.StartupItems))
		}
	}
	add("")

	add("## Top processes (snapshot)")
	add("")
	if len(r.TopProcesses) > 0 {
		add("| Process | CPU (%%) | RAM (GB) | PID |")
		add("|---|---:|---:|---:|")
		for _, p := range r.TopProcesses {
			add("| %s | %.1f | %.2f | %d |", mdEscape(p.Name), p.CPUPct, p.RAMGB, p.PID)
		}
	} else {
		add("_No process info available._")
	}
	add("")

	add("## Recommendations")
	add("")
	for _, rec := range r.Recommendations {
		add("### [%s] %s", rec.Priority, rec.Title)
		add("- **Why:** %s", rec.Why)
		add("- **Action:** %s", rec.Action)
		add("")
	}

	_, err := w.WriteString(strings.Join(lines, "\n"))
	return err
}

// mdEscape escapes pipe characters so values cannot break table cells.
func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// gbString renders a gigabyte quantity without trailing zeros.
func gbString(v float64) string {
	return humanize.FtoaWithDigits(v, 2) + " GB"
}

// optFloat renders an optional metric, "?" when absent.
func optFloat(v *float64) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%.1f", *v)
}

func cpuPct(r *Report) *float64 {
	if r.CPU == nil {
		return nil
	}
	return r.CPU.Pct
}

func ramUsedPct(r *Report) *float64 {
	if r.RAM == nil {
		return nil
	}
	return r.RAM.UsedPct
}

func init() {
	Register("markdown", func() Formatter {
		return &MarkdownFormatter{}
	})
}

var _ Formatter = (*MarkdownFormatter)(nil)
