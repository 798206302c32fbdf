package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/zerolag/zerolag/pkg/zerolag/scoring"
)

// PDFFormatter renders the report as a single A4 PDF document with a
// score badge and priority-colored recommendation badges.
type PDFFormatter struct{}

type rgb struct{ r, g, b int }

var (
	badgeDark   = rgb{17, 17, 17}
	priorityRGB = map[scoring.Priority]rgb{
		scoring.PriorityHigh:   {214, 69, 65},
		scoring.PriorityMedium: {230, 126, 34},
		scoring.PriorityLow:    {46, 134, 193},
	}
)

// Format writes the formatted output to the buffer.
func (f *PDFFormatter) Format(w *bytes.Buffer, r *Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	title(pdf, "ZeroLag Diagnostic Report")
	line(pdf, fmt.Sprintf("Mode: %s", r.Mode))
	badge(pdf, fmt.Sprintf("Performance Score: %d / 100  (%s)", r.Score.Score, r.Score.Band), badgeDark)

	line(pdf, fmt.Sprintf("Generated: %s", r.System.Timestamp))
	line(pdf, fmt.Sprintf("OS: %s", r.System.OS))
	line(pdf, fmt.Sprintf("Machine: %s", r.System.Machine))
	processor := r.System.Processor
	if processor == "" {
		processor = "Unknown"
	}
	line(pdf, fmt.Sprintf("CPU: %s", processor))
	pdf.Ln(4)

	heading(pdf, "Score breakdown")
	if len(r.Score.Breakdown) > 0 {
		for _, b := range r.Score.Breakdown {
			line(pdf, fmt.Sprintf("%s: -%.1f  %s", b.Tag, b.Penalty, b.Reason))
		}
	} else {
		line(pdf, "No major issues detected by the heuristic scoring.")
	}
	pdf.Ln(4)

	heading(pdf, "Snapshot")
	line(pdf, fmt.Sprintf("CPU load (scan time): %s%%", optFloat(cpuPct(r))))
	if r.RAM != nil {
		line(pdf, fmt.Sprintf("RAM used: %s%% (Total: %s)", optFloat(r.RAM.UsedPct), gbString(r.RAM.TotalGB)))
	}
	if r.CPU != nil {
		line(pdf, fmt.Sprintf("Cores: %d physical / %d logical", r.CPU.PhysicalCores, r.CPU.LogicalCores))
		if r.CPU.CurrentMHz != nil {
			line(pdf, fmt.Sprintf("CPU freq (current): %.0f MHz", *r.CPU.CurrentMHz))
		}
	}
	pdf.Ln(4)

	heading(pdf, "Storage")
	if len(r.Disks) > 0 {
		for _, d := range r.Disks {
			line(pdf, fmt.Sprintf("%s: %s free (%s%%) of %s [%s]",
				d.Mountpoint, gbString(d.FreeGB), optFloat(d.FreePct), gbString(d.TotalGB), d.Fstype))
		}
	} else {
		line(pdf, "No disk info available.")
	}
	pdf.Ln(4)

	heading(pdf, "Top processes (snapshot)")
	if len(r.TopProcesses) > 0 {
		for _, p := range r.TopProcesses {
			line(pdf, fmt.Sprintf("%s: CPU %.1f%% | RAM %.2f GB | PID %d",
				p.Name, p.CPUPct, p.RAMGB, p.PID))
		}
	} else {
		line(pdf, "No process info available.")
	}
	pdf.Ln(4)

	heading(pdf, "Recommendations")
	for _, rec := range r.Recommendations {
		badge(pdf, fmt.Sprintf("%s - %s", rec.Priority, rec.Title), priorityRGB[rec.Priority])
		line(pdf, fmt.Sprintf("Why: %s", rec.Why))
		line(pdf, fmt.Sprintf("Action: %s", rec.Action))
		pdf.Ln(2)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}

func title(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, text, "", "L", false)
	pdf.Ln(2)
}

func heading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(0, 6, text, "", "L", false)
	pdf.Ln(1)
}

func line(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, text, "", "L", false)
}

func badge(pdf *fpdf.Fpdf, text string, color rgb) {
	pdf.SetFillColor(color.r, color.g, color.b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 7, "  "+text, "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)
}

func init() {
	Register("pdf", func() Formatter {
		return &PDFFormatter{}
	})
}

var _ Formatter = (*PDFFormatter)(nil)
