// Package report renders and persists the full diagnostic payload:
// the raw snapshot together with the score result and recommendation
// list. Formatters are registered by name so callers select renderers
// at runtime; WriteFiles produces the standard JSON/Markdown/PDF trio.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/zerolag/zerolag/pkg/zerolag/logging"
	"github.com/zerolag/zerolag/pkg/zerolag/scoring"
	"github.com/zerolag/zerolag/pkg/zerolag/types"
)

var logger = logging.Get("report")

// Report is the complete diagnostic document. Its JSON field names are
// a compatibility boundary with existing renderers and must not change.
type Report struct {
	// Mode is the scan mode the document was produced under.
	Mode types.Mode `json:"mode"`

	// RunID uniquely identifies this scan run.
	RunID string `json:"run_id"`

	// System identifies the scanned host.
	System types.SystemInfo `json:"system"`

	// CPU is the raw CPU reading.
	CPU *types.CPUInfo `json:"cpu"`

	// RAM is the raw memory reading.
	RAM *types.RAMInfo `json:"ram"`

	// Disks lists the raw disk readings.
	Disks []types.DiskInfo `json:"disks"`

	// TopProcesses lists the heaviest processes at scan time.
	TopProcesses []types.ProcessInfo `json:"top_processes"`

	// StartupItems lists login-launch entries.
	StartupItems []types.StartupItem `json:"startup_items"`

	// Score is the scoring engine output.
	Score scoring.Result `json:"score"`

	// Recommendations is the ordered recommendation list.
	Recommendations []scoring.Recommendation `json:"recommendations"`
}

// New assembles a Report from the snapshot and the two engine outputs,
// stamping it with a fresh run ID.
func New(snap *types.Snapshot, score scoring.Result, recs []scoring.Recommendation) *Report {
	return &Report{
		Mode:            score.Mode,
		RunID:           uuid.NewString(),
		System:          snap.System,
		CPU:             snap.CPU,
		RAM:             snap.RAM,
		Disks:           snap.Disks,
		TopProcesses:    snap.TopProcesses,
		StartupItems:    snap.StartupItems,
		Score:           score,
		Recommendations: recs,
	}
}

// Formatter renders a Report into a buffer.
type Formatter interface {
	Format(w *bytes.Buffer, r *Report) error
}

// FormatterFactory creates a new Formatter instance.
type FormatterFactory func() Formatter

// ErrUnknownFormatter indicates a formatter name with no registration.
var ErrUnknownFormatter = fmt.Errorf("unknown formatter")

// Registry manages formatter registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates an empty formatter registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]FormatterFactory)}
}

// Register adds a formatter factory, replacing any existing one with
// the same name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Get returns a new formatter instance by name.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormatter, name)
	}
	return factory(), nil
}

// Available returns the sorted names of all registered formatters.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(name string, factory FormatterFactory) {
	DefaultRegistry.Register(name, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(name string) (Formatter, error) {
	return DefaultRegistry.Get(name)
}

// Available returns all formatter names from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}

// Standard report file names inside the output directory.
const (
	JSONFileName     = "scan.json"
	MarkdownFileName = "report.md"
	PDFFileName      = "report.pdf"
)

// WriteFiles renders the report with the json, markdown and pdf
// formatters and writes the three files into dir, creating it first.
// It returns the paths written.
func WriteFiles(dir string, r *Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	targets := []struct {
		formatter string
		file      string
	}{
		{"json", JSONFileName},
		{"markdown", MarkdownFileName},
		{"pdf", PDFFileName},
	}

	paths := make([]string, 0, len(targets))
	for _, target := range targets {
		formatter, err := Get(target.formatter)
		if err != nil {
			return paths, err
		}

		var buf bytes.Buffer
		if err := formatter.Format(&buf, r); err != nil {
			return paths, fmt.Errorf("rendering %s report: %w", target.formatter, err)
		}

		path := filepath.Join(dir, target.file)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Debug("report file written", "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}
