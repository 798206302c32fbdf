package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerolag/zerolag/pkg/zerolag/scoring"
	"github.com/zerolag/zerolag/pkg/zerolag/types"
)

// fixtureReport builds a report with every section populated.
func fixtureReport() *Report {
	snap := &types.Snapshot{
		System: types.SystemInfo{
			Timestamp: "2026-08-30 10:00:00",
			OS:        "Ubuntu 24.04",
			OSVersion: "6.8.0",
			Machine:   "x86_64",
			Processor: "AMD Ryzen 7 5800X",
		},
		CPU: &types.CPUInfo{
			Pct:           types.Float64(42.0),
			PhysicalCores: 8,
			LogicalCores:  16,
			CurrentMHz:    types.Float64(3800),
		},
		RAM: &types.RAMInfo{
			TotalGB:     32.0,
			AvailableGB: 3.2,
			UsedPct:     types.Float64(90.0),
		},
		Disks: []types.DiskInfo{
			{
				Device:     "/dev/sda1",
				Mountpoint: "/",
				Fstype:     "ext4",
				TotalGB:    500,
				UsedGB:     450,
				FreeGB:     50,
				FreePct:    types.Float64(10),
			},
		},
		TopProcesses: []types.ProcessInfo{
			{PID: 4242, Name: "chrome", CPUPct: 31.5, RAMGB: 2.1},
		},
		StartupItems: []types.StartupItem{
			{Scope: "HKCU", Name: "Up|dater", Command: `C:\tool\updater.exe`},
		},
	}

	profile := scoring.ProfileFor(types.ModeGaming)
	return New(snap, scoring.Score(snap, profile), scoring.Recommend(snap, profile))
}

func TestNew_StampsRunID(t *testing.T) {
	first := fixtureReport()
	second := fixtureReport()

	assert.NotEmpty(t, first.RunID)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, types.ModeGaming, first.Mode)
}

func TestRegistry(t *testing.T) {
	names := Available()
	assert.Contains(t, names, "json")
	assert.Contains(t, names, "markdown")
	assert.Contains(t, names, "pdf")

	_, err := Get("carrier-pigeon")
	require.ErrorIs(t, err, ErrUnknownFormatter)
}

func TestJSONFormatter_KeyCompatibility(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONFormatter{}).Format(&buf, fixtureReport()))

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))

	for _, key := range []string{
		"mode", "run_id", "system", "cpu", "ram", "disks",
		"top_processes", "startup_items", "score", "recommendations",
	} {
		assert.Contains(t, parsed, key)
	}

	score := parsed["score"].(map[string]any)
	for _, key := range []string{"mode", "score", "band", "inputs", "breakdown"} {
		assert.Contains(t, score, key)
	}

	recs := parsed["recommendations"].([]any)
	require.NotEmpty(t, recs)
	rec := recs[0].(map[string]any)
	for _, key := range []string{"priority", "title", "why", "action"} {
		assert.Contains(t, rec, key)
	}
}

func TestMarkdownFormatter_Sections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&MarkdownFormatter{}).Format(&buf, fixtureReport()))
	md := buf.String()

	assert.Contains(t, md, "# ZeroLag Diagnostic Report")
	assert.Contains(t, md, "## Score breakdown")
	assert.Contains(t, md, "## Snapshot")
	assert.Contains(t, md, "## Storage")
	assert.Contains(t, md, "## Startup items")
	assert.Contains(t, md, "## Top processes (snapshot)")
	assert.Contains(t, md, "## Recommendations")

	// Penalties from RAM 90% and disk 10% free in gaming mode.
	assert.Contains(t, md, "| RAM |")
	assert.Contains(t, md, "| Disk |")

	// Pipes in values must not break tables.
	assert.Contains(t, md, `Up\|dater`)

	// Recommendation entries render with priority tags.
	assert.Contains(t, md, "### [High]")
	assert.Contains(t, md, "- **Why:**")
	assert.Contains(t, md, "- **Action:**")
}

func TestMarkdownFormatter_EmptySnapshot(t *testing.T) {
	snap := &types.Snapshot{}
	profile := scoring.ProfileFor(types.ModeGeneral)
	r := New(snap, scoring.Score(snap, profile), scoring.Recommend(snap, profile))

	var buf bytes.Buffer
	require.NoError(t, (&MarkdownFormatter{}).Format(&buf, r))
	md := buf.String()

	assert.Contains(t, md, "_No major issues detected by the heuristic scoring._")
	assert.Contains(t, md, "_No disk info available._")
	assert.Contains(t, md, "_No process info available._")
	assert.Contains(t, md, "**CPU:** Unknown")
}

func TestMarkdownFormatter_StartupItemsCapped(t *testing.T) {
	r := fixtureReport()
	r.StartupItems = make([]types.StartupItem, 25)
	for i := range r.StartupItems {
		r.StartupItems[i] = types.StartupItem{Scope: "HKCU", Name: "item", Command: "cmd"}
	}

	var buf bytes.Buffer
	require.NoError(t, (&MarkdownFormatter{}).Format(&buf, r))

	assert.Contains(t, buf.String(), "_Showing first 20 of 25 items._")
	assert.Equal(t, 20, strings.Count(buf.String(), "| HKCU |"))
}

func TestPDFFormatter_ProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&PDFFormatter{}).Format(&buf, fixtureReport()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	paths, err := WriteFiles(dir, fixtureReport())
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for _, name := range []string{JSONFileName, MarkdownFileName, PDFFileName} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "missing %s", name)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestGBString(t *testing.T) {
	assert.Equal(t, "32 GB", gbString(32.0))
	assert.Equal(t, "3.2 GB", gbString(3.2))
	assert.Equal(t, "465.66 GB", gbString(465.661))
}
