package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerolag/zerolag/pkg/zerolag/report"
	"github.com/zerolag/zerolag/pkg/zerolag/scoring"
	"github.com/zerolag/zerolag/pkg/zerolag/types"
)

func testReport(t *testing.T) *report.Report {
	t.Helper()

	snap := &types.Snapshot{
		System: types.SystemInfo{Timestamp: "2026-08-30 12:00:00"},
		RAM:    &types.RAMInfo{UsedPct: types.Float64(90)},
	}
	profile := scoring.ProfileFor(types.ModeGeneral)
	result := scoring.Score(snap, profile)
	recs := scoring.Recommend(snap, profile)
	return report.New(snap, result, recs)
}

func TestNewModel_StartsScanning(t *testing.T) {
	m := NewModel(Options{Mode: types.ModeGeneral})

	assert.Equal(t, StateScanning, m.state)
	assert.Equal(t, types.ModeGeneral, m.mode)
	assert.NotNil(t, m.Init())
}

func TestUpdate_ScanCompleteShowsResults(t *testing.T) {
	m := NewModel(Options{Mode: types.ModeGeneral})

	updated, _ := m.Update(scanCompleteMsg{doc: testReport(t)})
	got, ok := updated.(Model)
	require.True(t, ok)

	assert.Equal(t, StateResults, got.state)
	require.NotNil(t, got.results.doc)

	view := got.View()
	assert.Contains(t, view, "Score:")
	assert.Contains(t, view, "Recommendations")
}

func TestUpdate_ModeToggleRescans(t *testing.T) {
	m := NewModel(Options{Mode: types.ModeGeneral})
	done, _ := m.Update(scanCompleteMsg{doc: testReport(t)})
	m = done.(Model)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	got := updated.(Model)

	assert.Equal(t, types.ModeGaming, got.mode)
	assert.Equal(t, StateScanning, got.state)
	assert.NotNil(t, cmd)
}

func TestUpdate_QuitKeys(t *testing.T) {
	m := NewModel(Options{})

	for _, key := range []string{"q", "ctrl+c"} {
		var msg tea.KeyMsg
		if key == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, "key %q should quit", key)
	}
}

func TestResultsView_ExportStatus(t *testing.T) {
	r := newResultsModel(testReport(t), nil, 100, 40)

	view := r.view(types.ModeGeneral, "/tmp/reports", nil)
	assert.Contains(t, view, "Reports written to /tmp/reports")

	view = r.view(types.ModeGeneral, "", assert.AnError)
	assert.Contains(t, view, "export failed")
}

func TestClipLines(t *testing.T) {
	s := "a\nb\nc\nd\ne"

	assert.Equal(t, "a\nb", clipLines(s, 0, 2))
	assert.Equal(t, "c\nd\ne", clipLines(s, 2, 10))
	assert.Equal(t, "e", clipLines(s, 99, 2))
}
