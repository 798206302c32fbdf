package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerolag/zerolag/pkg/zerolag/types"
)

func TestRecommend_HealthyGeneral_BaselinesOnly(t *testing.T) {
	recs := Recommend(healthySnapshot(), ProfileFor(types.ModeGeneral))

	require.Len(t, recs, 2)
	assert.Equal(t, "Keep drivers and the OS updated", recs[0].Title)
	assert.Equal(t, "Storage hygiene", recs[1].Title)
	for _, r := range recs {
		assert.Equal(t, PriorityLow, r.Priority)
	}
}

func TestRecommend_HealthyGaming_AddsChecklist(t *testing.T) {
	recs := Recommend(healthySnapshot(), ProfileFor(types.ModeGaming))

	require.Len(t, recs, 3)
	assert.Equal(t, "Gaming mode checklist", recs[0].Title)
	assert.Equal(t, "Keep drivers and the OS updated", recs[1].Title)
	assert.Equal(t, "Storage hygiene", recs[2].Title)
}

func TestRecommend_EmptySnapshot(t *testing.T) {
	recs := Recommend(&types.Snapshot{}, ProfileFor(types.ModeGeneral))

	// Absent metrics trigger nothing; the baselines remain.
	require.Len(t, recs, 2)
}

func TestRecommend_OneEntryPerLowDisk(t *testing.T) {
	snap := healthySnapshot()
	snap.Disks = []types.DiskInfo{
		{Mountpoint: "C:", FreePct: types.Float64(10)},
		{Mountpoint: "D:", FreePct: types.Float64(22)},
		{Mountpoint: "E:", FreePct: types.Float64(80)},
	}
	profile := ProfileFor(types.ModeGeneral)

	recs := Recommend(snap, profile)

	var diskRecs []Recommendation
	for _, r := range recs {
		if r.Title == "Low free space on C:" || r.Title == "Free space getting tight on D:" {
			diskRecs = append(diskRecs, r)
		}
	}
	require.Len(t, diskRecs, 2)
	assert.Equal(t, PriorityHigh, diskRecs[0].Priority)
	assert.Equal(t, PriorityMedium, diskRecs[1].Priority)

	// The scorer collapses the same snapshot into a single Disk entry.
	result := Score(snap, profile)
	var diskEntries int
	for _, b := range result.Breakdown {
		if b.Tag == "Disk" {
			diskEntries++
		}
	}
	assert.Equal(t, 1, diskEntries)
}

func TestRecommend_StableSortByPriority(t *testing.T) {
	snap := &types.Snapshot{
		CPU: &types.CPUInfo{Pct: types.Float64(65)},  // Low (moderate)
		RAM: &types.RAMInfo{UsedPct: types.Float64(75)}, // Medium
		Disks: []types.DiskInfo{
			{Mountpoint: "/data", FreePct: types.Float64(20)}, // Medium
			{Mountpoint: "/", FreePct: types.Float64(10)},     // High
		},
		StartupItems: make([]types.StartupItem, 14), // High
	}

	recs := Recommend(snap, ProfileFor(types.ModeGeneral))

	var got []string
	for _, r := range recs {
		got = append(got, r.Priority.String()+": "+r.Title)
	}
	// High entries first in generation order (disk before startup), then
	// Medium (disk, RAM), then Low (CPU, baselines).
	want := []string{
		"High: Low free space on /",
		"High: Many startup items",
		"Medium: Free space getting tight on /data",
		"Medium: RAM pressure",
		"Low: CPU moderately loaded",
		"Low: Keep drivers and the OS updated",
		"Low: Storage hygiene",
	}
	assert.Equal(t, want, got)
}

func TestRecommend_BoundaryUsesStrictLessThan(t *testing.T) {
	// A disk sitting exactly on the warn cutoff does not trigger a
	// recommendation, matching the strict comparison the engine uses.
	snap := healthySnapshot()
	snap.Disks = []types.DiskInfo{
		{Mountpoint: "/", FreePct: types.Float64(25)},
	}

	recs := Recommend(snap, ProfileFor(types.ModeGeneral))
	require.Len(t, recs, 2)
}

func TestRecommend_DiskWithoutFreePctIgnored(t *testing.T) {
	snap := healthySnapshot()
	snap.Disks = []types.DiskInfo{{Mountpoint: "/"}}

	recs := Recommend(snap, ProfileFor(types.ModeGaming))
	require.Len(t, recs, 3)
}

func TestRecommend_JSONShape(t *testing.T) {
	recs := Recommend(healthySnapshot(), ProfileFor(types.ModeGaming))

	data, err := json.Marshal(recs)
	require.NoError(t, err)

	var parsed []map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.NotEmpty(t, parsed)
	for _, key := range []string{"priority", "title", "why", "action"} {
		assert.Contains(t, parsed[0], key)
	}
	assert.Equal(t, "Low", parsed[0]["priority"])
}

func TestPriority_RoundTrip(t *testing.T) {
	for _, p := range []Priority{PriorityHigh, PriorityMedium, PriorityLow} {
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var got Priority
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, p, got)
	}
}
