package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"", ModeGeneral, false},
		{"general", ModeGeneral, false},
		{"GENERAL", ModeGeneral, false},
		{"gaming", ModeGaming, false},
		{" Gaming ", ModeGaming, false},
		{"turbo", ModeGeneral, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnapshot_DiskFreePctMin(t *testing.T) {
	tests := []struct {
		name  string
		disks []DiskInfo
		want  float64
	}{
		{"no disks", nil, 100},
		{"no reported values", []DiskInfo{{Mountpoint: "/"}}, 100},
		{
			"single disk",
			[]DiskInfo{{Mountpoint: "/", FreePct: Float64(42.5)}},
			42.5,
		},
		{
			"worst of several",
			[]DiskInfo{
				{Mountpoint: "/", FreePct: Float64(60)},
				{Mountpoint: "/data", FreePct: Float64(8)},
				{Mountpoint: "/virt"},
			},
			8,
		},
		{
			"values above 100 pass through",
			[]DiskInfo{{Mountpoint: "/", FreePct: Float64(120)}},
			120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := &Snapshot{Disks: tt.disks}
			assert.Equal(t, tt.want, snap.DiskFreePctMin())
		})
	}
}

func TestSnapshot_AbsentMetricsDefaultToZero(t *testing.T) {
	var snap Snapshot
	assert.Equal(t, 0.0, snap.CPUPct())
	assert.Equal(t, 0.0, snap.RAMUsedPct())
	assert.Equal(t, 0, snap.StartupCount())

	snap.CPU = &CPUInfo{}
	snap.RAM = &RAMInfo{}
	assert.Equal(t, 0.0, snap.CPUPct())
	assert.Equal(t, 0.0, snap.RAMUsedPct())
}
