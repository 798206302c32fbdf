// Package types provides core data types for the zerolag host diagnostic.
// It defines the Snapshot value captured by the collector, the scan Mode,
// and helpers for reading optional metrics without nil checks at call sites.
package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Mode selects which threshold profile applies to a scan.
type Mode string

// Supported scan modes.
const (
	// ModeGeneral applies relaxed thresholds suitable for everyday use.
	ModeGeneral Mode = "general"

	// ModeGaming applies stricter thresholds that expect more headroom.
	ModeGaming Mode = "gaming"
)

// ErrUnknownMode indicates that a mode string was not recognized.
var ErrUnknownMode = errors.New("unknown mode")

// ParseMode parses a mode string case-insensitively.
// An empty string defaults to ModeGeneral.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeGeneral):
		return ModeGeneral, nil
	case string(ModeGaming):
		return ModeGaming, nil
	default:
		return ModeGeneral, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// SystemInfo identifies the host the snapshot was taken on.
type SystemInfo struct {
	// Timestamp is the scan time formatted as "2006-01-02 15:04:05".
	Timestamp string `json:"timestamp"`

	// OS is the platform name and release (e.g. "Windows 11", "Ubuntu 24.04").
	OS string `json:"os"`

	// OSVersion is the kernel or build version string.
	OSVersion string `json:"os_version"`

	// Machine is the hardware architecture (e.g. "x86_64", "arm64").
	Machine string `json:"machine"`

	// Processor is the CPU model name, if known.
	Processor string `json:"processor"`
}

// CPUInfo contains the CPU portion of a snapshot.
// Pct is nil when the load probe failed.
type CPUInfo struct {
	// Pct is the instantaneous CPU load at scan time, in [0,100].
	Pct *float64 `json:"cpu_pct"`

	// PhysicalCores is the physical core count (0 when unknown).
	PhysicalCores int `json:"physical_cores"`

	// LogicalCores is the logical core count (0 when unknown).
	LogicalCores int `json:"logical_cores"`

	// MaxMHz is the maximum CPU frequency, if reported.
	MaxMHz *float64 `json:"max_mhz"`

	// CurrentMHz is the current CPU frequency, if reported.
	CurrentMHz *float64 `json:"current_mhz"`
}

// RAMInfo contains the memory portion of a snapshot.
type RAMInfo struct {
	// TotalGB is the total physical memory in gigabytes.
	TotalGB float64 `json:"total_gb"`

	// AvailableGB is the memory available to new allocations in gigabytes.
	AvailableGB float64 `json:"available_gb"`

	// UsedPct is the memory utilization percentage, nil when unknown.
	UsedPct *float64 `json:"used_pct"`
}

// DiskInfo describes one mounted filesystem.
type DiskInfo struct {
	// Device is the block device backing the mount.
	Device string `json:"device"`

	// Mountpoint is where the filesystem is mounted (or the drive letter).
	Mountpoint string `json:"mountpoint"`

	// Fstype is the filesystem type (e.g. "ext4", "NTFS").
	Fstype string `json:"fstype"`

	// TotalGB is the filesystem capacity in gigabytes.
	TotalGB float64 `json:"total_gb"`

	// UsedGB is the used space in gigabytes.
	UsedGB float64 `json:"used_gb"`

	// FreeGB is the free space in gigabytes.
	FreeGB float64 `json:"free_gb"`

	// FreePct is the free space percentage, nil when the filesystem
	// reported a zero capacity.
	FreePct *float64 `json:"free_pct"`
}

// ProcessInfo is one entry in the top-processes table.
type ProcessInfo struct {
	// PID is the process identifier.
	PID int32 `json:"pid"`

	// Name is the process executable name.
	Name string `json:"name"`

	// CPUPct is the process CPU usage sampled over the scan window.
	CPUPct float64 `json:"cpu_pct"`

	// RAMGB is the process resident set size in gigabytes.
	RAMGB float64 `json:"ram_gb"`
}

// StartupItem is one program registered to launch at login.
type StartupItem struct {
	// Scope is where the entry was found (e.g. "HKCU", "HKLM").
	Scope string `json:"scope"`

	// Name is the registry value name.
	Name string `json:"name"`

	// Command is the command line the entry runs.
	Command string `json:"command"`
}

// Snapshot is a point-in-time reading of host resources.
// It is immutable once captured: the scoring and recommendation engines
// only read it, and every field tolerates absence. A zero Snapshot is
// valid and scores as perfectly healthy.
type Snapshot struct {
	// System identifies the host.
	System SystemInfo `json:"system"`

	// CPU is the CPU reading, nil when the probe failed entirely.
	CPU *CPUInfo `json:"cpu"`

	// RAM is the memory reading, nil when the probe failed entirely.
	RAM *RAMInfo `json:"ram"`

	// Disks lists mounted filesystems in collection order.
	Disks []DiskInfo `json:"disks"`

	// TopProcesses lists the heaviest processes at scan time.
	TopProcesses []ProcessInfo `json:"top_processes"`

	// StartupItems lists login-launch entries. Empty on platforms
	// without a supported startup-item source.
	StartupItems []StartupItem `json:"startup_items"`
}

// CPUPct returns the CPU load percentage, defaulting to 0 when absent.
func (s *Snapshot) CPUPct() float64 {
	if s.CPU == nil || s.CPU.Pct == nil {
		return 0
	}
	return *s.CPU.Pct
}

// RAMUsedPct returns the memory utilization percentage, defaulting to 0
// when absent.
func (s *Snapshot) RAMUsedPct() float64 {
	if s.RAM == nil || s.RAM.UsedPct == nil {
		return 0
	}
	return *s.RAM.UsedPct
}

// DiskFreePctMin returns the minimum free-space percentage across all
// disks that report one. When no disk reports a value it returns 100,
// which contributes no penalty.
func (s *Snapshot) DiskFreePctMin() float64 {
	min := 100.0
	seen := false
	for _, d := range s.Disks {
		if d.FreePct == nil {
			continue
		}
		if !seen || *d.FreePct < min {
			min = *d.FreePct
		}
		seen = true
	}
	if !seen {
		return 100
	}
	return min
}

// StartupCount returns the number of startup items.
func (s *Snapshot) StartupCount() int {
	return len(s.StartupItems)
}

// TimestampFormat is the layout used for SystemInfo.Timestamp.
const TimestampFormat = "2006-01-02 15:04:05"

// FormatTimestamp formats t for SystemInfo.Timestamp.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampFormat)
}

// Float64 returns a pointer to v. Convenience for building snapshots.
func Float64(v float64) *float64 {
	return &v
}
