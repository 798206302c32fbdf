// Package collector gathers the resource Snapshot the scoring engine
// consumes. Every probe is fail-soft: when the operating system refuses
// a reading, the corresponding field is simply left absent and the
// engine treats it as healthy. The collector never returns an error for
// a partial snapshot.
package collector

import (
	"context"
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/zerolag/zerolag/pkg/zerolag/logging"
	"github.com/zerolag/zerolag/pkg/zerolag/types"
)

var logger = logging.Get("collector")

// Options tunes a Collector.
type Options struct {
	// CPUSample is the CPU load sampling window. Zero means 600ms.
	CPUSample time.Duration

	// TopProcesses is how many processes to keep. Zero means 10.
	TopProcesses int

	// Startup reads login-launch entries. Nil means the platform
	// default (a registry reader on Windows, a no-op elsewhere).
	Startup StartupReader
}

// Collector captures host resource snapshots.
type Collector struct {
	opts Options
}

// New creates a Collector, filling unset options with defaults.
func New(opts Options) *Collector {
	if opts.CPUSample <= 0 {
		opts.CPUSample = 600 * time.Millisecond
	}
	if opts.TopProcesses <= 0 {
		opts.TopProcesses = 10
	}
	if opts.Startup == nil {
		opts.Startup = DefaultStartupReader()
	}
	return &Collector{opts: opts}
}

// Collect captures a snapshot of the host. It blocks for roughly the
// CPU sampling window and never fails: probes that error leave their
// fields absent.
func (c *Collector) Collect(ctx context.Context) *types.Snapshot {
	snap := &types.Snapshot{
		System: c.systemInfo(ctx),
	}
	snap.CPU = c.cpuInfo(ctx)
	snap.RAM = c.ramInfo(ctx)
	snap.Disks = c.diskInfo(ctx)
	snap.TopProcesses = c.topProcesses(ctx)

	items, err := c.opts.Startup.Read(ctx)
	if err != nil {
		logger.Debug("startup item read failed", "error", err)
		items = nil
	}
	snap.StartupItems = items

	return snap
}

func (c *Collector) systemInfo(ctx context.Context) types.SystemInfo {
	info := types.SystemInfo{
		Timestamp: types.FormatTimestamp(time.Now()),
		Machine:   runtime.GOARCH,
	}

	hi, err := host.InfoWithContext(ctx)
	if err != nil {
		logger.Debug("host info probe failed", "error", err)
		info.OS = runtime.GOOS
		return info
	}
	info.OS = strings.TrimSpace(hi.Platform + " " + hi.PlatformVersion)
	info.OSVersion = hi.KernelVersion
	if hi.KernelArch != "" {
		info.Machine = hi.KernelArch
	}

	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 {
		info.Processor = cpus[0].ModelName
	}
	return info
}

func (c *Collector) cpuInfo(ctx context.Context) *types.CPUInfo {
	info := &types.CPUInfo{}

	if pcts, err := cpu.PercentWithContext(ctx, c.opts.CPUSample, false); err == nil && len(pcts) > 0 {
		info.Pct = types.Float64(round1(pcts[0]))
	} else if err != nil {
		logger.Debug("cpu load probe failed", "error", err)
	}

	if n, err := cpu.CountsWithContext(ctx, false); err == nil {
		info.PhysicalCores = n
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		info.LogicalCores = n
	}
	if cpus, err := cpu.InfoWithContext(ctx); err == nil && len(cpus) > 0 && cpus[0].Mhz > 0 {
		info.CurrentMHz = types.Float64(math.Round(cpus[0].Mhz))
	}
	return info
}

func (c *Collector) ramInfo(ctx context.Context) *types.RAMInfo {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		logger.Debug("memory probe failed", "error", err)
		return nil
	}
	return &types.RAMInfo{
		TotalGB:     bytesGB(vm.Total),
		AvailableGB: bytesGB(vm.Available),
		UsedPct:     types.Float64(round1(vm.UsedPercent)),
	}
}

func (c *Collector) diskInfo(ctx context.Context) []types.DiskInfo {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		logger.Debug("disk partition probe failed", "error", err)
		return nil
	}

	var disks []types.DiskInfo
	for _, part := range parts {
		if isRemovableMedia(part.Opts) {
			continue
		}
		usage, err := disk.UsageWithContext(ctx, part.Mountpoint)
		if err != nil {
			logger.Debug("disk usage probe failed",
				"mountpoint", part.Mountpoint, "error", err)
			continue
		}

		d := types.DiskInfo{
			Device:     part.Device,
			Mountpoint: part.Mountpoint,
			Fstype:     part.Fstype,
			TotalGB:    bytesGB(usage.Total),
			UsedGB:     bytesGB(usage.Used),
			FreeGB:     bytesGB(usage.Free),
		}
		if usage.Total > 0 {
			free := float64(usage.Free) / float64(usage.Total) * 100
			d.FreePct = types.Float64(round1(free))
		}
		disks = append(disks, d)
	}
	return disks
}

func isRemovableMedia(opts []string) bool {
	for _, opt := range opts {
		if strings.Contains(strings.ToLower(opt), "cdrom") {
			return true
		}
	}
	return false
}

// bytesGB converts bytes to gigabytes rounded to two decimals.
func bytesGB(n uint64) float64 {
	return math.Round(float64(n)/(1<<30)*100) / 100
}

func round1(n float64) float64 {
	return math.Round(n*10) / 10
}
