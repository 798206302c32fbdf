package collector

import (
	"context"
	"sort"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/zerolag/zerolag/pkg/zerolag/types"
)

// topProcesses returns the heaviest processes by CPU usage, breaking
// ties by resident memory. Processes that refuse inspection (exited,
// or owned by another user) are skipped.
func (c *Collector) topProcesses(ctx context.Context) []types.ProcessInfo {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		logger.Debug("process enumeration failed", "error", err)
		return nil
	}

	infos := make([]types.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		cpuPct, err := p.CPUPercentWithContext(ctx)
		if err != nil {
			continue
		}
		var ramGB float64
		if memInfo, err := p.MemoryInfoWithContext(ctx); err == nil && memInfo != nil {
			ramGB = bytesGB(memInfo.RSS)
		}
		infos = append(infos, types.ProcessInfo{
			PID:    p.Pid,
			Name:   name,
			CPUPct: round1(cpuPct),
			RAMGB:  ramGB,
		})
	}

	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].CPUPct != infos[j].CPUPct {
			return infos[i].CPUPct > infos[j].CPUPct
		}
		return infos[i].RAMGB > infos[j].RAMGB
	})

	if len(infos) > c.opts.TopProcesses {
		infos = infos[:c.opts.TopProcesses]
	}
	return infos
}
