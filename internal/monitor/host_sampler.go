package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// DefaultDiskPath is the filesystem whose usage is reported.
const DefaultDiskPath = "/"

// HostSampler reads utilization of the machine the process runs on.
type HostSampler struct {
	diskPath string
}

// Ensure HostSampler implements Sampler
var _ Sampler = (*HostSampler)(nil)

// NewHostSampler creates a sampler reporting disk usage for diskPath.
// An empty diskPath falls back to DefaultDiskPath.
func NewHostSampler(diskPath string) *HostSampler {
	if diskPath == "" {
		diskPath = DefaultDiskPath
	}
	return &HostSampler{diskPath: diskPath}
}

// Warmup implements Sampler.Warmup
func (s *HostSampler) Warmup(ctx context.Context, d time.Duration) error {
	// A zero interval resets the "since last call" baseline.
	if _, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		return fmt.Errorf("failed to prime cpu counter: %w", err)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Sample implements Sampler.Sample
func (s *HostSampler) Sample(ctx context.Context) (Sample, error) {
	cpuPercents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return Sample{}, fmt.Errorf("failed to read cpu usage: %w", err)
	}
	if len(cpuPercents) == 0 {
		return Sample{}, errors.New("failed to read cpu usage: no data")
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Sample{}, fmt.Errorf("failed to read memory usage: %w", err)
	}

	usage, err := disk.UsageWithContext(ctx, s.diskPath)
	if err != nil {
		return Sample{}, fmt.Errorf("failed to read disk usage of %s: %w", s.diskPath, err)
	}

	return Sample{
		CPU:  roundPercent(cpuPercents[0]),
		Mem:  roundPercent(vm.UsedPercent),
		Disk: roundPercent(usage.UsedPercent),
	}, nil
}
