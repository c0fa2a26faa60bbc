package monitor

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostSampler_Sample(t *testing.T) {
	s := NewHostSampler(t.TempDir())
	ctx := context.Background()

	require.NoError(t, s.Warmup(ctx, 20*time.Millisecond))
	sample, err := s.Sample(ctx)
	require.NoError(t, err)

	for name, v := range map[string]float64{"cpu": sample.CPU, "mem": sample.Mem, "disk": sample.Disk} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 100.0, name)
	}
}

func TestHostSampler_MissingDiskPath(t *testing.T) {
	s := NewHostSampler(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := s.Sample(context.Background())
	assert.ErrorContains(t, err, "disk usage")
}

func TestHostSampler_WarmupHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewHostSampler("").Warmup(ctx, time.Hour)
	assert.Error(t, err)
}

func TestNewHostSampler_DefaultDiskPath(t *testing.T) {
	assert.Equal(t, DefaultDiskPath, NewHostSampler("").diskPath)
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, 12.3, roundPercent(12.3456))
	assert.Equal(t, 100.0, roundPercent(99.96))
	assert.Equal(t, 0.0, roundPercent(0.04))
}
