package monitor

import (
	"context"
	"math"
	"time"
)

// EventSystemUpdate is the event type carrying a Sample.
const EventSystemUpdate = "system_update"

// Sample is one reading of host utilization, each value a percentage in [0,100].
type Sample struct {
	CPU  float64 `json:"cpu"`
	Mem  float64 `json:"mem"`
	Disk float64 `json:"disk"`
}

// Sampler reads host utilization.
type Sampler interface {
	// Warmup primes the CPU counter so the first Sample reports usage over
	// a real interval. It blocks for about d.
	Warmup(ctx context.Context, d time.Duration) error

	// Sample returns current utilization. CPU usage is measured since the
	// previous call to Sample or Warmup.
	Sample(ctx context.Context) (Sample, error)
}

// roundPercent keeps one decimal place.
func roundPercent(v float64) float64 {
	return math.Round(v*10) / 10
}
