package monitor

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/phrazzld/tarefas/internal/events"
	"github.com/phrazzld/tarefas/internal/metrics"
)

// Default loop timing.
const (
	DefaultInterval = time.Second
	DefaultWarmup   = 100 * time.Millisecond
)

// Broadcaster runs the sampling loop and publishes every sample as a
// system_update event.
type Broadcaster struct {
	guard    *StartGuard
	sampler  Sampler
	emitter  events.EventEmitter
	interval time.Duration
	warmup   time.Duration
	sleep    func(time.Duration)
	metrics  *metrics.Metrics
	logger   *slog.Logger

	loopStarts atomic.Int64
}

// Option configures a Broadcaster.
type Option func(*Broadcaster)

// WithInterval sets the pause between samples.
func WithInterval(d time.Duration) Option {
	return func(b *Broadcaster) {
		if d > 0 {
			b.interval = d
		}
	}
}

// WithWarmup sets how long the CPU counter is primed before the first sample.
func WithWarmup(d time.Duration) Option {
	return func(b *Broadcaster) {
		if d >= 0 {
			b.warmup = d
		}
	}
}

// WithSleep replaces time.Sleep between iterations.
func WithSleep(sleep func(time.Duration)) Option {
	return func(b *Broadcaster) {
		if sleep != nil {
			b.sleep = sleep
		}
	}
}

// WithMetrics records loop activity in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(b *Broadcaster) {
		b.metrics = m
	}
}

// WithLogger sets the logger used by the loop.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Broadcaster) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBroadcaster creates a Broadcaster. guard, sampler and emitter are required.
func NewBroadcaster(
	guard *StartGuard,
	sampler Sampler,
	emitter events.EventEmitter,
	opts ...Option,
) *Broadcaster {
	if guard == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("guard cannot be nil")
	}
	if sampler == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("sampler cannot be nil")
	}
	if emitter == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("emitter cannot be nil")
	}

	b := &Broadcaster{
		guard:    guard,
		sampler:  sampler,
		emitter:  emitter,
		interval: DefaultInterval,
		warmup:   DefaultWarmup,
		sleep:    time.Sleep,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.With(slog.String("component", "broadcaster"))

	return b
}

// EnsureRunning starts the loop unless it is already running and reports
// whether this call started it. The loop outlives ctx: it keeps ctx's values
// but not its cancellation.
func (b *Broadcaster) EnsureRunning(ctx context.Context) bool {
	if !b.guard.TryStart() {
		return false
	}

	b.loopStarts.Add(1)
	if b.metrics != nil {
		b.metrics.LoopStarts.Inc()
	}
	b.logger.Info("starting broadcast loop",
		slog.Duration("interval", b.interval),
		slog.Duration("warmup", b.warmup))

	go b.run(context.WithoutCancel(ctx))
	return true
}

// LoopStarts returns how many times the loop has been started.
func (b *Broadcaster) LoopStarts() int64 {
	return b.loopStarts.Load()
}

// Running reports whether the loop has been started.
func (b *Broadcaster) Running() bool {
	return b.guard.Started()
}

func (b *Broadcaster) run(ctx context.Context) {
	if err := b.sampler.Warmup(ctx, b.warmup); err != nil {
		b.logger.Warn("cpu warm-up failed", slog.String("error", err.Error()))
	}

	for {
		b.tick(ctx)
		b.sleep(b.interval)
	}
}

// tick takes one sample and publishes it. Failures are logged and the
// iteration is skipped.
func (b *Broadcaster) tick(ctx context.Context) {
	sample, err := b.sampler.Sample(ctx)
	if err != nil {
		b.logger.Warn("failed to sample host metrics", slog.String("error", err.Error()))
		if b.metrics != nil {
			b.metrics.SampleErrors.Inc()
		}
		return
	}

	event, err := events.NewEvent(EventSystemUpdate, sample)
	if err != nil {
		b.logger.Error("failed to encode sample", slog.String("error", err.Error()))
		return
	}

	if err := b.emitter.EmitEvent(ctx, event); err != nil {
		b.logger.Warn("failed to publish sample", slog.String("error", err.Error()))
		return
	}

	if b.metrics != nil {
		b.metrics.SamplesPublished.Inc()
	}
	b.logger.Debug("published sample",
		slog.Float64("cpu", sample.CPU),
		slog.Float64("mem", sample.Mem),
		slog.Float64("disk", sample.Disk))
}
