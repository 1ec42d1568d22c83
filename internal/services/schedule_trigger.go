package services

import (
	"context"
	"log/slog"
	"time"
)

// scheduleTrigger fires scheduler passes on a fixed cadence. It owns no
// scheduling logic itself; it only decides when to call the scheduler, which
// keeps the materialization algorithm testable without any timer machinery.
// Running a single trigger per deployment is what provides the scheduler's
// at-most-one-concurrent-pass guarantee.
type scheduleTrigger struct {
	scheduler TemplateSchedulerInterface
	interval  time.Duration
	runAt     string
	now       func() time.Time
}

// NewScheduleTrigger creates a trigger that invokes the scheduler once per
// interval. runAt ("15:04") anchors the first daily run to a time of day;
// an empty runAt starts the cadence immediately.
func NewScheduleTrigger(scheduler TemplateSchedulerInterface, interval time.Duration, runAt string) ScheduleTriggerInterface {
	return &scheduleTrigger{
		scheduler: scheduler,
		interval:  interval,
		runAt:     runAt,
		now:       time.Now,
	}
}

// Start blocks until the context is cancelled, firing one scheduler pass per
// tick. Pass errors are logged; the cadence continues regardless.
func (t *scheduleTrigger) Start(ctx context.Context) {
	if delay := t.initialDelay(); delay > 0 {
		slog.Info("schedule trigger waiting for first run",
			"run_at", t.runAt,
			"delay", delay.String(),
		)
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}

	t.fire()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("schedule trigger stopped")
			return
		case <-ticker.C:
			t.fire()
		}
	}
}

func (t *scheduleTrigger) fire() {
	now := t.now()
	if err := t.scheduler.ProcessTemplates(now); err != nil {
		slog.Error("scheduler pass failed",
			"now", now,
			"error", err.Error(),
		)
	}
}

// initialDelay computes how long to wait so the first pass lands on the
// configured time of day
func (t *scheduleTrigger) initialDelay() time.Duration {
	if t.runAt == "" {
		return 0
	}

	at, err := time.Parse("15:04", t.runAt)
	if err != nil {
		slog.Warn("invalid scheduler run-at time, starting immediately", "run_at", t.runAt)
		return 0
	}

	now := t.now()
	next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour(), at.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
