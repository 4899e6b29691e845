package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	RunID     string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes one structured line per use case to logger.
func NewLogUseCaseObserver(logger *slog.Logger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{logger: logger}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 10+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"run_id", event.RunID,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "service_use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "service_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// useCaseRun times one use-case invocation. Fields may be added until
// finish is called.
type useCaseRun struct {
	observer  UseCaseObserver
	name      string
	runID     string
	startedAt time.Time
	fields    map[string]any
}

func startUseCase(observer UseCaseObserver, name string, fields map[string]any) *useCaseRun {
	if fields == nil {
		fields = make(map[string]any)
	}
	return &useCaseRun{
		observer:  observer,
		name:      name,
		runID:     uuid.NewString(),
		startedAt: time.Now().UTC(),
		fields:    fields,
	}
}

func (r *useCaseRun) set(key string, value any) {
	r.fields[key] = value
}

func (r *useCaseRun) finish(ctx context.Context, err error) {
	r.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      r.name,
		RunID:     r.runID,
		StartedAt: r.startedAt,
		Duration:  time.Since(r.startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    r.fields,
	})
}
