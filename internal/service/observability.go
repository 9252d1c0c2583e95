package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
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
	logger log.FieldLogger
}

// NewLogUseCaseObserver logs use-case events as structured logrus entries:
// errors at error level, everything else at debug.
func NewLogUseCaseObserver(logger log.FieldLogger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{logger: logger}
}

func (o *logUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	fields := log.Fields{
		"use_case":    event.Name,
		"duration_ms": event.Duration.Milliseconds(),
		"success":     event.Success,
	}
	for k, v := range event.Fields {
		fields[k] = v
	}
	entry := o.logger.WithFields(fields)
	if event.Err != nil {
		entry.WithError(event.Err).Error("service_use_case")
		return
	}
	entry.Debug("service_use_case")
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
