package audit

import (
	"context"
	"errors"
	"log/slog"

	"gas-booking/internal/usecase/shared"
)

// LogSink writes every event to the structured log.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(ctx context.Context, event shared.Event) error {
	attrs := make([]any, 0, len(event.Params)+2)
	attrs = append(attrs, slog.String("event", event.Name), slog.Time("occurred_at", event.OccurredAt))
	for k, v := range event.Params {
		attrs = append(attrs, slog.Any(k, v))
	}
	s.logger.InfoContext(ctx, "audit event", attrs...)
	return nil
}

// MultiSink fans an event out to every sink and joins their errors.
type MultiSink struct {
	sinks []shared.EventSink
}

func NewMultiSink(sinks ...shared.EventSink) *MultiSink {
	out := make([]shared.EventSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return &MultiSink{sinks: out}
}

func (m *MultiSink) Emit(ctx context.Context, event shared.Event) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Emit(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
