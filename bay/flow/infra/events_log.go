package infra

import (
	"context"
	"errors"
	"log/slog"

	"petshop-bay/bay/flow/domain"
)

// LogSink escreve cada evento como um registro estruturado do slog.
type LogSink struct {
	Logger *slog.Logger
	Level  slog.Level
}

// NewLogSink usa slog.Default() quando logger é nil.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{Logger: logger, Level: slog.LevelInfo}
}

func (s *LogSink) Record(ctx context.Context, ev domain.Event) error {
	s.Logger.LogAttrs(ctx, s.Level, ev.Message(),
		slog.String("event", string(ev.Kind)),
		slog.Int64("id", int64(ev.Entity.ID)),
		slog.String("name", ev.Entity.Name),
		slog.String("owner", ev.Entity.Owner),
		slog.String("service", ev.Entity.Kind.String()),
		slog.String("status", string(ev.Entity.Status)),
	)
	return nil
}

// MultiSink repassa o evento para vários sinks. Um sink com erro não impede os
// demais; os erros são agregados com errors.Join.
type MultiSink []domain.EventSink

// NewMultiSink ignora sinks nil. Com um único sink, retorna ele mesmo.
func NewMultiSink(sinks ...domain.EventSink) domain.EventSink {
	filtered := make(MultiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			filtered = append(filtered, s)
		}
	}
	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	}
	return filtered
}

func (m MultiSink) Record(ctx context.Context, ev domain.Event) error {
	var errs []error
	for _, s := range m {
		if err := s.Record(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
