package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

// Outcome labels recorded on transition metrics.
const (
	OutcomeApplied   = "applied"
	OutcomeForbidden = "forbidden"
	OutcomeConflict  = "conflict"
	OutcomeInvalid   = "invalid"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"
)

// Lifecycle records a span, a counter and a duration histogram per
// inspection transition attempt.
type Lifecycle struct {
	tracer      trace.Tracer
	transitions metric.Int64Counter
	duration    metric.Float64Histogram
	auditGaps   metric.Int64Counter
	now         func() time.Time
}

// NewLifecycle builds the instruments from the given providers. Pass
// otel.GetMeterProvider() and otel.GetTracerProvider() after Init.
func NewLifecycle(mp metric.MeterProvider, tp trace.TracerProvider) (*Lifecycle, error) {
	m := mp.Meter(instrumentationScope)

	transitions, err := m.Int64Counter("peritagem.transitions",
		metric.WithDescription("Inspection transition attempts by action and outcome"),
	)
	if err != nil {
		return nil, err
	}
	duration, err := m.Float64Histogram("peritagem.transition.duration",
		metric.WithDescription("Inspection transition latency"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}
	auditGaps, err := m.Int64Counter("peritagem.history.append_failures",
		metric.WithDescription("Transitions persisted without a history entry"),
	)
	if err != nil {
		return nil, err
	}

	return &Lifecycle{
		tracer:      tp.Tracer(instrumentationScope),
		transitions: transitions,
		duration:    duration,
		auditGaps:   auditGaps,
		now:         time.Now,
	}, nil
}

// StartTransition opens the span for one attempt. The returned func must be
// called exactly once with the attempt's final error.
func (l *Lifecycle) StartTransition(ctx context.Context, action domain.Action) (context.Context, func(error)) {
	start := l.now()
	ctx, span := l.tracer.Start(ctx, "inspection.transition",
		trace.WithAttributes(attribute.String("peritagem.action", action.String())),
	)

	return ctx, func(err error) {
		outcome := Outcome(err)
		attrs := metric.WithAttributes(
			attribute.String("action", action.String()),
			attribute.String("outcome", outcome),
		)
		l.transitions.Add(ctx, 1, attrs)
		l.duration.Record(ctx, float64(l.now().Sub(start).Microseconds())/1000, attrs)

		span.SetAttributes(attribute.String("peritagem.outcome", outcome))
		if outcome == OutcomeError {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

// AuditGap counts a transition whose history entry could not be written.
func (l *Lifecycle) AuditGap(ctx context.Context, action domain.Action) {
	l.auditGaps.Add(ctx, 1, metric.WithAttributes(attribute.String("action", action.String())))
	trace.SpanFromContext(ctx).AddEvent("history append failed")
}

// Outcome classifies a transition error for metric labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeApplied
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrUnauthorized):
		return OutcomeForbidden
	case errors.Is(err, domain.ErrConflict):
		return OutcomeConflict
	case errors.Is(err, domain.ErrValidation):
		return OutcomeInvalid
	case errors.Is(err, domain.ErrNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
