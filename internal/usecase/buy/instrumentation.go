package buy

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/telemetry"
)

const scope = telemetry.InstrumentationName + "/usecase/buy"

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(scope).Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan marca o span com erro quando houver e o encerra.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func buysCreatedCounter() metric.Int64Counter {
	c, err := otel.Meter(scope).Int64Counter(
		"gamezone.buys.created",
		metric.WithDescription("Compras criadas com sucesso"),
	)
	if err != nil {
		return noop.Int64Counter{}
	}
	return c
}
