package observability

import (
	"context"
	"runtime"
	"strings"

	"github.com/samber/lo"
	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

func meterName(name string) string {
	builder := &strings.Builder{}
	builder.WriteString("xdsa/app/")
	if len(strings.TrimSpace(name)) > 0 {
		builder.WriteString(name)
	} else {
		builder.WriteString("default")
	}
	return builder.String()
}

// InitAppStats registers the goroutine and GOMAXPROCS observers plus the
// otel contrib runtime metrics on the global meter provider. Call it after
// InitMetricsExporter.
func InitAppStats(name string) error {
	mp := otel.GetMeterProvider()
	meter := mp.Meter(
		meterName(name),
		metric.WithInstrumentationVersion(otelruntime.Version()),
	)
	lo.Must[metric.Int64ObservableUpDownCounter](meter.Int64ObservableUpDownCounter(
		"xdsa.app.goroutines",
		metric.WithDescription(`The application goroutines' info.`),
		metric.WithInt64Callback(func(ctx context.Context, ob metric.Int64Observer) error {
			ob.Observe(int64(runtime.NumGoroutine()))
			return nil
		}),
	))
	lo.Must[metric.Int64ObservableUpDownCounter](meter.Int64ObservableUpDownCounter(
		"xdsa.app.processes",
		metric.WithDescription(`The application GOMAXPROCS.`),
		metric.WithInt64Callback(func(ctx context.Context, ob metric.Int64Observer) error {
			ob.Observe(int64(runtime.GOMAXPROCS(0)))
			return nil
		}),
	))
	return otelruntime.Start(otelruntime.WithMeterProvider(mp))
}
