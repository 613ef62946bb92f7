package coins

import (
	"context"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/benz9527/xdsa/coins"

type solverStats struct {
	calls  metric.Int64Counter
	solves metric.Int64Counter
}

// newSolverStats falls back to the global meter provider.
func newSolverStats(mp metric.MeterProvider) *solverStats {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(meterName)
	return &solverStats{
		calls: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xdsa.coins.calls",
			metric.WithDescription("Recursive calls or table relaxations spent by the coin change solvers."),
			metric.WithUnit("{call}"),
		)),
		solves: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xdsa.coins.solves",
			metric.WithDescription("Finished coin change solves."),
			metric.WithUnit("{solve}"),
		)),
	}
}

func (s *solverStats) record(ctx context.Context, strategy Strategy, res Result) {
	attrs := metric.WithAttributes(
		attribute.String("strategy", string(strategy)),
		attribute.Bool("reachable", res.Reachable),
	)
	s.calls.Add(ctx, res.Calls, attrs)
	s.solves.Add(ctx, 1, attrs)
}

// WithMeterProvider records the solver counters on mp instead of the global provider.
func WithMeterProvider(mp metric.MeterProvider) SolveOption {
	return func(opts *solveOptions) {
		opts.stats = newSolverStats(mp)
	}
}
