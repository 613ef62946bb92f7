package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/multierr"

	"github.com/benz9527/xdsa/lib/infra"
)

type ExporterKind string

const (
	ExporterNone       ExporterKind = "none"
	ExporterStdout     ExporterKind = "stdout"
	ExporterPrometheus ExporterKind = "prometheus"
)

// ShutdownFunc flushes and stops the installed meter provider.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(context.Context) error { return nil }

type exporterCfg struct {
	interval, timeout time.Duration
	stdoutOpts        []stdoutmetric.Option
	promOut           io.Writer
}

type ExporterOption func(*exporterCfg)

func WithExportInterval(interval time.Duration) ExporterOption {
	return func(cfg *exporterCfg) {
		if interval > 0 {
			cfg.interval = interval
		}
	}
}

func WithExportTimeout(timeout time.Duration) ExporterOption {
	return func(cfg *exporterCfg) {
		if timeout > 0 {
			cfg.timeout = timeout
		}
	}
}

func WithStdoutOptions(opts ...stdoutmetric.Option) ExporterOption {
	return func(cfg *exporterCfg) {
		cfg.stdoutOpts = append(cfg.stdoutOpts, opts...)
	}
}

// WithPrometheusWriter scrapes a private registry once on shutdown and
// writes the text exposition to w. Without it the exporter registers into
// the prometheus default registerer for an HTTP handler to serve.
func WithPrometheusWriter(w io.Writer) ExporterOption {
	return func(cfg *exporterCfg) {
		cfg.promOut = w
	}
}

// InitMetricsExporter installs the global meter provider for kind.
// ExporterNone leaves the otel no-op provider in place.
func InitMetricsExporter(kind ExporterKind, opts ...ExporterOption) (ShutdownFunc, error) {
	cfg := &exporterCfg{
		interval: 10 * time.Second,
		timeout:  5 * time.Second,
	}
	for _, o := range opts {
		o(cfg)
	}
	switch ExporterKind(strings.ToLower(string(kind))) {
	case ExporterNone, "":
		return noopShutdown, nil
	case ExporterStdout:
		return newConsoleMetricsExporter(cfg.interval, cfg.timeout, cfg.stdoutOpts...)
	case ExporterPrometheus:
		return newPrometheusMetricsExporter(cfg.promOut)
	default:
	}
	return nil, infra.NewErrorStack(fmt.Sprintf("[observability] unknown metrics exporter %q", kind))
}

// Serves for test/dev environment.
func newConsoleMetricsExporter(interval, timeout time.Duration, opts ...stdoutmetric.Option) (ShutdownFunc, error) {
	exporter, err := stdoutmetric.New(opts...)
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[observability] stdout exporter")
	}
	mp := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		metric.WithInterval(interval),
		metric.WithTimeout(timeout),
	)))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}

// Serves for the product environment and fetch stats metrics by HTTP.
// Short lived processes pass w to get a single scrape on shutdown.
func newPrometheusMetricsExporter(w io.Writer) (ShutdownFunc, error) {
	var (
		reg  *promclient.Registry
		opts []prometheus.Option
	)
	if w != nil {
		reg = promclient.NewRegistry()
		opts = append(opts, prometheus.WithRegisterer(reg))
	}
	exporter, err := prometheus.New(opts...)
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[observability] prometheus exporter")
	}
	mp := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(mp)
	if reg == nil {
		return mp.Shutdown, nil
	}
	return func(ctx context.Context) error {
		// The reader stops collecting once the provider is shut down.
		err := writeExposition(w, reg)
		return multierr.Append(err, mp.Shutdown(ctx))
	}, nil
}

func writeExposition(w io.Writer, g promclient.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return infra.WrapErrorStackWithMessage(err, "[observability] prometheus gather")
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return infra.WrapErrorStackWithMessage(err, "[observability] prometheus exposition")
		}
	}
	return nil
}
