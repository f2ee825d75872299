/*
Copyright 2024 The Skaffold Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package instrumentation

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/constants"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/output/log"
)

type requestMeter struct {
	provider *sdkmetric.MeterProvider
	requests metric.Int64Counter
	latency  metric.Float64Histogram
}

var (
	meterMu sync.Mutex
	meter   *requestMeter
)

// InitMeterFromEnvVar enables request metrics when HELLO_DOCKER_METRICS is set.
// Metrics are exported when ShutdownMeter is called.
func InitMeterFromEnvVar(opts ...TraceExporterOption) error {
	exporter, ok := os.LookupEnv(constants.MetricsEnvVar)
	if !ok {
		return nil
	}
	if exporter != "stdout" {
		return fmt.Errorf("unsupported metrics exporter %q, only \"stdout\" is supported", exporter)
	}

	cfg := exporterConfig{writer: os.Stderr}
	for _, opt := range opts {
		opt(&cfg)
	}
	exp, err := stdoutmetric.New(stdoutmetric.WithWriter(cfg.writer))
	if err != nil {
		return fmt.Errorf("creating stdout metric exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(time.Hour))),
		sdkmetric.WithResource(serviceResource()),
	)
	m := provider.Meter(serviceName)
	requests, err := m.Int64Counter("hello_docker.requests", metric.WithDescription("HTTP requests served, by path and status"))
	if err != nil {
		return fmt.Errorf("creating request counter: %w", err)
	}
	latency, err := m.Float64Histogram("hello_docker.request.duration", metric.WithDescription("Time spent serving a request"), metric.WithUnit("ms"))
	if err != nil {
		return fmt.Errorf("creating latency histogram: %w", err)
	}

	meterMu.Lock()
	defer meterMu.Unlock()
	meter = &requestMeter{provider: provider, requests: requests, latency: latency}
	return nil
}

// RecordRequest counts one served request. It is a no-op when metrics are disabled.
func RecordRequest(ctx context.Context, path string, status int, elapsed time.Duration) {
	meterMu.Lock()
	m := meter
	meterMu.Unlock()
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("path", path),
		attribute.String("status", strconv.Itoa(status)),
	)
	m.requests.Add(ctx, 1, attrs)
	m.latency.Record(ctx, float64(elapsed)/float64(time.Millisecond), attrs)
}

// ShutdownMeter exports the collected metrics and disables metrics.
func ShutdownMeter(ctx context.Context) error {
	meterMu.Lock()
	m := meter
	meter = nil
	meterMu.Unlock()
	if m == nil {
		return nil
	}
	return m.provider.Shutdown(ctx)
}

// ShutdownAndFlush exports spans and metrics before the process exits with exitCode.
func ShutdownAndFlush(ctx context.Context, exitCode int) {
	if err := TracerShutdown(ctx); err != nil {
		log.Entry(ctx).Debugf("error shutting down tracer: %v", err)
	}
	if err := ShutdownMeter(ctx); err != nil {
		log.Entry(ctx).Debugf("error exporting metrics: %v", err)
	}
	log.Entry(ctx).Debugf("exiting with code %d", exitCode)
}
