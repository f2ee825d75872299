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
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/version"
)

const serviceName = "hello-docker"

type exporterConfig struct {
	writer io.Writer
}

// TraceExporterOption configures the span exporter.
type TraceExporterOption func(*exporterConfig)

// WithWriter sets the destination of exported spans. Defaults to os.Stderr so
// that stdout only carries the startup banner.
func WithWriter(w io.Writer) TraceExporterOption {
	return func(c *exporterConfig) {
		c.writer = w
	}
}

func initTraceExporter(exporter string, opts ...TraceExporterOption) (trace.TracerProvider, func(context.Context) error, error) {
	cfg := exporterConfig{writer: os.Stderr}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch exporter {
	case "stdout":
		exp, err := stdouttrace.New(stdouttrace.WithWriter(cfg.writer), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, nil, fmt.Errorf("creating stdout trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp),
			sdktrace.WithResource(serviceResource()),
		)
		return tp, tp.Shutdown, nil
	default:
		return nil, nil, fmt.Errorf("unsupported trace exporter %q, only \"stdout\" is supported", exporter)
	}
}

func serviceResource() *resource.Resource {
	return resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version.Get().Version),
	)
}
