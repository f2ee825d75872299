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
	"runtime"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/constants"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/output/log"
)

var traceEnabled bool
var traceInitOnce sync.Once

var tracerProvider trace.TracerProvider
var tracerShutdown func(context.Context) error = func(context.Context) error { return nil }
var tracerInitErr error

// InitTraceFromEnvVar initializes the singleton tracer from the HELLO_DOCKER_TRACE env variable.
// When it is set, this sets up the tracer provider and exporter, configures otel to use it
// and saves the provider shutdown function so that spans can be flushed before the process exits.
func InitTraceFromEnvVar(opts ...TraceExporterOption) (trace.TracerProvider, func(context.Context) error, error) {
	traceInitOnce.Do(func() {
		exporter, ok := os.LookupEnv(constants.TraceEnvVar)
		if !ok {
			return
		}
		tp, shutdown, err := initTraceExporter(exporter, opts...)
		tracerInitErr = err
		if err == nil {
			otel.SetTracerProvider(tp)
			traceEnabled = true
			tracerProvider = tp
			tracerShutdown = shutdown
		}
	})
	if tracerInitErr != nil {
		log.Entry(context.TODO()).Debugf("error initializing tracing: %v", tracerInitErr)
	}
	return tracerProvider, tracerShutdown, tracerInitErr
}

// TracerShutdown flushes all running spans and makes sure they are exported. This should be called once
// before the process exits.
func TracerShutdown(ctx context.Context) error {
	traceInitOnce = sync.Once{}
	traceEnabled = false
	shutdown := tracerShutdown
	tracerShutdown = func(context.Context) error { return nil }
	tracerProvider = nil
	tracerInitErr = nil
	return shutdown(ctx)
}

// StartTrace starts a span named name, with optional attributes, as a child of any span in ctx.
// Callers should use the returned context for nested spans and call the returned function to end
// the span, for example:  ctx, endTrace := StartTrace(...); defer endTrace()
func StartTrace(ctx context.Context, name string, attributes ...map[string]string) (context.Context, func(options ...trace.SpanEndOption)) {
	if traceEnabled {
		_, file, ln, _ := runtime.Caller(1)
		tracer := otel.Tracer(file)
		ctx, span := tracer.Start(ctx, name)
		for _, attrs := range attributes {
			for k, v := range attrs {
				span.SetAttributes(attribute.Key(k).String(v))
			}
		}
		span.SetAttributes(attribute.Key("source_file").String(fmt.Sprintf("%s:%d", file, ln)))
		return ctx, span.End
	}
	return ctx, func(options ...trace.SpanEndOption) {}
}

// AddAttributesToCurrentSpanFromContext adds the attributes from the input map to the span pulled from the current context.
func AddAttributesToCurrentSpanFromContext(ctx context.Context, attrs map[string]string) {
	if traceEnabled {
		span := trace.SpanFromContext(ctx)
		for k, v := range attrs {
			span.SetAttributes(attribute.Key(k).String(v))
		}
	}
}
