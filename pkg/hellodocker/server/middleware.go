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

package server

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/instrumentation"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/output/log"
)

// statusRecorder remembers the status code and body size of a response.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// instrument tags each request with an ID, traces it, records it in the
// request metrics and logs it once served.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()

		ctx := log.WithRequest(r.Context(), log.RequestContext{ID: id, Method: r.Method, Path: r.URL.Path})
		ctx, endTrace := instrumentation.StartTrace(ctx, r.Method+" "+r.URL.Path, map[string]string{
			"request_id": id,
		})
		defer endTrace()

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r.WithContext(ctx))
		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		elapsed := time.Since(start)
		instrumentation.AddAttributesToCurrentSpanFromContext(ctx, map[string]string{
			"status": http.StatusText(rec.status),
		})
		metricPath := r.URL.Path
		if rec.status == http.StatusNotFound {
			metricPath = "unmatched"
		}
		instrumentation.RecordRequest(ctx, metricPath, rec.status, elapsed)
		log.Entry(ctx).Debugf("served %d in %s (%s)", rec.status, elapsed, humanize.Bytes(uint64(rec.size)))
	})
}
