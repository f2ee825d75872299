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
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/config"
	"github.com/GoogleContainerTools/hello-docker/testutil"
)

func testOptions(env map[string]string) *config.Options {
	opts := config.NewOptions()
	opts.Port = 0
	opts.Getenv = func(key string) string { return env[key] }
	opts.Now = func() time.Time { return time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC) }
	return opts
}

func TestHandlerDispatch(t *testing.T) {
	tests := []struct {
		description string
		method      string
		path        string
		status      int
		contentType string
		expected    string
	}{
		{description: "home", path: "/", status: http.StatusOK, contentType: "text/html; charset=UTF-8", expected: "Welcome to Multi-Stage Docker Demo!"},
		{description: "health", path: "/health", status: http.StatusOK, contentType: "text/html; charset=UTF-8", expected: "Healthy"},
		{description: "info", path: "/info", status: http.StatusOK, contentType: "text/html; charset=UTF-8", expected: "System Information"},
		{description: "calculate", path: "/calculate", status: http.StatusOK, contentType: "text/html; charset=UTF-8", expected: "Calculator Results"},
		{description: "method is not checked", method: http.MethodPost, path: "/health", status: http.StatusOK, contentType: "text/html; charset=UTF-8", expected: "Healthy"},
		{description: "unknown path", path: "/nope", status: http.StatusNotFound, contentType: "text/plain; charset=utf-8", expected: "404 page not found"},
		{description: "no prefix match", path: "/health/extra", status: http.StatusNotFound, contentType: "text/plain; charset=utf-8", expected: "404 page not found"},
		{description: "trailing slash", path: "/info/", status: http.StatusNotFound, contentType: "text/plain; charset=utf-8", expected: "404 page not found"},
		{description: "nested under root", path: "/index.html", status: http.StatusNotFound, contentType: "text/plain; charset=utf-8", expected: "404 page not found"},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			opts := testOptions(nil)
			srv := New(io.Discard, opts)
			method := test.method
			if method == "" {
				method = http.MethodGet
			}

			rec := httptest.NewRecorder()
			srv.srv.Handler.ServeHTTP(rec, httptest.NewRequest(method, test.path, nil))

			t.CheckDeepEqual(test.status, rec.Code)
			t.CheckDeepEqual(test.contentType, rec.Header().Get("Content-Type"))
			t.CheckContains(test.expected, rec.Body.String())
			if test.status == http.StatusNotFound {
				t.CheckNotContains("<html>", rec.Body.String())
			}
		})
	}
}

func TestPrintBanner(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		var out bytes.Buffer
		PrintBanner(&out, 8080)

		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		t.CheckDeepEqual(11, len(lines))
		t.CheckDeepEqual("========================================", lines[0])
		t.CheckDeepEqual("  Go Web Server Started!", lines[1])
		t.CheckDeepEqual("Server running on: http://localhost:8080", lines[4])
		t.CheckDeepEqual([]string{
			"Endpoints:",
			"  - http://localhost:8080/",
			"  - http://localhost:8080/health",
			"  - http://localhost:8080/info",
			"  - http://localhost:8080/calculate",
			"========================================",
		}, lines[5:])
	})
}

func TestServe(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		var out bytes.Buffer
		srv := New(&out, testOptions(map[string]string{"ENVIRONMENT": "staging"}))
		l, err := srv.Listen()
		t.CheckNoError(err)
		port := l.Addr().(*net.TCPAddr).Port

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- srv.Serve(ctx, l) }()

		for _, path := range []string{"/", "/health", "/info", "/calculate"} {
			resp, err := http.Get(fmt.Sprintf("http://localhost:%d%s", port, path))
			t.CheckNoError(err)
			if err != nil {
				continue
			}
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			t.CheckDeepEqual(http.StatusOK, resp.StatusCode)
			t.CheckDeepEqual("text/html; charset=UTF-8", resp.Header.Get("Content-Type"))
			if path == "/info" {
				t.CheckContains("<td style='border: 1px solid #ddd; padding: 8px;'>staging</td>", string(body))
			}
		}

		resp, err := http.Get(fmt.Sprintf("http://localhost:%d/nope", port))
		t.CheckNoError(err)
		if err == nil {
			resp.Body.Close()
			t.CheckDeepEqual(http.StatusNotFound, resp.StatusCode)
		}

		cancel()
		select {
		case err := <-done:
			t.CheckNoError(err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down")
		}
		t.CheckContains(fmt.Sprintf("Server running on: http://localhost:%d", port), out.String())
	})
}

func TestListenPortInUse(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		busy, err := net.Listen("tcp", ":0")
		t.CheckNoError(err)
		defer busy.Close()

		opts := testOptions(nil)
		opts.Port = busy.Addr().(*net.TCPAddr).Port
		srv := New(io.Discard, opts)

		_, err = srv.Listen()

		t.CheckErrorContains(fmt.Sprintf("binding :%d", opts.Port), err)
	})
}
