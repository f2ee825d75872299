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

package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/GoogleContainerTools/hello-docker/testutil"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		description string
		err         error
		expected    int
	}{
		{description: "nil", err: nil, expected: ExitOK},
		{description: "plain error", err: errors.New("boom"), expected: ExitFailure},
		{description: "coded error", err: NewError(HealthCheck, ExitFailure, errors.New("503")), expected: ExitFailure},
		{description: "wrapped coded error", err: fmt.Errorf("running: %w", NewError(Serve, 3, errors.New("closed"))), expected: 3},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			t.CheckDeepEqual(test.expected, ExitCode(test.err))
		})
	}
}

func TestError(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		cause := errors.New("listen tcp :8080: bind: address already in use")
		err := NewError(Startup, ExitFailure, cause)

		t.CheckDeepEqual("Startup failed: listen tcp :8080: bind: address already in use", err.Error())
		t.CheckDeepEqual(Startup, err.Phase())
		t.CheckTrue(errors.Is(err, cause))
	})
}

func TestShowAIError(t *testing.T) {
	tests := []struct {
		description string
		err         error
		expected    string
	}{
		{
			description: "port in use",
			err:         errors.New("listen tcp :8080: bind: address already in use"),
			expected:    "Port already in use. Stop the process listening on port 8080 or choose another port with `--port`",
		},
		{
			description: "privileged port",
			err:         errors.New("listen tcp :8080: bind: permission denied"),
			expected:    "Not allowed to bind the port. Ports below 1024 need extra privileges; use a port above 1024 instead of 8080",
		},
		{
			description: "server down",
			err:         errors.New("dial tcp [::1]:8080: connect: connection refused"),
			expected:    "Server not reachable. Check that the server is running and listening on port 8080",
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			t.CheckDeepEqual(test.expected, ShowAIError(test.err, 8080).Error())
		})
	}
}

func TestShowAIErrorNoSuggestion(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		t.CheckTrue(errors.Is(ShowAIError(errors.New("something else"), 8080), ErrNoSuggestionFound))
	})
}
