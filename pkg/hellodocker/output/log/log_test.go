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

package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/GoogleContainerTools/hello-docker/testutil"
)

func TestEntry(t *testing.T) {
	tests := []struct {
		description string
		ctx         context.Context
		expected    logrus.Fields
	}{
		{
			description: "no request in context",
			ctx:         context.Background(),
			expected:    logrus.Fields{},
		},
		{
			description: "request in context",
			ctx:         WithRequest(context.Background(), RequestContext{ID: "abc", Method: "GET", Path: "/info"}),
			expected:    logrus.Fields{"request_id": "abc", "method": "GET", "path": "/info"},
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			t.CheckDeepEqual(test.expected, Entry(test.ctx).Data)
		})
	}
}
