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

	"github.com/sirupsen/logrus"
)

type contextKey struct{}

var ContextKey = contextKey{}

// RequestContext identifies the request a log line belongs to.
type RequestContext struct {
	ID     string
	Method string
	Path   string
}

// WithRequest returns a copy of ctx carrying rc.
func WithRequest(ctx context.Context, rc RequestContext) context.Context {
	return context.WithValue(ctx, ContextKey, rc)
}

// Entry takes an context.Context and constructs a logrus.Entry from it, adding
// fields for the request being served, if any.
func Entry(ctx context.Context) *logrus.Entry {
	if rc, ok := ctx.Value(ContextKey).(RequestContext); ok {
		return logrus.WithFields(logrus.Fields{
			"request_id": rc.ID,
			"method":     rc.Method,
			"path":       rc.Path,
		})
	}

	return logrus.NewEntry(logrus.StandardLogger())
}
