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

package constants

import (
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultLogLevel is the default global verbosity
	DefaultLogLevel = logrus.InfoLevel

	// DefaultPort is the TCP port the server binds on all interfaces.
	DefaultPort = 8080

	// EnvironmentVar names the variable displayed on the info page.
	EnvironmentVar = "ENVIRONMENT"
	// EnvironmentNotSet is displayed when EnvironmentVar is absent or empty.
	EnvironmentNotSet = "Not set"

	TraceEnvVar   = "HELLO_DOCKER_TRACE"
	MetricsEnvVar = "HELLO_DOCKER_METRICS"

	// TimestampFormat is the layout of the server time shown on pages.
	TimestampFormat = "2006-01-02 15:04:05"

	ContentTypeHTML = "text/html; charset=UTF-8"

	// ShutdownTimeout bounds how long in-flight requests may take once a
	// stop signal arrives.
	ShutdownTimeout = 1 * time.Second
)

// Paths served by the listener, in banner order.
const (
	HomePath      = "/"
	HealthPath    = "/health"
	InfoPath      = "/info"
	CalculatePath = "/calculate"
)

var Endpoints = []string{HomePath, HealthPath, InfoPath, CalculatePath}
