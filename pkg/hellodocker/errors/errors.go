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
	"regexp"
)

// These are phases of a hello-docker process
const (
	Startup     = Phase("Startup")
	Serve       = Phase("Serve")
	HealthCheck = Phase("HealthCheck")
)

// Process exit codes. The healthcheck command reports unhealthy with
// ExitFailure, the only failure code Docker's HEALTHCHECK accepts.
const (
	ExitOK      = 0
	ExitFailure = 1
)

var (
	// ErrNoSuggestionFound error not found
	ErrNoSuggestionFound = fmt.Errorf("no suggestions found")
)

type Phase string

// Error is an error raised during a phase that carries the process exit code.
type Error struct {
	phase Phase
	code  int
	cause error
}

func NewError(phase Phase, code int, cause error) *Error {
	return &Error{phase: phase, code: code, cause: cause}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed: %s", e.phase, e.cause)
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) ExitCode() int { return e.code }

func (e *Error) Phase() Phase { return e.phase }

// ExitCode returns the exit code carried by err, ExitOK for nil and
// ExitFailure for any error without one.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return ExitFailure
}

type problem struct {
	regexp      *regexp.Regexp
	description string
	suggestion  func(port int) string
}

var knownProblems = []problem{
	{
		regexp:      re(`(?i)address already in use`),
		description: "Port already in use",
		suggestion: func(port int) string {
			return fmt.Sprintf("Stop the process listening on port %d or choose another port with `--port`", port)
		},
	},
	{
		regexp:      re(`(?i)permission denied`),
		description: "Not allowed to bind the port",
		suggestion: func(port int) string {
			return fmt.Sprintf("Ports below 1024 need extra privileges; use a port above 1024 instead of %d", port)
		},
	},
	{
		regexp:      re(`(?i)connection refused`),
		description: "Server not reachable",
		suggestion: func(port int) string {
			return fmt.Sprintf("Check that the server is running and listening on port %d", port)
		},
	},
}

// ShowAIError matches err against known problems and returns an actionable
// message, or ErrNoSuggestionFound.
func ShowAIError(err error, port int) error {
	for _, p := range knownProblems {
		if p.regexp.MatchString(err.Error()) {
			return fmt.Errorf("%s. %s", p.description, p.suggestion(port))
		}
	}
	return ErrNoSuggestionFound
}

func re(s string) *regexp.Regexp {
	return regexp.MustCompile(s)
}
