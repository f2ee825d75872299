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

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/constants"
)

// Options are the process options set through command line flags.
type Options struct {
	Port      int
	Verbosity string
	EnvFile   string

	// Getenv looks up environment variables at request time.
	Getenv func(string) string
	// Now returns the server time shown on pages.
	Now func() time.Time
}

// NewOptions returns Options with the defaults used when no flag is given.
func NewOptions() *Options {
	return &Options{
		Port:      constants.DefaultPort,
		Verbosity: constants.DefaultLogLevel.String(),
		Getenv:    os.Getenv,
		Now:       time.Now,
	}
}

// Addr is the listen address: all interfaces on Port.
func (o *Options) Addr() string {
	return fmt.Sprintf(":%d", o.Port)
}

// LocalURL is the address used to reach the server from the same host.
func (o *Options) LocalURL(path string) string {
	return fmt.Sprintf("http://localhost:%d%s", o.Port, path)
}

// LoadEnvFile reads EnvFile, if set, into the process environment.
// Variables that are already set are left untouched.
func (o *Options) LoadEnvFile() error {
	if o.EnvFile == "" {
		return nil
	}
	if err := godotenv.Load(o.EnvFile); err != nil {
		return fmt.Errorf("loading env file %q: %w", o.EnvFile, err)
	}
	return nil
}
