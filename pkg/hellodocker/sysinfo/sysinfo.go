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

package sysinfo

import (
	"os"
	"runtime"

	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/constants"
)

// Info is a snapshot of the runtime and process environment.
type Info struct {
	GoVersion   string
	OS          string
	Arch        string
	GoRoot      string
	Environment string
}

// for testing
var (
	goVersion = runtime.Version
	goRoot    = goRootFromEnv
)

// goRootFromEnv prefers $GOROOT. runtime.GOROOT is deprecated as of Go 1.24
// and may be empty for binaries built with -trimpath.
func goRootFromEnv() string {
	if root := os.Getenv("GOROOT"); root != "" {
		return root
	}
	return runtime.GOROOT()
}

// Collect samples the runtime and looks up the environment label with getenv.
// A nil getenv falls back to os.Getenv.
func Collect(getenv func(string) string) Info {
	if getenv == nil {
		getenv = os.Getenv
	}
	env := getenv(constants.EnvironmentVar)
	if env == "" {
		env = constants.EnvironmentNotSet
	}

	return Info{
		GoVersion:   goVersion(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		GoRoot:      goRoot(),
		Environment: env,
	}
}
