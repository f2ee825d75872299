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

package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/blang/semver"
)

// Set at build time with -ldflags "-X".
var version, gitCommit, buildDate string

type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the version and buildtime information about the binary.
func Get() *Info {
	v := version
	if v == "" {
		v = "v0.0.0-dev"
	}
	return &Info{
		Version:   v,
		GitCommit: gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Semver parses the version as a semantic version. Version keeps the raw
// string either way.
func (i *Info) Semver() (semver.Version, error) {
	return ParseVersion(i.Version)
}

// ParseVersion parses a version string into a semver.Version, with or
// without a leading "v".
func ParseVersion(v string) (semver.Version, error) {
	parsed, err := semver.Parse(strings.TrimPrefix(strings.TrimSpace(v), "v"))
	if err != nil {
		return semver.Version{}, fmt.Errorf("parsing semver: %w", err)
	}
	return parsed, nil
}
