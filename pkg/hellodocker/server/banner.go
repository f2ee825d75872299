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
	"fmt"
	"io"

	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/color"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/constants"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/version"
)

const separator = "========================================"

// PrintBanner writes the startup banner listing the endpoints reachable on port.
func PrintBanner(out io.Writer, port int) {
	base := fmt.Sprintf("http://localhost:%d", port)

	color.Fprintln(out, color.Green, separator)
	fmt.Fprintln(out, "  Go Web Server Started!")
	color.Fprintln(out, color.Green, separator)
	fmt.Fprintf(out, "Version: %s\n", version.Get().Version)
	fmt.Fprintf(out, "Server running on: %s\n", base)
	fmt.Fprintln(out, "Endpoints:")
	for _, path := range constants.Endpoints {
		fmt.Fprintf(out, "  - %s%s\n", base, path)
	}
	color.Fprintln(out, color.Green, separator)
}
