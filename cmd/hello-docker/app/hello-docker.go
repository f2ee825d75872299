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

package app

import (
	"context"
	"io"

	"github.com/GoogleContainerTools/hello-docker/cmd/hello-docker/app/cmd"
	sErrors "github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/errors"
)

// Run executes the hello-docker command line against os.Args.
func Run(out, stderr io.Writer) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := cmd.NewHelloDockerCommand(out, stderr)
	return c.ExecuteContext(ctx)
}

// ExitCode maps an error returned by Run to a process exit code.
func ExitCode(err error) int {
	return sErrors.ExitCode(err)
}

// Flush exports pending telemetry before exiting with code.
func Flush(code int) {
	cmd.Flush(context.Background(), code)
}
