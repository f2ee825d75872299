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

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/constants"
	sErrors "github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/errors"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/healthcheck"
)

var retries uint64

// NewCmdHealthcheck describes the CLI command probing a running server, for
// use as a container HEALTHCHECK in images without curl.
func NewCmdHealthcheck(out io.Writer) *cobra.Command {
	return NewCmd(out, "healthcheck").
		WithDescription("Check that a server on this host is healthy").
		WithLongDescription("Requests /health on localhost and exits 0 if it answers 200 OK, 1 otherwise.").
		WithExample("Probe the default port", "healthcheck").
		WithExample("Probe port 9090, retrying up to 3 times", "healthcheck --port 9090 --retries 3").
		WithFlags(func(f *pflag.FlagSet) {
			f.Uint64Var(&retries, "retries", 0, "Additional attempts, with exponential backoff, before reporting unhealthy")
		}).
		NoArgs(doHealthcheck)
}

func doHealthcheck(ctx context.Context, out io.Writer) error {
	if err := healthcheck.Probe(ctx, opts.LocalURL(constants.HealthPath), retries); err != nil {
		if suggestion := sErrors.ShowAIError(err, opts.Port); !errors.Is(suggestion, sErrors.ErrNoSuggestionFound) {
			logrus.Warn(suggestion)
		}
		return sErrors.NewError(sErrors.HealthCheck, sErrors.ExitFailure, err)
	}
	fmt.Fprintln(out, "healthy")
	return nil
}
