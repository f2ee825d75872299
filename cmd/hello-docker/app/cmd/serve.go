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
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sErrors "github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/errors"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/server"
)

// NewCmdServe describes the CLI command to serve the demo pages.
func NewCmdServe(out io.Writer) *cobra.Command {
	return NewCmd(out, "serve").
		WithDescription("Serve the demo pages").
		WithLongDescription("Serves /, /health, /info and /calculate until interrupted. This is also what hello-docker does when run without a command.").
		WithExample("Serve on the default port 8080", "serve").
		WithExample("Serve on another port, with the environment label read from a file", "serve --port 9090 --env-file .env").
		NoArgs(doServe)
}

func doServe(ctx context.Context, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	catchStopSignals(ctx, cancel)

	srv := server.New(out, opts)
	l, err := srv.Listen()
	if err != nil {
		if suggestion := sErrors.ShowAIError(err, opts.Port); !errors.Is(suggestion, sErrors.ErrNoSuggestionFound) {
			logrus.Warn(suggestion)
		}
		return errors.Wrap(sErrors.NewError(sErrors.Startup, sErrors.ExitFailure, err), "starting server")
	}

	if err := srv.Serve(ctx, l); err != nil {
		return sErrors.NewError(sErrors.Serve, sErrors.ExitFailure, err)
	}
	return nil
}

// catchStopSignals cancels on SIGINT or SIGTERM, which is what `docker stop` sends.
func catchStopSignals(ctx context.Context, cancel context.CancelFunc) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case sig := <-signals:
			logrus.Infof("received %s", sig)
			cancel()
		case <-ctx.Done():
		}
	}()
}
