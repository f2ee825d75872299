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
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/config"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/instrumentation"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/version"
)

var opts = config.NewOptions()

// NewHelloDockerCommand creates the root command. Run without a subcommand,
// it serves the demo pages like `hello-docker serve`.
func NewHelloDockerCommand(out, errOut io.Writer) *cobra.Command {
	opts = config.NewOptions()

	rootCmd := &cobra.Command{
		Use:   "hello-docker",
		Short: "A demo web server for multi-stage Docker builds.",
		Long: "hello-docker serves a home page, a health check, system information and a\n" +
			"sample calculation over HTTP. It exists to be packaged into a container image.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return doServe(cmd.Context(), out)
		},
	}

	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		if err := SetUpLogs(errOut, opts.Verbosity); err != nil {
			return err
		}
		info := version.Get()
		logrus.Debugf("hello-docker %+v", info)
		if _, err := info.Semver(); err != nil {
			logrus.Warnf("build version %q: %v", info.Version, err)
		}

		if err := opts.LoadEnvFile(); err != nil {
			return errors.Wrap(err, "reading env file")
		}
		if _, _, err := instrumentation.InitTraceFromEnvVar(); err != nil {
			logrus.Warnf("tracing disabled: %v", err)
		}
		if err := instrumentation.InitMeterFromEnvVar(); err != nil {
			logrus.Warnf("metrics disabled: %v", err)
		}
		return nil
	}

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.AddCommand(NewCmdServe(out))
	rootCmd.AddCommand(NewCmdHealthcheck(out))
	rootCmd.AddCommand(NewCmdVersion(out))

	rootCmd.PersistentFlags().StringVarP(&opts.Verbosity, "verbosity", "v", opts.Verbosity, "Log level (debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().IntVarP(&opts.Port, "port", "p", opts.Port, "TCP port the server listens on, on all interfaces")
	rootCmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "Optional dotenv file loaded into the environment before starting; variables already set win")

	return rootCmd
}

// SetUpLogs sends logs to out at the given level.
func SetUpLogs(out io.Writer, level string) error {
	logrus.SetOutput(out)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	return nil
}

const flushTimeout = 5 * time.Second

// Flush exports pending spans and metrics.
func Flush(ctx context.Context, exitCode int) {
	ctx, cancel := context.WithTimeout(ctx, flushTimeout)
	defer cancel()
	instrumentation.ShutdownAndFlush(ctx, exitCode)
}
