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
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/GoogleContainerTools/hello-docker/testutil"
)

func TestMainHelp(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		t.Override(&os.Args, []string{"hello-docker", "help"})

		var (
			output    bytes.Buffer
			errOutput bytes.Buffer
		)
		err := Run(&output, &errOutput)

		t.CheckNoError(err)
		t.CheckContains("hello-docker serves a home page", output.String())
		t.CheckContains("healthcheck", output.String())
		t.CheckContains("--port", output.String())
		t.CheckEmpty(errOutput.String())
	})
}

func TestMainUnknownCommand(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		t.Override(&os.Args, []string{"hello-docker", "unknown"})

		err := Run(io.Discard, io.Discard)

		t.CheckError(true, err)
		t.CheckDeepEqual(1, ExitCode(err))
	})
}

func TestMainVersion(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		t.Override(&os.Args, []string{"hello-docker", "version"})

		var output bytes.Buffer
		err := Run(&output, io.Discard)

		t.CheckNoError(err)
		t.CheckDeepEqual(0, ExitCode(err))
		t.CheckContains("v0.0.0-dev", output.String())
	})
}
