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

package color

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Color is an ANSI foreground color code.
type Color int

const (
	Default Color = 0
	Green   Color = 32
)

// Sprint formats a like fmt.Sprint and wraps the result in c's escape codes.
func (c Color) Sprint(a ...interface{}) string {
	if c == Default {
		return fmt.Sprint(a...)
	}
	return fmt.Sprintf("\033[%dm%s\033[0m", c, fmt.Sprint(a...))
}

// IsTerminal will check if the specified output stream is a terminal. This can be changed
// for testing to an arbitrary method.
var IsTerminal = isTerminal

func wrapTextIfTerminal(out io.Writer, c Color, a ...interface{}) string {
	if IsTerminal(out) {
		return c.Sprint(a...)
	}
	return fmt.Sprint(a...)
}

// Fprintln wraps the operands in the color ANSI escape codes, and outputs the result to
// out, followed by a newline. If out is not a terminal, the escape codes will not be added.
func Fprintln(out io.Writer, c Color, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(out, wrapTextIfTerminal(out, c, a...))
}

type descriptor interface {
	Fd() uintptr
}

// This implementation comes from logrus, which doesn't expose a public
// interface we can use to call it.
func isTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return term.IsTerminal(int(v.Fd()))
	case descriptor:
		return term.IsTerminal(int(v.Fd()))
	default:
		return false
	}
}
