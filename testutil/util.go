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

package testutil

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// T wraps a *testing.T with assertion helpers and value overrides that are
// restored when the test ends.
type T struct {
	*testing.T
}

// Run runs f as a subtest of t named name.
func Run(t *testing.T, name string, f func(t *T)) {
	t.Helper()
	if name == "" {
		f(&T{T: t})
		return
	}

	t.Run(name, func(t *testing.T) {
		t.Helper()
		f(&T{T: t})
	})
}

// Override sets the value pointed to by dest to tmp and restores the
// original value on cleanup. dest must be a pointer to a value of tmp's type.
func (t *T) Override(dest, tmp interface{}) {
	t.Helper()

	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr {
		t.Fatalf("Override expects a pointer, got %T", dest)
	}
	elem := v.Elem()

	original := reflect.New(elem.Type()).Elem()
	original.Set(elem)

	if tmp == nil {
		elem.Set(reflect.Zero(elem.Type()))
	} else {
		elem.Set(reflect.ValueOf(tmp))
	}

	t.Cleanup(func() {
		elem.Set(original)
	})
}

func (t *T) CheckNoError(err error) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}

func (t *T) CheckError(shouldErr bool, err error) {
	t.Helper()
	if err := checkErr(shouldErr, err); err != nil {
		t.Error(err)
	}
}

func (t *T) CheckErrorContains(message string, err error) {
	t.Helper()
	if err == nil {
		t.Errorf("expected error containing %q, but returned none", message)
		return
	}
	if !strings.Contains(err.Error(), message) {
		t.Errorf("expected error containing %q, got %q", message, err.Error())
	}
}

func (t *T) CheckDeepEqual(expected, actual interface{}, opts ...cmp.Option) {
	t.Helper()
	CheckDeepEqual(t.T, expected, actual, opts...)
}

func (t *T) CheckErrorAndDeepEqual(shouldErr bool, err error, expected, actual interface{}, opts ...cmp.Option) {
	t.Helper()
	if err := checkErr(shouldErr, err); err != nil {
		t.Error(err)
		return
	}
	CheckDeepEqual(t.T, expected, actual, opts...)
}

func (t *T) CheckContains(expected, actual string) {
	t.Helper()
	if !strings.Contains(actual, expected) {
		t.Errorf("expected output to contain %q, but it didn't.\nActual:\n%s", expected, actual)
	}
}

func (t *T) CheckNotContains(unexpected, actual string) {
	t.Helper()
	if strings.Contains(actual, unexpected) {
		t.Errorf("expected output not to contain %q, but it did.\nActual:\n%s", unexpected, actual)
	}
}

func (t *T) CheckEmpty(actual string) {
	t.Helper()
	if actual != "" {
		t.Errorf("expected empty string, got %q", actual)
	}
}

func (t *T) CheckTrue(actual bool) {
	t.Helper()
	if !actual {
		t.Error("expected true, got false")
	}
}

// SetEnvs sets each variable with t.Setenv, so they are restored after the test.
func (t *T) SetEnvs(envs map[string]string) {
	for key, value := range envs {
		t.Setenv(key, value)
	}
}

// UnsetEnv removes key from the environment for the duration of the test.
func (t *T) UnsetEnv(key string) {
	// t.Setenv registers the restore and marks the test as non-parallel.
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("cannot unset environment variable: %v", err)
	}
}

func CheckDeepEqual(t *testing.T, expected, actual interface{}, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(actual, expected, opts...); diff != "" {
		t.Errorf("%T differ (-got, +want): %s", expected, diff)
	}
}

func checkErr(shouldErr bool, err error) error {
	if err == nil && shouldErr {
		return errors.New("expected error, but returned none")
	}
	if err != nil && !shouldErr {
		return fmt.Errorf("unexpected error: %s", err)
	}
	return nil
}
