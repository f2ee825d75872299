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

package healthcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/output/log"
)

const requestTimeout = 2 * time.Second

// for testing
var newBackOff = func() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxElapsedTime = 10 * time.Second
	return b
}

// Probe requests url until it answers 200 OK or retries additional attempts
// have failed.
func Probe(ctx context.Context, url string, retries uint64) error {
	client := &http.Client{Timeout: requestTimeout}
	attempt := 0

	check := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		resp, err := client.Do(req)
		if err != nil {
			log.Entry(ctx).Debugf("health check attempt %d failed: %v", attempt, err)
			return err
		}
		defer resp.Body.Close()
		io.Copy(io.Discard, resp.Body)

		if resp.StatusCode != http.StatusOK {
			log.Entry(ctx).Debugf("health check attempt %d: status %d", attempt, resp.StatusCode)
			return fmt.Errorf("%s returned %s", url, resp.Status)
		}
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(newBackOff(), retries), ctx)
	if err := backoff.Retry(check, b); err != nil {
		return fmt.Errorf("health check failed after %d attempt(s): %w", attempt, err)
	}
	return nil
}
