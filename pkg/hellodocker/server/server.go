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
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/config"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/constants"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/handlers"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/output/log"
)

// for testing
var forceShutdownTimeout = constants.ShutdownTimeout

// Server is the demo HTTP listener.
type Server struct {
	out  io.Writer
	opts *config.Options
	srv  *http.Server
}

// New creates a Server that writes its startup banner to out.
func New(out io.Writer, opts *config.Options) *Server {
	return &Server{
		out:  out,
		opts: opts,
		srv:  &http.Server{
			Addr:    opts.Addr(),
			Handler: Handler(handlers.New(opts).Routes()),
		},
	}
}

// Handler dispatches requests by exact path. Paths without a route get the
// default ServeMux not-found response.
func Handler(routes map[string]http.HandlerFunc) http.Handler {
	mux := http.NewServeMux()
	for path, h := range routes {
		pattern := path
		if path == constants.HomePath {
			// "/" alone would match every path.
			pattern = "/{$}"
		}
		mux.HandleFunc(pattern, h)
	}
	return instrument(mux)
}

// Listen binds the configured address.
func (s *Server) Listen() (net.Listener, error) {
	l, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("binding %s: %w", s.srv.Addr, err)
	}
	return l, nil
}

// Serve prints the banner and serves on l until ctx is cancelled, then shuts
// the server down, letting in-flight requests finish for a short while.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	port := s.opts.Port
	if addr, ok := l.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	PrintBanner(s.out, port)
	log.Entry(ctx).Infof("listening on %s", l.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Entry(ctx).Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), forceShutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return s.srv.Close()
		}
		return nil
	})
	return g.Wait()
}
