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

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/calculator"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/config"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/constants"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/output/log"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/page"
	"github.com/GoogleContainerTools/hello-docker/pkg/hellodocker/sysinfo"
)

// Handlers serves the demo pages. All handlers are stateless; the clock and
// environment lookup are only read.
type Handlers struct {
	now    func() time.Time
	getenv func(string) string
}

func New(opts *config.Options) *Handlers {
	h := &Handlers{now: time.Now}
	if opts != nil {
		if opts.Now != nil {
			h.now = opts.Now
		}
		h.getenv = opts.Getenv
	}
	return h
}

// Routes maps each served path to its handler.
func (h *Handlers) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		constants.HomePath:      h.Home,
		constants.HealthPath:    h.Health,
		constants.InfoPath:      h.Info,
		constants.CalculatePath: h.Calculate,
	}
}

func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	send(w, r, page.Build(
		"Welcome to Multi-Stage Docker Demo!",
		"<h2>Go Application Running in Docker</h2>"+
			"<p>This application demonstrates multi-stage Docker builds.</p>"+
			"<h3>Available Endpoints:</h3>"+
			"<ul>"+
			"<li><a href='/health'>/health</a> - Health check endpoint</li>"+
			"<li><a href='/info'>/info</a> - System information</li>"+
			"<li><a href='/calculate'>/calculate</a> - Sample calculation</li>"+
			"</ul>"+
			"<p><strong>Time:</strong> "+h.timestamp()+"</p>",
	))
}

// Health always reports healthy: there are no dependencies to check.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	send(w, r, page.Build(
		"Health Check",
		"<h2>✅ Application Status: Healthy</h2>"+
			"<p><strong>Status:</strong> Running</p>"+
			"<p><strong>Timestamp:</strong> "+h.timestamp()+"</p>"+
			page.BackLink,
	))
}

func (h *Handlers) Info(w http.ResponseWriter, r *http.Request) {
	info := sysinfo.Collect(h.getenv)
	send(w, r, page.Build(
		"System Information",
		"<h2>System Information</h2>"+
			page.Table(page.Green, page.Row{Key: "Property", Value: "Value"},
				page.Row{Key: "Go Version", Value: info.GoVersion},
				page.Row{Key: "OS Name", Value: info.OS},
				page.Row{Key: "OS Architecture", Value: info.Arch},
				page.Row{Key: "Go Root", Value: info.GoRoot},
				page.Row{Key: "Environment", Value: info.Environment},
			)+
			page.BackLink,
	))
}

func (h *Handlers) Calculate(w http.ResponseWriter, r *http.Request) {
	var rows []page.Row
	for _, op := range calculator.Demo() {
		rows = append(rows, page.Row{Key: op.Label, Value: strconv.Itoa(op.Result)})
	}
	send(w, r, page.Build(
		"Calculator Demo",
		"<h2>Calculator Results</h2>"+
			page.Table(page.Blue, page.Row{Key: "Operation", Value: "Result"}, rows...)+
			page.BackLink,
	))
}

func (h *Handlers) timestamp() string {
	return h.now().Format(constants.TimestampFormat)
}

func send(w http.ResponseWriter, r *http.Request, html string) {
	w.Header().Set("Content-Type", constants.ContentTypeHTML)
	w.Header().Set("Content-Length", strconv.Itoa(len(html)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Entry(r.Context()).Debugf("writing response: %v", err)
	}
}
