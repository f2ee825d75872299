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

// Package page renders the HTML documents served by hello-docker.
//
// Nothing here escapes its input: titles, fragments and cell values are
// written verbatim.
package page

import (
	"strings"
)

const stylesheet = "body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; background-color: #f0f0f0; }" +
	"h1 { color: #333; border-bottom: 3px solid #4CAF50; padding-bottom: 10px; }" +
	"h2 { color: #555; }" +
	"a { color: #2196F3; text-decoration: none; }" +
	"a:hover { text-decoration: underline; }" +
	".container { background-color: white; padding: 30px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }" +
	"ul { line-height: 1.8; }"

// Accent colors for table header rows.
const (
	Green = "#4CAF50"
	Blue  = "#2196F3"
)

const cellStyle = "border: 1px solid #ddd; padding: 8px;"

// BackLink points at the home page.
const BackLink = "<p><a href='/'>← Back to Home</a></p>"

// Build wraps content in a complete HTML document titled title.
func Build(title, content string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>")
	b.WriteString("<html>")
	b.WriteString("<head>")
	b.WriteString("<meta charset='UTF-8'>")
	b.WriteString("<title>" + title + "</title>")
	b.WriteString("<style>" + stylesheet + "</style>")
	b.WriteString("</head>")
	b.WriteString("<body>")
	b.WriteString("<div class='container'>")
	b.WriteString("<h1>" + title + "</h1>")
	b.WriteString(content)
	b.WriteString("</div>")
	b.WriteString("</body>")
	b.WriteString("</html>")
	return b.String()
}

// Row is a two-column table row.
type Row struct {
	Key   string
	Value string
}

// Table renders a two-column table whose header cells use accent as background.
func Table(accent string, header Row, rows ...Row) string {
	th := "<th style='" + cellStyle + " text-align: left; background-color: " + accent + "; color: white;'>"

	var b strings.Builder
	b.WriteString("<table style='border-collapse: collapse; width: 100%;'>")
	b.WriteString("<tr>" + th + header.Key + "</th>" + th + header.Value + "</th></tr>")
	for _, r := range rows {
		b.WriteString("<tr>" + Cell(r.Key) + Cell(r.Value) + "</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}

// Cell renders a single body cell.
func Cell(value string) string {
	return "<td style='" + cellStyle + "'>" + value + "</td>"
}
