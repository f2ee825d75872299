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

package page

import (
	"strings"
	"testing"

	"github.com/GoogleContainerTools/hello-docker/testutil"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		description string
		title       string
		content     string
		expected    []string
	}{
		{
			description: "wraps content",
			title:       "Health Check",
			content:     "<p>ok</p>",
			expected: []string{
				"<!DOCTYPE html><html><head><meta charset='UTF-8'><title>Health Check</title>",
				"<div class='container'><h1>Health Check</h1><p>ok</p></div></body></html>",
			},
		},
		{
			description: "does not escape",
			title:       "<b>bold</b>",
			content:     "<script>x</script>",
			expected:    []string{"<title><b>bold</b></title>", "<h1><b>bold</b></h1><script>x</script>"},
		},
		{
			description: "carries the stylesheet",
			title:       "t",
			expected:    []string{"<style>body { font-family: Arial, sans-serif;", ".container { background-color: white;"},
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			html := Build(test.title, test.content)

			for _, e := range test.expected {
				t.CheckContains(e, html)
			}
		})
	}
}

func TestTable(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		html := Table(Blue, Row{"Operation", "Result"}, Row{"10 + 20", "30"}, Row{"20 - 5", "15"})

		t.CheckTrue(strings.HasPrefix(html, "<table style='border-collapse: collapse; width: 100%;'>"))
		t.CheckTrue(strings.HasSuffix(html, "</table>"))
		t.CheckContains("background-color: #2196F3; color: white;'>Operation</th>", html)
		t.CheckContains("<tr><td style='border: 1px solid #ddd; padding: 8px;'>10 + 20</td><td style='border: 1px solid #ddd; padding: 8px;'>30</td></tr>", html)
		t.CheckDeepEqual(3, strings.Count(html, "<tr>"))
	})
}
