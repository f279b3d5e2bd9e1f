// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Output format names accepted by --format flags.
const (
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatShell    = "shell"
	FormatMarkdown = "markdown"
)

// RenderJSON marshals v with two-space indentation.
func RenderJSON(
	v any,
) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}

	return string(data) + "\n", nil
}

// RenderShell renders name to value pairs as export statements, sorted
// by name, with values single-quoted for safe sourcing.
func RenderShell(
	vars map[string]string,
) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString("export ")
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(shellQuote(vars[name]))
		b.WriteString("\n")
	}

	return b.String()
}

// shellQuote single-quotes a value, escaping embedded single quotes.
func shellQuote(
	s string,
) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// RenderMarkdown renders a markdown table. Pipes in cells are escaped.
func RenderMarkdown(
	headers []string,
	rows [][]string,
) string {
	var b strings.Builder

	b.WriteString("| ")
	b.WriteString(strings.Join(headers, " | "))
	b.WriteString(" |\n|")
	for range headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(headers))
		for i := range headers {
			if i < len(row) {
				cells[i] = strings.ReplaceAll(row[i], "|", `\|`)
			}
		}
		b.WriteString("| ")
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString(" |\n")
	}

	return b.String()
}
