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

package proc

import (
	"strings"
	"unicode/utf8"
)

// maxNameLength bounds sanitized process names.
const maxNameLength = 255

// invalidNameChars are replaced with underscores during sanitization.
const invalidNameChars = `/\:*?"<>|`

// SanitizeName normalizes a raw process name for display and matching:
// each invalid character becomes an underscore, surrounding whitespace
// is trimmed, an empty result becomes "unknown", and overly long names
// are truncated with a trailing ellipsis.
func SanitizeName(
	name string,
) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if strings.ContainsRune(invalidNameChars, r) {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "unknown"
	}

	if len(out) > maxNameLength {
		cut := maxNameLength - 3
		// back up so the cut never splits a multi-byte rune
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = out[:cut] + "..."
	}

	return out
}
