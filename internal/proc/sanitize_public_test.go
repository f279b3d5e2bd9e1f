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

package proc_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/envscope/internal/proc"
)

type SanitizeTestSuite struct {
	suite.Suite
}

func TestSanitizeTestSuite(t *testing.T) {
	suite.Run(t, new(SanitizeTestSuite))
}

func (suite *SanitizeTestSuite) TestSanitizeName() {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "when name is plain passes through",
			input: "nginx",
			want:  "nginx",
		},
		{
			name:  "when name has path separators replaces them",
			input: "usr/bin/python",
			want:  "usr_bin_python",
		},
		{
			name:  "when name has windows style characters replaces them",
			input: `svc:host*?"<>|`,
			want:  "svc_______",
		},
		{
			name:  "when name has surrounding whitespace trims it",
			input: "  bash  ",
			want:  "bash",
		},
		{
			name:  "when name is empty falls back to unknown",
			input: "",
			want:  "unknown",
		},
		{
			name:  "when name is only whitespace falls back to unknown",
			input: "   ",
			want:  "unknown",
		},
		{
			name:  "when name is too long truncates with an ellipsis",
			input: strings.Repeat("a", 300),
			want:  strings.Repeat("a", 252) + "...",
		},
		{
			name:  "when truncation lands mid rune backs up to a rune boundary",
			input: "a" + strings.Repeat("世", 100),
			want:  "a" + strings.Repeat("世", 83) + "...",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			got := proc.SanitizeName(tc.input)
			suite.Equal(tc.want, got)
			suite.LessOrEqual(len(got), 255)
			suite.NotEmpty(got)
			suite.True(utf8.ValidString(got))
		})
	}
}
