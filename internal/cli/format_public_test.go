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

package cli_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/envscope/internal/cli"
)

type FormatTestSuite struct {
	suite.Suite
}

func TestFormatTestSuite(t *testing.T) {
	suite.Run(t, new(FormatTestSuite))
}

func (suite *FormatTestSuite) TestRenderJSON() {
	out, err := cli.RenderJSON(map[string]string{"name": "PATH"})
	suite.NoError(err)
	suite.Equal("{\n  \"name\": \"PATH\"\n}\n", out)
}

func (suite *FormatTestSuite) TestRenderShell() {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{
			name: "when multiple vars sorts by name",
			vars: map[string]string{
				"ZED":   "z",
				"ALPHA": "a",
			},
			want: "export ALPHA='a'\nexport ZED='z'\n",
		},
		{
			name: "when a value has a single quote escapes it",
			vars: map[string]string{
				"GREETING": "it's fine",
			},
			want: "export GREETING='it'\\''s fine'\n",
		},
		{
			name: "when empty renders nothing",
			vars: map[string]string{},
			want: "",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.want, cli.RenderShell(tc.vars))
		})
	}
}

func (suite *FormatTestSuite) TestRenderMarkdown() {
	out := cli.RenderMarkdown(
		[]string{"NAME", "VALUE"},
		[][]string{
			{"PATH", "/usr/bin"},
			{"ODD", "a|b"},
		},
	)

	suite.Contains(out, "| NAME | VALUE |")
	suite.Contains(out, "| --- | --- |")
	suite.Contains(out, "| PATH | /usr/bin |")
	suite.Contains(out, `| ODD | a\|b |`)
}

func (suite *FormatTestSuite) TestWriteOutput() {
	appFs := afero.NewMemMapFs()

	suite.NoError(cli.WriteOutput(appFs, "/tmp/out.json", "content\n"))

	data, err := afero.ReadFile(appFs, "/tmp/out.json")
	suite.NoError(err)
	suite.Equal("content\n", string(data))
}
