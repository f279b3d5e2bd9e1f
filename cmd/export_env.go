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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retr0h/envscope/internal/cli"
	"github.com/retr0h/envscope/internal/env"
)

var (
	exportEnvScope  string
	exportEnvFormat string
	exportEnvOutput string
)

// exportEnvCmd represents the exportEnv command.
var exportEnvCmd = &cobra.Command{
	Use:   "env",
	Short: "Export managed variables",
	Long: `Export managed variables, optionally filtered by scope, as json,
markdown, or shell. Exports carry raw values.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		s := getServices()

		var (
			vars []*env.Variable
			err  error
		)
		if exportEnvScope != "" {
			vars, err = s.varManager.ByScope(ctx, parseScopeArg(exportEnvScope))
		} else {
			vars, err = s.varManager.List(ctx)
		}
		if err != nil {
			cli.LogFatal(logger, "failed to list variables", err)
		}

		var content string
		switch exportEnvFormat {
		case cli.FormatShell:
			values := make(map[string]string, len(vars))
			for _, v := range vars {
				values[v.Name] = v.Value
			}
			content = cli.RenderShell(values)
		case cli.FormatMarkdown:
			rows := make([][]string, 0, len(vars))
			for _, v := range vars {
				rows = append(rows, []string{
					v.Name,
					v.Value,
					v.Scope.String(),
					v.UpdatedAt.Format("2006-01-02 15:04:05"),
				})
			}
			content = cli.RenderMarkdown([]string{"Name", "Value", "Scope", "Updated"}, rows)
		default:
			records := make([]env.Record, 0, len(vars))
			for _, v := range vars {
				records = append(records, v.ToRecord())
			}
			content, err = cli.RenderJSON(records)
			if err != nil {
				cli.LogFatal(logger, "failed to render output", err)
			}
		}

		if err := cli.WriteOutput(appFs, exportEnvOutput, content); err != nil {
			cli.LogFatal(logger, "failed to write output", err)
		}

		if exportEnvOutput != "" {
			fmt.Println()
			cli.PrintKV("Variables", fmt.Sprintf("%d", len(vars)), "File", exportEnvOutput)
		}
	},
}

func init() {
	exportCmd.AddCommand(exportEnvCmd)
	exportEnvCmd.Flags().
		StringVarP(&exportEnvScope, "scope", "s", "", "Filter by scope (system|user|process)")
	exportEnvCmd.Flags().
		StringVar(&exportEnvFormat, "format", cli.FormatJSON, "Output format (json|markdown|shell)")
	exportEnvCmd.Flags().
		StringVarP(&exportEnvOutput, "output", "o", "", "Output file path (default stdout)")
}
