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
	envListScope  string
	envListFormat string
)

// envListCmd represents the envList command.
var envListCmd = &cobra.Command{
	Use:   "list",
	Short: "List managed environment variables",
	Long: `List managed environment variables, optionally filtered by scope.

Table output masks values that look sensitive; json and shell output
carry raw values.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		s := getServices()

		var (
			vars []*env.Variable
			err  error
		)
		if envListScope != "" {
			vars, err = s.varManager.ByScope(ctx, parseScopeArg(envListScope))
		} else {
			vars, err = s.varManager.List(ctx)
		}
		if err != nil {
			cli.LogFatal(logger, "failed to list variables", err)
		}

		switch envListFormat {
		case cli.FormatJSON:
			records := make([]env.Record, 0, len(vars))
			for _, v := range vars {
				records = append(records, v.ToRecord())
			}
			out, err := cli.RenderJSON(records)
			if err != nil {
				cli.LogFatal(logger, "failed to render output", err)
			}
			fmt.Print(out)
		case cli.FormatShell:
			values := make(map[string]string, len(vars))
			for _, v := range vars {
				values[v.Name] = v.Value
			}
			fmt.Print(cli.RenderShell(values))
		default:
			if len(vars) == 0 {
				fmt.Println("  No variables found.")
				return
			}

			rows := make([][]string, 0, len(vars))
			for _, v := range vars {
				rows = append(rows, []string{
					v.Name,
					env.MaskValue(v.Value),
					v.Scope.String(),
					v.UpdatedAt.Format("2006-01-02 15:04:05"),
				})
			}

			cli.PrintCompactTable([]cli.Section{
				{
					Title:   "Variables",
					Headers: []string{"NAME", "VALUE", "SCOPE", "UPDATED"},
					Rows:    rows,
				},
			})
		}
	},
}

func init() {
	envCmd.AddCommand(envListCmd)
	envListCmd.Flags().
		StringVarP(&envListScope, "scope", "s", "", "Filter by scope (system|user|process)")
	envListCmd.Flags().
		StringVar(&envListFormat, "format", cli.FormatTable, "Output format (table|json|shell)")
}
