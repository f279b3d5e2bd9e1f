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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retr0h/envscope/internal/cli"
)

// contextListCmd represents the contextList command.
var contextListCmd = &cobra.Command{
	Use:   "list",
	Short: "List named contexts",
	Long: `List all named contexts with their variable counts.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		s := getServices()

		contexts, err := s.ctxManager.List(ctx)
		if err != nil {
			cli.LogFatal(logger, "failed to list contexts", err)
		}

		if len(contexts) == 0 {
			fmt.Println("  No contexts found.")
			return
		}

		rows := make([][]string, 0, len(contexts))
		for _, c := range contexts {
			rows = append(rows, []string{
				c.Name,
				c.Description,
				strconv.Itoa(c.VariableCount()),
				c.UpdatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		cli.PrintCompactTable([]cli.Section{
			{
				Title:   "Contexts",
				Headers: []string{"NAME", "DESCRIPTION", "VARIABLES", "UPDATED"},
				Rows:    rows,
			},
		})
	},
}

func init() {
	contextCmd.AddCommand(contextListCmd)
}
