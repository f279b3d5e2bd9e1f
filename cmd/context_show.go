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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/retr0h/envscope/internal/cli"
	"github.com/retr0h/envscope/internal/env"
)

// contextShowCmd represents the contextShow command.
var contextShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show one context and its variables",
	Long: `Show one context with its member variables. Members whose variables
have since been deleted are listed by id only.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := getServices()

		c, err := s.ctxManager.GetByName(ctx, args[0])
		if err != nil {
			cli.LogFatal(logger, "failed to get context", err, "name", args[0])
		}

		fmt.Println()
		cli.PrintKV("Name", c.Name, "ID", c.ID)
		if c.Description != "" {
			cli.PrintKV("Description", c.Description)
		}
		cli.PrintKV(
			"Created", c.CreatedAt.Format("2006-01-02 15:04:05"),
			"Updated", c.UpdatedAt.Format("2006-01-02 15:04:05"),
		)

		ids := c.VariableIDs()
		if len(ids) == 0 {
			fmt.Println("  No variables in this context.")
			return
		}

		rows := make([][]string, 0, len(ids))
		for _, id := range ids {
			v, err := s.varStore.Get(ctx, id)
			if err != nil {
				if errors.Is(err, env.ErrNotFound) {
					rows = append(rows, []string{id, "(deleted)", "", ""})
					continue
				}
				cli.LogFatal(logger, "failed to resolve variable", err, "id", id)
			}

			rows = append(rows, []string{
				v.ID,
				v.Name,
				env.MaskValue(v.Value),
				v.Scope.String(),
			})
		}

		cli.PrintCompactTable([]cli.Section{
			{
				Title:   "Variables",
				Headers: []string{"ID", "NAME", "VALUE", "SCOPE"},
				Rows:    rows,
			},
		})
	},
}

func init() {
	contextCmd.AddCommand(contextShowCmd)
}
