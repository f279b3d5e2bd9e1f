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

	"github.com/retr0h/envscope/internal/audit"
	"github.com/retr0h/envscope/internal/cli"
)

var (
	auditListVariable string
	auditListUser     string
	auditListLimit    int
	auditListOffset   int
)

// auditListCmd represents the auditList command.
var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audit entries",
	Long: `List audit entries newest first with pagination, optionally filtered
by variable id or user.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		s := getServices()

		var (
			entries []audit.Entry
			total   int
			err     error
		)
		switch {
		case auditListVariable != "":
			entries, total, err = s.auditStore.ByVariable(
				ctx,
				auditListVariable,
				auditListLimit,
				auditListOffset,
			)
		case auditListUser != "":
			entries, total, err = s.auditStore.ByUser(
				ctx,
				auditListUser,
				auditListLimit,
				auditListOffset,
			)
		default:
			entries, total, err = s.auditStore.List(ctx, auditListLimit, auditListOffset)
		}
		if err != nil {
			cli.LogFatal(logger, "failed to list audit entries", err)
		}

		fmt.Println()
		cli.PrintKV("Total", strconv.Itoa(total))

		if len(entries) == 0 {
			fmt.Println("  No audit entries found.")
			return
		}

		rows := make([][]string, 0, len(entries))
		for _, entry := range entries {
			rows = append(rows, []string{
				entry.ID,
				entry.Timestamp.Format("2006-01-02 15:04:05"),
				string(entry.Action),
				entry.VariableName,
				entry.Scope,
				entry.User,
			})
		}

		cli.PrintCompactTable([]cli.Section{
			{
				Title:   "Audit Entries",
				Headers: []string{"ID", "TIMESTAMP", "ACTION", "VARIABLE", "SCOPE", "USER"},
				Rows:    rows,
			},
		})
	},
}

func init() {
	auditCmd.AddCommand(auditListCmd)
	auditListCmd.Flags().
		StringVar(&auditListVariable, "variable", "", "Filter by variable id")
	auditListCmd.Flags().
		StringVar(&auditListUser, "user", "", "Filter by user")
	auditListCmd.Flags().
		IntVar(&auditListLimit, "limit", 20, "Maximum number of entries to return")
	auditListCmd.Flags().
		IntVar(&auditListOffset, "offset", 0, "Number of entries to skip")
}
