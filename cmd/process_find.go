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
	"github.com/retr0h/envscope/internal/proc"
)

var (
	processFindName string
	processFindUser string
)

// processFindCmd represents the processFind command.
var processFindCmd = &cobra.Command{
	Use:   "find",
	Short: "Find processes by name or user",
	Long: `Find processes by case-insensitive name substring or by exact owning
user. Matching runs against a fresh enumeration.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		s := getServices()

		if processFindName == "" && processFindUser == "" {
			cli.LogFatal(logger, "nothing to match", fmt.Errorf("provide --name or --user"))
		}

		var (
			summaries []proc.Summary
			err       error
		)
		if processFindName != "" {
			summaries, err = s.investigator.FindByName(ctx, processFindName)
		} else {
			summaries, err = s.investigator.FindByUser(ctx, processFindUser)
		}
		if err != nil {
			cli.LogFatal(logger, "failed to find processes", err)
		}

		fmt.Println()
		cli.PrintKV("Matches", strconv.Itoa(len(summaries)))

		if len(summaries) == 0 {
			return
		}

		rows := make([][]string, 0, len(summaries))
		for _, summary := range summaries {
			rows = append(rows, []string{
				strconv.Itoa(int(summary.Process.PID)),
				summary.Process.Name,
				summary.Process.Username,
				cli.IntToSafeString(summary.VariableCount),
			})
		}

		cli.PrintCompactTable([]cli.Section{
			{
				Title:   "Matches",
				Headers: []string{"PID", "NAME", "USER", "VARIABLES"},
				Rows:    rows,
			},
		})
	},
}

func init() {
	processCmd.AddCommand(processFindCmd)
	processFindCmd.Flags().
		StringVar(&processFindName, "name", "", "Case-insensitive name substring")
	processFindCmd.Flags().
		StringVar(&processFindUser, "user", "", "Exact owning user")
}
