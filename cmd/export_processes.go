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

var (
	exportProcessesFormat string
	exportProcessesOutput string
)

// exportProcessesCmd represents the exportProcesses command.
var exportProcessesCmd = &cobra.Command{
	Use:   "processes",
	Short: "Export the process listing",
	Long: `Export the current process listing as json or markdown.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		s := getServices()

		summaries, err := s.investigator.Summaries(ctx)
		if err != nil {
			cli.LogFatal(logger, "failed to list processes", err)
		}

		var content string
		switch exportProcessesFormat {
		case cli.FormatMarkdown:
			rows := make([][]string, 0, len(summaries))
			for _, summary := range summaries {
				rows = append(rows, []string{
					strconv.Itoa(int(summary.Process.PID)),
					summary.Process.Name,
					summary.Process.Username,
					cli.IntToSafeString(summary.VariableCount),
				})
			}
			content = cli.RenderMarkdown([]string{"PID", "Name", "User", "Variables"}, rows)
		default:
			content, err = cli.RenderJSON(summaries)
			if err != nil {
				cli.LogFatal(logger, "failed to render output", err)
			}
		}

		if err := cli.WriteOutput(appFs, exportProcessesOutput, content); err != nil {
			cli.LogFatal(logger, "failed to write output", err)
		}

		if exportProcessesOutput != "" {
			fmt.Println()
			cli.PrintKV(
				"Processes", strconv.Itoa(len(summaries)),
				"File", exportProcessesOutput,
			)
		}
	},
}

func init() {
	exportCmd.AddCommand(exportProcessesCmd)
	exportProcessesCmd.Flags().
		StringVar(&exportProcessesFormat, "format", cli.FormatJSON, "Output format (json|markdown)")
	exportProcessesCmd.Flags().
		StringVarP(&exportProcessesOutput, "output", "o", "", "Output file path (default stdout)")
}
