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
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/retr0h/envscope/internal/cli"
	"github.com/retr0h/envscope/internal/proc"
)

var (
	exportAllEnvsFormat string
	exportAllEnvsOutput string
)

// exportAllEnvsCmd represents the exportAllEnvs command.
var exportAllEnvsCmd = &cobra.Command{
	Use:   "all-envs",
	Short: "Export every readable process environment",
	Long: `Export the environment of every readable process as json or markdown.
Processes whose environments cannot be read are omitted.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		s := getServices()

		processes, err := s.inspector.ListProcesses(ctx)
		if err != nil {
			cli.LogFatal(logger, "failed to list processes", err)
		}

		environments := make([]proc.Environment, 0, len(processes))
		for _, p := range processes {
			environment, err := s.inspector.GetEnvironment(ctx, p.PID)
			if err != nil || environment == nil {
				continue
			}
			environments = append(environments, *environment)
		}

		var content string
		switch exportAllEnvsFormat {
		case cli.FormatMarkdown:
			rows := make([][]string, 0)
			for _, environment := range environments {
				names := make([]string, 0, len(environment.Variables))
				for name := range environment.Variables {
					names = append(names, name)
				}
				sort.Strings(names)

				for _, name := range names {
					rows = append(rows, []string{
						strconv.Itoa(int(environment.Process.PID)),
						environment.Process.Name,
						name,
						environment.Variables[name],
					})
				}
			}
			content = cli.RenderMarkdown([]string{"PID", "Process", "Name", "Value"}, rows)
		default:
			content, err = cli.RenderJSON(environments)
			if err != nil {
				cli.LogFatal(logger, "failed to render output", err)
			}
		}

		if err := cli.WriteOutput(appFs, exportAllEnvsOutput, content); err != nil {
			cli.LogFatal(logger, "failed to write output", err)
		}

		if exportAllEnvsOutput != "" {
			fmt.Println()
			cli.PrintKV(
				"Environments", strconv.Itoa(len(environments)),
				"File", exportAllEnvsOutput,
			)
		}
	},
}

func init() {
	exportCmd.AddCommand(exportAllEnvsCmd)
	exportAllEnvsCmd.Flags().
		StringVar(&exportAllEnvsFormat, "format", cli.FormatJSON, "Output format (json|markdown)")
	exportAllEnvsCmd.Flags().
		StringVarP(&exportAllEnvsOutput, "output", "o", "", "Output file path (default stdout)")
}
