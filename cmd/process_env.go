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
	"github.com/retr0h/envscope/internal/env"
)

var (
	processEnvFormat  string
	processEnvCompare bool
)

// processEnvCmd represents the processEnv command.
var processEnvCmd = &cobra.Command{
	Use:   "env PID",
	Short: "Show a process environment",
	Long: `Show the environment of a running process. With --compare, each
managed system variable present in the process is related to its
system value, and variables the system does not manage are listed
separately.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := getServices()

		pid := parsePIDArg(args[0])

		sysVars, err := s.varManager.ByScope(ctx, env.ScopeSystem)
		if err != nil {
			cli.LogFatal(logger, "failed to load system variables", err)
		}

		report, err := s.investigator.Report(ctx, pid, sysVars)
		if err != nil {
			cli.LogFatal(logger, "failed to read environment", err, "pid", args[0])
		}
		if report == nil {
			fmt.Printf("  Process %d is not accessible.\n", pid)
			return
		}

		switch processEnvFormat {
		case cli.FormatJSON:
			out, err := cli.RenderJSON(report)
			if err != nil {
				cli.LogFatal(logger, "failed to render output", err)
			}
			fmt.Print(out)
			return
		case cli.FormatShell:
			fmt.Print(cli.RenderShell(report.AllVariables))
			return
		}

		fmt.Println()
		cli.PrintKV(
			"PID", strconv.Itoa(int(report.Summary.Process.PID)),
			"Name", report.Summary.Process.Name,
			"Variables", cli.IntToSafeString(report.Summary.VariableCount),
		)

		names := make([]string, 0, len(report.AllVariables))
		for name := range report.AllVariables {
			names = append(names, name)
		}
		sort.Strings(names)

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			rows = append(rows, []string{name, report.AllVariables[name]})
		}

		cli.PrintCompactTable([]cli.Section{
			{
				Title:   "Environment",
				Headers: []string{"NAME", "VALUE"},
				Rows:    rows,
			},
		})

		if !processEnvCompare {
			return
		}

		inheritedRows := make([][]string, 0, len(report.Inherited))
		for _, c := range report.Inherited {
			inheritedRows = append(inheritedRows, []string{
				c.VariableName,
				c.SystemValue,
				cli.SafeString(c.ProcessValue),
				fmt.Sprintf("%v", c.MatchesSystem),
			})
		}

		cli.PrintCompactTable([]cli.Section{
			{
				Title:   "Inherited From System",
				Headers: []string{"NAME", "SYSTEM VALUE", "PROCESS VALUE", "MATCHES"},
				Rows:    inheritedRows,
			},
		})

		fmt.Println()
		cli.PrintKV("Process Specific", cli.FormatList(report.ProcessSpecific))
	},
}

func init() {
	processCmd.AddCommand(processEnvCmd)
	processEnvCmd.Flags().
		StringVar(&processEnvFormat, "format", cli.FormatTable, "Output format (table|json|shell)")
	processEnvCmd.Flags().
		BoolVar(&processEnvCompare, "compare", false, "Compare against managed system variables")
}
