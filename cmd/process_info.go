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

// processInfoCmd represents the processInfo command.
var processInfoCmd = &cobra.Command{
	Use:   "info PID",
	Short: "Show one process",
	Long: `Show a point-in-time snapshot of one process, looked up directly
rather than through the cache.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := getServices()

		pid := parsePIDArg(args[0])
		p, err := s.inspector.GetProcess(ctx, pid)
		if err != nil {
			cli.LogFatal(logger, "failed to get process", err, "pid", args[0])
		}
		if p == nil {
			fmt.Printf("  Process %d is not accessible.\n", pid)
			return
		}

		fmt.Println()
		cli.PrintKV("PID", strconv.Itoa(int(p.PID)), "Name", p.Name)
		if p.Cmdline != "" {
			cli.PrintKV("Cmdline", p.Cmdline)
		}
		cli.PrintKV(
			"Parent PID", cli.Int32ToSafeString(p.ParentPID),
			"User", p.Username,
		)
		cli.PrintKV(
			"Snapshot", p.SnapshotTime.Format("2006-01-02 15:04:05"),
			"Snapshot ID", p.SnapshotID,
		)
	},
}

func init() {
	processCmd.AddCommand(processInfoCmd)
}
