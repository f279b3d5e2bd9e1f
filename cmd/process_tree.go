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
	"strings"

	"github.com/spf13/cobra"

	"github.com/retr0h/envscope/internal/cli"
	"github.com/retr0h/envscope/internal/proc"
)

// processTreeCmd represents the processTree command.
var processTreeCmd = &cobra.Command{
	Use:   "tree PID",
	Short: "Show a process descendant tree",
	Long: `Show the descendant hierarchy rooted at a process. Children that deny
access appear as leaves; children that vanish mid-walk are skipped.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := getServices()

		pid := parsePIDArg(args[0])
		root, err := s.investigator.Tree(ctx, pid)
		if err != nil {
			cli.LogFatal(logger, "failed to build process tree", err, "pid", args[0])
		}
		if root == nil {
			fmt.Printf("  Process %d is not accessible.\n", pid)
			return
		}

		fmt.Println()
		cli.PrintKV("Root", strconv.Itoa(int(root.Process.PID)), "Processes", strconv.Itoa(root.Count()))
		fmt.Println()

		root.Walk(func(node *proc.TreeNode, depth int) {
			indent := strings.Repeat("  ", depth+1)
			line := fmt.Sprintf("%s%d %s", indent, node.Process.PID, node.Process.Name)
			if node.Process.Username != "" {
				line += cli.DimStyle.Render(" (" + node.Process.Username + ")")
			}
			fmt.Println(line)
		})
	},
}

func init() {
	processCmd.AddCommand(processTreeCmd)
}
