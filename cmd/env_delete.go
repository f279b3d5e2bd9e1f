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
)

var envDeleteScope string

// envDeleteCmd represents the envDelete command.
var envDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete an environment variable",
	Long: `Delete an environment variable from a scope. The deletion is recorded
in the audit trail; contexts referencing the variable keep their other
members.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := getServices()

		scope := parseScopeArg(envDeleteScope)
		event, err := s.varManager.Delete(ctx, args[0], scope)
		if err != nil {
			cli.LogFatal(logger, "failed to delete variable", err, "name", args[0])
		}

		fmt.Println()
		cli.PrintKV("Name", event.Name, "Scope", event.Scope.String(), "Result", "deleted")
	},
}

func init() {
	envCmd.AddCommand(envDeleteCmd)
	envDeleteCmd.Flags().
		StringVarP(&envDeleteScope, "scope", "s", "user", "Variable scope (system|user|process)")
}
