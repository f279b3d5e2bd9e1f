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

var contextAddScope string

// contextAddCmd represents the contextAdd command.
var contextAddCmd = &cobra.Command{
	Use:   "add CONTEXT VARIABLE",
	Short: "Add a variable to a context",
	Long: `Add a managed variable to a context. The variable is resolved by name
and scope; adding an already-present variable is a no-op.
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := getServices()

		scope := parseScopeArg(contextAddScope)
		v, err := s.varStore.GetByNameScope(ctx, args[1], scope)
		if err != nil {
			cli.LogFatal(logger, "failed to resolve variable", err, "name", args[1])
		}

		c, err := s.ctxManager.AddVariable(ctx, args[0], v.ID)
		if err != nil {
			cli.LogFatal(logger, "failed to add variable to context", err, "context", args[0])
		}

		fmt.Println()
		cli.PrintKV(
			"Context", c.Name,
			"Variable", v.Name,
			"Members", strconv.Itoa(c.VariableCount()),
		)
	},
}

func init() {
	contextCmd.AddCommand(contextAddCmd)
	contextAddCmd.Flags().
		StringVarP(&contextAddScope, "scope", "s", "user", "Variable scope (system|user|process)")
}
