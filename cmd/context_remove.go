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

var contextRemoveScope string

// contextRemoveCmd represents the contextRemove command.
var contextRemoveCmd = &cobra.Command{
	Use:   "remove CONTEXT VARIABLE",
	Short: "Remove a variable from a context",
	Long: `Remove a managed variable from a context. Removing a variable that is
not a member is a no-op.
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := getServices()

		scope := parseScopeArg(contextRemoveScope)
		v, err := s.varStore.GetByNameScope(ctx, args[1], scope)
		if err != nil {
			cli.LogFatal(logger, "failed to resolve variable", err, "name", args[1])
		}

		c, err := s.ctxManager.RemoveVariable(ctx, args[0], v.ID)
		if err != nil {
			cli.LogFatal(logger, "failed to remove variable from context", err, "context", args[0])
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
	contextCmd.AddCommand(contextRemoveCmd)
	contextRemoveCmd.Flags().
		StringVarP(&contextRemoveScope, "scope", "s", "user", "Variable scope (system|user|process)")
}
