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
	"github.com/retr0h/envscope/internal/env"
)

var envGetScope string

// envGetCmd represents the envGet command.
var envGetCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Show one environment variable",
	Long: `Show one environment variable by name and scope, including its
persistence characteristics. The read is recorded in the audit trail.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := getServices()

		scope := parseScopeArg(envGetScope)
		v, err := s.varManager.GetByNameScope(ctx, args[0], scope)
		if err != nil {
			cli.LogFatal(logger, "failed to get variable", err, "name", args[0])
		}

		info := v.Scope.Persistence()

		fmt.Println()
		cli.PrintKV("Name", v.Name, "Scope", v.Scope.String())
		cli.PrintKV("Value", env.MaskValue(v.Value))
		cli.PrintKV(
			"Location", info.Location,
			"Permanent", fmt.Sprintf("%v", info.Permanent),
		)
		cli.PrintKV(
			"Created", v.CreatedAt.Format("2006-01-02 15:04:05"),
			"Updated", v.UpdatedAt.Format("2006-01-02 15:04:05"),
		)
	},
}

func init() {
	envCmd.AddCommand(envGetCmd)
	envGetCmd.Flags().
		StringVarP(&envGetScope, "scope", "s", "user", "Variable scope (system|user|process)")
}
