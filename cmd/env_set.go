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

var envSetScope string

// envSetCmd represents the envSet command.
var envSetCmd = &cobra.Command{
	Use:   "set NAME VALUE",
	Short: "Create or update an environment variable",
	Long: `Create or update an environment variable in a scope.

Creates the variable when the (name, scope) pair is unused, otherwise
updates its value. System-scope variables require a non-empty value.
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := getServices()

		scope := parseScopeArg(envSetScope)
		v, event, err := s.varManager.Set(ctx, args[0], args[1], scope)
		if err != nil {
			cli.LogFatal(logger, "failed to set variable", err, "name", args[0])
		}

		action := "unchanged"
		if event.Kind != "" {
			action = string(event.Kind)
		}

		fmt.Println()
		cli.PrintKV("Name", v.Name, "Scope", v.Scope.String())
		cli.PrintKV("Value", env.MaskValue(v.Value), "Result", action)

		if scope.RequiresElevation() {
			fmt.Println(cli.DimStyle.Render("  System scope changes require elevated privileges."))
		}
	},
}

func init() {
	envCmd.AddCommand(envSetCmd)
	envSetCmd.Flags().
		StringVarP(&envSetScope, "scope", "s", "user", "Variable scope (system|user|process)")
}
