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

var contextCreateDescription string

// contextCreateCmd represents the contextCreate command.
var contextCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a named context",
	Long: `Create a named context. Context names are unique, trimmed, and limited
to letters, digits, spaces, hyphens, and underscores.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		s := getServices()

		c, err := s.ctxManager.Create(ctx, args[0], contextCreateDescription)
		if err != nil {
			cli.LogFatal(logger, "failed to create context", err, "name", args[0])
		}

		fmt.Println()
		cli.PrintKV("Name", c.Name, "ID", c.ID)
		if c.Description != "" {
			cli.PrintKV("Description", c.Description)
		}
	},
}

func init() {
	contextCmd.AddCommand(contextCreateCmd)
	contextCreateCmd.Flags().
		StringVar(&contextCreateDescription, "description", "", "Context description")
}
