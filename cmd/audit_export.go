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

	"github.com/retr0h/envscope/internal/audit/export"
	"github.com/retr0h/envscope/internal/cli"
)

var (
	auditExportOutput    string
	auditExportBatchSize int
)

// auditExportCmd represents the auditExport command.
var auditExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the audit trail to a file",
	Long: `Export the full audit trail to a JSON lines file, paginating through
entries in batches.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		s := getServices()

		batchSize := auditExportBatchSize
		if batchSize <= 0 {
			batchSize = appConfig.Export.BatchSize
		}

		exporter := export.NewFileExporter(appFs, auditExportOutput)
		runner := export.NewRunner(logger, s.auditStore)
		result, err := runner.Run(
			ctx,
			exporter,
			batchSize,
			func(exported int, total int) {
				logger.Debug(
					"export progress",
					"exported", exported,
					"total", total,
				)
			},
		)
		if err != nil {
			cli.LogFatal(logger, "failed to export audit entries", err)
		}

		fmt.Println()
		cli.PrintKV(
			"Exported", strconv.Itoa(result.ExportedEntries),
			"Total", strconv.Itoa(result.TotalEntries),
			"File", auditExportOutput,
		)
	},
}

func init() {
	auditCmd.AddCommand(auditExportCmd)
	auditExportCmd.Flags().
		StringVarP(&auditExportOutput, "output", "o", "", "Output file path")
	auditExportCmd.Flags().
		IntVar(&auditExportBatchSize, "batch-size", 0, "Entries per fetch (default from config)")
	_ = auditExportCmd.MarkFlagRequired("output")
}
