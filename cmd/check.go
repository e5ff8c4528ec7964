package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/wktab/formatter"
	"github.com/gnolang/wktab/run"
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check the inferences in one or more problem files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide problem file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		reports, err := run.ProcessFiles(ctx, logger, proofConfig(), args)
		if err != nil {
			logger.Error("Error processing files", zap.Error(err))
			os.Exit(1)
		}

		failed := printReports(reports)
		if failed > 0 {
			os.Exit(1)
		}
	},
}

// printReports renders every report and returns the number of
// inferences that failed to check out.
func printReports(reports []run.Report) int {
	failed := 0
	for _, r := range reports {
		fmt.Printf("%s:%d: ", r.File, r.Line)
		if r.Err != nil {
			fmt.Println(r.Err)
			failed++
			continue
		}
		fmt.Print(formatter.FormatReport(r.Result))
		if !r.Result.Valid {
			failed++
		}
	}
	return failed
}
