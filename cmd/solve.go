package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/wktab"
	"github.com/gnolang/wktab/formatter"
)

var signFlag string

var solveCmd = &cobra.Command{
	Use:   "solve <formula>",
	Short: "Decide whether a formula can take the value a sign asks for",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sign, err := wktab.ParseSign(signFlag)
		if err != nil {
			logger.Fatal("Invalid sign", zap.String("sign", signFlag), zap.Error(err))
		}

		f, err := wktab.ParseFormula(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		result, err := wktab.SolveWithConfig(f, sign, proofConfig())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Print(formatter.FormatResult(result))
		if result.Verdict == wktab.Unknown {
			os.Exit(2)
		}
	},
}

func init() {
	solveCmd.Flags().StringVarP(&signFlag, "sign", "s", "t", "Sign to test: t, f, m or n")
}
