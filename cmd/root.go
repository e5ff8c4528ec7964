package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/wktab"
	"github.com/gnolang/wktab/run"
)

var (
	cfgFile      string
	timeout      time.Duration
	maxSteps     int
	maxConstants int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "wktab",
	Short:            "wktab - a tableau prover for weak Kleene logic with restricted quantifiers",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'wktab' is entered
			_ = cmd.Help()
			return
		}
		// Format: wktab [file1 file2 ...] => behaves like the check subcommand
		checkCmd.Run(checkCmd, args)
	},
}

func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	return rootCmd.Execute()
}

// proofConfig assembles the budgets from the configuration file and the
// command-line flags, flags winning.
func proofConfig() wktab.Config {
	cfg := wktab.DefaultConfig()
	if cfgFile != "" {
		fileCfg, err := run.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration file", zap.Error(err))
		}
		cfg = fileCfg.Budgets.Proof()
	}
	if maxSteps > 0 {
		cfg.MaxSteps = maxSteps
	}
	if maxConstants > 0 {
		cfg.MaxConstants = maxConstants
	}
	return cfg
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Timeout for a whole run")
	rootCmd.PersistentFlags().IntVar(&maxSteps, "steps", 0, "Maximum number of rule applications per proof")
	rootCmd.PersistentFlags().IntVar(&maxConstants, "constants", 0, "Maximum domain size per branch")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
}
