package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/wktab"
	"github.com/gnolang/wktab/run"
)

// initCmd: wktab init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new prover configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", cfgFile)
	},
}

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = ".wktab.yaml"
	}

	defaults := wktab.DefaultConfig()
	config := run.Config{
		Name: "wktab",
		Budgets: run.Budgets{
			MaxSteps:     defaults.MaxSteps,
			MaxConstants: defaults.MaxConstants,
		},
	}
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	if err != nil {
		return err
	}

	return nil
}
