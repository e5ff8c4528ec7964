package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/wktab/run"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-check a problem file whenever it changes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchFile(args[0]); err != nil {
			logger.Fatal("Watch failed", zap.Error(err))
		}
	},
}

func watchFile(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// watch the directory: editors often replace the file on save
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("error adding directory to watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	checkOnce(path)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != abs {
				continue
			}
			// wait for a while after file change to consider multiple changes as one
			time.Sleep(100 * time.Millisecond)
			checkOnce(path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func checkOnce(path string) {
	reports, err := run.ProcessFile(proofConfig(), path)
	if err != nil {
		logger.Error("Error processing file", zap.String("file", path), zap.Error(err))
		return
	}
	fmt.Printf("--- %s (%s)\n", path, time.Now().Format(time.TimeOnly))
	if failed := printReports(reports); failed == 0 {
		fmt.Println("all inferences check out")
	}
	_ = os.Stdout.Sync()
}
