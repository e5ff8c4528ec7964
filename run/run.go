// Package run checks problem files in batch. A problem file holds one
// inference per line in the "premises |- conclusion" notation; blank
// lines and lines starting with '#' are skipped.
package run

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/wktab"
)

// Report is the outcome of checking one line of a problem file. Err is
// set when the line failed to parse or the quantifier shape was
// malformed; Result is set otherwise.
type Report struct {
	File   string
	Line   int
	Source string
	Result wktab.InferenceReport
	Err    error
}

// Config is the YAML batch configuration.
type Config struct {
	Name    string  `yaml:"name"`
	Budgets Budgets `yaml:"budgets"`
}

// Budgets carries the proof budgets; zero fields fall back to the
// defaults.
type Budgets struct {
	MaxSteps     int `yaml:"max_steps"`
	MaxConstants int `yaml:"max_constants"`
}

// Proof converts the configured budgets to a proof configuration,
// filling unset fields from the defaults.
func (b Budgets) Proof() wktab.Config {
	cfg := wktab.DefaultConfig()
	if b.MaxSteps > 0 {
		cfg.MaxSteps = b.MaxSteps
	}
	if b.MaxConstants > 0 {
		cfg.MaxConstants = b.MaxConstants
	}
	return cfg
}

// LoadConfig parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	var config Config

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return config, fmt.Errorf("parsing %s: %w", path, err)
	}
	return config, nil
}

// CheckLine parses one inference line and decides it under the given
// budgets.
func CheckLine(cfg wktab.Config, src string) (wktab.InferenceReport, error) {
	inf, err := wktab.ParseInference(src)
	if err != nil {
		return wktab.InferenceReport{}, err
	}
	return wktab.CheckInferenceWithConfig(inf, cfg)
}

// ProcessFiles checks every problem file in paths. Directories are
// walked for problem files; regular files are checked as given.
func ProcessFiles(ctx context.Context, logger *zap.Logger, cfg wktab.Config, paths []string) ([]Report, error) {
	var all []Report
	for _, path := range paths {
		reports, err := ProcessPath(ctx, logger, cfg, path)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, reports...)
	}
	return all, nil
}

// ProcessPath checks one path. For a directory the contained problem
// files are checked concurrently by a worker pool bounded by the CPU
// count, with a progress bar; reports come back in file order.
func ProcessPath(ctx context.Context, logger *zap.Logger, cfg wktab.Config, path string) ([]Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		return ProcessFile(cfg, path)
	}

	var files []string
	filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			if logger != nil {
				logger.Warn("Error walking path", zap.String("path", filePath), zap.Error(err))
			}
			return nil
		}
		if !fileInfo.IsDir() && isProblemFile(filePath) {
			files = append(files, filePath)
		}
		return nil
	})

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)
	done := make(chan int, len(files))

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	results := make([][]Report, len(files))
	errs := make([]error, len(files))

	for i, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			go func(idx int, fp string) {
				defer func() { <-sem }()

				reports, err := ProcessFile(cfg, fp)
				if err != nil {
					if logger != nil {
						logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
					}
					errs[idx] = err
				} else {
					results[idx] = reports
				}
				bar.Add(1)
				done <- idx
			}(i, filePath)
		}
	}

	for range files {
		<-done
	}
	fmt.Println()

	var reports []Report
	for i := range files {
		if errs[i] != nil {
			return nil, errs[i]
		}
		reports = append(reports, results[i]...)
	}
	return reports, nil
}

// ProcessFile checks every inference line of one problem file. Lines
// that fail to parse become reports carrying the error rather than
// aborting the file.
func ProcessFile(cfg wktab.Config, path string) ([]Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reports []Report
	scanner := bufio.NewScanner(f)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		report := Report{File: path, Line: lineno, Source: line}
		report.Result, report.Err = CheckLine(cfg, line)
		reports = append(reports, report)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return reports, nil
}

func isProblemFile(path string) bool {
	return filepath.Ext(path) == ".wk"
}
