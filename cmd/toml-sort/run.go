package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	tomlsort "github.com/tomlsort/go-tomlsort"
	"github.com/tomlsort/go-tomlsort/config"
	"github.com/tomlsort/go-tomlsort/debug"
)

func tomlSortMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no files provided", cli.ErrUsage)
	}
	if cfg.Color {
		color.NoColor = false
	}
	fileCfg, err := loadConfig(cfg)
	if err != nil {
		return err
	}
	for _, path := range args {
		if err := processFile(cfg, fileCfg, path); err != nil {
			return err
		}
	}
	return nil
}

func loadConfig(cfg *MainConfig) (*config.Config, error) {
	if cfg.ConfigPath != "" {
		return config.Load(cfg.ConfigPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	fileCfg, path, err := config.Discover(cwd)
	if err != nil {
		return nil, err
	}
	if fileCfg == nil {
		return &config.Config{}, nil
	}
	if debug.Config() {
		debug.Logf("using config %s\n", path)
	}
	return fileCfg, nil
}

// processFile formats one file, overwriting it or, in check mode,
// reporting whether it is formatted. Exits 3 when the file cannot be read,
// 2 when a check fails.
func processFile(cfg *MainConfig, fileCfg *config.Config, path string) error {
	abs := absolutePath(path)
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error while reading file %q: %s\n",
			abs, color.RedString("%s", err))
		os.Exit(3)
	}
	if debug.Files() {
		debug.Logf("processing %s (%d bytes)\n", abs, len(src))
	}
	out, err := tomlsort.Format(src, fileCfg)
	if err != nil {
		return fmt.Errorf("%s: %w", abs, err)
	}
	if cfg.Check {
		if !bytes.Equal(src, out) {
			fmt.Fprintf(os.Stderr, "Check fails: %s\n", color.RedString("%s", abs))
			if showDiff(cfg) {
				printDiff(src, out)
			}
			os.Exit(2)
		}
		fmt.Printf("Check succeed: %s\n", color.GreenString("%s", abs))
		return nil
	}
	if !bytes.Equal(src, out) {
		if err := os.WriteFile(path, out, 0644); err != nil {
			return err
		}
		fmt.Printf("Overwritten: %s\n", color.BlueString("%s", abs))
	} else {
		fmt.Printf("Unchanged: %s\n", color.GreenString("%s", abs))
	}
	return nil
}

func absolutePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
