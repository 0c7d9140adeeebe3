package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// showDiff reports whether check mode should print the formatting diff.
func showDiff(cfg *MainConfig) bool {
	if cfg.Color {
		return true
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}

func printDiff(from, to []byte) {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(from), string(to), true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			fmt.Fprint(os.Stderr, color.RedString("%s", d.Text))
		case diffpatch.DiffInsert:
			fmt.Fprint(os.Stderr, color.GreenString("%s", d.Text))
		default:
			fmt.Fprint(os.Stderr, d.Text)
		}
	}
}
