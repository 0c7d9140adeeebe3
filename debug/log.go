// Package debug provides env-gated debug logging
// (TOML_SORT_DEBUG_CONFIG, TOML_SORT_DEBUG_SECTIONS, TOML_SORT_DEBUG_FILES).
package debug

import (
	"fmt"
	"os"

	"github.com/tomlsort/go-tomlsort/encode"
	"github.com/tomlsort/go-tomlsort/ir"
)

func Logf(msg string, args ...any) {
	for i := range args {
		if doc, ok := args[i].(*ir.Document); ok {
			args[i] = encode.MustString(doc)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
