package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Config   bool
	Sections bool
	Files    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Config = boolEnv("TOML_SORT_DEBUG_CONFIG")
	d.Sections = boolEnv("TOML_SORT_DEBUG_SECTIONS")
	d.Files = boolEnv("TOML_SORT_DEBUG_FILES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Config() bool   { return d.Config }
func Sections() bool { return d.Sections }
func Files() bool    { return d.Files }
