// Package tomlsort formats TOML documents: keys are sorted within
// blank-line-delimited sections, comments and values round-trip
// losslessly, and layout is normalized. See the format package for the
// sorting rules and the config package for the configuration file.
package tomlsort

import (
	"bytes"

	"github.com/tomlsort/go-tomlsort/config"
	"github.com/tomlsort/go-tomlsort/encode"
	"github.com/tomlsort/go-tomlsort/format"
	"github.com/tomlsort/go-tomlsort/parse"
)

// Format canonicalizes src under cfg. The result always ends in exactly
// one newline. A nil cfg formats with no priority keys and no string
// array sorting.
func Format(src []byte, cfg *config.Config) ([]byte, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	doc, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	opts := format.NewOptions(cfg.Keys, cfg.InlineKeys, cfg.SortStringArrays)
	out, err := format.Document(doc, opts)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(out, buf, encode.TrimDocument(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Check reports whether src is already formatted under cfg.
func Check(src []byte, cfg *config.Config) (bool, error) {
	out, err := Format(src, cfg)
	if err != nil {
		return false, err
	}
	return bytes.Equal(src, out), nil
}
