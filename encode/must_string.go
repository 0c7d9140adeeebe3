package encode

import (
	"bytes"

	"github.com/tomlsort/go-tomlsort/ir"
)

// MustString encodes doc, panicking on write errors. Intended for tests
// and debug output.
func MustString(doc *ir.Document, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
