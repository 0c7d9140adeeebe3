// Package encode serializes ir documents back to TOML text.
//
// Encoding is decor-driven: every key and value carries its surrounding
// trivia, and the encoder only supplies structural characters ('=', commas,
// brackets, headers) and line terminators. Encoding a freshly parsed
// document reproduces the parser's input.
package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/tomlsort/go-tomlsort/ir"
)

type EncState struct {
	trim bool
}

func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if !es.trim {
		e := &encoder{w: w}
		e.document(doc)
		return e.err
	}
	buf := bytes.NewBuffer(nil)
	e := &encoder{w: buf}
	e.document(doc)
	if e.err != nil {
		return e.err
	}
	_, err := io.WriteString(w, strings.TrimSpace(buf.String())+"\n")
	return err
}

type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) str(s string) {
	if e.err != nil || s == "" {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *encoder) document(doc *ir.Document) {
	e.table(doc.Root, nil)
	e.str(doc.Trailing)
}

// table emits a table body: key-value entries first, then sub-tables and
// arrays of tables, each group in stored order.
func (e *encoder) table(n *ir.Node, path []string) {
	for i := range n.Keys {
		v := n.Values[i]
		if !v.Kind.IsValue() {
			continue
		}
		key := &n.Keys[i]
		e.str(key.Decor.Prefix)
		e.str(key.Text)
		e.str(key.Decor.Suffix)
		e.str("=")
		e.value(v)
		e.str("\n")
	}
	for i := range n.Keys {
		v := n.Values[i]
		switch v.Kind {
		case ir.TableKind:
			e.subTable(&n.Keys[i], v, path)
		case ir.ArrayOfTablesKind:
			e.arrayOfTables(&n.Keys[i], v, path)
		}
	}
}

func (e *encoder) subTable(key *ir.Key, t *ir.Node, path []string) {
	path = append(path, key.Text)
	if !t.Implicit || hasValueEntries(t) {
		// a suppressed header keeps nothing, its decor included
		e.str(key.Decor.Prefix)
		e.str("[" + strings.Join(path, ".") + "]")
		e.str(t.Decor.Suffix)
		e.str("\n")
	}
	e.table(t, path)
}

func (e *encoder) arrayOfTables(key *ir.Key, a *ir.Node, path []string) {
	path = append(path, key.Text)
	hdr := "[[" + strings.Join(path, ".") + "]]"
	for i, elem := range a.Values {
		if i == 0 {
			e.str(key.Decor.Prefix)
		} else {
			e.str(elem.Decor.Prefix)
		}
		e.str(hdr)
		e.str(elem.Decor.Suffix)
		e.str("\n")
		e.table(elem, path)
	}
}

func (e *encoder) value(v *ir.Node) {
	switch v.Kind {
	case ir.ArrayKind:
		e.str(v.Decor.Prefix)
		e.str("[")
		for i, elem := range v.Values {
			e.value(elem)
			if i < len(v.Values)-1 || v.TrailingComma {
				e.str(",")
			}
		}
		e.str(v.Trailing)
		e.str("]")
		e.str(v.Decor.Suffix)
	case ir.InlineTableKind:
		e.str(v.Decor.Prefix)
		e.str("{")
		for i := range v.Keys {
			key := &v.Keys[i]
			e.str(key.Decor.Prefix)
			e.str(key.Text)
			e.str(key.Decor.Suffix)
			e.str("=")
			e.value(v.Values[i])
			if i < len(v.Keys)-1 {
				e.str(",")
			}
		}
		e.str(v.Trailing)
		e.str("}")
		e.str(v.Decor.Suffix)
	default:
		e.str(v.Decor.Prefix)
		e.str(v.Raw)
		e.str(v.Decor.Suffix)
	}
}

func hasValueEntries(t *ir.Node) bool {
	for _, v := range t.Values {
		if v.Kind.IsValue() {
			return true
		}
	}
	return false
}
