// Package parse turns TOML text into an ir.Document, keeping trivia.
//
// Attachment rules:
//   - comments and blank lines before a key become the key's decor prefix;
//     the newline terminating an entry is dropped, line termination being
//     re-supplied by the encoder
//   - whitespace between a key and '=' is the key's decor suffix
//   - whitespace after '=' is the value's decor prefix; spacing and any
//     trailing comment after the value is its decor suffix
//   - trivia after the last entry becomes the document trailing text
//
// With those rules, encoding a parsed document reproduces the input, with
// one exception: spacing inside table headers is not kept.
package parse

import (
	"fmt"
	"strings"

	"github.com/tomlsort/go-tomlsort/ir"
	"github.com/tomlsort/go-tomlsort/token"
)

func Parse(d []byte) (*ir.Document, error) {
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.document()
}

type parser struct {
	toks []token.Token
	i    int
}

func (p *parser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) next() *token.Token {
	t := p.peek()
	if t != nil {
		p.i++
	}
	return t
}

// trivia consumes a run of trivia tokens. Newlines are included only when
// newlines is true.
func (p *parser) trivia(newlines bool) string {
	var b strings.Builder
	for {
		t := p.peek()
		if t == nil || !t.Type.IsTrivia() {
			break
		}
		if t.Type == token.TNewline && !newlines {
			break
		}
		b.WriteString(t.Text)
		p.i++
	}
	return b.String()
}

func (p *parser) document() (*ir.Document, error) {
	root := ir.NewTable()
	current := root
	pending := ""
	for {
		pending += p.trivia(true)
		t := p.peek()
		if t == nil {
			break
		}
		switch t.Type {
		case token.TLSquare:
			cur, err := p.header(root, pending)
			if err != nil {
				return nil, err
			}
			current = cur
			pending = ""
		case token.TAtom, token.TString:
			if err := p.keyValue(current, pending); err != nil {
				return nil, err
			}
			pending = ""
		default:
			return nil, fmt.Errorf("%w: unexpected %s", ErrParse, t)
		}
	}
	return &ir.Document{Root: root, Trailing: pending}, nil
}

// key reads key tokens up to stop, returning the raw key text and the
// whitespace between the key and stop.
func (p *parser) key(stop token.TokenType) (text, suffix string, err error) {
	var b strings.Builder
	for {
		t := p.peek()
		if t == nil {
			return "", "", fmt.Errorf("%w: unexpected end of input in key", ErrParse)
		}
		switch t.Type {
		case token.TAtom, token.TDot, token.TString, token.TWhitespace:
			b.WriteString(t.Text)
			p.i++
		case stop:
			s := b.String()
			text = strings.TrimRight(s, " \t")
			if text == "" {
				return "", "", fmt.Errorf("%w: empty key at %s", ErrParse, t.Pos)
			}
			return text, s[len(text):], nil
		default:
			return "", "", fmt.Errorf("%w: unexpected %s in key", ErrParse, t)
		}
	}
}

func keyName(text string) string {
	if strings.HasPrefix(text, `"`) || strings.HasPrefix(text, "'") {
		return ir.DecodeString(text)
	}
	return text
}

func (p *parser) keyValue(table *ir.Node, prefix string) error {
	text, keySuffix, err := p.key(token.TEq)
	if err != nil {
		return err
	}
	name := keyName(text)
	if table.Get(name) != nil {
		return fmt.Errorf("%w: duplicate key %q", ErrParse, name)
	}
	p.next() // '='
	vprefix := p.trivia(false)
	v, err := p.value()
	if err != nil {
		return err
	}
	v.Decor.Prefix = vprefix + v.Decor.Prefix
	v.Decor.Suffix += p.trivia(false)
	if t := p.peek(); t != nil {
		if t.Type != token.TNewline {
			return fmt.Errorf("%w: unexpected %s after value", ErrParse, t)
		}
		p.i++ // line terminator, re-supplied by the encoder
	}
	table.Insert(ir.Key{
		Text:  text,
		Name:  name,
		Decor: ir.Decor{Prefix: prefix, Suffix: keySuffix},
	}, v)
	return nil
}

// header parses a [table] or [[array-of-tables]] header line and returns
// the table subsequent key-values belong to.
func (p *parser) header(root *ir.Node, prefix string) (*ir.Node, error) {
	pos := p.next().Pos // '['
	aot := false
	if t := p.peek(); t != nil && t.Type == token.TLSquare {
		aot = true
		p.i++
	}
	p.trivia(false) // spacing inside headers is not kept
	text, _, err := p.key(token.TRSquare)
	if err != nil {
		return nil, err
	}
	var segs []ir.Key
	for _, part := range splitDotted(text) {
		segs = append(segs, ir.Key{Text: part, Name: keyName(part)})
	}
	p.next() // ']'
	if aot {
		t := p.peek()
		if t == nil || t.Type != token.TRSquare {
			return nil, fmt.Errorf("%w: unbalanced [[ at %s", ErrParse, pos)
		}
		p.i++
	}
	suffix := p.trivia(false)
	if t := p.peek(); t != nil {
		if t.Type != token.TNewline {
			return nil, fmt.Errorf("%w: unexpected %s after header", ErrParse, t)
		}
		p.i++
	}

	parent := root
	for _, seg := range segs[:len(segs)-1] {
		child := parent.Get(seg.Name)
		switch {
		case child == nil:
			child = &ir.Node{Kind: ir.TableKind, Implicit: true}
			parent.Insert(seg, child)
		case child.Kind == ir.ArrayOfTablesKind:
			// nested headers attach to the last element
			child = child.Values[len(child.Values)-1]
		case child.Kind != ir.TableKind:
			return nil, fmt.Errorf("%w: %q is not a table", ErrParse, seg.Name)
		}
		parent = child
	}

	last := segs[len(segs)-1]
	existing := parent.Get(last.Name)
	if aot {
		elem := &ir.Node{Kind: ir.TableKind}
		elem.Decor.Suffix = suffix
		switch {
		case existing == nil:
			aotNode := &ir.Node{Kind: ir.ArrayOfTablesKind}
			aotNode.Values = append(aotNode.Values, elem)
			last.Decor.Prefix = prefix
			parent.Insert(last, aotNode)
		case existing.Kind == ir.ArrayOfTablesKind:
			elem.Decor.Prefix = prefix
			existing.Values = append(existing.Values, elem)
		default:
			return nil, fmt.Errorf("%w: %q is not an array of tables", ErrParse, last.Name)
		}
		return elem, nil
	}
	if existing != nil {
		if existing.Kind != ir.TableKind || !existing.Implicit {
			return nil, fmt.Errorf("%w: duplicate table %q", ErrParse, last.Name)
		}
		existing.Implicit = false
		existing.Decor.Suffix = suffix
		for i := range parent.Keys {
			if parent.Keys[i].Name == last.Name {
				parent.Keys[i].Decor.Prefix = prefix
				break
			}
		}
		return existing, nil
	}
	tbl := ir.NewTable()
	tbl.Decor.Suffix = suffix
	last.Decor.Prefix = prefix
	parent.Insert(last, tbl)
	return tbl, nil
}

// splitDotted splits a raw dotted key on dots outside quotes.
func splitDotted(text string) []string {
	var (
		res   []string
		b     strings.Builder
		quote byte
	)
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			b.WriteByte(c)
		case c == '"' || c == '\'':
			quote = c
			b.WriteByte(c)
		case c == '.':
			res = append(res, strings.Trim(b.String(), " \t"))
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	res = append(res, strings.Trim(b.String(), " \t"))
	return res
}

func (p *parser) value() (*ir.Node, error) {
	t := p.peek()
	if t == nil {
		return nil, fmt.Errorf("%w: missing value", ErrParse)
	}
	switch t.Type {
	case token.TLSquare:
		return p.array()
	case token.TLCurl:
		return p.inlineTable()
	case token.TString:
		p.i++
		return ir.FromRaw(t.Text), nil
	case token.TAtom:
		return p.scalar()
	}
	return nil, fmt.Errorf("%w: unexpected %s in value", ErrParse, t)
}

// scalar consumes a bare value token run. Dots and interior whitespace are
// merged so floats and space-separated datetimes come out as one token.
func (p *parser) scalar() (*ir.Node, error) {
	var b strings.Builder
	b.WriteString(p.next().Text)
	for {
		t := p.peek()
		if t == nil {
			break
		}
		if t.Type == token.TAtom || t.Type == token.TDot {
			b.WriteString(t.Text)
			p.i++
			continue
		}
		if t.Type == token.TWhitespace && p.i+1 < len(p.toks) {
			after := p.toks[p.i+1].Type
			if after == token.TAtom || after == token.TDot {
				b.WriteString(t.Text)
				b.WriteString(p.toks[p.i+1].Text)
				p.i += 2
				continue
			}
		}
		break
	}
	return ir.FromRaw(b.String()), nil
}

func (p *parser) array() (*ir.Node, error) {
	pos := p.next().Pos // '['
	arr := ir.NewArray()
	pending := ""
	sawComma := false
	for {
		pending += p.trivia(true)
		t := p.peek()
		if t == nil {
			return nil, fmt.Errorf("%w: unterminated array at %s", ErrParse, pos)
		}
		switch t.Type {
		case token.TRSquare:
			p.i++
			arr.Trailing = pending
			arr.TrailingComma = sawComma && len(arr.Values) > 0
			return arr, nil
		case token.TComma:
			return nil, fmt.Errorf("%w: unexpected %s", ErrParse, t)
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		v.Decor.Prefix = pending + v.Decor.Prefix
		pending = ""
		sawComma = false
		tr := p.trivia(true)
		t = p.peek()
		if t != nil && t.Type == token.TComma {
			v.Decor.Suffix += tr
			p.i++
			sawComma = true
		} else {
			// no comma: whatever follows the value belongs to the
			// array's trailing trivia
			pending = tr
		}
		arr.Values = append(arr.Values, v)
	}
}

func (p *parser) inlineTable() (*ir.Node, error) {
	pos := p.next().Pos // '{'
	tbl := ir.NewInlineTable()
	pending := ""
	for {
		pending += p.trivia(false)
		t := p.peek()
		if t == nil {
			return nil, fmt.Errorf("%w: unterminated inline table at %s", ErrParse, pos)
		}
		if t.Type == token.TRCurl {
			p.i++
			tbl.Trailing = pending
			return tbl, nil
		}
		text, keySuffix, err := p.key(token.TEq)
		if err != nil {
			return nil, err
		}
		name := keyName(text)
		if tbl.Get(name) != nil {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrParse, name)
		}
		p.next() // '='
		vprefix := p.trivia(false)
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		v.Decor.Prefix = vprefix + v.Decor.Prefix
		v.Decor.Suffix += p.trivia(false)
		tbl.Insert(ir.Key{
			Text:  text,
			Name:  name,
			Decor: ir.Decor{Prefix: pending, Suffix: keySuffix},
		}, v)
		pending = ""
		t = p.peek()
		if t == nil {
			return nil, fmt.Errorf("%w: unterminated inline table at %s", ErrParse, pos)
		}
		switch t.Type {
		case token.TComma:
			p.i++
		case token.TRCurl:
		default:
			return nil, fmt.Errorf("%w: unexpected %s in inline table", ErrParse, t)
		}
	}
}
