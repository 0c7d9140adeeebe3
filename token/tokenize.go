package token

import (
	"fmt"
)

// Tokenize splits d into tokens. The concatenation of the returned token
// texts equals d.
func Tokenize(d []byte) ([]Token, error) {
	tz := &tokenizer{d: d, line: 1, col: 1}
	var res []Token
	for tz.i < len(tz.d) {
		tok, err := tz.next()
		if err != nil {
			return nil, err
		}
		res = append(res, tok)
	}
	return res, nil
}

type tokenizer struct {
	d    []byte
	i    int
	line int
	col  int
}

func (tz *tokenizer) pos() Pos { return Pos{Line: tz.line, Col: tz.col} }

// take consumes n bytes, tracking line and column.
func (tz *tokenizer) take(n int) string {
	s := string(tz.d[tz.i : tz.i+n])
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			tz.line++
			tz.col = 1
		} else {
			tz.col++
		}
	}
	tz.i += n
	return s
}

func (tz *tokenizer) next() (Token, error) {
	pos := tz.pos()
	mk := func(tt TokenType, n int) Token {
		return Token{Type: tt, Text: tz.take(n), Pos: pos}
	}
	c := tz.d[tz.i]
	switch c {
	case '\n':
		return mk(TNewline, 1), nil
	case '\r':
		if tz.i+1 < len(tz.d) && tz.d[tz.i+1] == '\n' {
			return mk(TNewline, 2), nil
		}
		return mk(TWhitespace, 1), nil
	case ' ', '\t':
		n := 1
		for tz.i+n < len(tz.d) && (tz.d[tz.i+n] == ' ' || tz.d[tz.i+n] == '\t') {
			n++
		}
		return mk(TWhitespace, n), nil
	case '#':
		n := 1
		for tz.i+n < len(tz.d) && tz.d[tz.i+n] != '\n' && tz.d[tz.i+n] != '\r' {
			n++
		}
		return mk(TComment, n), nil
	case '[':
		return mk(TLSquare, 1), nil
	case ']':
		return mk(TRSquare, 1), nil
	case '{':
		return mk(TLCurl, 1), nil
	case '}':
		return mk(TRCurl, 1), nil
	case ',':
		return mk(TComma, 1), nil
	case '=':
		return mk(TEq, 1), nil
	case '.':
		return mk(TDot, 1), nil
	case '"', '\'':
		return tz.string(pos)
	}
	n := 1
	for tz.i+n < len(tz.d) && !isAtomEnd(tz.d[tz.i+n]) {
		n++
	}
	return mk(TAtom, n), nil
}

func isAtomEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '#', '[', ']', '{', '}', ',', '=', '.', '"', '\'':
		return true
	}
	return false
}

func (tz *tokenizer) string(pos Pos) (Token, error) {
	d := tz.d[tz.i:]
	q := d[0]
	basic := q == '"'
	if len(d) >= 3 && d[1] == q && d[2] == q {
		return tz.multilineString(pos, q, basic)
	}
	j := 1
	for j < len(d) {
		c := d[j]
		if c == '\n' || c == '\r' {
			break
		}
		if basic && c == '\\' {
			j += 2
			continue
		}
		if c == q {
			return Token{Type: TString, Text: tz.take(j + 1), Pos: pos}, nil
		}
		j++
	}
	return Token{}, fmt.Errorf("%w: unterminated string at %s", ErrToken, pos)
}

func (tz *tokenizer) multilineString(pos Pos, q byte, basic bool) (Token, error) {
	d := tz.d[tz.i:]
	j := 3
	for j < len(d) {
		if basic && d[j] == '\\' {
			j += 2
			continue
		}
		if d[j] != q {
			j++
			continue
		}
		run := 0
		for j+run < len(d) && d[j+run] == q {
			run++
		}
		if run >= 3 {
			// quotes beyond the closing delimiter belong to the content
			return Token{Type: TString, Text: tz.take(j + run), Pos: pos}, nil
		}
		j += run
	}
	return Token{}, fmt.Errorf("%w: unterminated string at %s", ErrToken, pos)
}
