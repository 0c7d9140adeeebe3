// Package token tokenizes TOML documents, keeping trivia.
//
// The tokenizer is lossless: concatenating the Text of all tokens
// reproduces the input. Whitespace, newlines and comments are tokens of
// their own so the parser can attach them to keys and values as decor.
package token

import "fmt"

type TokenType int

const (
	TAtom TokenType = iota
	TString
	TComment
	TWhitespace
	TNewline
	TLSquare
	TRSquare
	TLCurl
	TRCurl
	TComma
	TEq
	TDot
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TAtom:       "TAtom",
		TString:     "TString",
		TComment:    "TComment",
		TWhitespace: "TWhitespace",
		TNewline:    "TNewline",
		TLSquare:    "TLSquare",
		TRSquare:    "TRSquare",
		TLCurl:      "TLCurl",
		TRCurl:      "TRCurl",
		TComma:      "TComma",
		TEq:         "TEq",
		TDot:        "TDot",
	}[t]
}

// IsTrivia reports whether the token carries no syntax, only layout.
func (t TokenType) IsTrivia() bool {
	switch t {
	case TComment, TWhitespace, TNewline:
		return true
	}
	return false
}

type Token struct {
	Type TokenType
	Text string
	Pos  Pos
}

func (t *Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Type, t.Text, t.Pos)
}
