package ir

import (
	"strconv"
	"strings"
)

// FromRaw builds a scalar node from a value token, classifying it by shape.
// Classification is best effort: the tree keeps the token verbatim, and
// only the string/non-string distinction changes behavior downstream.
func FromRaw(raw string) *Node {
	n := &Node{Raw: raw}
	switch {
	case strings.HasPrefix(raw, `"`), strings.HasPrefix(raw, "'"):
		n.Kind = StringKind
		n.Str = DecodeString(raw)
	case raw == "true", raw == "false":
		n.Kind = BoolKind
	default:
		num := strings.ReplaceAll(raw, "_", "")
		if _, err := strconv.ParseInt(num, 0, 64); err == nil {
			n.Kind = IntegerKind
		} else if _, err := strconv.ParseFloat(num, 64); err == nil {
			n.Kind = FloatKind
		} else {
			// Datetimes and any other bare token.
			n.Kind = DatetimeKind
		}
	}
	return n
}

// DecodeString returns the content of a TOML string token. Literal strings
// are returned as written; basic strings have their escapes resolved.
func DecodeString(raw string) string {
	switch {
	case strings.HasPrefix(raw, "'''"):
		s := strings.TrimSuffix(strings.TrimPrefix(raw, "'''"), "'''")
		return strings.TrimPrefix(s, "\n")
	case strings.HasPrefix(raw, "'"):
		return strings.TrimSuffix(strings.TrimPrefix(raw, "'"), "'")
	case strings.HasPrefix(raw, `"""`):
		s := strings.TrimSuffix(strings.TrimPrefix(raw, `"""`), `"""`)
		return unescape(strings.TrimPrefix(s, "\n"))
	case strings.HasPrefix(raw, `"`):
		return unescape(strings.TrimSuffix(strings.TrimPrefix(raw, `"`), `"`))
	}
	return raw
}

func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'u', 'U':
			width := 4
			if s[i] == 'U' {
				width = 8
			}
			if i+width >= len(s) {
				b.WriteByte('\\')
				b.WriteByte(s[i])
				continue
			}
			v, err := strconv.ParseUint(s[i+1:i+1+width], 16, 32)
			if err != nil {
				b.WriteByte('\\')
				b.WriteByte(s[i])
				continue
			}
			b.WriteRune(rune(v))
			i += width
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
