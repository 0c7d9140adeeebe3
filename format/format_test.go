package format

import (
	"testing"

	"github.com/tomlsort/go-tomlsort/encode"
	"github.com/tomlsort/go-tomlsort/parse"
)

func fmtText(t *testing.T, in string, opts *Options) string {
	t.Helper()
	doc, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	out, err := Document(doc, opts)
	if err != nil {
		t.Fatalf("format %q: %v", in, err)
	}
	return encode.MustString(out, encode.TrimDocument(true))
}

type formatTest struct {
	name string
	in   string
	want string
	opts *Options
}

func formatTests() []formatTest {
	plain := NewOptions(nil, nil, false)
	return []formatTest{
		{
			name: "lexicographic",
			in:   "z = 1\nb = 2\na = 3\n",
			want: "a = 3\nb = 2\nz = 1\n",
			opts: plain,
		},
		{
			name: "priority precedence",
			in:   "z = 1\na = 2\nb = 3\n",
			want: "b = 3\na = 2\nz = 1\n",
			opts: NewOptions([]string{"b", "a"}, nil, false),
		},
		{
			name: "section isolation",
			in:   "b = 1\na = 2\n\nd = 3\nc = 4\n",
			want: "a = 2\nb = 1\n\nc = 4\nd = 3\n",
			opts: plain,
		},
		{
			// an entry newline is re-emitted as \n, but a \r\n blank line
			// kept in a key prefix still delimits sections
			name: "crlf section boundary",
			in:   "b = 1\r\na = 2\r\n\r\nd = 3\r\nc = 4\r\n",
			want: "a = 2\nb = 1\n\r\nc = 4\nd = 3\n",
			opts: plain,
		},
		{
			name: "comment anchoring",
			in:   "# section one\nb = 1\na = 2\n\n# section two\nd = 3\nc = 4\n",
			want: "# section one\na = 2\nb = 1\n\n# section two\nc = 4\nd = 3\n",
			opts: plain,
		},
		{
			name: "key comment stays attached",
			in:   "b = 1\n# about a\na = 2\n",
			want: "# about a\na = 2\nb = 1\n",
			opts: plain,
		},
		{
			// spacing around the value is normalized; the whitespace
			// between a key and '=' is kept as written
			name: "value spacing normalized",
			in:   "a    =     1    # one\n",
			want: "a    = 1 # one\n",
			opts: plain,
		},
		{
			name: "quote normalization",
			in:   "a = 'hello'\nb = 'back\\slash'\nc = ''\n",
			want: "a = \"hello\"\nb = 'back\\slash'\nc = ''\n",
			opts: plain,
		},
		{
			name: "multiline literal untouched",
			in:   "m = '''\nkeep 'em\n'''\n",
			want: "m = '''\nkeep 'em\n'''\n",
			opts: plain,
		},
		{
			name: "inline array",
			in:   "x = [1,2,3]\n",
			want: "x = [ 1, 2, 3 ]\n",
			opts: plain,
		},
		{
			name: "string array partition",
			in:   "x = [\"banana\", 3, \"apple\", true]\n",
			want: "x = [ \"apple\", \"banana\", 3, true ]\n",
			opts: NewOptions(nil, nil, true),
		},
		{
			name: "string array partition disabled",
			in:   "x = [\"banana\", 3, \"apple\", true]\n",
			want: "x = [ \"banana\", 3, \"apple\", true ]\n",
			opts: plain,
		},
		{
			name: "multiline array",
			in:   "x = [\n\t\"b\", # bee\n\t\"a\",\n]\n",
			want: "x = [\n\t\"b\",\n\t# bee\n\t\"a\",\n]\n",
			opts: plain,
		},
		{
			name: "multiline array sorted with comments",
			in:   "x = [\n\t\"b\", # bee\n\t\"a\",\n]\n",
			want: "x = [\n\t# bee\n\t\"a\",\n\t\"b\",\n]\n",
			opts: NewOptions(nil, nil, true),
		},
		{
			name: "multiline array trailing comma forced",
			in:   "x = [\n\t1,\n\t2\n]\n",
			want: "x = [\n\t1,\n\t2,\n]\n",
			opts: plain,
		},
		{
			name: "inline table sorted",
			in:   "p = {b = 2, a = 1}\n",
			want: "p = { a = 1, b = 2 }\n",
			opts: plain,
		},
		{
			name: "inline table priority",
			in:   "p = {a = 1, b = 2}\n",
			want: "p = { b = 2, a = 1 }\n",
			opts: NewOptions(nil, []string{"b"}, false),
		},
		{
			name: "inline table in array keeps comma spacing",
			in:   "x = [ { b = 2, a = 1 } ]\n",
			want: "x = [ { a = 1, b = 2 } ]\n",
			opts: plain,
		},
		{
			name: "tables sorted in one section",
			in:   "[b]\nx = 1\n[a]\ny = 2\n",
			want: "[a]\ny = 2\n[b]\nx = 1\n",
			opts: plain,
		},
		{
			name: "tables in separate sections keep order",
			in:   "[b]\nx = 1\n\n[a]\ny = 2\n",
			want: "[b]\nx = 1\n\n[a]\ny = 2\n",
			opts: plain,
		},
		{
			name: "priority applies at every level",
			in:   "[t]\nz = 1\nb = 2\n",
			want: "[t]\nb = 2\nz = 1\n",
			opts: NewOptions([]string{"b"}, nil, false),
		},
		{
			name: "empty parent header dropped",
			in:   "[a]\n[a.b]\nk = 'v'\n",
			want: "[a.b]\nk = \"v\"\n",
			opts: plain,
		},
		{
			name: "comment on dropped header goes with it",
			in:   "# parent\n[a]\n[a.b]\nk = 1\n",
			want: "[a.b]\nk = 1\n",
			opts: plain,
		},
		{
			name: "array of tables passes through",
			in:   "[[fruit]]\nname=\"apple\"\n\n[[fruit]]\nname=\"banana\"\n",
			want: "[[fruit]]\nname=\"apple\"\n\n[[fruit]]\nname=\"banana\"\n",
			opts: plain,
		},
		{
			name: "document trailing comment preserved",
			in:   "b = 1\na = 2\n\n# the end\n",
			want: "a = 2\nb = 1\n\n# the end\n",
			opts: plain,
		},
		{
			name: "datetime preserved",
			in:   "t = 1979-05-27 07:32:00Z\n",
			want: "t = 1979-05-27 07:32:00Z\n",
			opts: plain,
		},
	}
}

func TestFormat(t *testing.T) {
	for _, tt := range formatTests() {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmtText(t, tt.in, tt.opts); got != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

// Formatting an already formatted document is a no-op.
func TestFormatIdempotent(t *testing.T) {
	for _, tt := range formatTests() {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmtText(t, tt.want, tt.opts); got != tt.want {
				t.Errorf("second pass changed output:\n%q\nto:\n%q", tt.want, got)
			}
		})
	}
}

// The input tree is never mutated; formatting builds a new one.
func TestFormatPure(t *testing.T) {
	in := "b = 1\na = ['z', 'y']\n"
	doc, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	before := encode.MustString(doc)
	if _, err := Document(doc, NewOptions([]string{"a"}, nil, true)); err != nil {
		t.Fatal(err)
	}
	if after := encode.MustString(doc); after != before {
		t.Errorf("input tree mutated:\n%q\nbecame:\n%q", before, after)
	}
}
