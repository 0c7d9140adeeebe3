package parse

import (
	"errors"
	"testing"

	"github.com/tomlsort/go-tomlsort/encode"
	"github.com/tomlsort/go-tomlsort/ir"
)

// Parsing keeps all trivia, so encoding a parsed document must reproduce
// the input.
func TestParseRoundTrip(t *testing.T) {
	ins := []string{
		"",
		"a = 1\n",
		"a=1\n",
		"a   =   1\n",
		"# leading comment\na = 1\n",
		"a = 1 # trailing\n",
		"a = 1\n\nb = 2\n",
		"a = 1\n\n# section\nb = 2\n",
		"a.b = 1\n",
		"\"key with spaces\" = 1\n",
		"s = 'literal'\nt = \"basic\"\n",
		"m = \"\"\"\nmulti\nline\n\"\"\"\n",
		"arr = []\n",
		"arr = [1, 2, 3]\n",
		"arr = [ 1 , 2 ]\n",
		"arr = [[1, 2], [3]]\n",
		"arr = [\n\t1,\n\t2,\n]\n",
		"arr = [\n\t1, # one\n\t2,\n]\n",
		"arr = [\n\t# leading\n\t1,\n]\n",
		"it = {}\n",
		"it = { a = 1, b = 2 }\n",
		"it = {a=1,b=2}\n",
		"it = { a = [1, 2], b = { c = 3 } }\n",
		"[t]\na = 1\n",
		"[t] # table comment\na = 1\n",
		"# before table\n[t]\na = 1\n",
		"[a]\nx = 1\n\n[b]\ny = 2\n",
		"[a.b.c]\nx = 1\n",
		"[a]\nx = 1\n[a.b]\ny = 2\n",
		"[[fruit]]\nname = \"apple\"\n\n[[fruit]]\nname = \"banana\"\n",
		"[[a.b]]\nx = 1\n",
		"d = 1979-05-27T07:32:00Z\nt = 07:32:00\n",
		"f = 3.14\ni = 1_000\n",
		"a = 1\n\n# trailing document comment\n",
		"x = true\n# the end\n",
	}
	for _, in := range ins {
		doc, err := Parse([]byte(in))
		if err != nil {
			t.Errorf("Parse(%q): %v", in, err)
			continue
		}
		if got := encode.MustString(doc); got != in {
			t.Errorf("round trip of %q gives %q", in, got)
		}
	}
}

func TestParseTree(t *testing.T) {
	doc, err := Parse([]byte("[server]\nhost = 'x'\nports = [80, 443]\n"))
	if err != nil {
		t.Fatal(err)
	}
	server := doc.Root.Get("server")
	if server == nil || server.Kind != ir.TableKind {
		t.Fatalf("server = %v", server)
	}
	host := server.Get("host")
	if host == nil || host.Kind != ir.StringKind || host.Str != "x" {
		t.Errorf("host = %v", host)
	}
	ports := server.Get("ports")
	if ports == nil || ports.Kind != ir.ArrayKind || ports.Len() != 2 {
		t.Fatalf("ports = %v", ports)
	}
	if ports.Values[1].Kind != ir.IntegerKind || ports.Values[1].Raw != "443" {
		t.Errorf("ports[1] = %v", ports.Values[1])
	}
}

func TestParseSectionPrefixes(t *testing.T) {
	doc, err := Parse([]byte("a = 1\n\n# section\nb = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Root.Keys[0].Decor.Prefix; got != "" {
		t.Errorf("a prefix = %q", got)
	}
	if got := doc.Root.Keys[1].Decor.Prefix; got != "\n# section\n" {
		t.Errorf("b prefix = %q", got)
	}
}

func TestParseImplicitTables(t *testing.T) {
	doc, err := Parse([]byte("[a.b]\nx = 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	a := doc.Root.Get("a")
	if a == nil || !a.Implicit {
		t.Fatalf("a = %+v, want implicit table", a)
	}
	if b := a.Get("b"); b == nil || b.Implicit {
		t.Errorf("b = %+v, want explicit table", b)
	}
}

func TestParseTrailing(t *testing.T) {
	doc, err := Parse([]byte("a = 1\n\n# the end\n"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Trailing != "\n# the end\n" {
		t.Errorf("trailing = %q", doc.Trailing)
	}
}

func TestParseErrors(t *testing.T) {
	ins := []string{
		"a = 1\na = 2\n",
		"[t]\n[t]\n",
		"a =\n",
		"= 1\n",
		"arr = [1, 2\n",
		"it = { a = 1\n",
		"[never closed\n",
		"a = 1 b = 2\n",
		"[[t]\n",
	}
	for _, in := range ins {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) err = %v, want ErrParse", in, err)
		}
	}
}
