package ir

// Decor is the trivia attached to a node or key: Prefix is the text before
// it (comments, blank lines, spacing) and Suffix the text after it, up to
// but excluding the terminating newline of the construct it belongs to.
type Decor struct {
	Prefix string
	Suffix string
}

// Key names one entry of a table or inline table. Text is the key as
// written, possibly quoted or dotted; Name is the decoded form used for
// sorting and lookups.
type Key struct {
	Text  string
	Name  string
	Decor Decor
}

type Node struct {
	Kind  Kind
	Decor Decor

	// TableKind, InlineTableKind: Keys[i] names Values[i].
	// ArrayKind, ArrayOfTablesKind: Values only.
	Keys   []Key
	Values []*Node

	// Scalar kinds. Raw is the value token text, verbatim; Str is the
	// decoded content for StringKind.
	Raw string
	Str string

	// TableKind. An implicit table does not re-emit its header unless it
	// holds direct key-values.
	Implicit bool

	// ArrayKind. Trailing is the trivia between the last element and the
	// closing bracket; a leading newline there selects multi-line layout.
	Trailing      string
	TrailingComma bool
}

type Document struct {
	Root     *Node
	Trailing string
}

func NewTable() *Node       { return &Node{Kind: TableKind} }
func NewInlineTable() *Node { return &Node{Kind: InlineTableKind} }
func NewArray() *Node       { return &Node{Kind: ArrayKind} }

// Insert appends an entry to a table or inline table.
func (n *Node) Insert(key Key, value *Node) {
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, value)
}

// Get returns the value for the entry whose decoded name is name, or nil.
func (n *Node) Get(name string) *Node {
	for i := range n.Keys {
		if n.Keys[i].Name == name {
			return n.Values[i]
		}
	}
	return nil
}

func (n *Node) Len() int { return len(n.Values) }

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Kind = n.Kind
	dst.Decor = n.Decor
	dst.Raw = n.Raw
	dst.Str = n.Str
	dst.Implicit = n.Implicit
	dst.Trailing = n.Trailing
	dst.TrailingComma = n.TrailingComma
	dst.Keys = nil
	dst.Values = nil
	if n.Keys != nil {
		dst.Keys = make([]Key, len(n.Keys))
		copy(dst.Keys, n.Keys)
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

func (d *Document) Clone() *Document {
	return &Document{Root: d.Root.Clone(), Trailing: d.Trailing}
}
