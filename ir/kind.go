package ir

type Kind int

const (
	InvalidKind Kind = iota
	TableKind
	InlineTableKind
	ArrayKind
	ArrayOfTablesKind
	StringKind
	IntegerKind
	FloatKind
	BoolKind
	DatetimeKind
)

func (k Kind) String() string {
	return map[Kind]string{
		InvalidKind:       "InvalidKind",
		TableKind:         "TableKind",
		InlineTableKind:   "InlineTableKind",
		ArrayKind:         "ArrayKind",
		ArrayOfTablesKind: "ArrayOfTablesKind",
		StringKind:        "StringKind",
		IntegerKind:       "IntegerKind",
		FloatKind:         "FloatKind",
		BoolKind:          "BoolKind",
		DatetimeKind:      "DatetimeKind",
	}[k]
}

func Kinds() []Kind {
	return []Kind{
		TableKind,
		InlineTableKind,
		ArrayKind,
		ArrayOfTablesKind,
		StringKind,
		IntegerKind,
		FloatKind,
		BoolKind,
		DatetimeKind,
	}
}

// IsScalar reports whether k is a leaf value kind.
func (k Kind) IsScalar() bool {
	switch k {
	case StringKind, IntegerKind, FloatKind, BoolKind, DatetimeKind:
		return true
	}
	return false
}

// IsValue reports whether k can appear on the right hand side of '='.
func (k Kind) IsValue() bool {
	return k.IsScalar() || k == ArrayKind || k == InlineTableKind
}
