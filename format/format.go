package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomlsort/go-tomlsort/ir"
)

// Document formats doc under opts, returning an entirely new tree. The
// document's trailing trivia is copied verbatim.
func Document(doc *ir.Document, opts *Options) (*ir.Document, error) {
	root, err := formatTable(doc.Root, opts)
	if err != nil {
		return nil, err
	}
	return &ir.Document{Root: root, Trailing: doc.Trailing}, nil
}

// formatTable sorts a table section by section and recurses into its
// entries. Sub-tables are sectioned independently of their parent; arrays
// of tables pass through unmodified.
func formatTable(t *ir.Node, opts *Options) (*ir.Node, error) {
	if t == nil || t.Kind != ir.TableKind {
		return nil, fmt.Errorf("%w: formatTable on %v", errInternal, t)
	}
	res := &ir.Node{Kind: ir.TableKind, Decor: t.Decor, Implicit: true}
	entries := make([]entry, 0, len(t.Keys))
	for i := range t.Keys {
		key := t.Keys[i]
		v := t.Values[i]
		if v == nil {
			return nil, fmt.Errorf("%w: entry %q has no value", errInternal, key.Name)
		}
		// line termination is supplied by the encoder, not stored trivia
		key.Decor.Suffix = strings.TrimRight(key.Decor.Suffix, "\n")
		var (
			fv  *ir.Node
			err error
		)
		switch v.Kind {
		case ir.TableKind:
			fv, err = formatTable(v, opts)
		case ir.ArrayOfTablesKind:
			fv = v.Clone()
		default:
			fv, err = formatValue(v, false, opts)
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{key: key, node: fv})
	}
	for _, ent := range sortSections(entries, opts.Keys) {
		res.Insert(ent.key, ent.node)
	}
	return res, nil
}

// formatInlineTable sorts an inline table with the inline priority index
// and normalizes every key decor to single spaces. last marks the table as
// the final element of its container.
func formatInlineTable(t *ir.Node, last bool, opts *Options) (*ir.Node, error) {
	res := ir.NewInlineTable()
	res.Decor.Prefix = " "
	if last {
		res.Decor.Suffix = " "
	}
	entries := make([]entry, 0, len(t.Keys))
	for i := range t.Keys {
		if t.Values[i] == nil {
			return nil, fmt.Errorf("%w: entry %q has no value", errInternal, t.Keys[i].Name)
		}
		entries = append(entries, entry{key: t.Keys[i], node: t.Values[i]})
	}
	entries = sortSections(entries, opts.InlineKeys)
	for i, ent := range entries {
		// decor is normalized after sorting; sortSections moves the
		// first entry's prefix and must not disturb comma spacing
		ent.key.Decor = ir.Decor{Prefix: " ", Suffix: " "}
		fv, err := formatValue(ent.node, i == len(entries)-1, opts)
		if err != nil {
			return nil, err
		}
		res.Insert(ent.key, fv)
	}
	return res, nil
}

// formatValue normalizes one value. Composites delegate to their own
// formatters; scalars get single-space decor, re-wrapped comments, and
// quote normalization. last adds the trailing space that precedes a
// closing bracket or brace.
func formatValue(v *ir.Node, last bool, opts *Options) (*ir.Node, error) {
	switch v.Kind {
	case ir.ArrayKind:
		return formatArray(v, last, opts)
	case ir.InlineTableKind:
		return formatInlineTable(v, last, opts)
	case ir.TableKind, ir.ArrayOfTablesKind, ir.InvalidKind:
		return nil, fmt.Errorf("%w: %s in value position", errInternal, v.Kind)
	}
	res := v.Clone()
	prefix := strings.TrimSpace(v.Decor.Prefix)
	if prefix != "" {
		prefix = " " + prefix
	}
	suffix := strings.TrimSpace(v.Decor.Suffix)
	if suffix != "" {
		suffix = " " + suffix
	}
	normalizeQuotes(res)
	res.Decor.Prefix = prefix + " "
	if last {
		suffix += " "
	}
	res.Decor.Suffix = suffix
	return res, nil
}

// normalizeQuotes rewrites 'simple' literal strings to "simple". Strings
// opening with two quotes may be multi-line literals and are left alone, as
// is anything containing a backslash or double quote, which would need
// escaping.
func normalizeQuotes(v *ir.Node) {
	raw := v.Raw
	if !strings.HasPrefix(raw, "'") || strings.HasPrefix(raw, "''") {
		return
	}
	if strings.ContainsAny(raw, "\\\"") {
		return
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(raw, "'"), "'")
	v.Raw = `"` + inner + `"`
}

// formatArray lays an array out inline or multi-line, decided once from
// its trailing trivia, and optionally moves string elements to the front.
func formatArray(a *ir.Node, last bool, opts *Options) (*ir.Node, error) {
	values := make([]*ir.Node, len(a.Values))
	for i, v := range a.Values {
		values[i] = v.Clone()
	}
	if opts.SortStringArrays {
		sort.SliceStable(values, func(i, j int) bool {
			x, y := values[i], values[j]
			switch {
			case x.Kind == ir.StringKind && y.Kind == ir.StringKind:
				return x.Str < y.Str
			case x.Kind == ir.StringKind:
				return true
			default:
				return false
			}
		})
	}
	res := ir.NewArray()
	if strings.HasPrefix(a.Trailing, "\n") {
		res.Trailing = a.Trailing
		res.TrailingComma = true
		for _, v := range values {
			prefix := strings.Trim(v.Decor.Prefix, " \t\n")
			if prefix != "" {
				prefix = "\n\t" + prefix + "\n\t"
			} else {
				prefix = "\n\t"
			}
			suffix := strings.Trim(v.Decor.Suffix, " \t\n")
			fv, err := formatValue(v, false, opts)
			if err != nil {
				return nil, err
			}
			fv.Decor = ir.Decor{Prefix: prefix, Suffix: suffix}
			res.Values = append(res.Values, fv)
		}
	} else {
		for i, v := range values {
			fv, err := formatValue(v, i == len(values)-1, opts)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, fv)
		}
	}
	res.Decor.Prefix = " "
	if last {
		res.Decor.Suffix = " "
	}
	return res, nil
}
