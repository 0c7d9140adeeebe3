// Package format canonicalizes key order and layout of TOML documents.
//
// Formatting is a pure transformation from an ir.Document and an Options
// value to a new ir.Document; the input tree is never mutated. Keys are
// sorted within blank-line-delimited sections, configured priority keys
// first, everything else lexicographically. Comments travel with their
// keys; a section's leading comment block stays at the top of its section.
// Arrays keep their inline or multi-line layout, and single-quoted strings
// that need no escaping are rewritten to double quotes.
//
// Formatting is idempotent: running it twice with the same Options yields
// byte-identical output.
package format
