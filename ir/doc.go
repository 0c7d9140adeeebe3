// Package ir provides the intermediate representation for TOML documents.
//
// A document is a tree of nodes carrying trivia: every key and every value
// keeps the whitespace and comments (decor) that surrounded it in the
// source, so that encoding a parsed document reproduces the input byte for
// byte. Order is load-bearing: tables and inline tables hold their entries
// as parallel Keys/Values slices in source order, and arrays hold their
// elements in source order.
//
// The IR contains no position information; positions live in the token
// package and are only used for error reporting during parsing.
package ir
