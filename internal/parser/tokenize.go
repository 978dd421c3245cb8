// Package parser implements the line-level rules of the catalog text format:
// tokenizing header lines, extracting record names, matching lookup queries
// against lines, and decoding asterisk-marked warning annotations.
package parser

import (
	"iter"
	"strings"
)

// Tokens returns the whitespace-delimited tokens of line, in order.
// The sequence can be ranged over any number of times.
func Tokens(line string) iter.Seq[string] {
	return strings.FieldsSeq(line)
}
