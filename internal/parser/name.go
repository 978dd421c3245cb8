package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/starford/zoodesk/internal/models"
)

// HeaderMarker starts every line that introduces a record in a catalog listing.
const HeaderMarker = "Details"

// connective is skipped between the marker and the name ("Details on lions").
const connective = "on"

// IsHeader reports whether line is a record header.
func IsHeader(line string) bool {
	return strings.HasPrefix(line, HeaderMarker)
}

// ExtractName derives the record name from a header line.
//
// Leading marker and connective tokens are skipped and the next token is the
// candidate. Animal headers use the plural form ("lions"), so one trailing
// rune is dropped; habitat candidates are returned verbatim. An empty string
// is returned when no candidate token exists.
func ExtractName(line string, category models.Category) string {
	for tok := range Tokens(line) {
		if tok == HeaderMarker || tok == connective {
			continue
		}
		if category == models.Animals {
			return dropLastRune(tok)
		}
		return tok
	}
	return ""
}

func dropLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// Capitalize upper-cases the first rune of s and lower-cases the rest.
// Lookup queries are normalized this way before they are compared.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// MatchMode selects how a normalized query is compared against a line.
type MatchMode string

const (
	// MatchSuffix matches any line ending with the name. "Cat" matches
	// "Animal - Wildcat".
	MatchSuffix MatchMode = "suffix"
	// MatchWord additionally requires the name to start on a word boundary.
	MatchWord MatchMode = "word"
)

// Matches reports whether line ends with name under the given mode.
// An empty name never matches.
func Matches(line, name string, mode MatchMode) bool {
	if name == "" || !strings.HasSuffix(line, name) {
		return false
	}
	if mode != MatchWord {
		return true
	}
	rest := line[:len(line)-len(name)]
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(rest)
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
