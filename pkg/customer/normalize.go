package customer

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRun = regexp.MustCompile(`\s{2,}`)

func isBoundaryCutChar(r rune) bool {
	return unicode.IsSpace(r) || r == '"' || r == '\'' || r == ',' || r == ';'
}

// Normalize prepares a string for storage in a customer field:
//   - strips leading/trailing whitespace, quotes ('"), commas and semicolons
//   - collapses interior runs of two or more whitespace characters into one space
//
// A single interior whitespace character is kept as-is. Normalize is pure
// and idempotent; it is applied to every name part and contact before storage.
func Normalize(s string) string {
	s = strings.TrimFunc(s, isBoundaryCutChar)
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
