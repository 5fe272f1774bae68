package textutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// CleanText trims surrounding whitespace, removes non-printable runes
// and collapses runs of inner whitespace down to a single space.
func CleanText(s string) string {
	out := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			out.WriteRune(c)
		}
	}
	cleaned := strings.Trim(out.String(), " \t\n")
	return innerWhitespace.ReplaceAllString(cleaned, " ")
}

// FirstLine returns the text up to the first newline, trimmed.
func FirstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

// ParseDollars extracts the whole-dollar amount following the first "$"
// in a string like "Waiver Claim ($12)" or "$29 bid".
func ParseDollars(s string) (int, error) {
	_, after, found := strings.Cut(s, "$")
	if !found {
		return 0, fmt.Errorf("no dollar amount in %q", s)
	}
	token, _, _ := strings.Cut(after, " ")
	token = strings.TrimRight(token, ").,")
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("malformed dollar amount in %q: %w", s, err)
	}
	return n, nil
}

// NormalizeTimestamp rewrites a comma-separated timestamp like
// "Oct 31, 9:43 pm" to "Oct 31,9:43 pm" so it matches the format
// used on the contested transactions page.
func NormalizeTimestamp(s string) string {
	before, after, found := strings.Cut(s, ",")
	if !found {
		return s
	}
	return before + "," + strings.TrimPrefix(after, " ")
}
