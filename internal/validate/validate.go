package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reID   = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reCity = regexp.MustCompile(`^[\p{L}\p{M} .'-]{1,60}$`)
)

// ID validates a simple resource identifier (product/store ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// City validates a city filter. Empty means "no filter" and is accepted.
func City(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, reCity.MatchString(s)
}

// Clip cuts s to at most max runes without splitting a character.
func Clip(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
