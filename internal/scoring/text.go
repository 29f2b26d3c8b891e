package scoring

import (
	"strings"
	"unicode/utf8"
)

const bulletMarker = "•"

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// length counts characters, not bytes, so a "•" counts once.
func length(s string) int {
	return utf8.RuneCountInString(s)
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
