package textparse

import (
	"regexp"
	"strings"
)

var (
	spaceRun      = regexp.MustCompile(`[ \t\x{00a0}]+`)
	blankLineRuns = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes line endings and inner whitespace and caps blank runs at one empty line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(blankLineRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}

var bulletPrefixes = []string{"•", "·", "▪", "‣", "◦", "●", "–", "-", "*"}

// bulletBody reports whether line is a list item and returns its text without the marker.
func bulletBody(line string) (string, bool) {
	for _, p := range bulletPrefixes {
		if rest, ok := strings.CutPrefix(line, p); ok {
			if p == "-" || p == "*" || p == "–" {
				// a dash with no following space is more likely a negative number or a range
				if !strings.HasPrefix(rest, " ") {
					continue
				}
			}
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}
