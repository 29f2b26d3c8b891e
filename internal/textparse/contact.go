package textparse

import (
	"regexp"
	"strings"

	"resume-scorer/internal/resume"
)

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`\+?\(?\d[\d\s().\-]{7,}\d`)
	linkedInPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/[^\s|,]+`)
	gitHubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[^\s|,]+`)
	urlPattern      = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s|,]+|\b[a-z0-9\-]+(?:\.[a-z0-9\-]+)*\.(?:com|dev|io|me|net|org|app|tech)(?:/[^\s|,]*)?\b`)
	locationPattern = regexp.MustCompile(`\b[A-Z][A-Za-z.]+(?: [A-Z][A-Za-z.]+)*, ?[A-Z]{2}\b|\bRemote\b`)
	headerSplitter  = regexp.MustCompile(`\s*[|•·]\s*|\s{2,}`)
)

// date ranges such as "2019 - 2021" carry eight digits
const minPhoneDigits = 9

// parseHeader fills contact fields from the lines above the first section heading.
// Lines that are not contact details become the name, then the title; long leftovers
// become the summary when the document has no summary section.
func parseHeader(lines []string, p *resume.Personal) {
	var leftovers []string
	for _, line := range lines {
		for _, token := range headerSplitter.Split(line, -1) {
			token = strings.TrimSpace(token)
			if token == "" || takeContact(token, p) {
				continue
			}
			switch {
			case p.Name == "" && plausibleName(token):
				p.Name = token
			case p.Title == "" && p.Name != "" && len([]rune(token)) <= 60:
				p.Title = token
			default:
				leftovers = append(leftovers, token)
			}
		}
	}
	if p.Summary == "" {
		var prose []string
		for _, l := range leftovers {
			if len([]rune(l)) >= 60 {
				prose = append(prose, l)
			}
		}
		p.Summary = strings.Join(prose, " ")
	}
}

// takeContact assigns token to the first empty matching contact field.
func takeContact(token string, p *resume.Personal) bool {
	matched := false
	if m := emailPattern.FindString(token); m != "" {
		setOnce(&p.Email, m)
		token = strings.Replace(token, m, "", 1)
		matched = true
	}
	if m := linkedInPattern.FindString(token); m != "" {
		setOnce(&p.LinkedIn, trimURL(m))
		token = strings.Replace(token, m, "", 1)
		matched = true
	}
	if m := gitHubPattern.FindString(token); m != "" {
		setOnce(&p.GitHub, trimURL(m))
		token = strings.Replace(token, m, "", 1)
		matched = true
	}
	if m := urlPattern.FindString(token); m != "" {
		setOnce(&p.Website, trimURL(m))
		token = strings.Replace(token, m, "", 1)
		matched = true
	}
	if m := phonePattern.FindString(token); m != "" && digitCount(m) >= minPhoneDigits {
		setOnce(&p.Phone, strings.TrimSpace(m))
		token = strings.Replace(token, m, "", 1)
		matched = true
	}
	if m := locationPattern.FindString(token); m != "" {
		setOnce(&p.Location, m)
		matched = true
	}
	return matched
}

func plausibleName(token string) bool {
	words := strings.Fields(token)
	if len(words) < 1 || len(words) > 5 || strings.ContainsAny(token, "0123456789@:") {
		return false
	}
	return len([]rune(token)) <= 50
}

func setOnce(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

func trimURL(u string) string {
	u = strings.TrimRight(u, "/.;)")
	for _, prefix := range []string{"https://", "http://"} {
		u = strings.TrimPrefix(u, prefix)
	}
	return strings.TrimPrefix(u, "www.")
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
