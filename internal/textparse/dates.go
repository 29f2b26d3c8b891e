package textparse

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	monthPart = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?`
	datePart  = `(?:` + monthPart + `\s+\d{4}|\d{1,2}/\d{4}|\d{4})`
	openEnd   = `(?:present|current|now|ongoing)`
)

var (
	dateRangePattern  = regexp.MustCompile(`(?i)\b(` + datePart + `)\s*(?:-|–|—|to)\s*(` + datePart + `|` + openEnd + `)\b`)
	singleDatePattern = regexp.MustCompile(`(?i)\b(` + datePart + `)\b`)
)

// dateRange is a period found in an entry header.
type dateRange struct {
	Start   string
	End     string
	Current bool
}

// findDates extracts the first date range (or single date, treated as the end date)
// in line and returns the line with it removed.
func findDates(line string) (dateRange, string, bool) {
	if loc := dateRangePattern.FindStringSubmatchIndex(line); loc != nil {
		start := tidyDate(line[loc[2]:loc[3]])
		end := tidyDate(line[loc[4]:loc[5]])
		current := isOpenEnd(end)
		if current {
			end = "Present"
		}
		return dateRange{Start: start, End: end, Current: current}, cutSpan(line, loc[0], loc[1]), true
	}
	if loc := singleDatePattern.FindStringSubmatchIndex(line); loc != nil {
		return dateRange{End: tidyDate(line[loc[2]:loc[3]])}, cutSpan(line, loc[0], loc[1]), true
	}
	return dateRange{}, line, false
}

func isOpenEnd(s string) bool {
	switch strings.ToLower(s) {
	case "present", "current", "now", "ongoing":
		return true
	}
	return false
}

// tidyDate renders "JANUARY 2020" as "January 2020" and leaves numeric forms unchanged.
func tidyDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || !unicode.IsLetter(rune(s[0])) {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func cutSpan(line string, from, to int) string {
	return strings.TrimSpace(line[:from] + " " + line[to:])
}
