package textparse

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"resume-scorer/internal/resume"
)

const bulletMarker = "•"

var (
	partSplitter       = regexp.MustCompile(`\s*(?:[|•·—–,@]|\s-\s|\s+at\s+)\s*`)
	degreePattern      = regexp.MustCompile(`(?i)^(?:bachelor|master|associate|doctor|diploma|certificate|ph\.?\s?d|mba|b\.?\s?sc?|m\.?\s?sc?|b\.?a|m\.?a|b\.?eng|m\.?eng|b\.?tech|m\.?tech)(?:[\s.,']|$)`)
	institutionPattern = regexp.MustCompile(`(?i)universit|college|institut|school|academy|polytechnic`)
	companyPattern     = regexp.MustCompile(`(?i)\b(?:inc|llc|ltd|corp|corporation|company|co|gmbh|labs|technologies|solutions|group)\b\.?$`)
	techLinePattern    = regexp.MustCompile(`(?i)^(?:technologies|tech stack|tech|built with|stack|tools)\s*:\s*(.+)$`)
)

// block is one entry of a list section: header lines followed by description lines.
type block struct {
	header []string
	body   []string
	dates  dateRange
	dated  bool
	closed bool
}

// splitBlocks groups section lines into entries. A new entry starts at a header line
// that follows a description, a blank line, or a second date range.
func splitBlocks(lines []string) []*block {
	var (
		blocks []*block
		cur    *block
	)
	open := func() {
		cur = &block{}
		blocks = append(blocks, cur)
	}
	for _, line := range lines {
		if line == "" {
			if cur != nil && len(cur.header) > 0 {
				cur.closed = true
			}
			continue
		}
		if text, ok := bulletBody(line); ok {
			if cur == nil {
				open()
			}
			cur.body = append(cur.body, bulletMarker+" "+text)
			continue
		}
		if cur != nil && len(cur.body) > 0 && !cur.closed && startsLower(line) {
			cur.body[len(cur.body)-1] += " " + line
			continue
		}
		if isProse(line) {
			if cur == nil {
				open()
			}
			cur.body = append(cur.body, line)
			continue
		}

		dates, rest, dated := findDates(line)
		if cur == nil || len(cur.body) > 0 || cur.closed || (dated && cur.dated) {
			open()
		}
		if dated && !cur.dated {
			cur.dates, cur.dated, line = dates, true, rest
		}
		if line != "" {
			cur.header = append(cur.header, line)
		}
	}
	return blocks
}

func startsLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}

func isProse(line string) bool {
	return len([]rune(line)) >= 90 || (strings.HasSuffix(line, ".") && len(strings.Fields(line)) >= 8)
}

// headerParts strips the location from the header lines and splits the rest on separators.
func headerParts(header []string) (parts []string, location string) {
	for _, line := range header {
		if m := locationPattern.FindString(line); m != "" && location == "" {
			location = m
			line = strings.Replace(line, m, "", 1)
		}
		for _, p := range partSplitter.Split(line, -1) {
			if p = strings.Trim(p, " ()-"); p != "" {
				parts = append(parts, p)
			}
		}
	}
	return parts, location
}

func (b *block) description() string {
	return strings.Join(b.body, "\n")
}

func toExperience(i int, b *block) resume.Experience {
	parts, location := headerParts(b.header)
	if len(parts) >= 2 && companyPattern.MatchString(parts[0]) && !companyPattern.MatchString(parts[1]) {
		parts[0], parts[1] = parts[1], parts[0]
	}
	exp := resume.Experience{
		ID:          fmt.Sprintf("exp-%d", i+1),
		Location:    location,
		StartDate:   b.dates.Start,
		EndDate:     b.dates.End,
		Current:     b.dates.Current,
		Description: b.description(),
	}
	if len(parts) > 0 {
		exp.Title = parts[0]
	}
	if len(parts) > 1 {
		exp.Company = parts[1]
	}
	return exp
}

func toEducation(i int, b *block) resume.Education {
	parts, location := headerParts(b.header)
	edu := resume.Education{
		ID:          fmt.Sprintf("edu-%d", i+1),
		Location:    location,
		StartDate:   b.dates.Start,
		EndDate:     b.dates.End,
		Current:     b.dates.Current,
		Description: b.description(),
	}
	var others []string
	for _, p := range parts {
		switch {
		case strings.Contains(strings.ToLower(p), "gpa"):
			continue
		case edu.Degree == "" && degreePattern.MatchString(p):
			degree, field, _ := strings.Cut(p, " in ")
			edu.Degree = strings.TrimSpace(degree)
			edu.Field = strings.TrimSpace(field)
		case edu.Institution == "" && institutionPattern.MatchString(p):
			edu.Institution = p
		default:
			others = append(others, p)
		}
	}
	if edu.Institution == "" && len(others) > 0 {
		edu.Institution, others = others[0], others[1:]
	}
	if edu.Field == "" && edu.Degree != "" && len(others) > 0 {
		edu.Field = others[0]
	}
	return edu
}

func toProject(i int, b *block) resume.Project {
	proj := resume.Project{ID: fmt.Sprintf("proj-%d", i+1), StartDate: b.dates.Start, EndDate: b.dates.End}

	takeLinks := func(line string) string {
		if m := gitHubPattern.FindString(line); m != "" {
			setOnce(&proj.GitHubLink, trimURL(m))
			line = strings.Replace(line, m, "", 1)
		}
		if m := urlPattern.FindString(line); m != "" {
			setOnce(&proj.LiveLink, trimURL(m))
			line = strings.Replace(line, m, "", 1)
		}
		return line
	}

	var header []string
	for _, line := range b.header {
		if m := techLinePattern.FindStringSubmatch(line); m != nil {
			setOnce(&proj.Technologies, strings.TrimSpace(m[1]))
			continue
		}
		header = append(header, takeLinks(line))
	}
	var body []string
	for _, line := range b.body {
		text := strings.TrimSpace(strings.TrimPrefix(line, bulletMarker))
		if m := techLinePattern.FindStringSubmatch(text); m != nil {
			setOnce(&proj.Technologies, strings.TrimSpace(m[1]))
			continue
		}
		if (gitHubPattern.MatchString(text) || urlPattern.MatchString(text)) && len(strings.Fields(text)) <= 3 {
			takeLinks(text)
			continue
		}
		body = append(body, line)
	}

	parts, _ := headerParts(header)
	if len(parts) > 0 {
		proj.Name = parts[0]
	}
	proj.Description = strings.Join(body, "\n")
	return proj
}
