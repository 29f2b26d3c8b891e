// Package textparse turns plain resume text, as extracted from PDF or DOCX uploads,
// into a structured resume record that the scoring engine can evaluate.
package textparse

import (
	"fmt"
	"strings"

	"resume-scorer/internal/resume"
)

type section struct {
	kind  sectionKind
	title string
	lines []string
}

// Parse builds a resume record from plain text. It never fails: text it cannot
// place ends up in the header or in a custom section.
func Parse(text string) resume.Resume {
	header, sections := splitSections(strings.Split(CleanText(text), "\n"))

	var r resume.Resume
	for _, s := range sections {
		switch s.kind {
		case kindSummary:
			if r.Personal.Summary == "" {
				r.Personal.Summary = joinProse(s.lines)
			}
		case kindExperience:
			for _, b := range splitBlocks(s.lines) {
				r.Experience = append(r.Experience, toExperience(len(r.Experience), b))
			}
		case kindEducation:
			for _, b := range splitBlocks(s.lines) {
				r.Education = append(r.Education, toEducation(len(r.Education), b))
			}
		case kindProjects:
			for _, b := range splitBlocks(s.lines) {
				r.Projects = append(r.Projects, toProject(len(r.Projects), b))
			}
		case kindSkills:
			for _, sk := range parseSkills(s.lines) {
				sk.ID = fmt.Sprintf("skill-%d", len(r.Skills)+1)
				r.Skills = append(r.Skills, sk)
			}
		case kindOther:
			content := strings.TrimSpace(strings.Join(s.lines, "\n"))
			if content == "" {
				continue
			}
			r.AdditionalSections = append(r.AdditionalSections, resume.AdditionalSection{
				ID:      fmt.Sprintf("section-%d", len(r.AdditionalSections)+1),
				Title:   s.title,
				Content: content,
			})
		}
	}
	parseHeader(header, &r.Personal)
	return r.Normalize()
}

// splitSections returns the lines above the first heading and the sections that follow.
func splitSections(lines []string) ([]string, []*section) {
	var (
		header   []string
		sections []*section
		cur      *section
	)
	for _, line := range lines {
		if kind, title := classifyHeading(line); kind != kindNone && (kind != kindOther || cur != nil) {
			cur = &section{kind: kind, title: title}
			sections = append(sections, cur)
			continue
		}
		if cur == nil {
			if line != "" {
				header = append(header, line)
			}
			continue
		}
		cur.lines = append(cur.lines, line)
	}
	return header, sections
}

func joinProse(lines []string) string {
	var parts []string
	for _, l := range lines {
		if body, ok := bulletBody(l); ok {
			l = body
		}
		if l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, " ")
}
