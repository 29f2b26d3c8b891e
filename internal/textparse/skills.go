package textparse

import (
	"fmt"
	"regexp"
	"strings"

	"resume-scorer/internal/resume"
)

var skillSeparators = regexp.MustCompile(`\s*[,|•·;]\s*`)

const maxSkillLength = 40

// parseSkills splits skill lines on common separators, dropping category labels
// such as "Languages:" and duplicate names.
func parseSkills(lines []string) []resume.Skill {
	seen := make(map[string]struct{})
	skills := []resume.Skill{}
	for _, line := range lines {
		if body, ok := bulletBody(line); ok {
			line = body
		}
		if label, rest, ok := strings.Cut(line, ":"); ok && len(strings.Fields(label)) <= 3 {
			line = rest
		}
		for _, name := range skillSeparators.Split(line, -1) {
			name = strings.TrimSpace(name)
			if name == "" || len([]rune(name)) > maxSkillLength {
				continue
			}
			key := strings.ToLower(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			skills = append(skills, resume.Skill{ID: fmt.Sprintf("skill-%d", len(skills)+1), Name: name})
		}
	}
	return skills
}
