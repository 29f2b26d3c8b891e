package textparse

import "strings"

type sectionKind int

const (
	kindNone sectionKind = iota
	kindSummary
	kindExperience
	kindEducation
	kindSkills
	kindProjects
	kindOther
)

var headingAliases = map[string]sectionKind{
	"summary":                  kindSummary,
	"professional summary":     kindSummary,
	"career summary":           kindSummary,
	"profile":                  kindSummary,
	"professional profile":     kindSummary,
	"about":                    kindSummary,
	"about me":                 kindSummary,
	"objective":                kindSummary,
	"career objective":         kindSummary,
	"experience":               kindExperience,
	"work experience":          kindExperience,
	"professional experience":  kindExperience,
	"relevant experience":      kindExperience,
	"employment":               kindExperience,
	"employment history":       kindExperience,
	"work history":             kindExperience,
	"education":                kindEducation,
	"academic background":      kindEducation,
	"education and training":   kindEducation,
	"skills":                   kindSkills,
	"technical skills":         kindSkills,
	"key skills":               kindSkills,
	"core competencies":        kindSkills,
	"skills and tools":         kindSkills,
	"skills & tools":           kindSkills,
	"technologies":             kindSkills,
	"projects":                 kindProjects,
	"personal projects":        kindProjects,
	"selected projects":        kindProjects,
	"key projects":             kindProjects,
	"side projects":            kindProjects,
	"open source":              kindProjects,
	"open source projects":     kindProjects,
	"academic projects":        kindProjects,
}

// customHeadingWords mark titles of free-form sections such as "Honors & Awards".
var customHeadingWords = map[string]struct{}{
	"certifications": {}, "certification": {}, "licenses": {}, "awards": {}, "honors": {},
	"achievements": {}, "accomplishments": {}, "publications": {}, "languages": {},
	"interests": {}, "hobbies": {}, "volunteer": {}, "volunteering": {}, "activities": {},
	"leadership": {}, "memberships": {}, "affiliations": {}, "courses": {}, "coursework": {},
	"training": {}, "references": {}, "patents": {}, "conferences": {}, "talks": {},
}

const maxHeadingWords = 4

// classifyHeading returns the section a line introduces and its display title.
func classifyHeading(line string) (sectionKind, string) {
	title := strings.TrimSpace(strings.TrimRight(strings.TrimLeft(line, "# "), ":"))
	if title == "" {
		return kindNone, ""
	}
	if kind, ok := headingAliases[strings.ToLower(title)]; ok {
		return kind, title
	}
	if isCustomHeading(title) {
		return kindOther, title
	}
	return kindNone, ""
}

func isCustomHeading(title string) bool {
	words := strings.Fields(strings.ToLower(title))
	if len(words) > maxHeadingWords || strings.ContainsAny(title, "@|,.:/0123456789") {
		return false
	}
	for _, w := range words {
		if _, ok := customHeadingWords[w]; ok {
			return true
		}
	}
	return false
}
