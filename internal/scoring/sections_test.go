package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-scorer/internal/resume"
)

func TestScorePersonalSummaryBands(t *testing.T) {
	lib := DefaultLibrary()
	cases := []struct {
		name    string
		length  int
		points  int
		recs    int
		improve string
	}{
		{name: "empty", length: 0, points: 0, recs: 1, improve: "Add a professional summary highlighting your expertise and career goals"},
		{name: "one_char", length: 1, points: 5, recs: 1, improve: "Your summary is too brief. Aim for 300+ characters with relevant keywords"},
		{name: "at_150", length: 150, points: 5, recs: 1, improve: "Your summary is too brief. Aim for 300+ characters with relevant keywords"},
		{name: "at_151", length: 151, points: 10, recs: 1, improve: "Expand your professional summary to 300+ characters with relevant keywords"},
		{name: "at_300", length: 300, points: 10, recs: 1, improve: "Expand your professional summary to 300+ characters with relevant keywords"},
		{name: "at_301", length: 301, points: 15, recs: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := resume.Personal{LinkedIn: "x", Summary: strings.Repeat("a", tc.length)}
			o := scorePersonal(p, lib)
			assert.Equal(t, tc.points, o.score.Score)
			assert.Len(t, o.recommendations, tc.recs)
			if tc.improve != "" {
				assert.Contains(t, o.score.Improvements, tc.improve)
			}
		})
	}
}

func TestScorePersonalSummaryCountsCharacters(t *testing.T) {
	// 120 bullets are 360 bytes but only 120 characters.
	p := resume.Personal{Summary: strings.Repeat("•", 120)}
	o := scorePersonal(p, DefaultLibrary())
	assert.Equal(t, 5, o.score.Score)
}

func TestScorePersonalEmailHeuristic(t *testing.T) {
	const note = "Consider using a more professional email address or a personal domain"
	cases := map[string]bool{
		"jane@janedoe.dev":   false,
		"jane.doe@gmail.com": true,
		"Jane.Doe@GMAIL.com": true,
		"info@acme.com":      true,
		"jane.doe.acme.com":  true,
	}
	for email, flagged := range cases {
		t.Run(email, func(t *testing.T) {
			o := scorePersonal(resume.Personal{Email: email}, DefaultLibrary())
			assert.Equal(t, 10, o.score.Score)
			if flagged {
				assert.Contains(t, o.score.Improvements, note)
			} else {
				assert.NotContains(t, o.score.Improvements, note)
			}
		})
	}
}

func TestScorePersonalLocationFormat(t *testing.T) {
	o := scorePersonal(resume.Personal{Location: "Berlin"}, DefaultLibrary())
	assert.Equal(t, 5, o.score.Score)
	assert.Contains(t, o.score.Improvements, "Format your location as 'City, State/Province' for clarity")

	o = scorePersonal(resume.Personal{Location: "Berlin, DE"}, DefaultLibrary())
	assert.NotContains(t, o.score.Improvements, "Format your location as 'City, State/Province' for clarity")
}

func TestScorePersonalBlankIsAbsent(t *testing.T) {
	o := scorePersonal(resume.Personal{Name: "   ", Title: "\t"}, DefaultLibrary())
	assert.Equal(t, 0, o.score.Score)
}

func TestScoreExperience(t *testing.T) {
	lib := DefaultLibrary()
	detailed := "• Managed a fleet of build agents serving the whole organization\n• Reduced CI time by 35% through caching and sharding"

	cases := []struct {
		name     string
		entries  []resume.Experience
		points   int
		improves []string
		recs     int
		quantify bool
	}{
		{
			name:     "single_detailed",
			entries:  []resume.Experience{{Description: detailed}},
			points:   60,
			quantify: false,
		},
		{
			name:     "four_detailed_capped",
			entries:  []resume.Experience{{Description: detailed}, {Description: detailed}, {Description: detailed}, {Description: detailed}},
			points:   100,
			quantify: false,
		},
		{
			name:    "no_bullets",
			entries: []resume.Experience{{Description: strings.ReplaceAll(detailed, "•", "-")}},
			points:  20,
			improves: []string{
				"Use bullet points (•) in your work experience descriptions",
				"Ensure each job has at least 3-5 bullet points describing achievements",
			},
			recs: 1,
		},
		{
			name:     "one_entry_without_verbs",
			entries:  []resume.Experience{{Description: "• Wrote code"}, {Description: detailed}},
			points:   40,
			improves: []string{"Start each bullet point with strong action verbs (e.g., Managed, Developed, Implemented)"},
			recs:     1,
			quantify: false,
		},
		{
			name:     "no_metrics",
			entries:  []resume.Experience{{Description: "• Wrote code"}},
			points:   20,
			improves: []string{"Include metrics and quantifiable achievements (e.g., 'Increased sales by 20%')"},
			recs:     1,
			quantify: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := scoreExperience(tc.entries, lib)
			assert.Equal(t, tc.points, o.score.Score)
			for _, msg := range tc.improves {
				assert.Contains(t, o.score.Improvements, msg)
			}
			assert.Len(t, o.recommendations, tc.recs)
			hasQuantify := false
			for _, p := range o.priorities {
				if p.Action == ActionQuantify {
					hasQuantify = true
				}
			}
			assert.Equal(t, tc.quantify, hasQuantify)
		})
	}
}

func TestScoreExperienceVerbNoteRaisedOnce(t *testing.T) {
	entries := []resume.Experience{{Description: "• Wrote code"}, {Description: "• Fixed bugs"}, {Description: "• Shipped features"}}
	o := scoreExperience(entries, DefaultLibrary())
	count := 0
	for _, msg := range o.score.Improvements {
		if strings.HasPrefix(msg, "Start each bullet point") {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestScoreExperienceMetricPatterns(t *testing.T) {
	lib := DefaultLibrary()
	for _, text := range []string{"grew 15%", "saved $2000", "hired 12 people", "a group of 40 employees", "mentored 5 team members"} {
		assert.True(t, lib.HasMetric(text), text)
	}
	for _, text := range []string{"grew a lot", "hired 12 People", "$ 200"} {
		assert.False(t, lib.HasMetric(text), text)
	}
}

func TestScoreEducation(t *testing.T) {
	complete := resume.Education{Institution: "MIT", Degree: "BSc", Field: "Physics", StartDate: "2010", EndDate: "2014"}

	o := scoreEducation([]resume.Education{complete})
	assert.Equal(t, 60, o.score.Score)
	assert.Equal(t, "Your education section is well-structured.", o.score.Feedback)
	assert.Contains(t, o.score.Improvements, "Add descriptions to your education entries including relevant coursework or achievements")
	assert.Empty(t, o.recommendations)

	incomplete := complete
	incomplete.EndDate = ""
	o = scoreEducation([]resume.Education{complete, incomplete})
	assert.Equal(t, 80, o.score.Score)
	assert.Len(t, o.recommendations, 1)

	described := complete
	described.Description = strings.Repeat("x", 51)
	o = scoreEducation([]resume.Education{described, complete, complete})
	assert.Equal(t, 100, o.score.Score)
	assert.Empty(t, o.score.Improvements)

	o = scoreEducation(nil)
	assert.Equal(t, 0, o.score.Score)
	assert.Equal(t, []ImprovementPriority{{Section: SectionEducation, Priority: PriorityMedium, Action: "Add your educational background with degree details"}}, o.priorities)
}

func TestScoreSkills(t *testing.T) {
	lib := DefaultLibrary()
	skills := func(names ...string) []resume.Skill {
		out := make([]resume.Skill, len(names))
		for i, n := range names {
			out[i] = resume.Skill{ID: n, Name: n}
		}
		return out
	}

	o := scoreSkills(skills("Python", "Excel", "Communication Skills"), lib)
	assert.Equal(t, 30, o.score.Score)
	assert.Equal(t, "Add more relevant skills to improve ATS keyword matching.", o.score.Feedback)
	assert.Equal(t, []string{"Python", "Communication Skills"}, o.found)
	assert.Empty(t, o.missing)
	assert.Equal(t, []ImprovementPriority{{Section: SectionSkills, Priority: PriorityHigh, Action: "Add more relevant skills to reach at least 8 skills"}}, o.priorities)

	o = scoreSkills(skills("Excel", "Word", "Figma", "Leadership", "Photoshop", "Sketch"), lib)
	assert.Equal(t, 60, o.score.Score)
	assert.Equal(t, []string{"Leadership"}, o.found)
	assert.Equal(t, []string{"javascript", "python", "react"}, o.missing)
	assert.Contains(t, o.score.Improvements, "Include technical skills relevant to your industry")
	assert.Empty(t, o.priorities)

	o = scoreSkills(skills("AWS Cloud", "Node.js", "", "Teamwork", "SQL"), lib)
	assert.Equal(t, []string{"AWS Cloud", "Node.js", "Teamwork", "SQL"}, o.found)

	o = scoreSkills(skills("Photoshop", "Figma", "Sketch", "Illustrator", "InDesign"), lib)
	assert.Empty(t, o.found)
	assert.Equal(t, []string{"javascript", "python", "react", "leadership", "communication", "teamwork"}, o.missing)

	many := make([]string, 14)
	for i := range many {
		many[i] = "skill"
	}
	assert.Equal(t, 100, scoreSkills(skills(many...), lib).score.Score)
}

func TestScoreProjects(t *testing.T) {
	long := strings.Repeat("p", 101)

	o := scoreProjects([]resume.Project{{Description: long, Technologies: "Go"}})
	assert.Equal(t, 50, o.score.Score)
	assert.Contains(t, o.score.Improvements, "Include GitHub repositories or live demo links for your projects")

	o = scoreProjects([]resume.Project{{Description: long, Technologies: "Go", LiveLink: "x.dev"}, {Description: long}})
	assert.Equal(t, 60, o.score.Score)
	assert.Equal(t, []string{
		"Add more detailed descriptions to your projects (aim for 100+ characters)",
		"List the technologies used for each project",
	}, o.score.Improvements)
	assert.Len(t, o.recommendations, 1)

	three := []resume.Project{{Description: long, Technologies: "Go", GitHubLink: "gh"}, {Description: long, Technologies: "Go"}, {Description: long, Technologies: "Go"}}
	o = scoreProjects(three)
	assert.Equal(t, 100, o.score.Score)
	assert.Equal(t, "Your projects section effectively showcases your work.", o.score.Feedback)
}

func TestMatchKeywordsListsSkillOnce(t *testing.T) {
	m := matchKeywords([]resume.Skill{{Name: "AWS Cloud"}, {Name: "SQL Teamwork"}}, DefaultLibrary())
	assert.Equal(t, []string{"AWS Cloud", "SQL Teamwork"}, m.found)
	assert.True(t, m.technical)
	assert.True(t, m.soft)
}
