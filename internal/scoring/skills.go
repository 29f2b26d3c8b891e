package scoring

import "resume-scorer/internal/resume"

const (
	minSkills           = 5
	missingKeywordCount = 3
)

func scoreSkills(skills []resume.Skill, lib *Library) outcome {
	var o outcome
	const (
		good = "Your skills section has a good number of keywords."
		weak = "Add more relevant skills to improve ATS keyword matching."
	)
	if len(skills) == 0 {
		o.improve("Add a skills section with at least 8-12 relevant skills")
		o.recommend("Add skills to improve your resume's keyword matching in ATS systems.")
		o.prioritize(SectionSkills, PriorityHigh, "Create a skills section with both technical and soft skills")
		return o.finish(0, 60, good, weak)
	}

	points := min(100, len(skills)*10)

	if len(skills) < minSkills {
		o.improve("Add more skills - aim for 8-12 skills for optimal ATS matching")
		o.recommend("Add more skills (aim for 8-12) to improve keyword matching in ATS systems.")
		o.prioritize(SectionSkills, PriorityHigh, "Add more relevant skills to reach at least 8 skills")
	}

	m := matchKeywords(skills, lib)
	o.found = m.found
	if !m.technical {
		o.improve("Include technical skills relevant to your industry")
		o.missing = append(o.missing, lib.TechnicalKeywords[:missingKeywordCount]...)
	}
	if !m.soft {
		o.improve("Add soft skills like leadership, communication, and problem-solving")
		o.missing = append(o.missing, lib.SoftKeywords[:missingKeywordCount]...)
	}

	return o.finish(points, 60, good, weak)
}
