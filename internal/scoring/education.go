package scoring

import "resume-scorer/internal/resume"

const educationDescription = 50

func scoreEducation(entries []resume.Education) outcome {
	var o outcome
	const (
		good = "Your education section is well-structured."
		weak = "Add more details to your education section."
	)
	if len(entries) == 0 {
		o.improve("Add at least one education entry to improve your resume's completeness")
		o.recommend("Add education details to improve your resume's ATS score.")
		o.prioritize(SectionEducation, PriorityMedium, "Add your educational background with degree details")
		return o.finish(0, 60, good, weak)
	}

	points := min(80, len(entries)*40)

	complete := true
	described := false
	for _, e := range entries {
		if !present(e.Institution) || !present(e.Degree) || !present(e.Field) || !present(e.StartDate) || !present(e.EndDate) {
			complete = false
		}
		if length(e.Description) > educationDescription {
			described = true
		}
	}
	if complete {
		points += 20
	} else {
		o.improve("Complete all fields for each education entry (institution, degree, field, dates)")
		o.recommend("Complete all fields in your education entries (institution, degree, field, dates).")
	}
	if !described {
		o.improve("Add descriptions to your education entries including relevant coursework or achievements")
	}

	return o.finish(points, 60, good, weak)
}
