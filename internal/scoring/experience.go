package scoring

import (
	"strings"

	"resume-scorer/internal/resume"
)

const detailedDescription = 100

func scoreExperience(entries []resume.Experience, lib *Library) outcome {
	var o outcome
	if len(entries) == 0 {
		o.improve("Add work experience entries - this is a critical section for ATS scoring")
		o.recommend("Add work experience to significantly improve your resume's ATS score.")
		o.prioritize(SectionExperience, PriorityHigh, "Add at least one work experience entry with detailed bullet points")
		return o.finish(0, 60, experienceGood, experienceWeak)
	}

	points := min(60, len(entries)*20)

	detailed := true
	for _, e := range entries {
		if !present(e.Description) || length(e.Description) <= detailedDescription || !strings.Contains(e.Description, bulletMarker) {
			detailed = false
			break
		}
	}
	if detailed {
		points += 40
	} else {
		o.improve("Use bullet points (•) in your work experience descriptions")
		o.improve("Ensure each job has at least 3-5 bullet points describing achievements")
		o.recommend("Use bullet points (•) in your work experience descriptions and provide detailed achievements.")
	}

	// Entries without a description are already penalized above and do not
	// count against the action verb check.
	verbs := true
	for _, e := range entries {
		if present(e.Description) && !containsAny(strings.ToLower(e.Description), lib.ActionVerbs) {
			verbs = false
		}
	}
	if !verbs {
		o.improve("Start each bullet point with strong action verbs (e.g., Managed, Developed, Implemented)")
	}

	metrics := false
	for _, e := range entries {
		if present(e.Description) && lib.HasMetric(e.Description) {
			metrics = true
			break
		}
	}
	if !metrics {
		o.improve("Include metrics and quantifiable achievements (e.g., 'Increased sales by 20%')")
		o.prioritize(SectionExperience, PriorityHigh, ActionQuantify)
	}

	return o.finish(points, 60, experienceGood, experienceWeak)
}

// ActionQuantify is raised when no experience entry contains a metric.
const ActionQuantify = "Add quantifiable achievements with metrics (%, $, numbers)"

const (
	experienceGood = "Your experience section is well-detailed."
	experienceWeak = "Add more details to your work experience with bullet points and quantifiable achievements."
)
