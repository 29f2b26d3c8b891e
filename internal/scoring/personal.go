package scoring

import (
	"strings"

	"resume-scorer/internal/resume"
)

const (
	summaryFull  = 300
	summaryShort = 150
)

func scorePersonal(p resume.Personal, lib *Library) outcome {
	var o outcome
	points := 0

	if present(p.Name) {
		points += 10
	}
	if present(p.Title) {
		points += 10
	}
	if present(p.Email) {
		points += 10
	}
	if present(p.Phone) {
		points += 10
	}
	if present(p.Location) {
		points += 5
	}

	if present(p.Email) {
		if unprofessionalEmail(p.Email, lib) {
			o.improve("Consider using a more professional email address or a personal domain")
		}
	} else {
		o.improve("Add your email address - this is essential contact information")
	}

	if !present(p.LinkedIn) {
		o.improve("Add your LinkedIn profile URL to enhance your professional presence")
	}

	if present(p.Location) {
		if !strings.Contains(p.Location, ",") {
			o.improve("Format your location as 'City, State/Province' for clarity")
		}
	} else {
		o.improve("Add your location to help with location-based job matching")
	}

	switch n := length(p.Summary); {
	case !present(p.Summary):
		o.improve("Add a professional summary highlighting your expertise and career goals")
		o.recommend("Add a professional summary to improve your resume's ATS score.")
	case n > summaryFull:
		points += 15
	case n > summaryShort:
		points += 10
		o.improve("Expand your professional summary to 300+ characters with relevant keywords")
		o.recommend("Consider expanding your professional summary to 300+ characters for better ATS performance.")
	default:
		points += 5
		o.improve("Your summary is too brief. Aim for 300+ characters with relevant keywords")
		o.recommend("Your professional summary is too short. Aim for 300+ characters with relevant keywords.")
	}

	return o.finish(points, 50,
		"Your personal information section is well-filled.",
		"Complete more fields in your personal information section.")
}

func unprofessionalEmail(email string, lib *Library) bool {
	e := strings.ToLower(strings.TrimSpace(email))
	return !strings.Contains(e, "@") ||
		strings.HasPrefix(e, "info@") ||
		containsAny(e, lib.GenericMailDomains)
}
