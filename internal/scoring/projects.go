package scoring

import "resume-scorer/internal/resume"

func scoreProjects(entries []resume.Project) outcome {
	var o outcome
	const (
		good = "Your projects section effectively showcases your work."
		weak = "Add more details to your projects section."
	)
	if len(entries) == 0 {
		o.improve("Consider adding projects to showcase your practical skills and experience")
		o.recommend("Consider adding projects to showcase your practical skills.")
		o.prioritize(SectionProjects, PriorityMedium, "Add at least one project with technologies used and description")
		return o.finish(0, 60, good, weak)
	}

	points := min(80, len(entries)*30)

	detailed := true
	linked := false
	for _, p := range entries {
		if length(p.Description) <= detailedDescription || !present(p.Technologies) {
			detailed = false
		}
		if present(p.GitHubLink) || present(p.LiveLink) {
			linked = true
		}
	}
	if detailed {
		points += 20
	} else {
		o.improve("Add more detailed descriptions to your projects (aim for 100+ characters)")
		o.improve("List the technologies used for each project")
		o.recommend("Add detailed descriptions and technologies used in your projects.")
	}
	if !linked {
		o.improve("Include GitHub repositories or live demo links for your projects")
	}

	return o.finish(points, 60, good, weak)
}
