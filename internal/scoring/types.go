package scoring

// Priority ranks how urgent an improvement action is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// SectionScore is the bounded rating for one resume section.
type SectionScore struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Improvements []string `json:"improvements"`
}

// ImprovementPriority is an actionable suggestion tied to a section.
type ImprovementPriority struct {
	Section  string   `json:"section"`
	Priority Priority `json:"priority"`
	Action   string   `json:"action"`
}

// Result is the full evaluation of one resume. Recommendations and priorities
// keep detection order; priorities are not sorted by severity.
type Result struct {
	Overall               int                     `json:"overall"`
	Sections              map[string]SectionScore `json:"sections"`
	Recommendations       []string                `json:"recommendations"`
	KeywordsFound         []string                `json:"keywordsFound"`
	KeywordsMissing       []string                `json:"keywordsMissing"`
	ImprovementPriorities []ImprovementPriority   `json:"improvementPriorities"`
}

// outcome is what a single section scorer produces.
type outcome struct {
	score           SectionScore
	recommendations []string
	priorities      []ImprovementPriority
	found           []string
	missing         []string
}

func (o *outcome) improve(msg string) {
	o.score.Improvements = append(o.score.Improvements, msg)
}

func (o *outcome) recommend(msg string) {
	o.recommendations = append(o.recommendations, msg)
}

func (o *outcome) prioritize(section string, p Priority, action string) {
	o.priorities = append(o.priorities, ImprovementPriority{Section: section, Priority: p, Action: action})
}

// finish clamps points into [0,100] and picks the feedback line.
func (o *outcome) finish(points, threshold int, good, weak string) outcome {
	o.score.Score = clamp(points)
	if points >= threshold {
		o.score.Feedback = good
	} else {
		o.score.Feedback = weak
	}
	if o.score.Improvements == nil {
		o.score.Improvements = []string{}
	}
	return *o
}

func clamp(points int) int {
	return max(0, min(100, points))
}
