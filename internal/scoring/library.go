package scoring

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
	"sync"
)

//go:embed library.json
var defaultLibraryJSON []byte

// Section names used as keys in Result.Sections and ImprovementPriority.Section.
const (
	SectionPersonal   = "personal"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
	SectionAdditional = "additional"
)

// SectionOrder is the order sections are scored and weighted in.
var SectionOrder = []string{SectionPersonal, SectionExperience, SectionEducation, SectionSkills, SectionProjects}

// Weights maps each scored section to its share of the overall score.
type Weights struct {
	Personal   float64 `json:"personal"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Skills     float64 `json:"skills"`
	Projects   float64 `json:"projects"`
}

// Sum adds the weights in SectionOrder.
func (w Weights) Sum() float64 {
	return w.Personal + w.Experience + w.Education + w.Skills + w.Projects
}

// Library is the static reference data the scorers read: keyword tables, the
// metric pattern and the section weights. It is never mutated after loading.
type Library struct {
	ActionVerbs            []string `json:"actionVerbs"`
	TechnicalKeywords      []string `json:"technicalKeywords"`
	SoftKeywords           []string `json:"softKeywords"`
	MetricPattern          string   `json:"metricPattern"`
	GenericMailDomains     []string `json:"genericMailDomains"`
	DefaultMissingKeywords []string `json:"defaultMissingKeywords"`
	FallbackFoundKeywords  []string `json:"fallbackFoundKeywords"`
	Weights                Weights  `json:"weights"`

	metric *regexp.Regexp
}

var defaultLibrary = sync.OnceValue(func() *Library {
	lib, err := ParseLibrary(defaultLibraryJSON)
	if err != nil {
		panic(fmt.Sprintf("scoring: embedded library invalid: %v", err))
	}
	return lib
})

// DefaultLibrary returns the embedded library, parsed once per process.
func DefaultLibrary() *Library {
	return defaultLibrary()
}

// LoadLibrary reads a library from path. An empty path yields the embedded default.
func LoadLibrary(path string) (*Library, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultLibrary(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scoring library %s: %w", path, err)
	}
	lib, err := ParseLibrary(raw)
	if err != nil {
		return nil, fmt.Errorf("scoring library %s: %w", path, err)
	}
	return lib, nil
}

// ParseLibrary decodes and validates a library document.
func ParseLibrary(raw []byte) (*Library, error) {
	var lib Library
	if err := json.Unmarshal(raw, &lib); err != nil {
		return nil, fmt.Errorf("decode library: %w", err)
	}
	lib.ActionVerbs = lowerAll(lib.ActionVerbs)
	lib.TechnicalKeywords = lowerAll(lib.TechnicalKeywords)
	lib.SoftKeywords = lowerAll(lib.SoftKeywords)
	lib.GenericMailDomains = lowerAll(lib.GenericMailDomains)
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	metric, err := regexp.Compile(lib.MetricPattern)
	if err != nil {
		return nil, fmt.Errorf("compile metricPattern: %w", err)
	}
	lib.metric = metric
	return &lib, nil
}

// Validate checks that every table is populated and the weights sum to 1.
func (l *Library) Validate() error {
	var errs []error
	if len(l.ActionVerbs) == 0 {
		errs = append(errs, errors.New("actionVerbs must not be empty"))
	}
	if len(l.TechnicalKeywords) < missingKeywordCount {
		errs = append(errs, fmt.Errorf("technicalKeywords needs at least %d entries", missingKeywordCount))
	}
	if len(l.SoftKeywords) < missingKeywordCount {
		errs = append(errs, fmt.Errorf("softKeywords needs at least %d entries", missingKeywordCount))
	}
	if strings.TrimSpace(l.MetricPattern) == "" {
		errs = append(errs, errors.New("metricPattern is required"))
	}
	if len(l.DefaultMissingKeywords) == 0 {
		errs = append(errs, errors.New("defaultMissingKeywords must not be empty"))
	}
	if len(l.FallbackFoundKeywords) < fallbackFoundCount {
		errs = append(errs, fmt.Errorf("fallbackFoundKeywords needs at least %d entries", fallbackFoundCount))
	}
	if sum := l.Weights.Sum(); math.Abs(sum-1) > 1e-9 {
		errs = append(errs, fmt.Errorf("weights must sum to 1.00, got %.4f", sum))
	}
	return errors.Join(errs...)
}

// HasMetric reports whether text contains a quantified achievement.
func (l *Library) HasMetric(text string) bool {
	return l.metric.MatchString(text)
}

func lowerAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.ToLower(strings.TrimSpace(item)); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
