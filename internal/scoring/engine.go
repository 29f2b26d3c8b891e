// Package scoring implements the rule-based ATS resume evaluator: per-section
// scorers, keyword matching and the weighted overall score.
package scoring

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"resume-scorer/internal/resume"
)

const defaultBatchConcurrency = 8

// Engine evaluates resumes against a Library. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	lib         *Library
	sampler     Sampler
	concurrency int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLibrary replaces the embedded keyword library.
func WithLibrary(lib *Library) Option {
	return func(e *Engine) {
		if lib != nil {
			e.lib = lib
		}
	}
}

// WithSampler sets how the keywordsFound fallback is drawn.
func WithSampler(s Sampler) Option {
	return func(e *Engine) {
		if s != nil {
			e.sampler = s
		}
	}
}

// WithDeterministicFallback uses FixedSampler when on is true.
func WithDeterministicFallback(on bool) Option {
	return func(e *Engine) {
		if on {
			e.sampler = FixedSampler{}
		}
	}
}

// WithBatchConcurrency bounds the goroutines used by EvaluateAll.
func WithBatchConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// NewEngine builds an Engine using the embedded library and random fallback sampling.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		lib:         DefaultLibrary(),
		sampler:     RandomSampler{},
		concurrency: defaultBatchConcurrency,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Library returns the reference tables used by e.
func (e *Engine) Library() *Library {
	return e.lib
}

var defaultEngine = NewEngine()

// Evaluate scores r with the default engine.
func Evaluate(r resume.Resume) Result {
	return defaultEngine.Evaluate(r)
}

// Evaluate scores r. It never fails and never modifies r.
func (e *Engine) Evaluate(r resume.Resume) Result {
	outcomes := []outcome{
		scorePersonal(r.Personal, e.lib),
		scoreExperience(r.Experience, e.lib),
		scoreEducation(r.Education),
		scoreSkills(r.Skills, e.lib),
		scoreProjects(r.Projects),
	}

	res := Result{
		Sections:              make(map[string]SectionScore, len(SectionOrder)),
		Recommendations:       []string{},
		KeywordsFound:         []string{},
		KeywordsMissing:       []string{},
		ImprovementPriorities: []ImprovementPriority{},
	}
	for i, o := range outcomes {
		res.Sections[SectionOrder[i]] = o.score
		res.Recommendations = append(res.Recommendations, o.recommendations...)
		res.ImprovementPriorities = append(res.ImprovementPriorities, o.priorities...)
		res.KeywordsFound = append(res.KeywordsFound, o.found...)
		res.KeywordsMissing = append(res.KeywordsMissing, o.missing...)
	}

	res.Overall = e.overall(res.Sections)

	if !present(r.Personal.ProfileImage) {
		res.Recommendations = append(res.Recommendations,
			"Consider adding a professional profile photo to make your resume more personable.")
	}
	if len(r.AdditionalSections) == 0 {
		res.Recommendations = append(res.Recommendations,
			"Add custom sections like 'Certifications' or 'Achievements' to enhance your resume.")
		res.ImprovementPriorities = append(res.ImprovementPriorities, ImprovementPriority{
			Section:  SectionAdditional,
			Priority: PriorityLow,
			Action:   "Add a custom section for certifications or achievements",
		})
	}

	if len(res.KeywordsMissing) == 0 {
		res.KeywordsMissing = append(res.KeywordsMissing, e.lib.DefaultMissingKeywords...)
	}
	if len(res.KeywordsFound) == 0 {
		res.KeywordsFound = append(res.KeywordsFound, e.sampler.Sample(e.lib.FallbackFoundKeywords, fallbackFoundCount)...)
	}

	return res
}

// overall is the weighted sum of the section scores, rounded half up.
func (e *Engine) overall(sections map[string]SectionScore) int {
	w := e.lib.Weights
	total := float64(sections[SectionPersonal].Score)*w.Personal +
		float64(sections[SectionExperience].Score)*w.Experience +
		float64(sections[SectionEducation].Score)*w.Education +
		float64(sections[SectionSkills].Score)*w.Skills +
		float64(sections[SectionProjects].Score)*w.Projects
	return clamp(int(math.Floor(total + 0.5)))
}

// EvaluateAll scores a batch concurrently. Results keep the input order. The
// only possible error is ctx being cancelled.
func (e *Engine) EvaluateAll(ctx context.Context, resumes []resume.Resume) ([]Result, error) {
	results := make([]Result, len(resumes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i := range resumes {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.Evaluate(resumes[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
