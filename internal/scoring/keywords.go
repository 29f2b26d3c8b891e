package scoring

import (
	"math/rand"
	"strings"

	"resume-scorer/internal/resume"
)

const fallbackFoundCount = 3

type keywordMatch struct {
	found     []string
	technical bool
	soft      bool
}

// matchKeywords tests every skill name case-insensitively against the technical
// and soft keyword tables. Matching skills are reported once each, in the order
// they appear, with their original casing. A skill hitting several keywords
// ("AWS Cloud" matches aws and cloud) is still listed once.
func matchKeywords(skills []resume.Skill, lib *Library) keywordMatch {
	var m keywordMatch
	seen := make(map[string]bool, len(skills))
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			m.found = append(m.found, name)
		}
	}
	for _, s := range skills {
		if !present(s.Name) {
			continue
		}
		lower := strings.ToLower(s.Name)
		for _, kw := range lib.TechnicalKeywords {
			if strings.Contains(lower, kw) {
				m.technical = true
				add(s.Name)
			}
		}
		for _, kw := range lib.SoftKeywords {
			if strings.Contains(lower, kw) {
				m.soft = true
				add(s.Name)
			}
		}
	}
	return m
}

// Sampler picks n distinct entries from pool. It only decorates an empty
// keywordsFound list and never influences any score.
type Sampler interface {
	Sample(pool []string, n int) []string
}

// RandomSampler draws without replacement.
type RandomSampler struct{}

// Sample implements Sampler.
func (RandomSampler) Sample(pool []string, n int) []string {
	n = min(n, len(pool))
	picked := make([]string, 0, n)
	for _, i := range rand.Perm(len(pool))[:n] {
		picked = append(picked, pool[i])
	}
	return picked
}

// FixedSampler takes the first n entries, making Evaluate fully deterministic.
type FixedSampler struct{}

// Sample implements Sampler.
func (FixedSampler) Sample(pool []string, n int) []string {
	n = min(n, len(pool))
	return append([]string(nil), pool[:n]...)
}
