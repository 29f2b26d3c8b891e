package resumes

import (
	"encoding/json"
	"time"

	"resume-scorer/internal/resume"
	"resume-scorer/internal/scoring"
)

type draftRequest struct {
	Title  string          `json:"title"`
	Resume json.RawMessage `json:"resume"`
}

// DraftResponse is the outward-facing representation of a draft.
type DraftResponse struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Resume    resume.Resume `json:"resume"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// DraftSummary is a list entry without the resume body.
type DraftSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScoreResponse pairs a draft id with its evaluation.
type ScoreResponse struct {
	ResumeID string         `json:"resumeId"`
	Score    scoring.Result `json:"score"`
}

func toResponse(d Draft) DraftResponse {
	return DraftResponse{
		ID:        d.ID,
		Title:     d.Title,
		Resume:    d.Data,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toSummary(d Draft) DraftSummary {
	return DraftSummary{
		ID:        d.ID,
		Title:     d.Title,
		Name:      d.Data.Personal.Name,
		UpdatedAt: d.UpdatedAt,
	}
}
