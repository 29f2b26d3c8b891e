package scores

import (
	"time"

	"resume-scorer/internal/resume"
	"resume-scorer/internal/scoring"
)

// Document describes an uploaded file that was scored.
type Document struct {
	DocumentID string    `json:"documentId"`
	FileName   string    `json:"fileName"`
	MimeType   string    `json:"mimeType"`
	SizeBytes  int64     `json:"sizeBytes"`
	StorageKey string    `json:"-"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// UploadResult is the outcome of scoring an uploaded document.
type UploadResult struct {
	Document Document       `json:"document"`
	Resume   resume.Resume  `json:"resume"`
	Score    scoring.Result `json:"score"`
}
