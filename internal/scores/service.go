package scores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-scorer/internal/extract"
	"resume-scorer/internal/resume"
	"resume-scorer/internal/scoring"
	"resume-scorer/internal/shared/metrics"
	"resume-scorer/internal/shared/storage/object"
	"resume-scorer/internal/shared/telemetry"
	"resume-scorer/internal/textparse"
)

const (
	// MaxUploadSize caps uploaded documents.
	MaxUploadSize = 10 << 20 // 10MB
	// MaxBatchSize caps the number of resumes in one batch request.
	MaxBatchSize = 25
)

// Service scores resume records and uploaded documents.
type Service struct {
	Engine *scoring.Engine
	Store  object.ObjectStore
	Now    func() time.Time
}

// Score evaluates one resume record.
func (s *Service) Score(ctx context.Context, r resume.Resume) (scoring.Result, error) {
	if err := ctx.Err(); err != nil {
		return scoring.Result{}, err
	}
	start := time.Now()
	res := s.Engine.Evaluate(r)
	metrics.Duration.ObserveSince(start)
	record(res)
	return res, nil
}

// Batch evaluates up to MaxBatchSize records concurrently, keeping input order.
func (s *Service) Batch(ctx context.Context, records []resume.Resume) ([]scoring.Result, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: at least one resume is required", ErrInvalidInput)
	}
	if len(records) > MaxBatchSize {
		return nil, fmt.Errorf("%w: at most %d resumes per batch", ErrInvalidInput, MaxBatchSize)
	}

	start := time.Now()
	results, err := s.Engine.EvaluateAll(ctx, records)
	if err != nil {
		return nil, err
	}
	metrics.Batches.Inc()
	metrics.Duration.ObserveSince(start)
	for _, res := range results {
		record(res)
	}
	return results, nil
}

// Upload stores a PDF or DOCX document, extracts and parses its text and scores
// the parsed record.
func (s *Service) Upload(ctx context.Context, ownerID, fileName, contentType string, r io.Reader) (UploadResult, error) {
	metrics.Uploads.Inc()
	out, err := s.upload(ctx, ownerID, fileName, contentType, r)
	if err != nil {
		metrics.UploadsFailed.Inc()
		return UploadResult{}, err
	}
	return out, nil
}

func (s *Service) upload(ctx context.Context, ownerID, fileName, contentType string, r io.Reader) (UploadResult, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return UploadResult{}, fmt.Errorf("%w: file name required", ErrInvalidInput)
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return UploadResult{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxUploadSize {
		return UploadResult{}, ErrTooLarge
	}
	if len(data) == 0 {
		return UploadResult{}, fmt.Errorf("%w: file is empty", ErrInvalidInput)
	}
	if !extract.Supported(contentType, fileName, data) {
		return UploadResult{}, ErrUnsupportedDocument
	}
	mimeType := extract.DetectType(contentType, fileName, data)

	stored, err := s.Store.Save(ctx, ownerID, fileName, bytes.NewReader(data))
	if err != nil {
		return UploadResult{}, fmt.Errorf("store upload: %w", err)
	}
	doc := Document{
		DocumentID: uuid.NewString(),
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  stored.Size,
		StorageKey: stored.Key,
		UploadedAt: s.now(),
	}

	text, err := extract.ExtractText(ctx, s.Store, stored.Key, mimeType, fileName)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			return UploadResult{}, ErrUnsupportedDocument
		case ctx.Err() != nil:
			return UploadResult{}, ctx.Err()
		default:
			return UploadResult{}, fmt.Errorf("%w: %w", ErrUnreadable, err)
		}
	}
	if strings.TrimSpace(text) == "" {
		return UploadResult{}, ErrNoText
	}

	parsed := textparse.Parse(text)
	res, err := s.Score(ctx, parsed)
	if err != nil {
		return UploadResult{}, err
	}

	telemetry.Info("score.upload", map[string]any{
		"document_id": doc.DocumentID,
		"mime_type":   mimeType,
		"size_bytes":  doc.SizeBytes,
		"text_chars":  len(text),
		"experience":  len(parsed.Experience),
		"education":   len(parsed.Education),
		"skills":      len(parsed.Skills),
		"overall":     res.Overall,
	})
	return UploadResult{Document: doc, Resume: parsed, Score: res}, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func record(res scoring.Result) {
	metrics.Evaluations.Inc()
	metrics.Overall.Observe(float64(res.Overall))
}
