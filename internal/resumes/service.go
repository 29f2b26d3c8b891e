package resumes

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"resume-scorer/internal/resume"
	"resume-scorer/internal/scoring"
)

const maxTitleLength = 120

// Scorer evaluates a resume record.
type Scorer interface {
	Score(ctx context.Context, r resume.Resume) (scoring.Result, error)
}

// Service contains business logic for resume drafts.
type Service struct {
	Repo   DraftsRepo
	Scorer Scorer
	Now    func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Create saves a new draft for the owner.
func (s *Service) Create(ctx context.Context, ownerID, title string, data resume.Resume) (Draft, error) {
	if ownerID == "" {
		return Draft{}, fmt.Errorf("%w: owner required", ErrInvalidInput)
	}
	title, err := draftTitle(title, data)
	if err != nil {
		return Draft{}, err
	}

	now := s.now()
	d := Draft{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     title,
		Data:      data.Normalize(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, d); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// Get returns one draft.
func (s *Service) Get(ctx context.Context, ownerID, id string) (Draft, error) {
	if err := checkIDs(ownerID, id); err != nil {
		return Draft{}, err
	}
	return s.Repo.Get(ctx, ownerID, id)
}

// List returns the owner's drafts.
func (s *Service) List(ctx context.Context, ownerID string, limit, offset int) ([]Draft, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner required", ErrInvalidInput)
	}
	return s.Repo.List(ctx, ownerID, limit, offset)
}

// Update replaces a draft's title and data.
func (s *Service) Update(ctx context.Context, ownerID, id, title string, data resume.Resume) (Draft, error) {
	if err := checkIDs(ownerID, id); err != nil {
		return Draft{}, err
	}
	existing, err := s.Repo.Get(ctx, ownerID, id)
	if err != nil {
		return Draft{}, err
	}
	if strings.TrimSpace(title) == "" {
		title = existing.Title
	}
	title, err = draftTitle(title, data)
	if err != nil {
		return Draft{}, err
	}

	existing.Title = title
	existing.Data = data.Normalize()
	existing.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, existing); err != nil {
		return Draft{}, err
	}
	return existing, nil
}

// Delete removes a draft.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if err := checkIDs(ownerID, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, ownerID, id)
}

// Score evaluates a saved draft. The result is returned, never stored.
func (s *Service) Score(ctx context.Context, ownerID, id string) (Draft, scoring.Result, error) {
	d, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return Draft{}, scoring.Result{}, err
	}
	res, err := s.Scorer.Score(ctx, d.Data)
	if err != nil {
		return Draft{}, scoring.Result{}, err
	}
	return d, res, nil
}

func checkIDs(ownerID, id string) error {
	if ownerID == "" {
		return fmt.Errorf("%w: owner required", ErrInvalidInput)
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id required", ErrInvalidInput)
	}
	return nil
}

// draftTitle trims title and falls back to the candidate's name.
func draftTitle(title string, data resume.Resume) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		if name := strings.TrimSpace(data.Personal.Name); name != "" {
			title = name + " resume"
		} else {
			title = "Untitled resume"
		}
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, maxTitleLength)
	}
	return title, nil
}
