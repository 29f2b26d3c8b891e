package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of DraftsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]map[string]Draft // ownerID -> id -> draft
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]map[string]Draft),
	}
}

// Create stores a new draft.
func (r *MemoryRepo) Create(ctx context.Context, d Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	owned, ok := r.data[d.OwnerID]
	if !ok {
		owned = make(map[string]Draft)
		r.data[d.OwnerID] = owned
	}
	d.Data = d.Data.Clone()
	owned[d.ID] = d
	return nil
}

// Get returns a draft by id for an owner.
func (r *MemoryRepo) Get(ctx context.Context, ownerID, id string) (Draft, error) {
	if err := ctx.Err(); err != nil {
		return Draft{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.data[ownerID][id]
	if !ok {
		return Draft{}, ErrNotFound
	}
	d.Data = d.Data.Clone()
	return d, nil
}

// List returns an owner's drafts, most recently updated first, honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, ownerID string, limit, offset int) ([]Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	owned := r.data[ownerID]
	drafts := make([]Draft, 0, len(owned))
	for _, d := range owned {
		d.Data = d.Data.Clone()
		drafts = append(drafts, d)
	}
	r.mu.RUnlock()

	if offset >= len(drafts) {
		return []Draft{}, nil
	}

	sort.Slice(drafts, func(i, j int) bool {
		if drafts[i].UpdatedAt.Equal(drafts[j].UpdatedAt) {
			return drafts[i].ID < drafts[j].ID
		}
		return drafts[i].UpdatedAt.After(drafts[j].UpdatedAt)
	})

	end := len(drafts)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return drafts[offset:end], nil
}

// Update replaces the title and data of an existing draft.
func (r *MemoryRepo) Update(ctx context.Context, d Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[d.OwnerID][d.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Title = d.Title
	existing.Data = d.Data.Clone()
	existing.UpdatedAt = d.UpdatedAt
	r.data[d.OwnerID][d.ID] = existing
	return nil
}

// Delete removes a draft.
func (r *MemoryRepo) Delete(ctx context.Context, ownerID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[ownerID][id]; !ok {
		return ErrNotFound
	}
	delete(r.data[ownerID], id)
	return nil
}

var _ DraftsRepo = (*MemoryRepo)(nil)
