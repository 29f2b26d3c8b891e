package resumes

import "context"

// DraftsRepo defines persistence operations for resume drafts.
type DraftsRepo interface {
	Create(ctx context.Context, d Draft) error
	Get(ctx context.Context, ownerID, id string) (Draft, error)
	List(ctx context.Context, ownerID string, limit, offset int) ([]Draft, error)
	Update(ctx context.Context, d Draft) error
	Delete(ctx context.Context, ownerID, id string) error
}
