package interfaces

import (
	"context"

	"bidright/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for saved estimates.
//
// Saved estimates are an ordered list per user:
//   - append a computed estimate
//   - list / count a user's estimates (oldest first)
//   - delete one by id
//
// Lookups that find nothing return a zero-value Estimate and a nil error.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, userID, id string) (entities.Estimate, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Estimate, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
	Delete(ctx context.Context, userID, id string) (deleted bool, err error)
}
