package interfaces

import (
	"context"

	"bidright/internal/domain/entities"
)

// ISubscriptionRepository abstracts DynamoDB persistence for Subscription.
// GetByUserID returns a zero-value Subscription when the user never subscribed.
type ISubscriptionRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.Subscription, error)
	Upsert(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
}
