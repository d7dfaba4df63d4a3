package interfaces

import "context"

// IPlanProvider reports the plan string the billing provider holds for a user.
// The value is opaque here; the entitlement gate resolves it.
type IPlanProvider interface {
	CurrentPlan(ctx context.Context, userID string) (string, error)
}
