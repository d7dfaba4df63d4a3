package response

import (
	"time"

	"bidright/internal/domain/entities"
	"bidright/internal/domain/entitlement"
	"bidright/internal/usecase"
)

type PlansResponse struct {
	Plans []entities.PlanOffer `json:"plans"`
}

type SubscriptionStatusResponse struct {
	Plan           entities.PlanTier  `json:"plan"`
	Status         string             `json:"status"`
	Annual         bool               `json:"annual"`
	RenewalDate    *time.Time         `json:"renewal_date,omitempty"`
	SavedEstimates int                `json:"saved_estimates"`
	RemainingSaves *int               `json:"remaining_saves"`
	Features       []entities.Feature `json:"features"`
}

// FromSubscriptionStatus renders unlimited saves as a null remaining_saves.
func FromSubscriptionStatus(s usecase.SubscriptionStatus) SubscriptionStatusResponse {
	out := SubscriptionStatusResponse{
		Plan:           s.Plan,
		Status:         s.Status,
		Annual:         s.Annual,
		SavedEstimates: s.SavedEstimates,
		Features:       s.Features,
	}
	if !s.RenewalDate.IsZero() {
		renewal := s.RenewalDate
		out.RenewalDate = &renewal
	}
	if s.RemainingSaves != entitlement.Unlimited {
		remaining := s.RemainingSaves
		out.RemainingSaves = &remaining
	}
	if out.Features == nil {
		out.Features = []entities.Feature{}
	}
	return out
}

type SubscriptionResponse struct {
	Plan        entities.PlanTier `json:"plan"`
	Status      string            `json:"status"`
	Annual      bool              `json:"annual"`
	RenewalDate time.Time         `json:"renewal_date"`
	PaymentID   string            `json:"payment_id,omitempty"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func FromSubscription(s entities.Subscription) SubscriptionResponse {
	status := usecase.StatusInactive
	switch {
	case s.Active && s.Canceled:
		status = usecase.StatusCanceled
	case s.Active:
		status = usecase.StatusActive
	}
	return SubscriptionResponse{
		Plan:        entitlement.ParsePlan(s.Plan),
		Status:      status,
		Annual:      s.Annual,
		RenewalDate: s.RenewalDate,
		PaymentID:   s.PaymentID,
		UpdatedAt:   s.UpdatedAt,
	}
}
