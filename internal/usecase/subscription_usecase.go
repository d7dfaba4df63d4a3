package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"bidright/internal/domain/entities"
	"bidright/internal/domain/entitlement"
	"bidright/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidBillingCycle  = errors.New("invalid billing cycle")
	ErrInvalidMPPayload     = errors.New("invalid mercado pago payload")
	ErrAlreadySubscribed    = errors.New("subscription already active")
	ErrNoActiveSubscription = errors.New("no active subscription")
	ErrPaymentNotApproved   = errors.New("payment not approved")

	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const (
	StatusActive   = "active"
	StatusCanceled = "canceled"
	StatusInactive = "inactive"

	providerStatusApproved = "approved"
)

// PlanPrices are the pro plan prices in the provider's currency.
type PlanPrices struct {
	Monthly float64
	Annual  float64
}

// SubscriptionStatus is the account view of a user's plan.
type SubscriptionStatus struct {
	Plan           entities.PlanTier
	Status         string
	Annual         bool
	RenewalDate    time.Time
	SavedEstimates int
	// RemainingSaves is entitlement.Unlimited for uncapped plans.
	RemainingSaves int
	Features       []entities.Feature
}

// ISubscriptionUseCase is the billing provider boundary.
//
//   - GET  /v1/plans                      => Plans()
//   - GET  /v1/subscription               => Status()
//   - POST /v1/subscription/checkout      => Checkout()
//   - POST /v1/subscription/cancel        => Cancel()
type ISubscriptionUseCase interface {
	interfaces.IPlanProvider
	Plans() []entities.PlanOffer
	Status(ctx context.Context, userID string) (SubscriptionStatus, error)
	Checkout(ctx context.Context, userID string, cycle entities.BillingCycle, mpPayload json.RawMessage) (entities.Subscription, error)
	Cancel(ctx context.Context, userID string) (entities.Subscription, error)
}

type SubscriptionUseCase struct {
	repo      interfaces.ISubscriptionRepository
	estimates interfaces.IEstimateRepository
	gateway   interfaces.IPaymentGateway
	prices    PlanPrices
	freeLimit int
	log       *zap.Logger
	events    interfaces.IEventRecorder
	now       func() time.Time
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(repo interfaces.ISubscriptionRepository, estimates interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway, prices PlanPrices, freeLimit int, log *zap.Logger, events interfaces.IEventRecorder) *SubscriptionUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if events == nil {
		events = interfaces.NopEventRecorder{}
	}
	return &SubscriptionUseCase{
		repo:      repo,
		estimates: estimates,
		gateway:   gateway,
		prices:    prices,
		freeLimit: freeLimit,
		log:       log.Named("subscription"),
		events:    events,
		now:       time.Now,
	}
}

// CurrentPlan returns the stored plan while the subscription is in force, and
// "free" otherwise. A canceled subscription stays in force until renewal.
func (u *SubscriptionUseCase) CurrentPlan(ctx context.Context, userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return string(entities.PlanFree), nil
	}
	sub, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if !u.inForce(sub) {
		return string(entities.PlanFree), nil
	}
	return sub.Plan, nil
}

func (u *SubscriptionUseCase) inForce(sub entities.Subscription) bool {
	if sub.UserID == "" || !sub.Active {
		return false
	}
	return sub.RenewalDate.IsZero() || u.now().Before(sub.RenewalDate)
}

func (u *SubscriptionUseCase) Plans() []entities.PlanOffer {
	return []entities.PlanOffer{
		{
			Tier:     entities.PlanFree,
			Name:     "Free",
			Features: entitlement.Features(entities.PlanFree),
		},
		{
			Tier:         entities.PlanPro,
			Name:         "Pro",
			MonthlyPrice: u.prices.Monthly,
			AnnualPrice:  u.prices.Annual,
			Features:     entitlement.Features(entities.PlanPro),
		},
	}
}

func (u *SubscriptionUseCase) Status(ctx context.Context, userID string) (SubscriptionStatus, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return SubscriptionStatus{}, ErrInvalidUserID
	}

	sub, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return SubscriptionStatus{}, err
	}
	saved, err := u.estimates.CountByUserID(ctx, userID)
	if err != nil {
		return SubscriptionStatus{}, err
	}

	plan := string(entities.PlanFree)
	status := StatusInactive
	if u.inForce(sub) {
		plan = sub.Plan
		status = StatusActive
		if sub.Canceled {
			status = StatusCanceled
		}
	}
	tier := entitlement.ParsePlan(plan)

	out := SubscriptionStatus{
		Plan:           tier,
		Status:         status,
		SavedEstimates: saved,
		RemainingSaves: entitlement.RemainingSaves(plan, saved, u.freeLimit),
		Features:       entitlement.Features(tier),
	}
	if status != StatusInactive {
		out.Annual = sub.Annual
		out.RenewalDate = sub.RenewalDate
	}
	return out, nil
}

// Checkout charges the pro price through the payment gateway and activates
// the plan for one billing period. The caller's payload supplies payment
// method and payer; amount and reference are always set here.
func (u *SubscriptionUseCase) Checkout(ctx context.Context, userID string, cycle entities.BillingCycle, mpPayload json.RawMessage) (entities.Subscription, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Subscription{}, ErrInvalidUserID
	}
	if cycle == "" {
		cycle = entities.BillingMonthly
	}
	if cycle != entities.BillingMonthly && cycle != entities.BillingAnnual {
		return entities.Subscription{}, ErrInvalidBillingCycle
	}
	if u.gateway == nil {
		return entities.Subscription{}, errors.New("payment gateway not configured")
	}

	current, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Subscription{}, err
	}
	inForce := u.inForce(current) && entitlement.HasPlan(current.Plan, entities.PlanPro)
	if inForce && !current.Canceled {
		return entities.Subscription{}, ErrAlreadySubscribed
	}

	payload, err := u.checkoutPayload(userID, cycle, mpPayload)
	if err != nil {
		return entities.Subscription{}, err
	}

	u.log.Info("checkout start", zap.String("user_id", userID), zap.String("cycle", string(cycle)))
	paymentID, status, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.log.Warn("payment gateway failed", zap.String("user_id", userID), zap.Error(err))
		return entities.Subscription{}, classifyGatewayError(err)
	}
	if status != providerStatusApproved {
		u.log.Info("payment not approved", zap.String("user_id", userID), zap.String("provider_status", status))
		return entities.Subscription{}, fmt.Errorf("%w: %s", ErrPaymentNotApproved, status)
	}

	now := u.now().UTC()
	// a canceled period still in force is extended rather than discarded
	start := now
	if inForce && current.RenewalDate.After(now) {
		start = current.RenewalDate
	}
	renewal := start.AddDate(0, 1, 0)
	if cycle == entities.BillingAnnual {
		renewal = start.AddDate(1, 0, 0)
	}

	sub := entities.Subscription{
		UserID:      userID,
		Plan:        string(entities.PlanPro),
		Active:      true,
		Annual:      cycle == entities.BillingAnnual,
		RenewalDate: renewal,
		PaymentID:   paymentID,
		UpdatedAt:   now,
	}
	saved, err := u.repo.Upsert(ctx, sub)
	if err != nil {
		u.log.Error("subscription store failed", zap.String("user_id", userID), zap.String("payment_id", paymentID), zap.Error(err))
		return entities.Subscription{}, err
	}
	u.events.SubscriptionChanged(saved.Plan, "activated")
	u.log.Info("subscription activated", zap.String("user_id", userID), zap.String("plan", saved.Plan), zap.Time("renewal_date", saved.RenewalDate))
	return saved, nil
}

func (u *SubscriptionUseCase) checkoutPayload(userID string, cycle entities.BillingCycle, raw json.RawMessage) (json.RawMessage, error) {
	req := map[string]any{}
	if len(raw) > 0 {
		if !json.Valid(raw) {
			return nil, ErrInvalidMPPayload
		}
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, ErrInvalidMPPayload
		}
	}

	amount := u.prices.Monthly
	if cycle == entities.BillingAnnual {
		amount = u.prices.Annual
	}
	req["transaction_amount"] = amount
	req["external_reference"] = userID
	if !hasNonEmptyString(req, "description") {
		req["description"] = fmt.Sprintf("BidRight Pro (%s)", cycle)
	}
	return json.Marshal(req)
}

func (u *SubscriptionUseCase) Cancel(ctx context.Context, userID string) (entities.Subscription, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Subscription{}, ErrInvalidUserID
	}

	sub, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Subscription{}, err
	}
	if !u.inForce(sub) || sub.Canceled || entitlement.ParsePlan(sub.Plan) == entities.PlanFree {
		return entities.Subscription{}, ErrNoActiveSubscription
	}

	sub.Canceled = true
	sub.UpdatedAt = u.now().UTC()
	saved, err := u.repo.Upsert(ctx, sub)
	if err != nil {
		return entities.Subscription{}, err
	}
	u.events.SubscriptionChanged(saved.Plan, "canceled")
	u.log.Info("subscription canceled", zap.String("user_id", userID), zap.Time("access_until", saved.RenewalDate))
	return saved, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
