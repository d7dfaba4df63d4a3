package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bidright/internal/domain/entities"
	"bidright/internal/domain/entitlement"
	"bidright/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrFeatureNotEntitled = errors.New("feature not available on current plan")

// FeatureError carries the upsell details of a refused request.
type FeatureError struct {
	Feature  entities.Feature
	Required entities.PlanTier
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("%s: %s requires the %s plan", ErrFeatureNotEntitled, e.Feature, e.Required)
}

func (e *FeatureError) Is(target error) bool {
	return target == ErrFeatureNotEntitled
}

// featureGate resolves the caller's plan and checks features against it.
// Anonymous callers are always on the free plan.
type featureGate struct {
	plans  interfaces.IPlanProvider
	events interfaces.IEventRecorder
	log    *zap.Logger
}

func (g featureGate) plan(ctx context.Context, userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || g.plans == nil {
		return string(entities.PlanFree), nil
	}
	return g.plans.CurrentPlan(ctx, userID)
}

func (g featureGate) require(ctx context.Context, userID string, feature entities.Feature) (string, error) {
	plan, err := g.plan(ctx, userID)
	if err != nil {
		return "", err
	}
	if entitlement.HasFeature(plan, feature) {
		return plan, nil
	}

	required, ok := entitlement.RequiredPlan(feature)
	if !ok {
		required = entities.PlanPro
	}
	g.events.FeatureDenied(string(feature))
	g.log.Info("feature denied", zap.String("user_id", userID), zap.String("plan", plan), zap.String("feature", string(feature)))
	return plan, &FeatureError{Feature: feature, Required: required}
}
