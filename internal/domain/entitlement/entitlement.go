// Package entitlement decides what a subscription plan unlocks. Every lookup
// fails closed: anything that does not resolve to a known paid tier is free.
package entitlement

import (
	"strings"

	"bidright/internal/domain/entities"
)

// Unlimited is returned by RemainingSaves for plans without a save cap.
const Unlimited = -1

var planFeatures = map[entities.PlanTier][]entities.Feature{
	entities.PlanFree: {
		entities.FeatureBasicEstimation,
		entities.FeatureSaveEstimatesLimited,
		entities.FeatureExportBasic,
	},
	entities.PlanPro: {
		entities.FeatureBasicEstimation,
		entities.FeatureSaveEstimatesUnlimited,
		entities.FeatureExportBasic,
		entities.FeatureExportPDF,
		entities.FeatureProjectBreakdown,
		entities.FeatureRiskAssessment,
		entities.FeatureCompetitorRates,
		entities.FeatureProfitabilityAnalysis,
		entities.FeatureCustomBranding,
		entities.FeatureWhiteLabel,
		entities.FeatureClientManagement,
		entities.FeatureContractTemplates,
		entities.FeaturePrioritySupport,
	},
}

// tiers in ascending order
var tiers = []entities.PlanTier{entities.PlanFree, entities.PlanPro}

// ParsePlan resolves a provider plan string to a tier. "premium" is a legacy
// name for pro.
func ParsePlan(raw string) entities.PlanTier {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(entities.PlanPro), "premium":
		return entities.PlanPro
	default:
		return entities.PlanFree
	}
}

func HasFeature(plan string, feature entities.Feature) bool {
	for _, f := range planFeatures[ParsePlan(plan)] {
		if f == feature {
			return true
		}
	}
	return false
}

// HasPlan reports whether plan is at or above required in the tier order.
func HasPlan(plan string, required entities.PlanTier) bool {
	return ParsePlan(plan).Rank() >= required.Rank()
}

// Features lists what a tier grants. The slice is a copy.
func Features(tier entities.PlanTier) []entities.Feature {
	src := planFeatures[ParsePlan(string(tier))]
	out := make([]entities.Feature, len(src))
	copy(out, src)
	return out
}

// RequiredPlan is the lowest tier that grants feature.
func RequiredPlan(feature entities.Feature) (entities.PlanTier, bool) {
	for _, tier := range tiers {
		for _, f := range planFeatures[tier] {
			if f == feature {
				return tier, true
			}
		}
	}
	return "", false
}

// CanSaveMore reports whether another estimate may be saved given the number
// already saved and the cap for limited plans.
func CanSaveMore(plan string, saved, limit int) bool {
	if HasFeature(plan, entities.FeatureSaveEstimatesUnlimited) {
		return true
	}
	return saved < limit
}

// RemainingSaves is Unlimited for uncapped plans, otherwise never negative.
func RemainingSaves(plan string, saved, limit int) int {
	if HasFeature(plan, entities.FeatureSaveEstimatesUnlimited) {
		return Unlimited
	}
	if saved >= limit {
		return 0
	}
	return limit - saved
}
