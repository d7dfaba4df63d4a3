package entities

import "time"

// PlanTier is the canonical subscription tier. Tiers are totally ordered by Rank.
type PlanTier string

const (
	PlanFree PlanTier = "free"
	PlanPro  PlanTier = "pro"
)

// Rank orders tiers from most to least restrictive. Unknown tiers rank as free.
func (p PlanTier) Rank() int {
	switch p {
	case PlanPro:
		return 1
	default:
		return 0
	}
}

// Feature is a named capability gated by plan.
type Feature string

const (
	FeatureBasicEstimation        Feature = "basic_estimation"
	FeatureSaveEstimatesLimited   Feature = "save_estimates_limited"
	FeatureSaveEstimatesUnlimited Feature = "save_estimates_unlimited"
	FeatureExportBasic            Feature = "export_basic"
	FeatureExportPDF              Feature = "export_pdf"
	FeatureProjectBreakdown       Feature = "project_breakdown"
	FeatureRiskAssessment         Feature = "risk_assessment"
	FeatureCompetitorRates        Feature = "competitor_rates"
	FeatureProfitabilityAnalysis  Feature = "profitability_analysis"
	FeatureCustomBranding         Feature = "custom_branding"
	FeatureWhiteLabel             Feature = "white_label"
	FeatureClientManagement       Feature = "client_management"
	FeatureContractTemplates      Feature = "contract_templates"
	FeaturePrioritySupport        Feature = "priority_support"
)

type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingAnnual  BillingCycle = "annual"
)

// Subscription is the billing provider's view of a user's plan.
//
// Storage model (DynamoDB):
//   - PK: user_id
//
// Plan is kept as the raw provider string; it is resolved through the
// entitlement gate on every check.
type Subscription struct {
	UserID      string    `json:"user_id"`
	Plan        string    `json:"plan"`
	Active      bool      `json:"active"`
	Canceled    bool      `json:"canceled"`
	Annual      bool      `json:"annual"`
	RenewalDate time.Time `json:"renewal_date"`
	PaymentID   string    `json:"payment_id,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlanOffer is a purchasable plan as listed to clients.
type PlanOffer struct {
	Tier         PlanTier  `json:"tier"`
	Name         string    `json:"name"`
	MonthlyPrice float64   `json:"monthly_price"`
	AnnualPrice  float64   `json:"annual_price"`
	Features     []Feature `json:"features"`
}
