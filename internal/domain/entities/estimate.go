package entities

import "time"

// ComplexityTier ids understood by the calculator.
const (
	ComplexityLow    = "low"
	ComplexityMedium = "medium"
	ComplexityHigh   = "high"
	ComplexityExpert = "expert"
)

// DefaultRevisionLimit is the number of revision rounds quoted with every estimate.
const DefaultRevisionLimit = 2

// EstimateInput is the set of selections an estimate is computed from.
//
// FeatureIDs has set semantics: order and duplicates do not change the result.
type EstimateInput struct {
	IndustryID    string   `json:"industry_id"`
	ProjectTypeID string   `json:"project_type_id"`
	Complexity    string   `json:"complexity"`
	FeatureIDs    []string `json:"feature_ids"`
}

type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Estimate is an immutable computed quote.
//
// Storage model (DynamoDB, saved estimates only):
//   - PK: user_id
//   - SK: id
//
// Input keeps the normalized selections so derived reports can be regenerated later.
type Estimate struct {
	ID     string `json:"id"`
	UserID string `json:"user_id,omitempty"`

	Hours     int   `json:"hours"`
	HourRange Range `json:"hour_range"`
	Cost      int   `json:"cost"`
	CostRange Range `json:"cost_range"`

	RevisionLimit int `json:"revision_limit"`

	IndustryName   string   `json:"industry_name"`
	ProjectName    string   `json:"project_name"`
	ComplexityName string   `json:"complexity_name"`
	FeatureNames   []string `json:"feature_names"`

	Input     EstimateInput `json:"input"`
	CreatedAt time.Time     `json:"created_at"`
}

// HourlyRate is cost divided by hours, rounded half-up.
func (e Estimate) HourlyRate() int {
	if e.Hours <= 0 {
		return 0
	}
	// integer half-up division; both operands are non-negative
	return (2*e.Cost + e.Hours) / (2 * e.Hours)
}
