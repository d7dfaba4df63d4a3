package request

import (
	"encoding/json"
	"errors"
	"strings"

	"bidright/internal/domain/entities"
	"bidright/internal/domain/pricing"
)

var ErrMissingReportSource = errors.New("estimate_id or industry_id and project_type_id are required")

const DefaultLocation = "us_average"

// ReportRequest names the estimate a report is built from: either a saved
// estimate id or a fresh set of selections.
type ReportRequest struct {
	EstimateID    string   `json:"estimate_id"`
	IndustryID    string   `json:"industry_id" example:"webdev"`
	ProjectTypeID string   `json:"project_type_id" example:"website"`
	Complexity    string   `json:"complexity" example:"medium"`
	FeatureIDs    []string `json:"feature_ids"`
}

func (r ReportRequest) Validate() error {
	if strings.TrimSpace(r.EstimateID) != "" {
		return nil
	}
	if strings.TrimSpace(r.IndustryID) == "" || strings.TrimSpace(r.ProjectTypeID) == "" {
		return ErrMissingReportSource
	}
	return nil
}

func (r ReportRequest) SavedEstimateID() string {
	return strings.TrimSpace(r.EstimateID)
}

func (r ReportRequest) Input() entities.EstimateInput {
	return EstimateRequest{
		IndustryID:    r.IndustryID,
		ProjectTypeID: r.ProjectTypeID,
		Complexity:    r.Complexity,
		FeatureIDs:    r.FeatureIDs,
	}.ToInput()
}

type MarketRatesRequest struct {
	ReportRequest
	Location string `json:"location" example:"us_west_coast"`
}

func (r MarketRatesRequest) ResolveLocation() string {
	if v := strings.TrimSpace(r.Location); v != "" {
		return v
	}
	return DefaultLocation
}

// ProfitabilityRequest takes percentages; omitted values use the defaults
// (30% overhead, 20% target profit, 25% non-billable time).
type ProfitabilityRequest struct {
	ReportRequest
	OverheadPct     *float64 `json:"overhead_pct" example:"30"`
	TargetProfitPct *float64 `json:"target_profit_pct" example:"20"`
	NonBillablePct  *float64 `json:"non_billable_pct" example:"25"`
}

func (r ProfitabilityRequest) ToInput() entities.ProfitabilityInput {
	return entities.ProfitabilityInput{
		OverheadPct:     valueOr(r.OverheadPct, pricing.DefaultOverheadPct),
		TargetProfitPct: valueOr(r.TargetProfitPct, pricing.DefaultTargetProfitPct),
		NonBillablePct:  valueOr(r.NonBillablePct, pricing.DefaultNonBillablePct),
	}
}

type ExportRequest struct {
	ReportRequest
	CompanyName string `json:"company_name"`
	ClientName  string `json:"client_name"`
	Notes       string `json:"notes"`
	WhiteLabel  bool   `json:"white_label"`
}

func (r ExportRequest) Options() entities.ExportOptions {
	return entities.ExportOptions{
		CompanyName: strings.TrimSpace(r.CompanyName),
		ClientName:  strings.TrimSpace(r.ClientName),
		Notes:       strings.TrimSpace(r.Notes),
		WhiteLabel:  r.WhiteLabel,
	}
}

// CheckoutRequest starts a pro subscription.
//
// `mp_payload` is forwarded to Mercado Pago (payment method, token, payer);
// amount and reference are always set by the server.
type CheckoutRequest struct {
	Cycle     string          `json:"cycle" example:"monthly"`
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}

func (r CheckoutRequest) BillingCycle() entities.BillingCycle {
	return entities.BillingCycle(strings.ToLower(strings.TrimSpace(r.Cycle)))
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
