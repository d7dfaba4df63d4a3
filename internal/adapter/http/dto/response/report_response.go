package response

import (
	"bidright/internal/domain/entities"
	"bidright/internal/usecase"
)

type BreakdownResponse struct {
	Estimate EstimateResponse             `json:"estimate"`
	Lines    []entities.TaskBreakdownLine `json:"lines"`
}

func FromBreakdown(r usecase.BreakdownReport) BreakdownResponse {
	lines := r.Lines
	if lines == nil {
		lines = []entities.TaskBreakdownLine{}
	}
	return BreakdownResponse{Estimate: FromEstimate(r.Estimate), Lines: lines}
}

type MarketRatesResponse struct {
	Estimate   EstimateResponse          `json:"estimate"`
	Comparison entities.MarketComparison `json:"comparison"`
}

func FromMarketReport(r usecase.MarketReport) MarketRatesResponse {
	return MarketRatesResponse{Estimate: FromEstimate(r.Estimate), Comparison: r.Comparison}
}

type ProfitabilityResponse struct {
	Estimate EstimateResponse             `json:"estimate"`
	Result   entities.ProfitabilityResult `json:"result"`
}

func FromProfitabilityReport(r usecase.ProfitabilityReport) ProfitabilityResponse {
	return ProfitabilityResponse{Estimate: FromEstimate(r.Estimate), Result: r.Result}
}

type RiskResponse struct {
	Estimate EstimateResponse `json:"estimate"`
	Risks    []entities.Risk  `json:"risks"`
}

func FromRiskReport(r usecase.RiskReport) RiskResponse {
	risks := r.Risks
	if risks == nil {
		risks = []entities.Risk{}
	}
	return RiskResponse{Estimate: FromEstimate(r.Estimate), Risks: risks}
}
