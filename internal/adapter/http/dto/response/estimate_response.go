package response

import (
	"time"

	"bidright/internal/domain/entities"
)

type RangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type EstimateResponse struct {
	ID             string                 `json:"id,omitempty"`
	Hours          int                    `json:"hours"`
	HourRange      RangeResponse          `json:"hour_range"`
	Cost           int                    `json:"cost"`
	CostRange      RangeResponse          `json:"cost_range"`
	HourlyRate     int                    `json:"hourly_rate"`
	RevisionLimit  int                    `json:"revision_limit"`
	IndustryName   string                 `json:"industry_name"`
	ProjectName    string                 `json:"project_name"`
	ComplexityName string                 `json:"complexity_name"`
	FeatureNames   []string               `json:"feature_names"`
	Input          entities.EstimateInput `json:"input"`
	CreatedAt      time.Time              `json:"created_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	features := e.FeatureNames
	if features == nil {
		features = []string{}
	}
	return EstimateResponse{
		ID:             e.ID,
		Hours:          e.Hours,
		HourRange:      RangeResponse(e.HourRange),
		Cost:           e.Cost,
		CostRange:      RangeResponse(e.CostRange),
		HourlyRate:     e.HourlyRate(),
		RevisionLimit:  e.RevisionLimit,
		IndustryName:   e.IndustryName,
		ProjectName:    e.ProjectName,
		ComplexityName: e.ComplexityName,
		FeatureNames:   features,
		Input:          e.Input,
		CreatedAt:      e.CreatedAt,
	}
}

type EstimateListResponse struct {
	Items []EstimateResponse `json:"items"`
	Total int                `json:"total"`
}

func FromEstimates(list []entities.Estimate) EstimateListResponse {
	items := make([]EstimateResponse, 0, len(list))
	for _, e := range list {
		items = append(items, FromEstimate(e))
	}
	return EstimateListResponse{Items: items, Total: len(items)}
}
