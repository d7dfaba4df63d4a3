package request

import (
	"strings"

	"bidright/internal/domain/entities"
)

// EstimateRequest carries the selections for a quote.
type EstimateRequest struct {
	IndustryID    string   `json:"industry_id" binding:"required" example:"webdev"`
	ProjectTypeID string   `json:"project_type_id" binding:"required" example:"website"`
	Complexity    string   `json:"complexity" example:"medium"`
	FeatureIDs    []string `json:"feature_ids" example:"responsive,cms"`
}

func (r EstimateRequest) ToInput() entities.EstimateInput {
	return entities.EstimateInput{
		IndustryID:    strings.TrimSpace(r.IndustryID),
		ProjectTypeID: strings.TrimSpace(r.ProjectTypeID),
		Complexity:    strings.TrimSpace(r.Complexity),
		FeatureIDs:    r.FeatureIDs,
	}
}
