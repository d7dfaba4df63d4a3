package pricing_test

import (
	"testing"

	"bidright/internal/domain/entities"
	"bidright/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func riskNames(risks []entities.Risk) []string {
	names := []string{}
	for _, r := range risks {
		names = append(names, r.Name)
	}
	return names
}

func TestAssessRisks(t *testing.T) {
	tests := []struct {
		name string
		in   entities.EstimateInput
		want []string
	}{
		{
			name: "simple website has no risks",
			in:   entities.EstimateInput{IndustryID: "webdev", ProjectTypeID: "website", Complexity: "medium"},
			want: []string{},
		},
		{
			name: "expert ecommerce with api",
			in:   entities.EstimateInput{IndustryID: "webdev", ProjectTypeID: "ecommerce", Complexity: "expert", FeatureIDs: []string{"api"}},
			want: []string{"Scope Creep", "Payment Integration Complexity", "External API Dependency", "Timeline Uncertainty"},
		},
		{
			name: "design rush",
			in:   entities.EstimateInput{IndustryID: "design", ProjectTypeID: "logo", Complexity: "low", FeatureIDs: []string{"rush"}},
			want: []string{"Subjective Feedback Cycles", "Rushed Timeline"},
		},
		{
			name: "other industry high complexity",
			in:   entities.EstimateInput{IndustryID: "video", ProjectTypeID: "promo", Complexity: "high"},
			want: []string{"Scope Creep", "General Project Risk", "Timeline Uncertainty"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, riskNames(pricing.AssessRisks(tt.in)))
		})
	}
}

func TestAssessRisks_Levels(t *testing.T) {
	risks := pricing.AssessRisks(entities.EstimateInput{IndustryID: "design", ProjectTypeID: "logo", Complexity: "high", FeatureIDs: []string{"rush"}})
	levels := map[string]entities.RiskLevel{}
	for _, r := range risks {
		levels[r.Name] = r.Level
		assert.NotEmpty(t, r.Mitigation)
	}
	assert.Equal(t, entities.RiskHigh, levels["Scope Creep"])
	assert.Equal(t, entities.RiskHigh, levels["Rushed Timeline"])
	assert.Equal(t, entities.RiskMedium, levels["Subjective Feedback Cycles"])
}
