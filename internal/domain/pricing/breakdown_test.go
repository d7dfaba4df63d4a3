package pricing_test

import (
	"testing"

	"bidright/internal/domain/entities"
	"bidright/internal/domain/pricing"
	"bidright/internal/infrastructure/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func percentages(lines []entities.TaskBreakdownLine) (names []string, pcts []int, sum int) {
	for _, l := range lines {
		names = append(names, l.Name)
		pcts = append(pcts, l.Percentage)
		sum += l.Percentage
	}
	return names, pcts, sum
}

func TestBreakdown_WebsiteTemplate(t *testing.T) {
	cat := catalog.Default()
	est := entities.Estimate{Hours: 40, Cost: 2000}

	lines := pricing.Breakdown(cat, est, "webdev", "website", nil)

	assert.Equal(t, []entities.TaskBreakdownLine{
		{Name: "Project Planning & Requirements", Hours: 4, Cost: 200, Percentage: 10},
		{Name: "UI/UX Design", Hours: 6, Cost: 300, Percentage: 15},
		{Name: "Frontend Development", Hours: 12, Cost: 600, Percentage: 30},
		{Name: "Backend Development", Hours: 12, Cost: 600, Percentage: 30},
		{Name: "Testing & Quality Assurance", Hours: 4, Cost: 200, Percentage: 10},
		{Name: "Deployment & Documentation", Hours: 2, Cost: 100, Percentage: 5},
	}, lines)
}

func TestBreakdown_EcommerceOverride(t *testing.T) {
	lines := pricing.Breakdown(catalog.Default(), entities.Estimate{Hours: 80, Cost: 4000}, "webdev", "ecommerce", nil)
	names, _, sum := percentages(lines)

	assert.Equal(t, 100, sum)
	assert.Len(t, lines, 8)
	assert.Contains(t, names, "Payment Integration")
	assert.Contains(t, names, "Product Management System")
}

func TestBreakdown_CMSPhaseIsAppendedAndRenormalized(t *testing.T) {
	cat := catalog.Default()
	est, err := pricing.NewCalculator(cat).Quote(entities.EstimateInput{IndustryID: "webdev", ProjectTypeID: "website", Complexity: "medium", FeatureIDs: []string{"cms"}})
	require.NoError(t, err)

	lines := pricing.Breakdown(cat, est, "webdev", "website", est.Input.FeatureIDs)
	names, pcts, sum := percentages(lines)

	assert.Equal(t, 100, sum)
	assert.Equal(t, "CMS Setup & Configuration", names[len(names)-1])
	assert.Equal(t, []int{9, 13, 26, 26, 9, 4, 13}, pcts)

	hours, cost := 0, 0
	for _, l := range lines {
		hours += l.Hours
		cost += l.Cost
		assert.Zero(t, l.Cost%pricing.CostStep)
	}
	assert.InDelta(t, est.Hours, hours, 3)
	assert.InDelta(t, est.Cost, cost, 3*pricing.CostStep)
}

func TestBreakdown_UnknownIndustryUsesDefaultPhases(t *testing.T) {
	lines := pricing.Breakdown(catalog.Default(), entities.Estimate{Hours: 10, Cost: 500}, "ghost", "", nil)
	names, pcts, sum := percentages(lines)

	assert.Equal(t, []string{"Research & Planning", "Development", "Testing & Refinement", "Delivery & Documentation"}, names)
	assert.Equal(t, []int{20, 50, 20, 10}, pcts)
	assert.Equal(t, 100, sum)
}

func TestBreakdown_AllIndustriesSumTo100(t *testing.T) {
	cat := catalog.Default()
	calc := pricing.NewCalculator(cat)
	for _, pt := range cat.ProjectTypes {
		var all []string
		for _, f := range cat.FeaturesFor(pt.IndustryID) {
			all = append(all, f.ID)
		}
		est, err := calc.Quote(entities.EstimateInput{IndustryID: pt.IndustryID, ProjectTypeID: pt.ID, Complexity: "high", FeatureIDs: all})
		require.NoError(t, err)

		_, _, sum := percentages(pricing.Breakdown(cat, est, pt.IndustryID, pt.ID, all))
		assert.Equal(t, 100, sum, "%s/%s", pt.IndustryID, pt.ID)
	}
}

func TestRenormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{name: "already normalized", in: []int{20, 50, 30}, want: []int{20, 50, 30}},
		{name: "thirds", in: []int{1, 1, 1}, want: []int{34, 33, 33}},
		{name: "over 100", in: []int{50, 50, 50}, want: []int{34, 33, 33}},
		{name: "uneven", in: []int{10, 15, 30, 30, 10, 5, 15}, want: []int{9, 13, 26, 26, 9, 4, 13}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phases := make([]entities.Phase, len(tt.in))
			for i, p := range tt.in {
				phases[i] = entities.Phase{Name: string(rune('a' + i)), Percentage: p}
			}
			got := pricing.Renormalize(phases)

			pcts := make([]int, len(got))
			for i, p := range got {
				pcts[i] = p.Percentage
				assert.Equal(t, phases[i].Name, p.Name)
			}
			assert.Equal(t, tt.want, pcts)
			assert.Equal(t, tt.in[0], phases[0].Percentage, "input must not be mutated")
		})
	}
}
