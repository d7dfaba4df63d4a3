package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"bidright/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEstimate() entities.Estimate {
	return entities.Estimate{
		ID:             "e-1",
		Hours:          72,
		HourRange:      entities.Range{Min: 58, Max: 86},
		Cost:           3350,
		CostRange:      entities.Range{Min: 3015, Max: 3685},
		RevisionLimit:  2,
		IndustryName:   "Web Development",
		ProjectName:    "Website",
		ComplexityName: "Medium",
		FeatureNames:   []string{"Responsive Design", "Content Management System"},
		Input: entities.EstimateInput{
			IndustryID:    "webdev",
			ProjectTypeID: "website",
			Complexity:    "medium",
			FeatureIDs:    []string{"responsive", "cms"},
		},
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRenderer_EstimateText(t *testing.T) {
	r := NewRenderer()

	doc, err := r.EstimateText(sampleEstimate(), entities.ExportOptions{ClientName: "Acme", Notes: "Hosting not included."})
	require.NoError(t, err)

	body := string(doc.Body)
	assert.Equal(t, "web-development-website-estimate.txt", doc.FileName)
	assert.Equal(t, ContentTypeText, doc.ContentType)
	assert.Contains(t, body, "# FREELANCE PROJECT ESTIMATE")
	assert.Contains(t, body, "Client: Acme")
	assert.Contains(t, body, "Date: Mar 1, 2026")
	assert.Contains(t, body, "Time Estimate: 58-86 hours")
	assert.Contains(t, body, "Cost Estimate: $3,015-$3,685")
	assert.Contains(t, body, "- Responsive Design\n- Content Management System\n")
	assert.Contains(t, body, "## Notes\nHosting not included.")
	assert.True(t, strings.HasSuffix(body, footerText+"\n"))
}

func TestRenderer_EstimateText_WhiteLabel(t *testing.T) {
	r := NewRenderer()
	est := sampleEstimate()
	est.FeatureNames = nil

	doc, err := r.EstimateText(est, entities.ExportOptions{CompanyName: "Studio Nine", WhiteLabel: true})
	require.NoError(t, err)

	body := string(doc.Body)
	assert.True(t, strings.HasPrefix(body, "Studio Nine\n"))
	assert.NotContains(t, body, footerText)
	assert.NotContains(t, body, "Included Features")
}

func TestRenderer_DocumentDateFallsBackToClock(t *testing.T) {
	r := &Renderer{now: func() time.Time { return time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC) }}
	est := sampleEstimate()
	est.CreatedAt = time.Time{}

	assert.Equal(t, "Dec 24, 2025", r.documentDate(est))
}

func TestRenderer_EstimatePDF(t *testing.T) {
	r := NewRenderer()
	breakdown := []entities.TaskBreakdownLine{
		{Name: "Discovery & Planning", Hours: 7, Cost: 335, Percentage: 10},
		{Name: "Development", Hours: 65, Cost: 3015, Percentage: 90},
	}

	doc, err := r.EstimatePDF(sampleEstimate(), breakdown, entities.ExportOptions{CompanyName: "Studio Nine"})
	require.NoError(t, err)

	assert.Equal(t, "web-development-website-estimate.pdf", doc.FileName)
	assert.Equal(t, ContentTypePDF, doc.ContentType)
	assert.True(t, bytes.HasPrefix(doc.Body, []byte("%PDF")))
}

func TestRenderer_MarketRatesCSV(t *testing.T) {
	r := NewRenderer()
	cmp := entities.MarketComparison{
		LocationID:   "us_west",
		LocationName: "US West Coast",
		YourRate:     47,
		YourIncome:   94000,
		Rows: []entities.MarketRateRow{
			{ExperienceLevel: "Junior", HourlyRate: 35, PercentDiff: 34, AnnualIncome: 70000},
			{ExperienceLevel: "Expert", HourlyRate: 150, PercentDiff: -69, AnnualIncome: 300000},
		},
	}

	doc, err := r.MarketRatesCSV(sampleEstimate(), cmp)
	require.NoError(t, err)
	assert.Equal(t, "market-rates-webdev-website.csv", doc.FileName)
	assert.Equal(t, ContentTypeCSV, doc.ContentType)

	parts := strings.SplitN(string(doc.Body), "\n\n", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "Market Rates for Web Development - Website\nLocation: US West Coast\nDate: Mar 1, 2026", parts[0])

	records, err := csv.NewReader(strings.NewReader(parts[1])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, marketRateHeader, records[0])
	assert.Equal(t, []string{"Junior", "35", "34%", "70,000"}, records[1])
	assert.Equal(t, []string{"Expert", "150", "-69%", "300,000"}, records[2])
	assert.Equal(t, []string{"Your Rate", "47", "0%", "94,000"}, records[3])
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "estimate.txt", fileName("txt", "", " "))
	assert.Equal(t, "ui-ux-design-app-estimate.pdf", fileName("pdf", "UI/UX Design", "App", "estimate"))
}
