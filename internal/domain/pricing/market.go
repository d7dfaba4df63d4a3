package pricing

import "bidright/internal/domain/entities"

const (
	hoursPerWeek = 40
	weeksPerYear = 50
)

var positionRecommendations = map[entities.MarketPosition][]string{
	entities.PositionPremium: {
		"Your rate is significantly higher than market average, which works if you offer premium service.",
		"Ensure your service quality and deliverables justify the premium pricing.",
		"Consider highlighting your unique value proposition in proposals.",
		"Track client satisfaction closely to validate premium pricing.",
	},
	entities.PositionAboveAverage: {
		"Your rate is above market average, positioning you as a higher-quality provider.",
		"Emphasize your expertise and quality in your client communications.",
		"Consider creating case studies to demonstrate your value.",
		"Look for opportunities to offer premium add-on services.",
	},
	entities.PositionCompetitive: {
		"Your rate is in line with market averages, which is a competitive position.",
		"To increase profitability, look for efficiency improvements in your process.",
		"Consider creating service packages that include higher-value components.",
		"Track your utilization rate to ensure you're maximizing billable hours.",
	},
	entities.PositionBelowAverage: {
		"Your rate is below market average, which may be leaving money on the table.",
		"Consider gradually increasing your rates for new clients.",
		"Focus on demonstrating your value through case studies and testimonials.",
		"Look for higher-value projects where clients are less price-sensitive.",
	},
	entities.PositionSignificantlyUnderpriced: {
		"Your rate is significantly below market average, suggesting you are undervaluing your services.",
		"Develop a plan to increase your rates significantly, either immediately or over time.",
		"Consider repositioning your services to target clients who value quality over price.",
		"Review your costs and ensure your current rates are at least covering all expenses and providing adequate profit.",
	},
}

// ClassifyPosition maps a percent difference to the market position scale.
func ClassifyPosition(percentDiff int) entities.MarketPosition {
	switch {
	case percentDiff > 30:
		return entities.PositionPremium
	case percentDiff > 10:
		return entities.PositionAboveAverage
	case percentDiff >= -10:
		return entities.PositionCompetitive
	case percentDiff >= -30:
		return entities.PositionBelowAverage
	default:
		return entities.PositionSignificantlyUnderpriced
	}
}

// PercentDiff is ((yours - market) / market) * 100 rounded half-up; 0 when market is not positive.
func PercentDiff(yours, market float64) int {
	if market <= 0 {
		return 0
	}
	return RoundHalfUp((yours - market) / market * 100)
}

func AnnualIncome(hourlyRate int) int {
	return hourlyRate * hoursPerWeek * weeksPerYear
}

// AdjustedRate scales a band rate by location and project type, rounded half-up.
func AdjustedRate(baseRate, locationMultiplier, projectTypeMultiplier float64) int {
	return RoundHalfUp(baseRate * locationMultiplier * projectTypeMultiplier)
}

// CompareRates compares the estimate's hourly rate with the market bands for
// the industry. Unknown locations and project types use a 1.0 multiplier.
func CompareRates(catalog *entities.RateCatalog, industryID, projectTypeID, locationID string, est entities.Estimate) entities.MarketComparison {
	locationMultiplier := 1.0
	locationName := locationID
	if loc, ok := catalog.Location(locationID); ok {
		locationMultiplier = loc.Multiplier
		locationName = loc.Name
	}
	projectMultiplier := catalog.RateAdjustmentFor(industryID, projectTypeID)

	yourRate := est.HourlyRate()
	out := entities.MarketComparison{
		LocationID:   locationID,
		LocationName: locationName,
		YourRate:     yourRate,
		YourIncome:   AnnualIncome(yourRate),
	}

	sum := 0
	for _, band := range catalog.MarketBandsFor(industryID) {
		rate := AdjustedRate(band.Rate, locationMultiplier, projectMultiplier)
		diff := PercentDiff(float64(yourRate), float64(rate))
		out.Rows = append(out.Rows, entities.MarketRateRow{
			ExperienceLevel: band.Level,
			HourlyRate:      rate,
			PercentDiff:     diff,
			Position:        ClassifyPosition(diff),
			AnnualIncome:    AnnualIncome(rate),
		})
		sum += rate
	}
	if len(out.Rows) == 0 {
		out.Position = entities.PositionCompetitive
		out.Recommendations = Recommendations(out.Position)
		return out
	}

	out.AverageRate = float64(sum) / float64(len(out.Rows))
	out.PercentDiff = PercentDiff(float64(yourRate), out.AverageRate)
	out.Position = ClassifyPosition(out.PercentDiff)
	out.Recommendations = Recommendations(out.Position)
	return out
}

// Recommendations returns a copy of the canned guidance for a position.
func Recommendations(p entities.MarketPosition) []string {
	recs := positionRecommendations[p]
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}
