package pricing

import (
	"fmt"

	"bidright/internal/domain/entities"
)

// Default business parameters, in percent.
const (
	DefaultOverheadPct     = 30
	DefaultTargetProfitPct = 20
	DefaultNonBillablePct  = 25
)

const (
	degenerateLaborMultiple = 3
	projectionProjects      = 10
)

// WarningDegenerateInput is attached when overhead plus target margin leave
// nothing for labor and the recommended price falls back to a labor multiple.
const WarningDegenerateInput = "overhead and target profit add up to 100% or more; recommended price falls back to 3x labor cost"

// AnalyzeProfitability back-solves a recommended price for the target margin
// and classifies the estimate's current margin.
func AnalyzeProfitability(est entities.Estimate, in entities.ProfitabilityInput) entities.ProfitabilityResult {
	nonBillable := in.NonBillablePct
	if nonBillable < 0 {
		nonBillable = 0
	}
	if nonBillable >= 100 {
		nonBillable = 100
	}

	hourly := est.HourlyRate()
	revenue := float64(est.Cost)
	effective := float64(hourly) * (1 - nonBillable/100)
	labor := float64(est.Hours) * effective
	overhead := revenue * in.OverheadPct / 100
	profit := revenue - overhead - labor

	margin := 0.0
	if revenue > 0 {
		margin = profit / revenue * 100
	}

	res := entities.ProfitabilityResult{
		Input:               in,
		HourlyRate:          hourly,
		EffectiveHourlyRate: effective,
		LaborCost:           labor,
		OverheadCost:        overhead,
		CurrentProfit:       profit,
		CurrentMarginPct:    margin,
		TenProjectProfit:    profit * projectionProjects,
	}

	denominator := 1 - in.OverheadPct/100 - in.TargetProfitPct/100
	if denominator <= 0 {
		res.RecommendedPrice = float64(RoundHalfUp(labor * degenerateLaborMultiple))
		res.Warnings = append(res.Warnings, WarningDegenerateInput)
	} else {
		res.RecommendedPrice = float64(RoundHalfUp(labor / denominator))
	}

	res.PriceDelta = res.RecommendedPrice - revenue
	if revenue > 0 {
		res.PriceDeltaPct = res.PriceDelta / revenue * 100
	}

	res.Band = ClassifyMargin(margin, in.TargetProfitPct)
	res.Assessment, res.Recommendation = profitGuidance(res.Band, res.PriceDeltaPct, in.TargetProfitPct)
	return res
}

// ClassifyMargin places the current margin on the four-step ladder relative to target.
func ClassifyMargin(marginPct, targetPct float64) entities.ProfitBand {
	switch {
	case marginPct < 0:
		return entities.ProfitBandLoss
	case marginPct < targetPct:
		return entities.ProfitBandBelowTarget
	case marginPct < targetPct*1.5:
		return entities.ProfitBandOnTarget
	default:
		return entities.ProfitBandWellAboveTarget
	}
}

func profitGuidance(band entities.ProfitBand, deltaPct, targetPct float64) (assessment, recommendation string) {
	switch band {
	case entities.ProfitBandLoss:
		if deltaPct < 0 {
			deltaPct = -deltaPct
		}
		return "Your current pricing results in a loss. Consider raising your rates or reducing project scope.",
			fmt.Sprintf("Increase your price by at least %.1f%% to avoid losses on this type of project.", deltaPct)
	case entities.ProfitBandBelowTarget:
		return "Your project is profitable but below your target margin. Consider adjusting your rates for future projects.",
			fmt.Sprintf("A price increase of %.1f%% would help you reach your target profit margin of %g%%.", deltaPct, targetPct)
	case entities.ProfitBandOnTarget:
		return "Your project meets or exceeds your target profit margin. Great job on your pricing!",
			"Your current pricing meets your target margins. Consider additional value-added services to increase profitability further."
	default:
		return "Your project meets or exceeds your target profit margin. Great job on your pricing!",
			"Your project is exceptionally profitable. Consider if there are opportunities to provide additional value to clients or take on more similar projects."
	}
}
