package usecase

import (
	"context"
	"strings"

	"bidright/internal/domain/entities"
	"bidright/internal/domain/entitlement"
	"bidright/internal/domain/pricing"
	"bidright/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ReportSource names the estimate a report is derived from: a saved estimate
// when EstimateID is set, otherwise a fresh quote of Input.
type ReportSource struct {
	EstimateID string
	Input      entities.EstimateInput
}

type BreakdownReport struct {
	Estimate entities.Estimate
	Lines    []entities.TaskBreakdownLine
}

type MarketReport struct {
	Estimate   entities.Estimate
	Comparison entities.MarketComparison
}

type ProfitabilityReport struct {
	Estimate entities.Estimate
	Result   entities.ProfitabilityResult
}

type RiskReport struct {
	Estimate entities.Estimate
	Risks    []entities.Risk
}

// IReportUseCase exposes the plan-gated analytics and exports.
type IReportUseCase interface {
	Breakdown(ctx context.Context, userID string, src ReportSource) (BreakdownReport, error)
	MarketRates(ctx context.Context, userID string, src ReportSource, locationID string) (MarketReport, error)
	Profitability(ctx context.Context, userID string, src ReportSource, in entities.ProfitabilityInput) (ProfitabilityReport, error)
	Risks(ctx context.Context, userID string, src ReportSource) (RiskReport, error)

	ExportText(ctx context.Context, userID string, src ReportSource, opts entities.ExportOptions) (entities.Document, error)
	ExportPDF(ctx context.Context, userID string, src ReportSource, opts entities.ExportOptions) (entities.Document, error)
	ExportMarketRatesCSV(ctx context.Context, userID string, src ReportSource, locationID string) (entities.Document, error)
}

type ReportUseCase struct {
	calc     *pricing.Calculator
	repo     interfaces.IEstimateRepository
	renderer interfaces.IReportRenderer
	gate     featureGate
	log      *zap.Logger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(calc *pricing.Calculator, repo interfaces.IEstimateRepository, renderer interfaces.IReportRenderer, plans interfaces.IPlanProvider, log *zap.Logger, events interfaces.IEventRecorder) *ReportUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if events == nil {
		events = interfaces.NopEventRecorder{}
	}
	log = log.Named("report")
	return &ReportUseCase{
		calc:     calc,
		repo:     repo,
		renderer: renderer,
		gate:     featureGate{plans: plans, events: events, log: log},
		log:      log,
	}
}

func (u *ReportUseCase) Breakdown(ctx context.Context, userID string, src ReportSource) (BreakdownReport, error) {
	if _, err := u.gate.require(ctx, userID, entities.FeatureProjectBreakdown); err != nil {
		return BreakdownReport{}, err
	}
	est, err := u.estimateFor(ctx, userID, src)
	if err != nil {
		return BreakdownReport{}, err
	}
	return BreakdownReport{Estimate: est, Lines: u.breakdown(est)}, nil
}

func (u *ReportUseCase) MarketRates(ctx context.Context, userID string, src ReportSource, locationID string) (MarketReport, error) {
	if _, err := u.gate.require(ctx, userID, entities.FeatureCompetitorRates); err != nil {
		return MarketReport{}, err
	}
	est, err := u.estimateFor(ctx, userID, src)
	if err != nil {
		return MarketReport{}, err
	}
	return MarketReport{Estimate: est, Comparison: u.compare(est, locationID)}, nil
}

func (u *ReportUseCase) Profitability(ctx context.Context, userID string, src ReportSource, in entities.ProfitabilityInput) (ProfitabilityReport, error) {
	if _, err := u.gate.require(ctx, userID, entities.FeatureProfitabilityAnalysis); err != nil {
		return ProfitabilityReport{}, err
	}
	est, err := u.estimateFor(ctx, userID, src)
	if err != nil {
		return ProfitabilityReport{}, err
	}
	return ProfitabilityReport{Estimate: est, Result: pricing.AnalyzeProfitability(est, in)}, nil
}

func (u *ReportUseCase) Risks(ctx context.Context, userID string, src ReportSource) (RiskReport, error) {
	if _, err := u.gate.require(ctx, userID, entities.FeatureRiskAssessment); err != nil {
		return RiskReport{}, err
	}
	est, err := u.estimateFor(ctx, userID, src)
	if err != nil {
		return RiskReport{}, err
	}
	return RiskReport{Estimate: est, Risks: pricing.AssessRisks(est.Input)}, nil
}

func (u *ReportUseCase) ExportText(ctx context.Context, userID string, src ReportSource, opts entities.ExportOptions) (entities.Document, error) {
	plan, err := u.gate.require(ctx, userID, entities.FeatureExportBasic)
	if err != nil {
		return entities.Document{}, err
	}
	est, err := u.estimateFor(ctx, userID, src)
	if err != nil {
		return entities.Document{}, err
	}
	doc, err := u.renderer.EstimateText(est, brandingFor(plan, opts))
	if err != nil {
		u.log.Error("text export failed", zap.String("user_id", userID), zap.Error(err))
		return entities.Document{}, err
	}
	return doc, nil
}

func (u *ReportUseCase) ExportPDF(ctx context.Context, userID string, src ReportSource, opts entities.ExportOptions) (entities.Document, error) {
	plan, err := u.gate.require(ctx, userID, entities.FeatureExportPDF)
	if err != nil {
		return entities.Document{}, err
	}
	est, err := u.estimateFor(ctx, userID, src)
	if err != nil {
		return entities.Document{}, err
	}

	var lines []entities.TaskBreakdownLine
	if entitlement.HasFeature(plan, entities.FeatureProjectBreakdown) {
		lines = u.breakdown(est)
	}
	doc, err := u.renderer.EstimatePDF(est, lines, brandingFor(plan, opts))
	if err != nil {
		u.log.Error("pdf export failed", zap.String("user_id", userID), zap.Error(err))
		return entities.Document{}, err
	}
	u.log.Info("pdf exported", zap.String("user_id", userID), zap.Int("bytes", len(doc.Body)))
	return doc, nil
}

func (u *ReportUseCase) ExportMarketRatesCSV(ctx context.Context, userID string, src ReportSource, locationID string) (entities.Document, error) {
	if _, err := u.gate.require(ctx, userID, entities.FeatureCompetitorRates); err != nil {
		return entities.Document{}, err
	}
	est, err := u.estimateFor(ctx, userID, src)
	if err != nil {
		return entities.Document{}, err
	}
	doc, err := u.renderer.MarketRatesCSV(est, u.compare(est, locationID))
	if err != nil {
		u.log.Error("market rates export failed", zap.String("user_id", userID), zap.Error(err))
		return entities.Document{}, err
	}
	return doc, nil
}

func (u *ReportUseCase) estimateFor(ctx context.Context, userID string, src ReportSource) (entities.Estimate, error) {
	if id := strings.TrimSpace(src.EstimateID); id != "" {
		return getSavedEstimate(ctx, u.repo, userID, id)
	}
	return u.calc.Quote(src.Input)
}

func (u *ReportUseCase) breakdown(est entities.Estimate) []entities.TaskBreakdownLine {
	return pricing.Breakdown(u.calc.Catalog(), est, est.Input.IndustryID, est.Input.ProjectTypeID, est.Input.FeatureIDs)
}

func (u *ReportUseCase) compare(est entities.Estimate, locationID string) entities.MarketComparison {
	return pricing.CompareRates(u.calc.Catalog(), est.Input.IndustryID, est.Input.ProjectTypeID, strings.TrimSpace(locationID), est)
}

// brandingFor drops branding options the plan does not unlock.
func brandingFor(plan string, opts entities.ExportOptions) entities.ExportOptions {
	if !entitlement.HasFeature(plan, entities.FeatureCustomBranding) {
		opts.CompanyName = ""
	}
	if !entitlement.HasFeature(plan, entities.FeatureWhiteLabel) {
		opts.WhiteLabel = false
	}
	return opts
}
