package usecase

import (
	"context"
	"errors"
	"testing"

	"bidright/internal/domain/entities"
	mock_interfaces "bidright/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type reportFixture struct {
	uc       *ReportUseCase
	repo     *mock_interfaces.MockIEstimateRepository
	plans    *mock_interfaces.MockIPlanProvider
	renderer *mock_interfaces.MockIReportRenderer
	events   *recordedEvents
}

func newReportFixture(t *testing.T) reportFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := reportFixture{
		repo:     mock_interfaces.NewMockIEstimateRepository(ctrl),
		plans:    mock_interfaces.NewMockIPlanProvider(ctrl),
		renderer: mock_interfaces.NewMockIReportRenderer(ctrl),
		events:   &recordedEvents{},
	}
	f.uc = NewReportUseCase(newTestCalculator(t), f.repo, f.renderer, f.plans, nil, f.events)
	return f
}

func TestReportUseCase_Gating(t *testing.T) {
	src := ReportSource{Input: websiteInput}
	ctx := context.Background()

	tests := []struct {
		name    string
		feature entities.Feature
		call    func(uc *ReportUseCase, userID string) error
	}{
		{name: "breakdown", feature: entities.FeatureProjectBreakdown, call: func(uc *ReportUseCase, userID string) error {
			_, err := uc.Breakdown(ctx, userID, src)
			return err
		}},
		{name: "market rates", feature: entities.FeatureCompetitorRates, call: func(uc *ReportUseCase, userID string) error {
			_, err := uc.MarketRates(ctx, userID, src, "us_average")
			return err
		}},
		{name: "profitability", feature: entities.FeatureProfitabilityAnalysis, call: func(uc *ReportUseCase, userID string) error {
			_, err := uc.Profitability(ctx, userID, src, entities.ProfitabilityInput{})
			return err
		}},
		{name: "risks", feature: entities.FeatureRiskAssessment, call: func(uc *ReportUseCase, userID string) error {
			_, err := uc.Risks(ctx, userID, src)
			return err
		}},
		{name: "pdf", feature: entities.FeatureExportPDF, call: func(uc *ReportUseCase, userID string) error {
			_, err := uc.ExportPDF(ctx, userID, src, entities.ExportOptions{})
			return err
		}},
		{name: "market csv", feature: entities.FeatureCompetitorRates, call: func(uc *ReportUseCase, userID string) error {
			_, err := uc.ExportMarketRatesCSV(ctx, userID, src, "")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name+" free plan denied", func(t *testing.T) {
			f := newReportFixture(t)
			f.plans.EXPECT().CurrentPlan(gomock.Any(), "u-1").Return("free", nil)

			err := tt.call(f.uc, "u-1")
			if !errors.Is(err, ErrFeatureNotEntitled) {
				t.Fatalf("expected ErrFeatureNotEntitled, got %v", err)
			}
			var fe *FeatureError
			if !errors.As(err, &fe) || fe.Feature != tt.feature || fe.Required != entities.PlanPro {
				t.Fatalf("unexpected feature error: %+v", fe)
			}
			if len(f.events.denied) != 1 || f.events.denied[0] != string(tt.feature) {
				t.Fatalf("unexpected denied events: %v", f.events.denied)
			}
		})

		t.Run(tt.name+" anonymous denied without plan lookup", func(t *testing.T) {
			f := newReportFixture(t)
			if err := tt.call(f.uc, ""); !errors.Is(err, ErrFeatureNotEntitled) {
				t.Fatalf("expected ErrFeatureNotEntitled, got %v", err)
			}
		})

		t.Run(tt.name+" unknown plan string denied", func(t *testing.T) {
			f := newReportFixture(t)
			f.plans.EXPECT().CurrentPlan(gomock.Any(), "u-1").Return("enterprise", nil)
			if err := tt.call(f.uc, "u-1"); !errors.Is(err, ErrFeatureNotEntitled) {
				t.Fatalf("expected ErrFeatureNotEntitled, got %v", err)
			}
		})
	}
}

func TestReportUseCase_Breakdown(t *testing.T) {
	t.Run("fresh quote", func(t *testing.T) {
		f := newReportFixture(t)
		f.plans.EXPECT().CurrentPlan(gomock.Any(), "u-1").Return("pro", nil)

		rep, err := f.uc.Breakdown(context.Background(), "u-1", ReportSource{Input: websiteInput})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if rep.Estimate.Hours != 72 || len(rep.Lines) == 0 {
			t.Fatalf("unexpected report: %+v", rep)
		}
		sum, hours := 0, 0
		for _, l := range rep.Lines {
			sum += l.Percentage
			hours += l.Hours
		}
		if sum != 100 {
			t.Fatalf("expected percentages to sum to 100, got %d", sum)
		}
		if hours == 0 {
			t.Fatalf("expected hours in breakdown")
		}
	})

	t.Run("legacy premium plan is pro", func(t *testing.T) {
		f := newReportFixture(t)
		f.plans.EXPECT().CurrentPlan(gomock.Any(), "u-1").Return("premium", nil)

		if _, err := f.uc.Breakdown(context.Background(), "u-1", ReportSource{Input: websiteInput}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("saved estimate not found", func(t *testing.T) {
		f := newReportFixture(t)
		f.plans.EXPECT().CurrentPlan(gomock.Any(), "u-1").Return("pro", nil)
		f.repo.EXPECT().GetByID(gomock.Any(), "u-1", "e-9").Return(entities.Estimate{}, nil)

		_, err := f.uc.Breakdown(context.Background(), "u-1", ReportSource{EstimateID: "e-9"})
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("saved estimate uses stored selections", func(t *testing.T) {
		f := newReportFixture(t)
		saved := entities.Estimate{ID: "e-1", UserID: "u-1", Hours: 100, Cost: 5000, Input: entities.EstimateInput{IndustryID: "webdev", ProjectTypeID: "website", Complexity: "medium"}}
		f.plans.EXPECT().CurrentPlan(gomock.Any(), "u-1").Return("pro", nil)
		f.repo.EXPECT().GetByID(gomock.Any(), "u-1", "e-1").Return(saved, nil)

		rep, err := f.uc.Breakdown(context.Background(), "u-1", ReportSource{EstimateID: "e-1", Input: websiteInput})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if rep.Estimate.ID != "e-1" || rep.Estimate.Hours != 100 {
			t.Fatalf("expected saved estimate, got %+v", rep.Estimate)
		}
	})

	t.Run("plan lookup error", func(t *testing.T) {
		f := newReportFixture(t)
		f.plans.EXPECT().CurrentPlan(gomock.Any(), "u-1").Return("", errors.New("db"))

		_, err := f.uc.Breakdown(context.Background(), "u-1", ReportSource{Input: websiteInput})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestReportUseCase_Analytics(t *testing.T) {
	t.Run("market rates", func(t *testing.T) {
		f := newReportFixture(t)
		f.plans.EXPECT().CurrentPlan(gomock.Any(), "u-1").Return("pro", nil)

		rep, err := f.uc.MarketRates(context.Background(), "u-1", ReportSource{Input: websiteInput}, " us_west_coast ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if rep.Comparison.LocationName != "US West Coast" || len(rep.Comparison.Rows) == 0 {
			t.Fatalf("unexpected comparison: %+v", rep.Comparison)
		}
	})

	t.Run("profitability", func(t *testing.T) {
		f := newReportFixture(t)
		f.plans.EXPECT().CurrentPlan(gomock.Any(), "u-1").Return("pro", nil)

		in := entities.ProfitabilityInput{OverheadPct: 30, TargetProfitPct: 20, NonBillablePct: 25}
		rep, err := f.uc.Profitability(context.Background(), "u-1", ReportSource{Input: websiteInput}, in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if rep.Result.Input != in || rep.Result.RecommendedPrice <= 0 {
			t.Fatalf("unexpected result: %+v", rep.Result)
		}
	})

	t.Run("risks", func(t *testing.T) {
		f := newReportFixture(t)
		f.plans.EXPECT().CurrentPlan(gomock.Any(), "u-1").Return("pro", nil)

		in := websiteInput
		in.Complexity = "expert"
		rep, err := f.uc.Risks(context.Background(), "u-1", ReportSource{Input: in})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(rep.Risks) == 0 || rep.Risks[0].Name != "Scope Creep" {
			t.Fatalf("unexpected risks: %+v", rep.Risks)
		}
	})
}

func TestReportUseCase_Exports(t *testing.T) {
	t.Run("text export on free plan drops branding", func(t *testing.T) {
		f := newReportFixture(t)
		f.plans.EXPECT().CurrentPlan(gomock.Any(), "u-1").Return("free", nil)
		f.renderer.EXPECT().EstimateText(gomock.Any(), entities.ExportOptions{ClientName: "Acme"}).
			Return(entities.Document{FileName: "a.txt"}, nil)

		doc, err := f.uc.ExportText(context.Background(), "u-1", ReportSource{Input: websiteInput},
			entities.ExportOptions{ClientName: "Acme", CompanyName: "Studio", WhiteLabel: true})
		if err != nil || doc.FileName != "a.txt" {
			t.Fatalf("unexpected result: %+v err=%v", doc, err)
		}
	})

	t.Run("text export for anonymous caller", func(t *testing.T) {
		f := newReportFixture(t)
		f.renderer.EXPECT().EstimateText(gomock.Any(), gomock.Any()).Return(entities.Document{FileName: "a.txt"}, nil)

		if _, err := f.uc.ExportText(context.Background(), "", ReportSource{Input: websiteInput}, entities.ExportOptions{}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("pdf export keeps branding and breakdown on pro", func(t *testing.T) {
		f := newReportFixture(t)
		opts := entities.ExportOptions{CompanyName: "Studio", WhiteLabel: true}
		f.plans.EXPECT().CurrentPlan(gomock.Any(), "u-1").Return("pro", nil)
		f.renderer.EXPECT().EstimatePDF(gomock.Any(), gomock.Any(), opts).DoAndReturn(
			func(est entities.Estimate, lines []entities.TaskBreakdownLine, _ entities.ExportOptions) (entities.Document, error) {
				if est.Hours != 72 || len(lines) == 0 {
					t.Fatalf("unexpected render input: %+v %v", est, lines)
				}
				return entities.Document{FileName: "a.pdf"}, nil
			},
		)

		if _, err := f.uc.ExportPDF(context.Background(), "u-1", ReportSource{Input: websiteInput}, opts); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("renderer error", func(t *testing.T) {
		f := newReportFixture(t)
		f.plans.EXPECT().CurrentPlan(gomock.Any(), "u-1").Return("pro", nil)
		f.renderer.EXPECT().MarketRatesCSV(gomock.Any(), gomock.Any()).Return(entities.Document{}, errors.New("boom"))

		_, err := f.uc.ExportMarketRatesCSV(context.Background(), "u-1", ReportSource{Input: websiteInput}, "us_average")
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})

	t.Run("invalid selection", func(t *testing.T) {
		f := newReportFixture(t)
		f.plans.EXPECT().CurrentPlan(gomock.Any(), "u-1").Return("pro", nil)

		_, err := f.uc.ExportPDF(context.Background(), "u-1", ReportSource{Input: entities.EstimateInput{IndustryID: "x"}}, entities.ExportOptions{})
		if !errors.Is(err, ErrInvalidSelection) {
			t.Fatalf("expected ErrInvalidSelection, got %v", err)
		}
	})
}
