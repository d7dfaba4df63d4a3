package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"bidright/internal/adapter/http/handlers/mocks"
	"bidright/internal/domain/entities"
	"bidright/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestReportHandler_Breakdown(t *testing.T) {
	t.Run("missing source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		r := newRouter(http.MethodPost, "/v1/reports/breakdown", NewReportHandler(uc).Breakdown)

		w := doRequest(t, r, http.MethodPost, "/v1/reports/breakdown", `{"industry_id":"webdev"}`, "user-1")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeError(t, w).Code; got != "INVALID_REPORT_INPUT" {
			t.Fatalf("expected INVALID_REPORT_INPUT, got %s", got)
		}
	})

	t.Run("free plan is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().Breakdown(gomock.Any(), "user-1", usecase.ReportSource{EstimateID: "est-1", Input: entities.EstimateInput{}}).
			Return(usecase.BreakdownReport{}, &usecase.FeatureError{Feature: entities.FeatureProjectBreakdown, Required: entities.PlanPro})
		r := newRouter(http.MethodPost, "/v1/reports/breakdown", NewReportHandler(uc).Breakdown)

		w := doRequest(t, r, http.MethodPost, "/v1/reports/breakdown", `{"estimate_id":"est-1"}`, "user-1")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "UPGRADE_REQUIRED" || body.Details["feature"] != "project_breakdown" || body.Details["required_plan"] != "pro" {
			t.Fatalf("unexpected error body: %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().Breakdown(gomock.Any(), "user-1", gomock.Any()).Return(usecase.BreakdownReport{
			Estimate: websiteEstimate(),
			Lines: []entities.TaskBreakdownLine{
				{Name: "Design", Hours: 36, Cost: 1675, Percentage: 50},
				{Name: "Build", Hours: 36, Cost: 1675, Percentage: 50},
			},
		}, nil)
		r := newRouter(http.MethodPost, "/v1/reports/breakdown", NewReportHandler(uc).Breakdown)

		w := doRequest(t, r, http.MethodPost, "/v1/reports/breakdown", websitePayload, "user-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Lines []entities.TaskBreakdownLine `json:"lines"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body.Lines) != 2 || body.Lines[0].Name != "Design" {
			t.Fatalf("unexpected lines: %+v", body.Lines)
		}
	})
}

func TestReportHandler_MarketRates_DefaultLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReportUseCase(ctrl)
	uc.EXPECT().MarketRates(gomock.Any(), "user-1", gomock.Any(), "us_average").
		Return(usecase.MarketReport{Estimate: websiteEstimate(), Comparison: entities.MarketComparison{LocationID: "us_average", YourRate: 47}}, nil)
	r := newRouter(http.MethodPost, "/v1/reports/market-rates", NewReportHandler(uc).MarketRates)

	w := doRequest(t, r, http.MethodPost, "/v1/reports/market-rates", websitePayload, "user-1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestReportHandler_Profitability_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReportUseCase(ctrl)
	uc.EXPECT().Profitability(gomock.Any(), "user-1", gomock.Any(), entities.ProfitabilityInput{
		OverheadPct:     30,
		TargetProfitPct: 35,
		NonBillablePct:  25,
	}).Return(usecase.ProfitabilityReport{Estimate: websiteEstimate()}, nil)
	r := newRouter(http.MethodPost, "/v1/reports/profitability", NewReportHandler(uc).Profitability)

	w := doRequest(t, r, http.MethodPost, "/v1/reports/profitability", `{"estimate_id":"est-1","target_profit_pct":35}`, "user-1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestReportHandler_Risks_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReportUseCase(ctrl)
	uc.EXPECT().Risks(gomock.Any(), "user-1", gomock.Any()).Return(usecase.RiskReport{}, usecase.ErrEstimateNotFound)
	r := newRouter(http.MethodPost, "/v1/reports/risks", NewReportHandler(uc).Risks)

	w := doRequest(t, r, http.MethodPost, "/v1/reports/risks", `{"estimate_id":"gone"}`, "user-1")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestExportHandler(t *testing.T) {
	t.Run("pdf attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().ExportPDF(gomock.Any(), "user-1", gomock.Any(), entities.ExportOptions{CompanyName: "Studio", WhiteLabel: true}).
			Return(entities.Document{FileName: "estimate-website.pdf", ContentType: "application/pdf", Body: []byte("%PDF-1.3")}, nil)
		r := newRouter(http.MethodPost, "/v1/exports/pdf", NewExportHandler(uc).ExportPDF)

		w := doRequest(t, r, http.MethodPost, "/v1/exports/pdf", `{"estimate_id":"est-1","company_name":"Studio","white_label":true}`, "user-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != "application/pdf" {
			t.Fatalf("unexpected content type %s", got)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="estimate-website.pdf"` {
			t.Fatalf("unexpected disposition %s", got)
		}
		if w.Body.String() != "%PDF-1.3" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("pdf needs pro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().ExportPDF(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
			Return(entities.Document{}, &usecase.FeatureError{Feature: entities.FeatureExportPDF, Required: entities.PlanPro})
		r := newRouter(http.MethodPost, "/v1/exports/pdf", NewExportHandler(uc).ExportPDF)

		w := doRequest(t, r, http.MethodPost, "/v1/exports/pdf", websitePayload, "user-1")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if got := decodeError(t, w).Details["feature"]; got != "export_pdf" {
			t.Fatalf("expected export_pdf, got %v", got)
		}
	})

	t.Run("text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().ExportText(gomock.Any(), "", gomock.Any(), gomock.Any()).
			Return(entities.Document{FileName: "estimate.txt", ContentType: "text/plain; charset=utf-8", Body: []byte("PROJECT ESTIMATE")}, nil)
		r := newRouter(http.MethodPost, "/v1/exports/text", NewExportHandler(uc).ExportText)

		w := doRequest(t, r, http.MethodPost, "/v1/exports/text", websitePayload, "")
		if w.Code != http.StatusOK || w.Body.String() != "PROJECT ESTIMATE" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("market rates csv", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIReportUseCase(ctrl)
		uc.EXPECT().ExportMarketRatesCSV(gomock.Any(), "user-1", gomock.Any(), "us_west_coast").
			Return(entities.Document{FileName: "market-rates-webdev-website.csv", ContentType: "text/csv; charset=utf-8", Body: []byte("a,b\n")}, nil)
		r := newRouter(http.MethodPost, "/v1/exports/market-rates.csv", NewExportHandler(uc).ExportMarketRatesCSV)

		w := doRequest(t, r, http.MethodPost, "/v1/exports/market-rates.csv", `{"estimate_id":"est-1","location":"us_west_coast"}`, "user-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="market-rates-webdev-website.csv"` {
			t.Fatalf("unexpected disposition %s", got)
		}
	})
}
