package request

import (
	"encoding/json"
	"errors"
	"testing"

	"bidright/internal/domain/entities"
)

func TestEstimateRequest_ToInput(t *testing.T) {
	in := EstimateRequest{IndustryID: " webdev ", ProjectTypeID: "website ", Complexity: " high", FeatureIDs: []string{"cms"}}.ToInput()
	if in.IndustryID != "webdev" || in.ProjectTypeID != "website" || in.Complexity != "high" || in.FeatureIDs[0] != "cms" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestReportRequest_Validate(t *testing.T) {
	cases := []struct {
		name string
		req  ReportRequest
		ok   bool
	}{
		{name: "saved estimate", req: ReportRequest{EstimateID: "e-1"}, ok: true},
		{name: "selections", req: ReportRequest{IndustryID: "webdev", ProjectTypeID: "website"}, ok: true},
		{name: "missing project type", req: ReportRequest{IndustryID: "webdev"}, ok: false},
		{name: "blank", req: ReportRequest{EstimateID: "  "}, ok: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			if c.ok && err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if !c.ok && !errors.Is(err, ErrMissingReportSource) {
				t.Fatalf("expected ErrMissingReportSource, got %v", err)
			}
		})
	}
}

func TestProfitabilityRequest_Defaults(t *testing.T) {
	var req ProfitabilityRequest
	if err := json.Unmarshal([]byte(`{"industry_id":"webdev","project_type_id":"website","target_profit_pct":0}`), &req); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got := req.ToInput()
	want := entities.ProfitabilityInput{OverheadPct: 30, TargetProfitPct: 0, NonBillablePct: 25}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if req.Input().IndustryID != "webdev" {
		t.Fatalf("embedded selections not decoded: %+v", req.ReportRequest)
	}
}

func TestMarketRatesRequest_ResolveLocation(t *testing.T) {
	if got := (MarketRatesRequest{}).ResolveLocation(); got != DefaultLocation {
		t.Fatalf("expected default location, got %s", got)
	}
	if got := (MarketRatesRequest{Location: " uk "}).ResolveLocation(); got != "uk" {
		t.Fatalf("expected uk, got %s", got)
	}
}

func TestExportRequest_Options(t *testing.T) {
	opts := ExportRequest{CompanyName: " Studio ", ClientName: "Acme", Notes: " n ", WhiteLabel: true}.Options()
	if opts != (entities.ExportOptions{CompanyName: "Studio", ClientName: "Acme", Notes: "n", WhiteLabel: true}) {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestCheckoutRequest_BillingCycle(t *testing.T) {
	if got := (CheckoutRequest{Cycle: " Annual "}).BillingCycle(); got != entities.BillingAnnual {
		t.Fatalf("expected annual, got %s", got)
	}
}
