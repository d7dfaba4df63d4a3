package entities

// TaskBreakdownLine is one phase of an estimate's allocation.
type TaskBreakdownLine struct {
	Name       string `json:"name"`
	Hours      int    `json:"hours"`
	Cost       int    `json:"cost"`
	Percentage int    `json:"percentage"`
}

// MarketPosition is the ordinal scale used to compare a rate with the market.
type MarketPosition string

const (
	PositionPremium                  MarketPosition = "Premium"
	PositionAboveAverage             MarketPosition = "Above Average"
	PositionCompetitive              MarketPosition = "Competitive"
	PositionBelowAverage             MarketPosition = "Below Average"
	PositionSignificantlyUnderpriced MarketPosition = "Significantly Underpriced"
)

type MarketRateRow struct {
	ExperienceLevel string         `json:"experience_level"`
	HourlyRate      int            `json:"hourly_rate"`
	PercentDiff     int            `json:"percent_diff"`
	Position        MarketPosition `json:"position"`
	AnnualIncome    int            `json:"annual_income"`
}

type MarketComparison struct {
	LocationID      string          `json:"location_id"`
	LocationName    string          `json:"location_name"`
	YourRate        int             `json:"your_rate"`
	YourIncome      int             `json:"your_annual_income"`
	AverageRate     float64         `json:"average_rate"`
	PercentDiff     int             `json:"percent_diff"`
	Position        MarketPosition  `json:"position"`
	Recommendations []string        `json:"recommendations"`
	Rows            []MarketRateRow `json:"rows"`
}

// ProfitabilityInput carries the business parameters, all in percent.
type ProfitabilityInput struct {
	OverheadPct     float64 `json:"overhead_pct"`
	TargetProfitPct float64 `json:"target_profit_pct"`
	NonBillablePct  float64 `json:"non_billable_pct"`
}

type ProfitBand string

const (
	ProfitBandLoss            ProfitBand = "loss"
	ProfitBandBelowTarget     ProfitBand = "below_target"
	ProfitBandOnTarget        ProfitBand = "on_target"
	ProfitBandWellAboveTarget ProfitBand = "well_above_target"
)

type ProfitabilityResult struct {
	Input ProfitabilityInput `json:"input"`

	HourlyRate          int     `json:"hourly_rate"`
	EffectiveHourlyRate float64 `json:"effective_hourly_rate"`
	LaborCost           float64 `json:"labor_cost"`
	OverheadCost        float64 `json:"overhead_cost"`
	CurrentProfit       float64 `json:"current_profit"`
	CurrentMarginPct    float64 `json:"current_margin_pct"`
	RecommendedPrice    float64 `json:"recommended_price"`
	PriceDelta          float64 `json:"price_delta"`
	PriceDeltaPct       float64 `json:"price_delta_pct"`
	TenProjectProfit    float64 `json:"ten_project_profit"`

	Band           ProfitBand `json:"band"`
	Assessment     string     `json:"assessment"`
	Recommendation string     `json:"recommendation"`
	Warnings       []string   `json:"warnings,omitempty"`
}

type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

type Risk struct {
	Name        string    `json:"name"`
	Level       RiskLevel `json:"level"`
	Description string    `json:"description"`
	Mitigation  string    `json:"mitigation"`
}

// ExportOptions tunes rendered documents. Branding fields are honoured only
// when the caller's plan allows it.
type ExportOptions struct {
	CompanyName string `json:"company_name"`
	ClientName  string `json:"client_name"`
	Notes       string `json:"notes"`
	WhiteLabel  bool   `json:"white_label"`
}

// Document is a rendered export ready to be streamed to a client.
type Document struct {
	FileName    string
	ContentType string
	Body        []byte
}
