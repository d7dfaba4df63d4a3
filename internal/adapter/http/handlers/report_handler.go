package handlers

import (
	"net/http"

	"bidright/internal/adapter/http/dto/request"
	"bidright/internal/adapter/http/dto/response"
	"bidright/internal/adapter/http/middleware"
	"bidright/internal/usecase"
	"bidright/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReportPayload = pkg.NewDomainErrorSimple("INVALID_REPORT_INPUT", "Provide estimate_id or industry_id and project_type_id", http.StatusBadRequest)

// ReportHandler serves the plan-gated analyses of an estimate.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// Breakdown godoc
// @Summary      Project phase breakdown
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      request.ReportRequest  true  "Saved estimate id or selections"
// @Success      200      {object}  response.BreakdownResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Router       /v1/reports/breakdown [post]
func (h *ReportHandler) Breakdown(c *gin.Context) {
	var payload request.ReportRequest
	if !bindReport(c, &payload, &payload) {
		return
	}

	report, err := h.usecase.Breakdown(c.Request.Context(), middleware.UserID(c), reportSource(payload))
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(report))
}

// MarketRates godoc
// @Summary      Market rate comparison
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      request.MarketRatesRequest  true  "Estimate and location"
// @Success      200      {object}  response.MarketRatesResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Router       /v1/reports/market-rates [post]
func (h *ReportHandler) MarketRates(c *gin.Context) {
	var payload request.MarketRatesRequest
	if !bindReport(c, &payload, &payload.ReportRequest) {
		return
	}

	report, err := h.usecase.MarketRates(c.Request.Context(), middleware.UserID(c), reportSource(payload.ReportRequest), payload.ResolveLocation())
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMarketReport(report))
}

// Profitability godoc
// @Summary      Profitability analysis
// @Description  Omitted percentages default to 30% overhead, 20% target profit and 25% non-billable time.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      request.ProfitabilityRequest  true  "Estimate and business parameters"
// @Success      200      {object}  response.ProfitabilityResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Router       /v1/reports/profitability [post]
func (h *ReportHandler) Profitability(c *gin.Context) {
	var payload request.ProfitabilityRequest
	if !bindReport(c, &payload, &payload.ReportRequest) {
		return
	}

	report, err := h.usecase.Profitability(c.Request.Context(), middleware.UserID(c), reportSource(payload.ReportRequest), payload.ToInput())
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfitabilityReport(report))
}

// Risks godoc
// @Summary      Risk assessment
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      request.ReportRequest  true  "Saved estimate id or selections"
// @Success      200      {object}  response.RiskResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Router       /v1/reports/risks [post]
func (h *ReportHandler) Risks(c *gin.Context) {
	var payload request.ReportRequest
	if !bindReport(c, &payload, &payload) {
		return
	}

	report, err := h.usecase.Risks(c.Request.Context(), middleware.UserID(c), reportSource(payload))
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRiskReport(report))
}

// bindReport decodes dst and validates its embedded report source, writing
// the 400 itself on failure.
func bindReport(c *gin.Context, dst any, src *request.ReportRequest) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, errInvalidReportPayload)
		return false
	}
	if err := src.Validate(); err != nil {
		writeError(c, errInvalidReportPayload)
		return false
	}
	return true
}

func reportSource(r request.ReportRequest) usecase.ReportSource {
	return usecase.ReportSource{EstimateID: r.SavedEstimateID(), Input: r.Input()}
}

func mapReportError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	return internalError(err)
}
