package handlers

import (
	"context"
	"fmt"
	"net/http"

	"bidright/internal/adapter/http/dto/request"
	"bidright/internal/adapter/http/middleware"
	"bidright/internal/domain/entities"
	"bidright/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ExportHandler streams rendered documents as attachments.
type ExportHandler struct {
	usecase usecase.IReportUseCase
}

func NewExportHandler(uc usecase.IReportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// ExportText godoc
// @Summary      Plain-text estimate
// @Tags         exports
// @Accept       json
// @Produce      plain
// @Security     BearerAuth
// @Param        payload  body      request.ExportRequest  true  "Estimate and document options"
// @Success      200      {file}    file
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Router       /v1/exports/text [post]
func (h *ExportHandler) ExportText(c *gin.Context) {
	h.export(c, h.usecase.ExportText)
}

// ExportPDF godoc
// @Summary      PDF estimate
// @Description  Branding and white label options apply only on plans that include them.
// @Tags         exports
// @Accept       json
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        payload  body      request.ExportRequest  true  "Estimate and document options"
// @Success      200      {file}    file
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Router       /v1/exports/pdf [post]
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	h.export(c, h.usecase.ExportPDF)
}

// ExportMarketRatesCSV godoc
// @Summary      Market rates spreadsheet
// @Tags         exports
// @Accept       json
// @Produce      text/csv
// @Security     BearerAuth
// @Param        payload  body      request.MarketRatesRequest  true  "Estimate and location"
// @Success      200      {file}    file
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Router       /v1/exports/market-rates.csv [post]
func (h *ExportHandler) ExportMarketRatesCSV(c *gin.Context) {
	var payload request.MarketRatesRequest
	if !bindReport(c, &payload, &payload.ReportRequest) {
		return
	}

	doc, err := h.usecase.ExportMarketRatesCSV(c.Request.Context(), middleware.UserID(c), reportSource(payload.ReportRequest), payload.ResolveLocation())
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	writeDocument(c, doc)
}

type exportFunc func(ctx context.Context, userID string, src usecase.ReportSource, opts entities.ExportOptions) (entities.Document, error)

func (h *ExportHandler) export(c *gin.Context, render exportFunc) {
	var payload request.ExportRequest
	if !bindReport(c, &payload, &payload.ReportRequest) {
		return
	}

	doc, err := render(c.Request.Context(), middleware.UserID(c), reportSource(payload.ReportRequest), payload.Options())
	if err != nil {
		writeError(c, mapReportError(err))
		return
	}
	writeDocument(c, doc)
}

func writeDocument(c *gin.Context, doc entities.Document) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
