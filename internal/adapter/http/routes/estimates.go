package routes

import (
	"bidright/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog   = "/catalog"
	PathEstimates = "/estimates"
	PathReports   = "/reports"
	PathExports   = "/exports"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	rg.GET(PathCatalog, catalogHandler.GetCatalog)
}

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, public, private, throttle gin.HandlerFunc) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", public, throttle, estimateHandler.Calculate)
	}

	saved := estimates.Group("/saved", private)
	{
		saved.POST("", throttle, estimateHandler.Save)
		saved.GET("", estimateHandler.ListSaved)
		saved.GET("/:id", estimateHandler.GetSaved)
		saved.DELETE("/:id", estimateHandler.DeleteSaved)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler, exportHandler *handlers.ExportHandler, private, throttle gin.HandlerFunc) {
	reports := rg.Group(PathReports, private, throttle)
	{
		reports.POST("/breakdown", reportHandler.Breakdown)
		reports.POST("/market-rates", reportHandler.MarketRates)
		reports.POST("/profitability", reportHandler.Profitability)
		reports.POST("/risks", reportHandler.Risks)
	}

	exports := rg.Group(PathExports, private, throttle)
	{
		exports.POST("/text", exportHandler.ExportText)
		exports.POST("/pdf", exportHandler.ExportPDF)
		exports.POST("/market-rates.csv", exportHandler.ExportMarketRatesCSV)
	}
}
