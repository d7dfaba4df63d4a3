package interfaces

import "bidright/internal/domain/entities"

// IReportRenderer turns computed figures into downloadable documents.
type IReportRenderer interface {
	EstimateText(est entities.Estimate, opts entities.ExportOptions) (entities.Document, error)
	EstimatePDF(est entities.Estimate, breakdown []entities.TaskBreakdownLine, opts entities.ExportOptions) (entities.Document, error)
	MarketRatesCSV(est entities.Estimate, cmp entities.MarketComparison) (entities.Document, error)
}
