package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"bidright/internal/domain/entities"
)

var marketRateHeader = []string{"Experience Level", "Hourly Rate", "Comparison", "Annual Income (Full-time)"}

// MarketRatesCSV renders a market comparison. Three preamble lines and a blank
// line precede the table; the caller's own rate closes it at 0%.
func (r *Renderer) MarketRatesCSV(est entities.Estimate, cmp entities.MarketComparison) (entities.Document, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Market Rates for %s - %s\n", orDefault(est.IndustryName, est.Input.IndustryID), orDefault(est.ProjectName, est.Input.ProjectTypeID))
	fmt.Fprintf(&buf, "Location: %s\n", orDefault(cmp.LocationName, cmp.LocationID))
	fmt.Fprintf(&buf, "Date: %s\n\n", r.documentDate(est))

	w := csv.NewWriter(&buf)
	records := make([][]string, 0, len(cmp.Rows)+2)
	records = append(records, marketRateHeader)
	for _, row := range cmp.Rows {
		records = append(records, []string{
			row.ExperienceLevel,
			number(row.HourlyRate),
			fmt.Sprintf("%d%%", row.PercentDiff),
			number(row.AnnualIncome),
		})
	}
	records = append(records, []string{"Your Rate", number(cmp.YourRate), "0%", number(cmp.YourIncome)})

	if err := w.WriteAll(records); err != nil {
		return entities.Document{}, fmt.Errorf("write csv: %w", err)
	}

	return entities.Document{
		FileName:    fileName("csv", "market rates", est.Input.IndustryID, est.Input.ProjectTypeID),
		ContentType: ContentTypeCSV,
		Body:        buf.Bytes(),
	}, nil
}
