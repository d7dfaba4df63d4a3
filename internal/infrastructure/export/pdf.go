package export

import (
	"fmt"
	"strings"

	"bidright/internal/domain/entities"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// EstimatePDF renders the client-facing proposal.
func (r *Renderer) EstimatePDF(est entities.Estimate, breakdown []entities.TaskBreakdownLine, opts entities.ExportOptions) (entities.Document, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, orDefault(opts.CompanyName, defaultCompanyName), props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)
	m.AddRow(12,
		text.NewCol(12, "PROJECT ESTIMATE", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	details := []string{"Date: " + r.documentDate(est)}
	if client := strings.TrimSpace(opts.ClientName); client != "" {
		details = append(details, "Client: "+client)
	}
	details = append(details,
		"Industry: "+orDefault(est.IndustryName, "Custom Project"),
		"Project Type: "+orDefault(est.ProjectName, "Custom Type"),
		"Complexity: "+orDefault(est.ComplexityName, "Medium"),
	)
	detailCol := col.New(12)
	for i, line := range details {
		detailCol.Add(text.New(line, props.Text{Size: 11, Top: float64(i * 5)}))
	}
	m.AddRow(float64(len(details)*5+4), detailCol)

	m.AddRow(10,
		text.NewCol(12, "Estimate Summary", props.Text{Size: 14, Style: fontstyle.Bold, Top: 2}),
	)
	m.AddRow(22,
		col.New(6).Add(
			text.New("Time Estimate:", props.Text{Style: fontstyle.Bold}),
			text.New(fmt.Sprintf("%d-%d hours", est.HourRange.Min, est.HourRange.Max), props.Text{Size: 14, Style: fontstyle.Bold, Top: 6}),
			text.New("Based on project type and selected features", props.Text{Size: 9, Top: 14}),
		),
		col.New(6).Add(
			text.New("Cost Estimate:", props.Text{Style: fontstyle.Bold}),
			text.New(money(est.CostRange.Min)+"-"+money(est.CostRange.Max), props.Text{Size: 14, Style: fontstyle.Bold, Top: 6}),
			text.New("Recommended price range", props.Text{Size: 9, Top: 14}),
		),
	)

	if len(est.FeatureNames) > 0 {
		m.AddRow(10,
			text.NewCol(12, "Included Features", props.Text{Size: 14, Style: fontstyle.Bold, Top: 2}),
		)
		for _, f := range est.FeatureNames {
			m.AddRow(6, text.NewCol(12, "- "+f, props.Text{Size: 11, Left: 3}))
		}
	}

	if len(breakdown) > 0 {
		m.AddRow(12,
			text.NewCol(12, "Project Task Breakdown", props.Text{Size: 14, Style: fontstyle.Bold, Top: 4}),
		)
		m.AddRow(8,
			text.NewCol(6, "Task", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.NewCol(2, "Hours", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
			text.NewCol(2, "Cost", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
			text.NewCol(2, "% of Project", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		)
		for _, line := range breakdown {
			m.AddRow(7,
				text.NewCol(6, line.Name, props.Text{Size: 9}),
				text.NewCol(2, number(line.Hours), props.Text{Size: 9, Align: align.Right}),
				text.NewCol(2, money(line.Cost), props.Text{Size: 9, Align: align.Right}),
				text.NewCol(2, fmt.Sprintf("%d%%", line.Percentage), props.Text{Size: 9, Align: align.Right}),
			)
		}
	}

	if notes := strings.TrimSpace(opts.Notes); notes != "" {
		m.AddRow(10,
			text.NewCol(12, "Notes", props.Text{Size: 14, Style: fontstyle.Bold, Top: 2}),
		)
		m.AddRow(20, text.NewCol(12, notes, props.Text{Size: 10}))
	}

	if !opts.WhiteLabel {
		m.AddRow(10,
			text.NewCol(12, footerText, props.Text{Size: 8, Align: align.Center, Top: 4}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return entities.Document{}, fmt.Errorf("generate pdf: %w", err)
	}

	return entities.Document{
		FileName:    fileName("pdf", est.IndustryName, est.ProjectName, "estimate"),
		ContentType: ContentTypePDF,
		Body:        doc.GetBytes(),
	}, nil
}
