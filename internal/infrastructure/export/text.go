package export

import (
	"fmt"
	"strings"

	"bidright/internal/domain/entities"
)

// EstimateText renders the shareable plain-text summary.
func (r *Renderer) EstimateText(est entities.Estimate, opts entities.ExportOptions) (entities.Document, error) {
	var b strings.Builder

	if company := strings.TrimSpace(opts.CompanyName); company != "" {
		b.WriteString(company + "\n\n")
	}
	b.WriteString("# FREELANCE PROJECT ESTIMATE\n\n")

	b.WriteString("## Project Details\n")
	if client := strings.TrimSpace(opts.ClientName); client != "" {
		fmt.Fprintf(&b, "Client: %s\n", client)
	}
	fmt.Fprintf(&b, "Industry: %s\n", orDefault(est.IndustryName, "Custom Project"))
	fmt.Fprintf(&b, "Project Type: %s\n", orDefault(est.ProjectName, "Custom Type"))
	fmt.Fprintf(&b, "Complexity: %s\n", orDefault(est.ComplexityName, "Medium"))
	fmt.Fprintf(&b, "Date: %s\n\n", r.documentDate(est))

	b.WriteString("## Estimate Summary\n")
	fmt.Fprintf(&b, "Time Estimate: %d-%d hours\n", est.HourRange.Min, est.HourRange.Max)
	fmt.Fprintf(&b, "Cost Estimate: %s-%s\n", money(est.CostRange.Min), money(est.CostRange.Max))
	fmt.Fprintf(&b, "Revisions Included: %d\n", est.RevisionLimit)

	if len(est.FeatureNames) > 0 {
		b.WriteString("\n## Included Features\n")
		for _, f := range est.FeatureNames {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	}

	if notes := strings.TrimSpace(opts.Notes); notes != "" {
		fmt.Fprintf(&b, "\n## Notes\n%s\n", notes)
	}

	if !opts.WhiteLabel {
		b.WriteString("\n---\n" + footerText + "\n")
	}

	return entities.Document{
		FileName:    fileName("txt", est.IndustryName, est.ProjectName, "estimate"),
		ContentType: ContentTypeText,
		Body:        []byte(b.String()),
	}, nil
}
