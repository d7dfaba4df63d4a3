// Package export renders estimates and market comparisons into downloadable
// documents: a plain-text summary, a PDF proposal and a market-rates CSV.
package export

import (
	"strings"
	"time"

	"bidright/internal/domain/entities"
	"bidright/internal/usecase/interfaces"

	"github.com/dustin/go-humanize"
	"github.com/gosimple/slug"
)

const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypePDF  = "application/pdf"
	ContentTypeCSV  = "text/csv; charset=utf-8"

	defaultCompanyName = "Your Company"
	footerText         = "Generated with BidRight.app"
	dateLayout         = "Jan 2, 2006"
)

// Renderer implements every export format.
type Renderer struct {
	now func() time.Time
}

var _ interfaces.IReportRenderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

// documentDate prefers the estimate's own timestamp.
func (r *Renderer) documentDate(est entities.Estimate) string {
	t := est.CreatedAt
	if t.IsZero() {
		t = r.now()
	}
	return t.UTC().Format(dateLayout)
}

func fileName(ext string, parts ...string) string {
	name := slug.Make(strings.Join(parts, " "))
	if name == "" {
		name = "estimate"
	}
	return name + "." + ext
}

// money formats whole dollars with thousands separators, e.g. $12,500.
func money(v int) string {
	return "$" + number(v)
}

func number(v int) string {
	return humanize.Comma(int64(v))
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
