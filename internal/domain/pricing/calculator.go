// Package pricing holds the estimate calculator and the derived analytics
// computed from an estimate. Everything here is pure: no I/O, no shared state.
package pricing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bidright/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrInvalidSelection = errors.New("invalid selection")
)

const (
	hourRangeLow  = 0.8
	hourRangeHigh = 1.2
	costRangeLow  = 0.9
	costRangeHigh = 1.1
)

var mediumComplexity = entities.ComplexityTier{
	ID:             entities.ComplexityMedium,
	Name:           "Medium",
	HourMultiplier: 1,
	CostMultiplier: 1,
}

type Calculator struct {
	catalog *entities.RateCatalog
	now     func() time.Time
	newID   func() string
}

type Option func(*Calculator)

func WithClock(now func() time.Time) Option {
	return func(c *Calculator) { c.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(c *Calculator) { c.newID = newID }
}

func NewCalculator(catalog *entities.RateCatalog, opts ...Option) *Calculator {
	c := &Calculator{
		catalog: catalog,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calculator) Catalog() *entities.RateCatalog {
	return c.catalog
}

type selection struct {
	industry    entities.Industry
	projectType entities.ProjectType
	complexity  entities.ComplexityTier
	features    []entities.FeatureModifier
}

// Normalize resolves the selections against the catalog. Unknown complexity
// becomes medium; unknown or repeated feature ids are dropped and the rest are
// returned in catalog order.
func (c *Calculator) Normalize(in entities.EstimateInput) (entities.EstimateInput, error) {
	sel, err := c.resolve(in)
	if err != nil {
		return entities.EstimateInput{}, err
	}
	return sel.input(), nil
}

func (c *Calculator) resolve(in entities.EstimateInput) (selection, error) {
	industryID := strings.TrimSpace(in.IndustryID)
	projectTypeID := strings.TrimSpace(in.ProjectTypeID)

	industry, ok := c.catalog.Industry(industryID)
	if !ok {
		return selection{}, fmt.Errorf("%w: unknown industry %q", ErrInvalidSelection, industryID)
	}
	projectType, ok := c.catalog.ProjectType(industryID, projectTypeID)
	if !ok {
		return selection{}, fmt.Errorf("%w: project type %q is not offered for industry %q", ErrInvalidSelection, projectTypeID, industryID)
	}

	complexity, ok := c.catalog.Complexity(strings.ToLower(strings.TrimSpace(in.Complexity)))
	if !ok {
		complexity, ok = c.catalog.Complexity(entities.ComplexityMedium)
		if !ok {
			complexity = mediumComplexity
		}
	}

	wanted := make(map[string]struct{}, len(in.FeatureIDs))
	for _, id := range in.FeatureIDs {
		wanted[strings.TrimSpace(id)] = struct{}{}
	}
	var features []entities.FeatureModifier
	for _, f := range c.catalog.FeaturesFor(industryID) {
		if _, ok := wanted[f.ID]; ok {
			features = append(features, f)
		}
	}

	return selection{industry: industry, projectType: projectType, complexity: complexity, features: features}, nil
}

func (s selection) input() entities.EstimateInput {
	ids := make([]string, 0, len(s.features))
	for _, f := range s.features {
		ids = append(ids, f.ID)
	}
	return entities.EstimateInput{
		IndustryID:    s.industry.ID,
		ProjectTypeID: s.projectType.ID,
		Complexity:    s.complexity.ID,
		FeatureIDs:    ids,
	}
}

// Quote computes the estimate figures without identity metadata. Equal inputs
// always yield equal quotes.
func (c *Calculator) Quote(in entities.EstimateInput) (entities.Estimate, error) {
	sel, err := c.resolve(in)
	if err != nil {
		return entities.Estimate{}, err
	}

	hours := sel.projectType.BaseHours * sel.complexity.HourMultiplier
	cost := sel.projectType.BaseCost * sel.complexity.CostMultiplier
	names := make([]string, 0, len(sel.features))
	for _, f := range sel.features {
		hours *= f.HourMultiplier
		cost *= f.CostMultiplier
		names = append(names, f.Name)
	}

	h := RoundHalfUp(hours)
	if h < 1 {
		h = 1
	}
	cst := RoundToStep(cost, CostStep)

	return entities.Estimate{
		Hours: h,
		HourRange: entities.Range{
			Min: RoundHalfUp(float64(h) * hourRangeLow),
			Max: RoundHalfUp(float64(h) * hourRangeHigh),
		},
		Cost: cst,
		CostRange: entities.Range{
			Min: RoundToStep(float64(cst)*costRangeLow, CostStep),
			Max: RoundToStep(float64(cst)*costRangeHigh, CostStep),
		},
		RevisionLimit:  entities.DefaultRevisionLimit,
		IndustryName:   sel.industry.Name,
		ProjectName:    sel.projectType.Name,
		ComplexityName: sel.complexity.Name,
		FeatureNames:   names,
		Input:          sel.input(),
	}, nil
}

// Calculate is Quote plus a generated id and creation timestamp.
func (c *Calculator) Calculate(in entities.EstimateInput) (entities.Estimate, error) {
	e, err := c.Quote(in)
	if err != nil {
		return entities.Estimate{}, err
	}
	e.ID = c.newID()
	e.CreatedAt = c.now()
	return e, nil
}
