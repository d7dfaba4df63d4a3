package catalog

import (
	"errors"
	"fmt"

	"bidright/internal/domain/entities"
)

var requiredComplexities = []string{
	entities.ComplexityLow,
	entities.ComplexityMedium,
	entities.ComplexityHigh,
	entities.ComplexityExpert,
}

// Validate checks referential integrity and value ranges. All problems are
// reported together.
func Validate(c *entities.RateCatalog) error {
	if c == nil {
		return errors.New("catalog is nil")
	}
	var errs []error

	if len(c.Industries) == 0 {
		errs = append(errs, errors.New("no industries defined"))
	}
	industries := make(map[string]bool, len(c.Industries))
	for _, ind := range c.Industries {
		if ind.ID == "" {
			errs = append(errs, errors.New("industry with empty id"))
			continue
		}
		if industries[ind.ID] {
			errs = append(errs, fmt.Errorf("duplicate industry %q", ind.ID))
		}
		industries[ind.ID] = true
	}

	projectTypes := make(map[string]bool, len(c.ProjectTypes))
	for _, pt := range c.ProjectTypes {
		key := pt.IndustryID + "/" + pt.ID
		if !industries[pt.IndustryID] {
			errs = append(errs, fmt.Errorf("project type %s references unknown industry", key))
		}
		if projectTypes[key] {
			errs = append(errs, fmt.Errorf("duplicate project type %s", key))
		}
		projectTypes[key] = true
		if pt.BaseHours <= 0 || pt.BaseCost <= 0 {
			errs = append(errs, fmt.Errorf("project type %s must have positive base hours and cost", key))
		}
	}

	features := make(map[string]bool, len(c.Features))
	for _, f := range c.Features {
		key := f.IndustryID + "/" + f.ID
		if !industries[f.IndustryID] {
			errs = append(errs, fmt.Errorf("feature %s references unknown industry", key))
		}
		if features[key] {
			errs = append(errs, fmt.Errorf("duplicate feature %s", key))
		}
		features[key] = true
		if f.HourMultiplier <= 0 || f.CostMultiplier <= 0 {
			errs = append(errs, fmt.Errorf("feature %s must have positive multipliers", key))
		}
	}

	for _, id := range requiredComplexities {
		tier, ok := c.Complexity(id)
		if !ok {
			errs = append(errs, fmt.Errorf("complexity tier %q missing", id))
			continue
		}
		if tier.HourMultiplier <= 0 || tier.CostMultiplier <= 0 {
			errs = append(errs, fmt.Errorf("complexity tier %q must have positive multipliers", id))
		}
	}

	for _, b := range c.MarketRates {
		if !industries[b.IndustryID] {
			errs = append(errs, fmt.Errorf("market rate %q references unknown industry %q", b.Level, b.IndustryID))
		}
		if b.Rate <= 0 {
			errs = append(errs, fmt.Errorf("market rate %s/%q must be positive", b.IndustryID, b.Level))
		}
	}
	for _, l := range c.Locations {
		if l.Multiplier <= 0 {
			errs = append(errs, fmt.Errorf("location %q must have a positive multiplier", l.ID))
		}
	}
	for _, a := range c.RateAdjustments {
		if !projectTypes[a.IndustryID+"/"+a.ProjectTypeID] {
			errs = append(errs, fmt.Errorf("rate adjustment references unknown project type %s/%s", a.IndustryID, a.ProjectTypeID))
		}
		if a.Multiplier <= 0 {
			errs = append(errs, fmt.Errorf("rate adjustment %s/%s must be positive", a.IndustryID, a.ProjectTypeID))
		}
	}

	for _, t := range c.PhaseTemplates {
		name := t.IndustryID
		if t.ProjectTypeID != "" {
			name += "/" + t.ProjectTypeID
			if !projectTypes[name] {
				errs = append(errs, fmt.Errorf("phase template references unknown project type %s", name))
			}
		}
		if !industries[t.IndustryID] {
			errs = append(errs, fmt.Errorf("phase template references unknown industry %q", t.IndustryID))
		}
		if err := validatePhases(t.Phases); err != nil {
			errs = append(errs, fmt.Errorf("phase template %s: %w", name, err))
		}
	}
	if err := validatePhases(c.DefaultPhases); err != nil {
		errs = append(errs, fmt.Errorf("default phases: %w", err))
	}
	for _, e := range c.PhaseExtensions {
		if !features[e.IndustryID+"/"+e.FeatureID] {
			errs = append(errs, fmt.Errorf("phase extension references unknown feature %s/%s", e.IndustryID, e.FeatureID))
		}
		if e.Phase.Percentage <= 0 {
			errs = append(errs, fmt.Errorf("phase extension %s/%s must have a positive percentage", e.IndustryID, e.FeatureID))
		}
	}

	return errors.Join(errs...)
}

func validatePhases(phases []entities.Phase) error {
	if len(phases) == 0 {
		return errors.New("no phases")
	}
	sum := 0
	for _, p := range phases {
		if p.Percentage <= 0 {
			return fmt.Errorf("phase %q must have a positive percentage", p.Name)
		}
		sum += p.Percentage
	}
	if sum != 100 {
		return fmt.Errorf("percentages sum to %d, want 100", sum)
	}
	return nil
}
