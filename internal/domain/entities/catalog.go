package entities

// Industry is a top-level catalog grouping.
type Industry struct {
	ID   string `json:"id" mapstructure:"id"`
	Name string `json:"name" mapstructure:"name"`
}

type ProjectType struct {
	ID         string  `json:"id" mapstructure:"id"`
	IndustryID string  `json:"industry_id" mapstructure:"industry_id"`
	Name       string  `json:"name" mapstructure:"name"`
	BaseHours  float64 `json:"base_hours" mapstructure:"base_hours"`
	BaseCost   float64 `json:"base_cost" mapstructure:"base_cost"`
}

// FeatureModifier is an optional add-on that scales hours and cost.
type FeatureModifier struct {
	ID             string  `json:"id" mapstructure:"id"`
	IndustryID     string  `json:"industry_id" mapstructure:"industry_id"`
	Name           string  `json:"name" mapstructure:"name"`
	HourMultiplier float64 `json:"hour_multiplier" mapstructure:"hour_multiplier"`
	CostMultiplier float64 `json:"cost_multiplier" mapstructure:"cost_multiplier"`
}

type ComplexityTier struct {
	ID             string  `json:"id" mapstructure:"id"`
	Name           string  `json:"name" mapstructure:"name"`
	HourMultiplier float64 `json:"hour_multiplier" mapstructure:"hour_multiplier"`
	CostMultiplier float64 `json:"cost_multiplier" mapstructure:"cost_multiplier"`
}

// MarketRateBand is a static hourly-rate fixture for one experience level.
type MarketRateBand struct {
	IndustryID string  `json:"industry_id" mapstructure:"industry_id"`
	Level      string  `json:"level" mapstructure:"level"`
	Rate       float64 `json:"rate" mapstructure:"rate"`
}

type Location struct {
	ID         string  `json:"id" mapstructure:"id"`
	Name       string  `json:"name" mapstructure:"name"`
	Multiplier float64 `json:"multiplier" mapstructure:"multiplier"`
}

// RateAdjustment scales market rates for a given project type.
type RateAdjustment struct {
	IndustryID    string  `json:"industry_id" mapstructure:"industry_id"`
	ProjectTypeID string  `json:"project_type_id" mapstructure:"project_type_id"`
	Multiplier    float64 `json:"multiplier" mapstructure:"multiplier"`
}

type Phase struct {
	Name       string `json:"name" mapstructure:"name"`
	Percentage int    `json:"percentage" mapstructure:"percentage"`
}

// PhaseTemplate is the ordered phase split for an industry. A non-empty
// ProjectTypeID makes it an override for that project type only.
type PhaseTemplate struct {
	IndustryID    string  `json:"industry_id" mapstructure:"industry_id"`
	ProjectTypeID string  `json:"project_type_id,omitempty" mapstructure:"project_type_id"`
	Phases        []Phase `json:"phases" mapstructure:"phases"`
}

// PhaseExtension appends a phase when the feature is selected.
type PhaseExtension struct {
	IndustryID string `json:"industry_id" mapstructure:"industry_id"`
	FeatureID  string `json:"feature_id" mapstructure:"feature_id"`
	Phase      Phase  `json:"phase" mapstructure:"phase"`
}

// RateCatalog holds every static table the pricing core reads. It is built
// once at startup and never mutated afterwards.
type RateCatalog struct {
	Industries      []Industry        `json:"industries" mapstructure:"industries"`
	ProjectTypes    []ProjectType     `json:"project_types" mapstructure:"project_types"`
	Features        []FeatureModifier `json:"features" mapstructure:"features"`
	Complexities    []ComplexityTier  `json:"complexities" mapstructure:"complexities"`
	MarketRates     []MarketRateBand  `json:"market_rates" mapstructure:"market_rates"`
	Locations       []Location        `json:"locations" mapstructure:"locations"`
	RateAdjustments []RateAdjustment  `json:"rate_adjustments" mapstructure:"rate_adjustments"`
	PhaseTemplates  []PhaseTemplate   `json:"phase_templates" mapstructure:"phase_templates"`
	PhaseExtensions []PhaseExtension  `json:"phase_extensions" mapstructure:"phase_extensions"`
	DefaultPhases   []Phase           `json:"default_phases" mapstructure:"default_phases"`
}

func (c *RateCatalog) Industry(id string) (Industry, bool) {
	for _, ind := range c.Industries {
		if ind.ID == id {
			return ind, true
		}
	}
	return Industry{}, false
}

// ProjectType resolves a project type only when it belongs to the industry.
func (c *RateCatalog) ProjectType(industryID, id string) (ProjectType, bool) {
	for _, pt := range c.ProjectTypes {
		if pt.IndustryID == industryID && pt.ID == id {
			return pt, true
		}
	}
	return ProjectType{}, false
}

func (c *RateCatalog) ProjectTypesFor(industryID string) []ProjectType {
	var out []ProjectType
	for _, pt := range c.ProjectTypes {
		if pt.IndustryID == industryID {
			out = append(out, pt)
		}
	}
	return out
}

func (c *RateCatalog) Feature(industryID, id string) (FeatureModifier, bool) {
	for _, f := range c.Features {
		if f.IndustryID == industryID && f.ID == id {
			return f, true
		}
	}
	return FeatureModifier{}, false
}

func (c *RateCatalog) FeaturesFor(industryID string) []FeatureModifier {
	var out []FeatureModifier
	for _, f := range c.Features {
		if f.IndustryID == industryID {
			out = append(out, f)
		}
	}
	return out
}

func (c *RateCatalog) Complexity(id string) (ComplexityTier, bool) {
	for _, t := range c.Complexities {
		if t.ID == id {
			return t, true
		}
	}
	return ComplexityTier{}, false
}

func (c *RateCatalog) MarketBandsFor(industryID string) []MarketRateBand {
	var out []MarketRateBand
	for _, b := range c.MarketRates {
		if b.IndustryID == industryID {
			out = append(out, b)
		}
	}
	return out
}

func (c *RateCatalog) Location(id string) (Location, bool) {
	for _, l := range c.Locations {
		if l.ID == id {
			return l, true
		}
	}
	return Location{}, false
}

// RateAdjustmentFor returns the project-type market multiplier, 1.0 when absent.
func (c *RateCatalog) RateAdjustmentFor(industryID, projectTypeID string) float64 {
	for _, a := range c.RateAdjustments {
		if a.IndustryID == industryID && a.ProjectTypeID == projectTypeID {
			return a.Multiplier
		}
	}
	return 1.0
}

// PhasesFor returns the project-type override if any, then the industry
// template, then the generic default phases.
func (c *RateCatalog) PhasesFor(industryID, projectTypeID string) []Phase {
	var industryPhases []Phase
	for _, t := range c.PhaseTemplates {
		if t.IndustryID != industryID {
			continue
		}
		if t.ProjectTypeID == projectTypeID && projectTypeID != "" {
			return t.Phases
		}
		if t.ProjectTypeID == "" {
			industryPhases = t.Phases
		}
	}
	if industryPhases != nil {
		return industryPhases
	}
	return c.DefaultPhases
}

func (c *RateCatalog) PhaseExtensionsFor(industryID string) []PhaseExtension {
	var out []PhaseExtension
	for _, e := range c.PhaseExtensions {
		if e.IndustryID == industryID {
			out = append(out, e)
		}
	}
	return out
}
