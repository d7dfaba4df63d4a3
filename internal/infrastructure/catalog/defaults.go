package catalog

import (
	"slices"

	"bidright/internal/domain/entities"
)

func pt(industry, id, name string, hours, cost float64) entities.ProjectType {
	return entities.ProjectType{ID: id, IndustryID: industry, Name: name, BaseHours: hours, BaseCost: cost}
}

func feat(industry, id, name string, hourMod, costMod float64) entities.FeatureModifier {
	return entities.FeatureModifier{ID: id, IndustryID: industry, Name: name, HourMultiplier: hourMod, CostMultiplier: costMod}
}

func bands(industry string, junior, mid, senior, expert, agency float64) []entities.MarketRateBand {
	return []entities.MarketRateBand{
		{IndustryID: industry, Level: "Junior (1-2 years)", Rate: junior},
		{IndustryID: industry, Level: "Mid-level (3-5 years)", Rate: mid},
		{IndustryID: industry, Level: "Senior (5-8 years)", Rate: senior},
		{IndustryID: industry, Level: "Expert (8+ years)", Rate: expert},
		{IndustryID: industry, Level: "Agency Average", Rate: agency},
	}
}

func adj(industry, projectType string, m float64) entities.RateAdjustment {
	return entities.RateAdjustment{IndustryID: industry, ProjectTypeID: projectType, Multiplier: m}
}

// Default returns the built-in rate catalog. Each call returns a fresh copy.
func Default() *entities.RateCatalog {
	return &entities.RateCatalog{
		Industries: []entities.Industry{
			{ID: "webdev", Name: "Web Development"},
			{ID: "design", Name: "Graphic Design"},
			{ID: "writing", Name: "Content Writing"},
			{ID: "marketing", Name: "Digital Marketing"},
			{ID: "video", Name: "Video Production"},
		},
		ProjectTypes: []entities.ProjectType{
			pt("webdev", "landing", "Landing Page", 10, 500),
			pt("webdev", "website", "Full Website", 40, 2000),
			pt("webdev", "ecommerce", "E-commerce Site", 80, 4000),
			pt("webdev", "webapp", "Web Application", 100, 5000),
			pt("design", "logo", "Logo Design", 8, 400),
			pt("design", "branding", "Brand Package", 20, 1000),
			pt("design", "social", "Social Media Graphics", 12, 600),
			pt("design", "print", "Print Materials", 15, 750),
			pt("writing", "article", "Blog Article", 4, 200),
			pt("writing", "whitepaper", "Whitepaper", 15, 750),
			pt("writing", "emailseq", "Email Sequence", 8, 400),
			pt("writing", "seo", "SEO Content", 6, 300),
			pt("marketing", "smm", "Social Media Campaign", 20, 1000),
			pt("marketing", "ppc", "PPC Campaign", 15, 750),
			pt("marketing", "seo", "SEO Optimization", 30, 1500),
			pt("marketing", "email", "Email Marketing", 12, 600),
			pt("video", "explainer", "Explainer Video", 25, 1250),
			pt("video", "promo", "Promotional Video", 20, 1000),
			pt("video", "interview", "Interview Editing", 15, 750),
			pt("video", "animation", "Animation", 40, 2000),
		},
		Features: []entities.FeatureModifier{
			feat("webdev", "responsive", "Responsive Design", 1.2, 1.2),
			feat("webdev", "cms", "Content Management System", 1.5, 1.4),
			feat("webdev", "payment", "Payment Integration", 1.3, 1.3),
			feat("webdev", "auth", "User Authentication", 1.4, 1.3),
			feat("webdev", "api", "API Integration", 1.3, 1.2),
			feat("design", "revisions", "Unlimited Revisions", 1.5, 1.3),
			feat("design", "sources", "Source Files", 1.1, 1.2),
			feat("design", "rush", "Rush Delivery", 0.8, 1.5),
			feat("design", "mockup", "Mockup Presentation", 1.2, 1.2),
			feat("writing", "research", "In-depth Research", 1.5, 1.3),
			feat("writing", "seo", "SEO Optimization", 1.3, 1.2),
			feat("writing", "revisions", "Multiple Revisions", 1.4, 1.3),
			feat("writing", "interview", "Expert Interviews", 1.6, 1.4),
			feat("marketing", "analytics", "Analytics Setup", 1.2, 1.2),
			feat("marketing", "competitor", "Competitor Analysis", 1.3, 1.3),
			feat("marketing", "persona", "Audience Persona", 1.2, 1.2),
			feat("marketing", "report", "Performance Reporting", 1.3, 1.1),
			feat("video", "script", "Script Writing", 1.3, 1.2),
			feat("video", "voiceover", "Professional Voiceover", 1.2, 1.4),
			feat("video", "music", "Licensed Music", 1.1, 1.3),
			feat("video", "captions", "Subtitles/Captions", 1.2, 1.1),
		},
		Complexities: []entities.ComplexityTier{
			{ID: entities.ComplexityLow, Name: "Low", HourMultiplier: 0.8, CostMultiplier: 0.9},
			{ID: entities.ComplexityMedium, Name: "Medium", HourMultiplier: 1, CostMultiplier: 1},
			{ID: entities.ComplexityHigh, Name: "High", HourMultiplier: 1.5, CostMultiplier: 1.3},
			{ID: entities.ComplexityExpert, Name: "Expert", HourMultiplier: 2, CostMultiplier: 1.8},
		},
		MarketRates: slices.Concat(
			bands("webdev", 35, 65, 100, 150, 125),
			bands("design", 30, 55, 85, 125, 110),
			bands("writing", 25, 45, 75, 120, 95),
			bands("marketing", 30, 60, 95, 145, 125),
			bands("video", 35, 70, 110, 160, 140),
		),
		Locations: []entities.Location{
			{ID: "us_average", Name: "United States (Average)", Multiplier: 1.0},
			{ID: "us_west_coast", Name: "US West Coast", Multiplier: 1.35},
			{ID: "us_east_coast", Name: "US East Coast", Multiplier: 1.25},
			{ID: "us_midwest", Name: "US Midwest", Multiplier: 0.85},
			{ID: "us_south", Name: "US South", Multiplier: 0.9},
			{ID: "western_europe", Name: "Western Europe", Multiplier: 1.15},
			{ID: "eastern_europe", Name: "Eastern Europe", Multiplier: 0.6},
			{ID: "uk", Name: "United Kingdom", Multiplier: 1.1},
			{ID: "australia", Name: "Australia", Multiplier: 1.05},
			{ID: "canada", Name: "Canada", Multiplier: 0.95},
			{ID: "asia", Name: "Asia", Multiplier: 0.55},
			{ID: "latin_america", Name: "Latin America", Multiplier: 0.65},
		},
		RateAdjustments: []entities.RateAdjustment{
			adj("webdev", "landing", 0.8), adj("webdev", "website", 1.0), adj("webdev", "ecommerce", 1.2), adj("webdev", "webapp", 1.3),
			adj("design", "logo", 1.0), adj("design", "branding", 1.2), adj("design", "social", 0.85), adj("design", "print", 0.9),
			adj("writing", "article", 0.9), adj("writing", "whitepaper", 1.3), adj("writing", "emailseq", 1.0), adj("writing", "seo", 1.1),
			adj("marketing", "smm", 1.0), adj("marketing", "ppc", 1.1), adj("marketing", "seo", 1.2), adj("marketing", "email", 0.9),
			adj("video", "explainer", 1.1), adj("video", "promo", 1.0), adj("video", "interview", 0.9), adj("video", "animation", 1.3),
		},
		PhaseTemplates: []entities.PhaseTemplate{
			{IndustryID: "webdev", Phases: []entities.Phase{
				{Name: "Project Planning & Requirements", Percentage: 10},
				{Name: "UI/UX Design", Percentage: 15},
				{Name: "Frontend Development", Percentage: 30},
				{Name: "Backend Development", Percentage: 30},
				{Name: "Testing & Quality Assurance", Percentage: 10},
				{Name: "Deployment & Documentation", Percentage: 5},
			}},
			{IndustryID: "webdev", ProjectTypeID: "ecommerce", Phases: []entities.Phase{
				{Name: "Project Planning & Requirements", Percentage: 10},
				{Name: "UI/UX Design", Percentage: 15},
				{Name: "Frontend Development", Percentage: 20},
				{Name: "Backend & Database Design", Percentage: 20},
				{Name: "Payment Integration", Percentage: 15},
				{Name: "Product Management System", Percentage: 10},
				{Name: "Testing & Quality Assurance", Percentage: 5},
				{Name: "Deployment & Documentation", Percentage: 5},
			}},
			{IndustryID: "design", Phases: []entities.Phase{
				{Name: "Research & Concept Development", Percentage: 20},
				{Name: "Initial Sketches & Concepts", Percentage: 15},
				{Name: "Design Refinement", Percentage: 30},
				{Name: "Client Revisions", Percentage: 20},
				{Name: "Final Production Files", Percentage: 15},
			}},
			{IndustryID: "writing", Phases: []entities.Phase{
				{Name: "Research & Outline", Percentage: 25},
				{Name: "Initial Draft", Percentage: 40},
				{Name: "Revisions & Editing", Percentage: 25},
				{Name: "Final Formatting", Percentage: 10},
			}},
			{IndustryID: "marketing", Phases: []entities.Phase{
				{Name: "Strategy Development", Percentage: 20},
				{Name: "Content Creation", Percentage: 25},
				{Name: "Campaign Setup", Percentage: 20},
				{Name: "Optimization & Management", Percentage: 25},
				{Name: "Reporting & Analysis", Percentage: 10},
			}},
			{IndustryID: "video", Phases: []entities.Phase{
				{Name: "Pre-production & Planning", Percentage: 15},
				{Name: "Shooting/Recording", Percentage: 25},
				{Name: "Editing & Post-production", Percentage: 40},
				{Name: "Audio Mastering", Percentage: 10},
				{Name: "Final Delivery & Revisions", Percentage: 10},
			}},
		},
		PhaseExtensions: []entities.PhaseExtension{
			{IndustryID: "webdev", FeatureID: "cms", Phase: entities.Phase{Name: "CMS Setup & Configuration", Percentage: 15}},
		},
		DefaultPhases: []entities.Phase{
			{Name: "Research & Planning", Percentage: 20},
			{Name: "Development", Percentage: 50},
			{Name: "Testing & Refinement", Percentage: 20},
			{Name: "Delivery & Documentation", Percentage: 10},
		},
	}
}
